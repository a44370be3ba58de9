// Package legacy reads journals from a PKP/OJS 2.x database.
package legacy

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	// legacy installations run on either MySQL or PostgreSQL
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/legacy"
)

const (
	selectJournalQuery  = `SELECT journal_id, path, primary_locale FROM journals WHERE journal_id = ? LIMIT 1`
	selectSettingsQuery = `SELECT locale, setting_name, setting_value FROM journal_settings WHERE journal_id = ?`
)

type settingRow struct {
	Locale sql.NullString `db:"locale"`
	Name   string         `db:"setting_name"`
	Value  sql.NullString `db:"setting_value"`
}

type SQLSource struct {
	db *sqlx.DB
}

// Open connects to the legacy database with driver "mysql" or "postgres".
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "connect legacy %s database", driver)
	}
	return db, nil
}

func NewSQLSource(db *sqlx.DB) *SQLSource {
	return &SQLSource{db: db}
}

func (s *SQLSource) GetJournal(ctx context.Context, id int64) (legacy.Journal, error) {
	var row legacy.Journal
	if err := s.db.GetContext(ctx, &row, s.db.Rebind(selectJournalQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return legacy.Journal{}, legacy.ErrJournalNotFound
		}
		return legacy.Journal{}, errors.Wrapf(err, "select journal %d", id)
	}
	return row, nil
}

func (s *SQLSource) ListSettings(ctx context.Context, journalID int64) ([]legacy.Setting, error) {
	var rows []settingRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(selectSettingsQuery), journalID); err != nil {
		return nil, errors.Wrapf(err, "select settings of journal %d", journalID)
	}
	settings := make([]legacy.Setting, 0, len(rows))
	for _, r := range rows {
		settings = append(settings, legacy.Setting{
			Locale: r.Locale.String,
			Name:   r.Name,
			Value:  r.Value.String,
		})
	}
	return settings, nil
}
