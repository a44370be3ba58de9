package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
)

const (
	selectLangByCodeQuery = `SELECT id, code, name FROM langs WHERE code = $1 LIMIT 1`
	insertLangQuery       = `INSERT INTO langs (id, code, name) VALUES ($1, $2, $3)`
)

type LangRepository struct{}

func NewLangRepository() lang.Repository {
	return &LangRepository{}
}

func (r *LangRepository) GetByCode(ctx context.Context, code string) (*lang.Lang, error) {
	tx, err := useTx(ctx)
	if err != nil {
		return nil, err
	}
	var (
		id         uuid.UUID
		storedCode string
		name       string
	)
	if err := tx.QueryRow(ctx, selectLangByCodeQuery, code).Scan(&id, &storedCode, &name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lang.ErrNotFound
		}
		return nil, gerrors.Wrap(err, "select lang")
	}
	return lang.Hydrate(id, storedCode, name), nil
}

func (r *LangRepository) Create(ctx context.Context, l *lang.Lang) error {
	tx, err := useTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, insertLangQuery, l.ID(), l.Code(), l.Name()); err != nil {
		return gerrors.Wrap(err, "insert lang")
	}
	return nil
}
