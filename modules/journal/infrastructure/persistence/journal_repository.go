package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
)

const (
	slugExistsQuery    = `SELECT EXISTS (SELECT 1 FROM journals WHERE slug = $1)`
	insertJournalQuery = `
INSERT INTO journals (id, slug, status, published, issn, eissn, founded, publisher_id, mandatory_lang_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	insertJournalTranslationQuery = `
INSERT INTO journal_translations (journal_id, locale, title, description)
VALUES ($1, $2, $3, $4)
`
	insertJournalLanguageQuery = `
INSERT INTO journal_languages (journal_id, lang_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`
	journalsSlugKey = "journals_slug_key"
)

type JournalRepository struct{}

func NewJournalRepository() journal.Repository {
	return &JournalRepository{}
}

func (r *JournalRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	tx, err := useTx(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := tx.QueryRow(ctx, slugExistsQuery, slug).Scan(&exists); err != nil {
		return false, gerrors.Wrap(err, "check journal slug")
	}
	return exists, nil
}

func (r *JournalRepository) Create(ctx context.Context, j *journal.Journal) error {
	if j.Publisher() == nil || j.MandatoryLang() == nil {
		return gerrors.Errorf("journal %q: publisher and mandatory language are required", j.Slug())
	}
	tx, err := useTx(ctx)
	if err != nil {
		return err
	}
	_, err = tx.Exec(
		ctx,
		insertJournalQuery,
		j.ID(),
		j.Slug(),
		int16(j.Status()),
		j.Published(),
		j.ISSN(),
		j.EISSN(),
		j.Founded(),
		j.Publisher().ID(),
		j.MandatoryLang().ID(),
	)
	if err != nil {
		if isUniqueViolation(err, journalsSlugKey) {
			return gerrors.Wrapf(journal.ErrSlugTaken, "slug=%q", j.Slug())
		}
		return gerrors.Wrap(err, "insert journal")
	}
	for _, t := range j.Translations() {
		if _, err := tx.Exec(ctx, insertJournalTranslationQuery, j.ID(), t.Locale, t.Title, t.Description); err != nil {
			return gerrors.Wrapf(err, "insert journal translation locale=%q", t.Locale)
		}
	}
	for _, l := range j.Languages() {
		if _, err := tx.Exec(ctx, insertJournalLanguageQuery, j.ID(), l.ID()); err != nil {
			return gerrors.Wrapf(err, "link journal language code=%q", l.Code())
		}
	}
	return nil
}
