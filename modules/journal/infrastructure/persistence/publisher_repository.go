package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
)

const (
	selectPublisherByNameQuery = `
SELECT id, name, email, address, phone, url
FROM publishers
WHERE name = $1
LIMIT 1
`
	selectPublisherTranslationsQuery = `
SELECT locale, about
FROM publisher_translations
WHERE publisher_id = $1
ORDER BY id
`
	insertPublisherQuery = `
INSERT INTO publishers (id, name, email, address, phone, url)
VALUES ($1, $2, $3, $4, $5, $6)
`
	insertPublisherTranslationQuery = `
INSERT INTO publisher_translations (publisher_id, locale, about)
VALUES ($1, $2, $3)
`
	publishersNameKey = "publishers_name_key"
)

var ErrPublisherExists = errors.New("publisher name already stored")

type PublisherRepository struct{}

func NewPublisherRepository() publisher.Repository {
	return &PublisherRepository{}
}

func (r *PublisherRepository) GetByName(ctx context.Context, name string) (*publisher.Publisher, error) {
	tx, err := useTx(ctx)
	if err != nil {
		return nil, err
	}

	var (
		id                             uuid.UUID
		storedName, email, addr, phone string
		url                            *string
	)
	err = tx.QueryRow(ctx, selectPublisherByNameQuery, name).Scan(&id, &storedName, &email, &addr, &phone, &url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publisher.ErrNotFound
		}
		return nil, gerrors.Wrap(err, "select publisher")
	}

	rows, err := tx.Query(ctx, selectPublisherTranslationsQuery, id)
	if err != nil {
		return nil, gerrors.Wrap(err, "select publisher translations")
	}
	defer rows.Close()

	var translations []publisher.Translation
	for rows.Next() {
		var t publisher.Translation
		if err := rows.Scan(&t.Locale, &t.About); err != nil {
			return nil, gerrors.Wrap(err, "scan publisher translation")
		}
		translations = append(translations, t)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "iterate publisher translations")
	}

	return publisher.Hydrate(
		id,
		storedName,
		publisher.WithEmail(email),
		publisher.WithAddress(addr),
		publisher.WithPhone(phone),
		publisher.WithURL(url),
		publisher.WithTranslations(translations...),
	), nil
}

func (r *PublisherRepository) Create(ctx context.Context, p *publisher.Publisher) error {
	tx, err := useTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, insertPublisherQuery, p.ID(), p.Name(), p.Email(), p.Address(), p.Phone(), p.URL()); err != nil {
		if isUniqueViolation(err, publishersNameKey) {
			return gerrors.Wrapf(ErrPublisherExists, "name=%q", p.Name())
		}
		return gerrors.Wrap(err, "insert publisher")
	}
	for _, t := range p.Translations() {
		if _, err := tx.Exec(ctx, insertPublisherTranslationQuery, p.ID(), t.Locale, t.About); err != nil {
			return gerrors.Wrapf(err, "insert publisher translation locale=%q", t.Locale)
		}
	}
	return nil
}
