package services

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/defaults"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
)

type PublisherStore interface {
	FindPublisher(ctx context.Context, name string) (*publisher.Publisher, error)
	RegisterPublisher(p *publisher.Publisher)
}

type PublisherResolver struct {
	store    PublisherStore
	defaults defaults.Table
	log      *logrus.Entry
}

func NewPublisherResolver(store PublisherStore, table defaults.Table, log *logrus.Entry) *PublisherResolver {
	return &PublisherResolver{store: store, defaults: table, log: log}
}

// ResolveOrCreate returns the publisher called name. An existing publisher is returned
// untouched; a new one gets one translation per settings locale.
func (r *PublisherResolver) ResolveOrCreate(ctx context.Context, name, locale string, settings Settings) (*publisher.Publisher, error) {
	p, found, err := r.find(ctx, name)
	if err != nil || found {
		return p, err
	}

	var url *string
	if v := settings.ValueOr(locale, "publisherUrl", ""); v != "" {
		url = &v
	}

	translations := make([]publisher.Translation, 0, len(settings))
	for _, l := range settings.Locales() {
		translations = append(translations, publisher.Translation{
			Locale: localeCode(l),
			About:  settings.ValueOr(l, "publisherNote", r.defaults.PublisherAbout),
		})
	}

	p = r.create(name, url, translations...)
	return p, nil
}

// Unknown returns the placeholder publisher used when the journal names none.
func (r *PublisherResolver) Unknown(ctx context.Context) (*publisher.Publisher, error) {
	p, found, err := r.find(ctx, r.defaults.PublisherName)
	if err != nil || found {
		return p, err
	}

	url := r.defaults.UnknownPublisherURL
	p = r.create(r.defaults.PublisherName, &url, publisher.Translation{
		Locale: r.defaults.UnknownPublisherLocale,
		About:  r.defaults.PublisherAbout,
	})
	return p, nil
}

func (r *PublisherResolver) find(ctx context.Context, name string) (*publisher.Publisher, bool, error) {
	p, err := r.store.FindPublisher(ctx, name)
	if err == nil {
		return p, true, nil
	}
	if errors.Is(err, publisher.ErrNotFound) {
		return nil, false, nil
	}
	return nil, false, errors.Wrapf(err, "find publisher %q", name)
}

func (r *PublisherResolver) create(name string, url *string, translations ...publisher.Translation) *publisher.Publisher {
	p := publisher.New(
		name,
		publisher.WithEmail(r.defaults.PublisherEmail),
		publisher.WithAddress(r.defaults.PublisherAddress),
		publisher.WithPhone(r.defaults.PublisherPhone),
		publisher.WithURL(url),
		publisher.WithTranslations(translations...),
	)
	r.store.RegisterPublisher(p)
	r.log.WithField("publisher", name).Debug("creating publisher")
	return p
}
