package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/defaults"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/services"
)

func TestLanguageResolver(t *testing.T) {
	ctx := context.Background()
	log, _ := newTestLogger(t)

	t.Run("known code gets its display name", func(t *testing.T) {
		s := newStores()
		uow := s.unitOfWork()
		r := services.NewLanguageResolver(uow, defaults.Default(), log)

		l, err := r.Resolve(ctx, "tr")
		require.NoError(t, err)
		assert.Equal(t, "tr", l.Code())
		assert.Equal(t, "Türkçe", l.Name())

		again, err := r.Resolve(ctx, "tr")
		require.NoError(t, err)
		assert.Same(t, l, again)

		stats, err := uow.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Langs)
		assert.Equal(t, 1, s.langs.Len())
	})

	t.Run("unknown code", func(t *testing.T) {
		r := services.NewLanguageResolver(newStores().unitOfWork(), defaults.Default(), log)

		l, err := r.Resolve(ctx, "xx")
		require.NoError(t, err)
		assert.Equal(t, defaults.LanguageName, l.Name())
	})

	t.Run("stored language is reused", func(t *testing.T) {
		s := newStores()
		stored := lang.New("en", "English (stored)")
		require.NoError(t, s.langs.Create(ctx, stored))

		uow := s.unitOfWork()
		r := services.NewLanguageResolver(uow, defaults.Default(), log)
		l, err := r.Resolve(ctx, "en")
		require.NoError(t, err)
		assert.Same(t, stored, l)

		stats, err := uow.Flush(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Langs)
	})
}

func TestPublisherResolver_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()
	log, _ := newTestLogger(t)
	settings := services.Settings{
		"en_US": {"publisherInstitution": "Acme Press", "publisherUrl": "https://acme.example", "publisherNote": "About Acme"},
		"tr_TR": {"title": "Dergi"},
	}

	t.Run("new publisher gets one translation per locale", func(t *testing.T) {
		s := newStores()
		uow := s.unitOfWork()
		r := services.NewPublisherResolver(uow, defaults.Default(), log)

		p, err := r.ResolveOrCreate(ctx, "Acme Press", "en_US", settings)
		require.NoError(t, err)
		assert.Equal(t, "Acme Press", p.Name())
		assert.Equal(t, defaults.PublisherEmail, p.Email())
		assert.Equal(t, "-", p.Address())
		assert.Equal(t, "-", p.Phone())
		require.NotNil(t, p.URL())
		assert.Equal(t, "https://acme.example", *p.URL())
		assert.Equal(t, []publisher.Translation{
			{Locale: "en", About: "About Acme"},
			{Locale: "tr", About: "-"},
		}, p.Translations())

		stats, err := uow.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Publishers)
		assert.Equal(t, 2, stats.PublisherTranslations)
	})

	t.Run("missing url stays nil", func(t *testing.T) {
		r := services.NewPublisherResolver(newStores().unitOfWork(), defaults.Default(), log)

		p, err := r.ResolveOrCreate(ctx, "No Url Press", "tr_TR", services.Settings{"tr_TR": {}})
		require.NoError(t, err)
		assert.Nil(t, p.URL())
		assert.Len(t, p.Translations(), 1)
	})

	t.Run("existing publisher is returned untouched", func(t *testing.T) {
		s := newStores()
		stored := publisher.New("Acme Press", publisher.WithTranslations(publisher.Translation{Locale: "de", About: "Alt"}))
		require.NoError(t, s.publishers.Create(ctx, stored))

		uow := s.unitOfWork()
		r := services.NewPublisherResolver(uow, defaults.Default(), log)
		p, err := r.ResolveOrCreate(ctx, "Acme Press", "en_US", settings)
		require.NoError(t, err)
		assert.Same(t, stored, p)
		assert.Equal(t, []publisher.Translation{{Locale: "de", About: "Alt"}}, p.Translations())

		stats, err := uow.Flush(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Publishers)
		assert.Equal(t, 1, s.publishers.Len())
	})
}

func TestPublisherResolver_Unknown(t *testing.T) {
	ctx := context.Background()
	log, _ := newTestLogger(t)
	s := newStores()
	uow := s.unitOfWork()
	r := services.NewPublisherResolver(uow, defaults.Default(), log)

	p, err := r.Unknown(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaults.PublisherName, p.Name())
	require.NotNil(t, p.URL())
	assert.Equal(t, defaults.UnknownPublisherURL, *p.URL())
	assert.Equal(t, []publisher.Translation{{Locale: "en", About: "-"}}, p.Translations())

	again, err := r.Unknown(ctx)
	require.NoError(t, err)
	assert.Same(t, p, again)

	_, err = uow.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.publishers.Len())
}
