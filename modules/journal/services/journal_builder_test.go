package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/defaults"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/legacy"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/services"
)

func newBuilder(t *testing.T, uow *services.UnitOfWork) *services.JournalBuilder {
	t.Helper()

	log, _ := newTestLogger(t)
	table := defaults.Default()
	return services.NewJournalBuilder(
		services.NewPublisherResolver(uow, table, log),
		services.NewLanguageResolver(uow, table, log),
		table,
	)
}

func TestJournalBuilder_DemoJournal(t *testing.T) {
	b := newBuilder(t, newStores().unitOfWork())
	row := legacy.Journal{ID: 1, Path: "demo-journal", PrimaryLocale: "en_US"}
	settings := services.Settings{
		"en_US": {"title": "Demo", "printIssn": "", "publisherInstitution": ""},
	}

	j, err := b.Build(context.Background(), row, settings)
	require.NoError(t, err)

	assert.Equal(t, "demo-journal", j.Slug())
	assert.Equal(t, journal.StatusPublished, j.Status())
	assert.True(t, j.Published())
	assert.Equal(t, []journal.Translation{{Locale: "en", Title: "Demo", Description: "-"}}, j.Translations())
	assert.Equal(t, defaults.ISSN, j.ISSN())
	assert.Equal(t, defaults.EISSN, j.EISSN())
	assert.Equal(t, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), j.Founded())
	assert.Equal(t, defaults.PublisherName, j.Publisher().Name())

	require.NotNil(t, j.MandatoryLang())
	assert.Equal(t, "en", j.MandatoryLang().Code())
	langs := j.Languages()
	require.Len(t, langs, 1)
	assert.Same(t, j.MandatoryLang(), langs[0])
}

func TestJournalBuilder_OneTranslationPerLocale(t *testing.T) {
	b := newBuilder(t, newStores().unitOfWork())
	row := legacy.Journal{ID: 2, Path: "multi", PrimaryLocale: "tr_TR"}
	settings := services.Settings{
		"tr_TR": {"title": "Dergi", "description": "Açıklama", "printIssn": "1300-0000", "onlineIssn": "2146-0000", "initialYear": "1999"},
		"en_US": {"title": "Journal"},
		"de_DE": {},
	}

	j, err := b.Build(context.Background(), row, settings)
	require.NoError(t, err)

	assert.Equal(t, []journal.Translation{
		{Locale: "de", Title: defaults.JournalTitle, Description: "-"},
		{Locale: "en", Title: "Journal", Description: "-"},
		{Locale: "tr", Title: "Dergi", Description: "Açıklama"},
	}, j.Translations())
	assert.Equal(t, "1300-0000", j.ISSN())
	assert.Equal(t, "2146-0000", j.EISSN())
	assert.Equal(t, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), j.Founded())
	assert.Equal(t, "Türkçe", j.MandatoryLang().Name())
}

func TestJournalBuilder_NamedPublisher(t *testing.T) {
	b := newBuilder(t, newStores().unitOfWork())
	row := legacy.Journal{ID: 3, Path: "named", PrimaryLocale: "en_US"}
	settings := services.Settings{
		"en_US": {"publisherInstitution": "Acme Press"},
	}

	j, err := b.Build(context.Background(), row, settings)
	require.NoError(t, err)
	assert.Equal(t, "Acme Press", j.Publisher().Name())
	assert.Nil(t, j.Publisher().URL())
}

func TestJournalBuilder_MalformedYear(t *testing.T) {
	for _, year := range []string{"19x9", "99", "0000a"} {
		t.Run(year, func(t *testing.T) {
			b := newBuilder(t, newStores().unitOfWork())
			row := legacy.Journal{ID: 4, Path: "bad", PrimaryLocale: "en_US"}
			settings := services.Settings{"en_US": {"initialYear": year}}

			_, err := b.Build(context.Background(), row, settings)
			require.ErrorIs(t, err, services.ErrMalformedInput)
		})
	}
}
