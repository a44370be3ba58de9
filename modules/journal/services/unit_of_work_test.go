package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
)

func TestUnitOfWork_FlushOrderAndSlugSuffix(t *testing.T) {
	ctx := context.Background()
	s := newStores()
	require.NoError(t, s.journals.Create(ctx, journal.New("demo")))
	require.NoError(t, s.journals.Create(ctx, journal.New("demo-1")))

	uow := s.unitOfWork()
	l := lang.New("en", "English")
	p := publisher.New("Acme", publisher.WithTranslations(publisher.Translation{Locale: "en", About: "-"}))
	uow.RegisterLang(l)
	uow.RegisterPublisher(p)

	j := journal.New("demo")
	j.SetPublisher(p)
	j.SetMandatoryLang(l)
	j.AddTranslation(journal.Translation{Locale: "en", Title: "Demo", Description: "-"})
	uow.RegisterJournal(j)

	found, err := uow.FindLang(ctx, "en")
	require.NoError(t, err)
	assert.Same(t, l, found, "registered entities are visible before flush")

	stats, err := uow.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Journals)
	assert.Equal(t, 1, stats.JournalTranslations)
	assert.Equal(t, 1, stats.Publishers)
	assert.Equal(t, 1, stats.PublisherTranslations)
	assert.Equal(t, 1, stats.Langs)
	assert.Equal(t, "demo-2", j.Slug())

	// a second flush writes nothing new
	stats, err = uow.Flush(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Journals)
	assert.Len(t, s.journals.All(), 3)
}

func TestUnitOfWork_FindMissing(t *testing.T) {
	uow := newStores().unitOfWork()

	_, err := uow.FindLang(context.Background(), "xx")
	require.ErrorIs(t, err, lang.ErrNotFound)
	_, err = uow.FindPublisher(context.Background(), "Nobody")
	require.ErrorIs(t, err, publisher.ErrNotFound)
}
