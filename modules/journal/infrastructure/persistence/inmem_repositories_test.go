package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/infrastructure/persistence"
)

func TestInmemLangRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInmemLangRepository()

	_, err := repo.GetByCode(ctx, "tr")
	require.ErrorIs(t, err, lang.ErrNotFound)

	tr := lang.New("tr", "Türkçe")
	require.NoError(t, repo.Create(ctx, tr))

	got, err := repo.GetByCode(ctx, "tr")
	require.NoError(t, err)
	assert.Same(t, tr, got)
	assert.Equal(t, 1, repo.Len())
}

func TestInmemPublisherRepository_RejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInmemPublisherRepository()

	require.NoError(t, repo.Create(ctx, publisher.New("Acme Press")))
	err := repo.Create(ctx, publisher.New("Acme Press"))
	require.ErrorIs(t, err, persistence.ErrPublisherExists)

	_, err = repo.GetByName(ctx, "Other")
	require.ErrorIs(t, err, publisher.ErrNotFound)
	assert.Equal(t, 1, repo.Len())
}

func TestInmemJournalRepository_SlugUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewInmemJournalRepository()

	exists, err := repo.SlugExists(ctx, "demo-journal")
	require.NoError(t, err)
	assert.False(t, exists)

	first := journal.New("demo-journal")
	require.NoError(t, repo.Create(ctx, first))

	exists, err = repo.SlugExists(ctx, "demo-journal")
	require.NoError(t, err)
	assert.True(t, exists)

	require.ErrorIs(t, repo.Create(ctx, journal.New("demo-journal")), journal.ErrSlugTaken)

	second := journal.New("another")
	require.NoError(t, repo.Create(ctx, second))

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "another", all[0].Slug())
	assert.Equal(t, "demo-journal", all[1].Slug())

	got, ok := repo.GetByID(ctx, first.ID())
	require.True(t, ok)
	assert.Same(t, first, got)
}
