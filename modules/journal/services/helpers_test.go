package services_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/legacy"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/infrastructure/persistence"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/services"
)

type fakeSource struct {
	journals map[int64]legacy.Journal
	settings map[int64][]legacy.Setting
	err      error
}

func (s *fakeSource) GetJournal(_ context.Context, id int64) (legacy.Journal, error) {
	if s.err != nil {
		return legacy.Journal{}, s.err
	}
	j, ok := s.journals[id]
	if !ok {
		return legacy.Journal{}, legacy.ErrJournalNotFound
	}
	return j, nil
}

func (s *fakeSource) ListSettings(_ context.Context, journalID int64) ([]legacy.Setting, error) {
	return s.settings[journalID], nil
}

type stores struct {
	journals   *persistence.InmemJournalRepository
	publishers *persistence.InmemPublisherRepository
	langs      *persistence.InmemLangRepository
}

func newStores() stores {
	return stores{
		journals:   persistence.NewInmemJournalRepository(),
		publishers: persistence.NewInmemPublisherRepository(),
		langs:      persistence.NewInmemLangRepository(),
	}
}

func (s stores) unitOfWork() *services.UnitOfWork {
	return services.NewUnitOfWork(s.journals, s.publishers, s.langs)
}

func passthroughTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newTestLogger(t *testing.T) (*logrus.Entry, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger), hook
}
