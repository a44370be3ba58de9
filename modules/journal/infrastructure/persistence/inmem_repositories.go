package persistence

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
)

type SafeMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func NewSafeMap[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{
		m: make(map[K]V),
	}
}

func (s *SafeMap[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *SafeMap[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, found := s.m[key]
	return val, found
}

func (s *SafeMap[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func (s *SafeMap[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Collect(maps.Values(s.m))
}

type InmemLangRepository struct {
	storage *SafeMap[string, *lang.Lang]
}

func NewInmemLangRepository() *InmemLangRepository {
	return &InmemLangRepository{storage: NewSafeMap[string, *lang.Lang]()}
}

func (r *InmemLangRepository) GetByCode(_ context.Context, code string) (*lang.Lang, error) {
	l, found := r.storage.Get(code)
	if !found {
		return nil, lang.ErrNotFound
	}
	return l, nil
}

func (r *InmemLangRepository) Create(_ context.Context, l *lang.Lang) error {
	r.storage.Set(l.Code(), l)
	return nil
}

func (r *InmemLangRepository) Len() int { return r.storage.Len() }

type InmemPublisherRepository struct {
	storage *SafeMap[string, *publisher.Publisher]
}

func NewInmemPublisherRepository() *InmemPublisherRepository {
	return &InmemPublisherRepository{storage: NewSafeMap[string, *publisher.Publisher]()}
}

func (r *InmemPublisherRepository) GetByName(_ context.Context, name string) (*publisher.Publisher, error) {
	p, found := r.storage.Get(name)
	if !found {
		return nil, publisher.ErrNotFound
	}
	return p, nil
}

func (r *InmemPublisherRepository) Create(_ context.Context, p *publisher.Publisher) error {
	if _, found := r.storage.Get(p.Name()); found {
		return ErrPublisherExists
	}
	r.storage.Set(p.Name(), p)
	return nil
}

func (r *InmemPublisherRepository) Len() int { return r.storage.Len() }

type InmemJournalRepository struct {
	storage *SafeMap[uuid.UUID, *journal.Journal]
}

func NewInmemJournalRepository() *InmemJournalRepository {
	return &InmemJournalRepository{storage: NewSafeMap[uuid.UUID, *journal.Journal]()}
}

func (r *InmemJournalRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, j := range r.storage.Values() {
		if j.Slug() == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *InmemJournalRepository) Create(ctx context.Context, j *journal.Journal) error {
	taken, err := r.SlugExists(ctx, j.Slug())
	if err != nil {
		return err
	}
	if taken {
		return journal.ErrSlugTaken
	}
	r.storage.Set(j.ID(), j)
	return nil
}

func (r *InmemJournalRepository) GetByID(_ context.Context, id uuid.UUID) (*journal.Journal, bool) {
	return r.storage.Get(id)
}

// All returns the stored journals ordered by slug.
func (r *InmemJournalRepository) All() []*journal.Journal {
	out := r.storage.Values()
	slices.SortFunc(out, func(a, b *journal.Journal) int {
		switch {
		case a.Slug() < b.Slug():
			return -1
		case a.Slug() > b.Slug():
			return 1
		}
		return 0
	})
	return out
}
