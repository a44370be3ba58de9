package services

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
)

// FlushStats counts the rows written by one Flush.
type FlushStats struct {
	Journals              int
	JournalTranslations   int
	Publishers            int
	PublisherTranslations int
	Langs                 int
}

// UnitOfWork collects new entities during one import and writes them in Flush.
// Lookups go through an identity map first, so an entity registered earlier in the
// same unit is found again instead of being created twice.
type UnitOfWork struct {
	journals   journal.Repository
	publishers publisher.Repository
	langs      lang.Repository

	langsByCode      map[string]*lang.Lang
	publishersByName map[string]*publisher.Publisher

	newLangs      []*lang.Lang
	newPublishers []*publisher.Publisher
	newJournals   []*journal.Journal
}

func NewUnitOfWork(journals journal.Repository, publishers publisher.Repository, langs lang.Repository) *UnitOfWork {
	return &UnitOfWork{
		journals:         journals,
		publishers:       publishers,
		langs:            langs,
		langsByCode:      map[string]*lang.Lang{},
		publishersByName: map[string]*publisher.Publisher{},
	}
}

// FindLang returns lang.ErrNotFound on a miss.
func (u *UnitOfWork) FindLang(ctx context.Context, code string) (*lang.Lang, error) {
	if l, ok := u.langsByCode[code]; ok {
		return l, nil
	}
	l, err := u.langs.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	u.langsByCode[code] = l
	return l, nil
}

func (u *UnitOfWork) RegisterLang(l *lang.Lang) {
	u.langsByCode[l.Code()] = l
	u.newLangs = append(u.newLangs, l)
}

// FindPublisher returns publisher.ErrNotFound on a miss.
func (u *UnitOfWork) FindPublisher(ctx context.Context, name string) (*publisher.Publisher, error) {
	if p, ok := u.publishersByName[name]; ok {
		return p, nil
	}
	p, err := u.publishers.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	u.publishersByName[name] = p
	return p, nil
}

func (u *UnitOfWork) RegisterPublisher(p *publisher.Publisher) {
	u.publishersByName[p.Name()] = p
	u.newPublishers = append(u.newPublishers, p)
}

func (u *UnitOfWork) RegisterJournal(j *journal.Journal) {
	u.newJournals = append(u.newJournals, j)
}

// Flush writes languages, then publishers, then journals. Journal slugs that are
// already taken get a numeric suffix.
func (u *UnitOfWork) Flush(ctx context.Context) (FlushStats, error) {
	var stats FlushStats

	for _, l := range u.newLangs {
		if err := u.langs.Create(ctx, l); err != nil {
			return stats, errors.Wrapf(err, "create lang %q", l.Code())
		}
		stats.Langs++
	}
	u.newLangs = nil

	for _, p := range u.newPublishers {
		if err := u.publishers.Create(ctx, p); err != nil {
			return stats, errors.Wrapf(err, "create publisher %q", p.Name())
		}
		stats.Publishers++
		stats.PublisherTranslations += len(p.Translations())
	}
	u.newPublishers = nil

	for _, j := range u.newJournals {
		slug, err := u.uniqueSlug(ctx, j.Slug())
		if err != nil {
			return stats, err
		}
		j.SetSlug(slug)
		if err := u.journals.Create(ctx, j); err != nil {
			return stats, errors.Wrapf(err, "create journal %q", j.Slug())
		}
		stats.Journals++
		stats.JournalTranslations += len(j.Translations())
	}
	u.newJournals = nil

	return stats, nil
}

func (u *UnitOfWork) uniqueSlug(ctx context.Context, base string) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		taken, err := u.journals.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrapf(err, "check slug %q", candidate)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
