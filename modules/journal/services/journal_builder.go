package services

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/defaults"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/legacy"
)

const foundedLayout = "2006-01-02 15:04:05"

type JournalBuilder struct {
	publishers *PublisherResolver
	langs      *LanguageResolver
	defaults   defaults.Table
}

func NewJournalBuilder(publishers *PublisherResolver, langs *LanguageResolver, table defaults.Table) *JournalBuilder {
	return &JournalBuilder{publishers: publishers, langs: langs, defaults: table}
}

// Build assembles a journal from its legacy row and reshaped settings.
// It fails with ErrMalformedInput when the founding year is not a date.
func (b *JournalBuilder) Build(ctx context.Context, row legacy.Journal, settings Settings) (*journal.Journal, error) {
	primary := row.PrimaryLocale
	j := journal.New(row.Path)

	for _, locale := range settings.Locales() {
		j.AddTranslation(journal.Translation{
			Locale:      localeCode(locale),
			Title:       settings.ValueOr(locale, "title", b.defaults.JournalTitle),
			Description: settings.ValueOr(locale, "description", b.defaults.JournalDescription),
		})
	}

	j.SetISSN(settings.ValueOr(primary, "printIssn", b.defaults.ISSN))
	j.SetEISSN(settings.ValueOr(primary, "onlineIssn", b.defaults.EISSN))

	year := strings.TrimSpace(settings.ValueOr(primary, "initialYear", b.defaults.FoundedYear))
	founded, err := time.Parse(foundedLayout, year+"-01-01 00:00:00")
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "initialYear %q: %v", year, err)
	}
	j.SetFounded(founded)

	var p *publisher.Publisher
	if settings.Has(primary, "publisherInstitution") {
		name, _ := settings.Get(primary, "publisherInstitution")
		p, err = b.publishers.ResolveOrCreate(ctx, name, primary, settings)
	} else {
		p, err = b.publishers.Unknown(ctx)
	}
	if err != nil {
		return nil, err
	}
	j.SetPublisher(p)

	l, err := b.langs.Resolve(ctx, localeCode(primary))
	if err != nil {
		return nil, err
	}
	j.SetMandatoryLang(l)
	j.AddLanguage(l)

	return j, nil
}
