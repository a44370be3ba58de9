package journal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
)

var ErrSlugTaken = errors.New("journal slug already taken")

type Status int

const (
	StatusPublished Status = 1
)

type Translation struct {
	Locale      string
	Title       string
	Description string
}

type Journal struct {
	id            uuid.UUID
	slug          string
	status        Status
	published     bool
	issn          string
	eissn         string
	founded       time.Time
	publisher     *publisher.Publisher
	mandatoryLang *lang.Lang
	languages     []*lang.Lang
	translations  []Translation
}

// New returns a published, active journal with a fresh identifier.
func New(slug string) *Journal {
	return &Journal{
		id:        uuid.New(),
		slug:      strings.TrimSpace(slug),
		status:    StatusPublished,
		published: true,
	}
}

func (j *Journal) ID() uuid.UUID                   { return j.id }
func (j *Journal) Slug() string                    { return j.slug }
func (j *Journal) Status() Status                  { return j.status }
func (j *Journal) Published() bool                 { return j.published }
func (j *Journal) ISSN() string                    { return j.issn }
func (j *Journal) EISSN() string                   { return j.eissn }
func (j *Journal) Founded() time.Time              { return j.founded }
func (j *Journal) Publisher() *publisher.Publisher { return j.publisher }
func (j *Journal) MandatoryLang() *lang.Lang       { return j.mandatoryLang }

func (j *Journal) Languages() []*lang.Lang {
	out := make([]*lang.Lang, len(j.languages))
	copy(out, j.languages)
	return out
}

func (j *Journal) Translations() []Translation {
	out := make([]Translation, len(j.translations))
	copy(out, j.translations)
	return out
}

// Translation returns the first translation stored under locale.
func (j *Journal) Translation(locale string) (Translation, bool) {
	for _, t := range j.translations {
		if t.Locale == locale {
			return t, true
		}
	}
	return Translation{}, false
}

func (j *Journal) AddTranslation(t Translation) {
	j.translations = append(j.translations, t)
}

func (j *Journal) SetSlug(slug string)                 { j.slug = slug }
func (j *Journal) SetISSN(issn string)                 { j.issn = issn }
func (j *Journal) SetEISSN(eissn string)               { j.eissn = eissn }
func (j *Journal) SetFounded(founded time.Time)        { j.founded = founded }
func (j *Journal) SetPublisher(p *publisher.Publisher) { j.publisher = p }
func (j *Journal) SetMandatoryLang(l *lang.Lang)       { j.mandatoryLang = l }

// AddLanguage is a no-op when a language with the same code is already attached.
func (j *Journal) AddLanguage(l *lang.Lang) {
	for _, existing := range j.languages {
		if existing.Code() == l.Code() {
			return
		}
	}
	j.languages = append(j.languages, l)
}
