package publisher

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("publisher not found")

type Translation struct {
	Locale string
	About  string
}

// Publisher is shared by every journal that cites the same name.
type Publisher struct {
	id           uuid.UUID
	name         string
	email        string
	address      string
	phone        string
	url          *string
	translations []Translation
}

type Option func(p *Publisher)

func WithEmail(email string) Option {
	return func(p *Publisher) { p.email = email }
}

func WithAddress(address string) Option {
	return func(p *Publisher) { p.address = address }
}

func WithPhone(phone string) Option {
	return func(p *Publisher) { p.phone = phone }
}

// WithURL sets the url; nil keeps it unset.
func WithURL(url *string) Option {
	return func(p *Publisher) { p.url = url }
}

func WithTranslations(translations ...Translation) Option {
	return func(p *Publisher) {
		p.translations = append(p.translations, translations...)
	}
}

func New(name string, opts ...Option) *Publisher {
	p := &Publisher{
		id:   uuid.New(),
		name: name,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func Hydrate(id uuid.UUID, name string, opts ...Option) *Publisher {
	p := &Publisher{id: id, name: name}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Publisher) ID() uuid.UUID   { return p.id }
func (p *Publisher) Name() string    { return p.name }
func (p *Publisher) Email() string   { return p.email }
func (p *Publisher) Address() string { return p.address }
func (p *Publisher) Phone() string   { return p.phone }
func (p *Publisher) URL() *string    { return p.url }

func (p *Publisher) Translations() []Translation {
	out := make([]Translation, len(p.translations))
	copy(out, p.translations)
	return out
}

func (p *Publisher) AddTranslation(t Translation) {
	p.translations = append(p.translations, t)
}
