package lang

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("lang not found")

type Lang struct {
	id   uuid.UUID
	code string
	name string
}

func New(code, name string) *Lang {
	return &Lang{
		id:   uuid.New(),
		code: code,
		name: name,
	}
}

func Hydrate(id uuid.UUID, code, name string) *Lang {
	return &Lang{id: id, code: code, name: name}
}

func (l *Lang) ID() uuid.UUID { return l.id }
func (l *Lang) Code() string  { return l.code }
func (l *Lang) Name() string  { return l.name }
