package services

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/defaults"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
)

type LangStore interface {
	FindLang(ctx context.Context, code string) (*lang.Lang, error)
	RegisterLang(l *lang.Lang)
}

type LanguageResolver struct {
	store    LangStore
	defaults defaults.Table
	log      *logrus.Entry
}

func NewLanguageResolver(store LangStore, table defaults.Table, log *logrus.Entry) *LanguageResolver {
	return &LanguageResolver{store: store, defaults: table, log: log}
}

// Resolve returns the language with code, creating it from the name table on a miss.
func (r *LanguageResolver) Resolve(ctx context.Context, code string) (*lang.Lang, error) {
	l, err := r.store.FindLang(ctx, code)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, lang.ErrNotFound) {
		return nil, errors.Wrapf(err, "find lang %q", code)
	}

	l = lang.New(code, r.defaults.LanguageNameFor(code))
	r.store.RegisterLang(l)
	r.log.WithFields(logrus.Fields{"lang": code, "name": l.Name()}).Debug("creating language")
	return l, nil
}
