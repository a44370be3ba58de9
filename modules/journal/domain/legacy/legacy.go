// Package legacy holds the rows read from the PKP/OJS source database.
package legacy

import (
	"context"
	"errors"
)

var ErrJournalNotFound = errors.New("legacy journal not found")

// Journal is a row of the legacy journals table.
type Journal struct {
	ID            int64  `db:"journal_id"`
	Path          string `db:"path"`
	PrimaryLocale string `db:"primary_locale"`
}

// Setting is a row of the legacy journal_settings table.
// An empty Locale means the setting applies to the primary locale.
type Setting struct {
	Locale string
	Name   string
	Value  string
}

type Source interface {
	// GetJournal returns ErrJournalNotFound when no row matches id.
	GetJournal(ctx context.Context, id int64) (Journal, error)
	ListSettings(ctx context.Context, journalID int64) ([]Setting, error)
}
