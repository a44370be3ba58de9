package services

import "github.com/go-faster/errors"

var (
	// ErrJournalNotFound means the source journal row does not exist.
	ErrJournalNotFound = errors.New("source journal not found")
	// ErrMalformedInput means a legacy setting could not be converted, e.g. a bad initialYear.
	ErrMalformedInput = errors.New("malformed legacy input")

	errDryRun = errors.New("dry run")
)

// SourceError reports a failed read from the legacy database.
type SourceError struct {
	Op  string
	Err error
}

func (e *SourceError) Error() string {
	return "legacy source: " + e.Op + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
