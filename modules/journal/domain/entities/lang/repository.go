package lang

import "context"

type Repository interface {
	// GetByCode returns ErrNotFound when no language has the given code.
	GetByCode(ctx context.Context, code string) (*Lang, error)
	Create(ctx context.Context, l *Lang) error
}
