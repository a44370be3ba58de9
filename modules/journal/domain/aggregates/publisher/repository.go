package publisher

import "context"

type Repository interface {
	// GetByName returns ErrNotFound when no publisher has the given name.
	GetByName(ctx context.Context, name string) (*Publisher, error)
	// Create inserts the publisher together with its translations.
	Create(ctx context.Context, p *Publisher) error
}
