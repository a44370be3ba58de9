package journal

import "context"

type Repository interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	// Create inserts the journal, its translations and language links.
	// Publisher and languages must already be stored.
	Create(ctx context.Context, j *Journal) error
}
