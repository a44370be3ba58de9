package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jacksonlee411/ojs-migrate/pkg/composables"
	"github.com/jacksonlee411/ojs-migrate/pkg/repo"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
}

func useTx(ctx context.Context) (repo.Tx, error) {
	return composables.UseTx(ctx)
}
