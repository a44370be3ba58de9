package common

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jacksonlee411/ojs-migrate/pkg/configuration"
)

// GetDatabasePool opens a pool to the destination database. An empty dbName uses DB_NAME.
func GetDatabasePool(ctx context.Context, dbName string) (*pgxpool.Pool, error) {
	conf := configuration.Use()
	opts := conf.Database
	if dbName != "" {
		opts.Name = dbName
	}

	pool, err := pgxpool.New(ctx, opts.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrapf(err, "ping %s@%s:%s", opts.Name, opts.Host, opts.Port)
	}
	return pool, nil
}
