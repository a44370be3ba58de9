package persistence

import (
	"context"
	"embed"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed schema/*.sql
var migrationFiles embed.FS

// Migrate applies the destination schema. table names the goose version table.
func Migrate(ctx context.Context, pool *pgxpool.Pool, table string, log *logrus.Entry) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrationFiles)
	goose.SetTableName(table)
	goose.SetLogger(log)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.UpContext(ctx, db, "schema"); err != nil {
		return errors.Wrap(err, "apply schema")
	}
	return nil
}
