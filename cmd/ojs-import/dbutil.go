package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/infrastructure/legacy"
	"github.com/jacksonlee411/ojs-migrate/pkg/commands/common"
	"github.com/jacksonlee411/ojs-migrate/pkg/configuration"
)

func connectDB(ctx context.Context) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pool, err := common.GetDatabasePool(ctx, "")
	if err != nil {
		return nil, withCode(exitDB, fmt.Errorf("db connect failed: %w", err))
	}
	return pool, nil
}

func connectSource(ctx context.Context, conf *configuration.Configuration) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := legacy.Open(ctx, conf.Source.Driver, conf.Source.DSN())
	if err != nil {
		return nil, withCode(exitDB, fmt.Errorf("source connect failed: %w", err))
	}
	return db, nil
}
