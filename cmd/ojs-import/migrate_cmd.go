package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/infrastructure/persistence"
	"github.com/jacksonlee411/ojs-migrate/pkg/configuration"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the destination journal schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conf := configuration.Use()
			log := logrus.NewEntry(conf.Logger()).WithField("cmd", "migrate")

			pool, err := connectDB(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := persistence.Migrate(ctx, pool, conf.MigrationsTable, log); err != nil {
				return withCode(exitDBWrite, err)
			}
			return writeJSONLine(cmd.OutOrStdout(), map[string]string{
				"status": "migrated",
				"table":  conf.MigrationsTable,
			})
		},
	}
}
