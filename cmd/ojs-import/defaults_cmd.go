package main

import (
	"github.com/spf13/cobra"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/defaults"
	"github.com/jacksonlee411/ojs-migrate/pkg/configuration"
)

func newDefaultsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the effective fallback values as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("defaults") {
				path = configuration.Use().DefaultsFile
			}
			table, err := defaults.Load(path)
			if err != nil {
				return withCode(exitValidation, err)
			}
			b, err := table.YAML()
			if err != nil {
				return withCode(exitValidation, err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "defaults", "", "YAML file overriding the fallback values (default: IMPORT_DEFAULTS_FILE)")
	return cmd
}
