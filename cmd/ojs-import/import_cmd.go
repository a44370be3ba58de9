package main

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/defaults"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/infrastructure/legacy"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/infrastructure/persistence"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/services"
	"github.com/jacksonlee411/ojs-migrate/pkg/composables"
	"github.com/jacksonlee411/ojs-migrate/pkg/configuration"
	"github.com/jacksonlee411/ojs-migrate/pkg/metrics"
)

type importOptions struct {
	JournalIDs   []int64 `validate:"required,min=1,dive,gt=0"`
	Apply        bool
	SkipMissing  bool
	DefaultsFile string `validate:"omitempty,file"`
}

type skippedLine struct {
	Old     int64  `json:"old"`
	Skipped string `json:"skipped"`
}

var validate = validator.New()

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import legacy journals by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Int64SliceVar(&opts.JournalIDs, "journal-id", nil, "Legacy journal_id to import (repeatable, required)")
	cmd.Flags().BoolVar(&opts.Apply, "apply", false, "Commit the import (default is dry-run)")
	cmd.Flags().BoolVar(&opts.SkipMissing, "skip-missing", false, "Skip journal ids that do not exist in the source")
	cmd.Flags().StringVar(&opts.DefaultsFile, "defaults", "", "YAML file overriding the fallback values (default: IMPORT_DEFAULTS_FILE)")

	_ = cmd.MarkFlagRequired("journal-id")
	return cmd
}

func validateImportOptions(opts importOptions) error {
	if err := validate.Struct(opts); err != nil {
		return withCode(exitUsage, fmt.Errorf("invalid import options: %w", err))
	}
	return nil
}

func runImport(ctx context.Context, out io.Writer, opts importOptions) error {
	if err := validateImportOptions(opts); err != nil {
		return err
	}

	conf := configuration.Use()
	log := logrus.NewEntry(conf.Logger()).WithField("cmd", "import")
	defer func() {
		if err := metrics.WriteTextfile(conf.MetricsTextfile, nil); err != nil {
			log.WithError(err).Warn("failed to write metrics textfile")
		}
	}()

	if opts.DefaultsFile == "" {
		opts.DefaultsFile = conf.DefaultsFile
	}
	table, err := defaults.Load(opts.DefaultsFile)
	if err != nil {
		return withCode(exitValidation, err)
	}

	src, err := connectSource(ctx, conf)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	pool, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	ctx = composables.WithPool(ctx, pool)

	importer := services.NewJournalImporter(services.JournalImporterConfig{
		Source:     legacy.NewSQLSource(src),
		Journals:   persistence.NewJournalRepository(),
		Publishers: persistence.NewPublisherRepository(),
		Langs:      persistence.NewLangRepository(),
		Defaults:   table,
		Logger:     log,
		DryRun:     !opts.Apply,
	})

	return importAll(ctx, out, importer, opts, log)
}

type journalImporter interface {
	Import(ctx context.Context, sourceID int64) (services.Result, error)
}

func importAll(ctx context.Context, out io.Writer, importer journalImporter, opts importOptions, log *logrus.Entry) error {
	for _, id := range opts.JournalIDs {
		res, err := importer.Import(ctx, id)
		if err != nil {
			if opts.SkipMissing && is(err, services.ErrJournalNotFound) {
				log.WithField("journal_id", id).Warn("journal not found in source, skipping")
				if err := writeJSONLine(out, skippedLine{Old: id, Skipped: "not_found"}); err != nil {
					return err
				}
				continue
			}
			return classifyImportError(id, err)
		}
		if err := writeJSONLine(out, res); err != nil {
			return err
		}
	}
	return nil
}

func classifyImportError(id int64, err error) error {
	err = fmt.Errorf("journal_id=%d: %w", id, err)
	var srcErr *services.SourceError
	switch {
	case is(err, services.ErrJournalNotFound), is(err, services.ErrMalformedInput):
		return withCode(exitValidation, err)
	case as(err, &srcErr):
		return withCode(exitDB, err)
	default:
		return withCode(exitDBWrite, err)
	}
}
