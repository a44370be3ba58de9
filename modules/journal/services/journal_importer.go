package services

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/defaults"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/publisher"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/entities/lang"
	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/legacy"
	"github.com/jacksonlee411/ojs-migrate/pkg/composables"
)

// TxFunc runs fn inside one destination transaction.
type TxFunc func(ctx context.Context, fn func(context.Context) error) error

type JournalImporterConfig struct {
	Source     legacy.Source
	Journals   journal.Repository
	Publishers publisher.Repository
	Langs      lang.Repository

	Sections SectionImporter
	Issues   IssueImporter
	Articles ArticleImporter

	Defaults defaults.Table
	Progress Progress
	Logger   *logrus.Entry

	// InTx defaults to composables.InTx.
	InTx TxFunc
	// DryRun rolls the transaction back after everything has been written.
	DryRun bool
}

type Result struct {
	New    uuid.UUID `json:"new"`
	Old    int64     `json:"old"`
	Slug   string    `json:"slug"`
	DryRun bool      `json:"dry_run,omitempty"`
}

type JournalImporter struct {
	cfg JournalImporterConfig
}

func NewJournalImporter(cfg JournalImporterConfig) *JournalImporter {
	if cfg.Sections == nil {
		cfg.Sections = NoopChildImporter{}
	}
	if cfg.Issues == nil {
		cfg.Issues = NoopChildImporter{}
	}
	if cfg.Articles == nil {
		cfg.Articles = NoopChildImporter{}
	}
	if cfg.Defaults.ISSN == "" {
		cfg.Defaults = defaults.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg.Progress == nil {
		cfg.Progress = NewLogProgress(cfg.Logger)
	}
	if cfg.InTx == nil {
		cfg.InTx = composables.InTx
	}
	return &JournalImporter{cfg: cfg}
}

// Import migrates the legacy journal sourceID and returns its new identifier.
// A missing source row yields ErrJournalNotFound and nothing is written.
func (s *JournalImporter) Import(ctx context.Context, sourceID int64) (Result, error) {
	started := time.Now()
	m := getMetrics()
	log := s.cfg.Logger.WithField("journal_id", sourceID)

	res, stats, err := s.importJournal(ctx, sourceID, log)
	m.duration.Observe(time.Since(started).Seconds())
	switch {
	case err == nil && res.DryRun:
		m.journalsTotal.WithLabelValues(resultDryRun).Inc()
	case err == nil:
		m.journalsTotal.WithLabelValues(resultImported).Inc()
		m.observeFlush(stats)
	case errors.Is(err, ErrJournalNotFound):
		m.journalsTotal.WithLabelValues(resultNotFound).Inc()
	default:
		m.journalsTotal.WithLabelValues(resultFailed).Inc()
	}
	return res, err
}

func (s *JournalImporter) importJournal(ctx context.Context, sourceID int64, log *logrus.Entry) (Result, FlushStats, error) {
	progress := s.cfg.Progress
	progress.Writeln("Importing the journal...")

	row, err := s.cfg.Source.GetJournal(ctx, sourceID)
	if err != nil {
		if errors.Is(err, legacy.ErrJournalNotFound) {
			return Result{}, FlushStats{}, errors.Wrapf(ErrJournalNotFound, "journal_id=%d", sourceID)
		}
		return Result{}, FlushStats{}, &SourceError{Op: "read journal", Err: err}
	}
	rows, err := s.cfg.Source.ListSettings(ctx, sourceID)
	if err != nil {
		return Result{}, FlushStats{}, &SourceError{Op: "read settings", Err: err}
	}

	progress.Writeln("Reading journal settings...")
	settings := ReshapeSettings(rows, row.PrimaryLocale)
	log.WithFields(logrus.Fields{
		"locales":  len(settings),
		"settings": len(rows),
	}).Debug("reshaped settings")

	var (
		j     *journal.Journal
		stats FlushStats
	)
	err = s.cfg.InTx(ctx, func(txCtx context.Context) error {
		uow := NewUnitOfWork(s.cfg.Journals, s.cfg.Publishers, s.cfg.Langs)
		builder := NewJournalBuilder(
			NewPublisherResolver(uow, s.cfg.Defaults, log),
			NewLanguageResolver(uow, s.cfg.Defaults, log),
			s.cfg.Defaults,
		)

		var err error
		j, err = builder.Build(txCtx, row, settings)
		if err != nil {
			return err
		}
		progress.Writeln("Read journal's settings.")

		sections, err := s.cfg.Sections.ImportSections(txCtx, j, sourceID)
		if err != nil {
			return errors.Wrap(err, "import sections")
		}
		issues, err := s.cfg.Issues.ImportIssues(txCtx, j, sourceID, sections)
		if err != nil {
			return errors.Wrap(err, "import issues")
		}
		if _, err := s.cfg.Articles.ImportArticles(txCtx, sourceID, j, issues, sections); err != nil {
			return errors.Wrap(err, "import articles")
		}

		uow.RegisterJournal(j)
		progress.Writeln("Writing data...")
		stats, err = uow.Flush(txCtx)
		if err != nil {
			return err
		}
		if s.cfg.DryRun {
			return errDryRun
		}
		return nil
	})
	dryRun := errors.Is(err, errDryRun)
	if err != nil && !dryRun {
		return Result{}, FlushStats{}, err
	}

	progress.Writeln("Imported journal.")
	log.WithFields(logrus.Fields{
		"new_id":  j.ID(),
		"slug":    j.Slug(),
		"dry_run": dryRun,
	}).Info("journal import finished")

	return Result{New: j.ID(), Old: sourceID, Slug: j.Slug(), DryRun: dryRun}, stats, nil
}
