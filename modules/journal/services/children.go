package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/aggregates/journal"
)

// Old legacy id -> new destination id, handed from one child stage to the next.
type (
	SectionMap map[int64]uuid.UUID
	IssueMap   map[int64]uuid.UUID
	ArticleMap map[int64]uuid.UUID
)

type SectionImporter interface {
	ImportSections(ctx context.Context, j *journal.Journal, sourceID int64) (SectionMap, error)
}

type IssueImporter interface {
	ImportIssues(ctx context.Context, j *journal.Journal, sourceID int64, sections SectionMap) (IssueMap, error)
}

type ArticleImporter interface {
	ImportArticles(ctx context.Context, sourceID int64, j *journal.Journal, issues IssueMap, sections SectionMap) (ArticleMap, error)
}

// NoopChildImporter imports nothing; it stands in for stages that are not wired.
type NoopChildImporter struct{}

func (NoopChildImporter) ImportSections(context.Context, *journal.Journal, int64) (SectionMap, error) {
	return SectionMap{}, nil
}

func (NoopChildImporter) ImportIssues(context.Context, *journal.Journal, int64, SectionMap) (IssueMap, error) {
	return IssueMap{}, nil
}

func (NoopChildImporter) ImportArticles(context.Context, int64, *journal.Journal, IssueMap, SectionMap) (ArticleMap, error) {
	return ArticleMap{}, nil
}
