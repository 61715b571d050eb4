// Package ingest drives statement files end-to-end: filename resolution,
// content extraction, and persistence, with per-file failure isolation.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/swhalen98/MasonsDBCC/internal/domain/extract"
	"github.com/swhalen98/MasonsDBCC/internal/domain/statement"
	"github.com/swhalen98/MasonsDBCC/internal/domain/statement/repository"
)

// Stage is how far a file made it through the pipeline.
type Stage string

const (
	StageResolved  Stage = "resolved"
	StageExtracted Stage = "extracted"
	StagePersisted Stage = "persisted"
)

// FileResult is the tagged per-file outcome. Err is nil on the success path;
// otherwise Stage names the stage that failed and Err carries one of the
// statement sentinels (or a wrapped store error).
type FileResult struct {
	File  string
	Stage Stage
	Facts int
	Err   error
}

// OK reports whether the file was fully persisted.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Service coordinates ingestion against an explicitly injected store handle.
type Service struct {
	repo   repository.StatementRepository
	logger *slog.Logger
}

// NewService creates an ingestion coordinator
func NewService(repo repository.StatementRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ProcessFile runs one statement file through resolve, extract and persist.
// Every failure is caught here, logged with the offending file name, and
// returned as a tagged result; nothing propagates to abort a batch.
func (s *Service) ProcessFile(ctx context.Context, path string) (result FileResult) {
	name := filepath.Base(path)
	result = FileResult{File: name}

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("panic processing %s: %v", name, r)
		}
		if result.Err != nil {
			s.logger.Error("failed to process statement",
				slog.String("file", name),
				slog.String("stage", string(result.Stage)),
				slog.Any("error", result.Err),
			)
		}
	}()

	meta, err := statement.ResolveFilename(name)
	if err != nil {
		result.Err = err
		return result
	}
	result.Stage = StageResolved

	s.logger.Info("processing statement",
		slog.String("file", name),
		slog.String("location", meta.LocationCode),
		slog.String("period", meta.PeriodLabel()),
		slog.String("type", string(meta.Type)),
	)

	facts, err := s.extractFacts(path, meta)
	if err != nil {
		result.Err = err
		return result
	}
	result.Stage = StageExtracted
	result.Facts = len(facts)

	if len(facts) == 0 {
		// Persisted anyway so the period is on record; the warning tells
		// an operator to fall back to a manual-entry template.
		s.logger.Warn("statement recorded without facts",
			slog.Any("reason", statement.ErrNoFacts),
			slog.String("file", name),
			slog.String("location", meta.LocationCode),
			slog.String("period", meta.PeriodLabel()),
		)
	}

	if err := s.persist(ctx, meta, facts); err != nil {
		result.Err = err
		return result
	}
	result.Stage = StagePersisted

	s.logger.Info("statement persisted",
		slog.String("file", name),
		slog.Int("facts", len(facts)),
	)
	return result
}

func (s *Service) extractFacts(path string, meta *statement.Metadata) (map[string]decimal.Decimal, error) {
	if meta.ManualEntry {
		_, facts, err := extract.LoadManualEntry(path)
		return facts, err
	}

	content, err := extract.ExtractContent(path)
	if err != nil {
		return nil, err
	}

	facts := make(map[string]decimal.Decimal)
	for _, vocabulary := range statement.VocabulariesFor(meta.Type) {
		for label, amount := range extract.MatchLineItems(content, vocabulary) {
			facts[label] = amount
		}
	}
	return facts, nil
}

// persist creates or reuses the period's header, overwrites its facts, and
// flips the processed flag last so readers never see a half-loaded statement.
func (s *Service) persist(ctx context.Context, meta *statement.Metadata, facts map[string]decimal.Decimal) error {
	id, err := s.repo.CreateStatement(ctx, meta)
	if errors.Is(err, statement.ErrDuplicatePeriod) {
		// Resubmission for an existing period: update amounts in place.
		s.logger.Info("statement resubmitted, updating existing period",
			slog.String("location", meta.LocationCode),
			slog.String("period", meta.PeriodLabel()),
		)
		id, err = s.repo.StatementID(ctx, meta.LocationCode, meta.Year, meta.Month)
	}
	if err != nil {
		return err
	}

	for _, label := range orderedLabels(facts) {
		if err := s.repo.UpsertFact(ctx, id, label, facts[label]); err != nil {
			return err
		}
	}

	return s.repo.MarkProcessed(ctx, id)
}

// orderedLabels returns fact labels in vocabulary order so writes are
// deterministic.
func orderedLabels(facts map[string]decimal.Decimal) []string {
	labels := make([]string, 0, len(facts))
	for label := range facts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return statement.Rank(labels[i]) < statement.Rank(labels[j])
	})
	return labels
}
