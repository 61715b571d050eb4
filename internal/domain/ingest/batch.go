package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BatchSummary reports the outcome of one directory run. A batch always
// completes: individual failures are counted, never propagated.
type BatchSummary struct {
	Processed int
	Failed    int
	Total     int
	Results   []FileResult
}

// ProcessDirectory discovers eligible statement files in dir and runs each
// through ProcessFile. Files are processed one at a time; a statement's facts
// are fully persisted before the next file begins.
func (s *Service) ProcessDirectory(ctx context.Context, dir string) (*BatchSummary, error) {
	files, err := discoverFiles(dir)
	if err != nil {
		return nil, err
	}

	summary := &BatchSummary{Total: len(files)}
	if len(files) == 0 {
		s.logger.Info("no statement files found", slog.String("dir", dir))
		return summary, nil
	}

	for _, file := range files {
		result := s.ProcessFile(ctx, filepath.Join(dir, file))
		summary.Results = append(summary.Results, result)
		if result.OK() {
			summary.Processed++
		} else {
			summary.Failed++
		}
	}

	s.logger.Info("batch complete",
		slog.String("dir", dir),
		slog.Int("processed", summary.Processed),
		slog.Int("failed", summary.Failed),
		slog.Int("total", summary.Total),
	)
	return summary, nil
}

// discoverFiles lists statement PDFs and manual-entry CSVs in dir, sorted by
// name for a stable processing order.
func discoverFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".pdf") ||
			(strings.HasPrefix(name, "manual_entry_") && strings.HasSuffix(name, ".csv")) {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files, nil
}
