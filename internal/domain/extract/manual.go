package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/swhalen98/MasonsDBCC/internal/domain/statement"
)

// ManualEntryRow is one line of an operator-authored statement CSV.
type ManualEntryRow struct {
	LineItem string          `csv:"line_item"`
	Amount   decimal.Decimal `csv:"amount"`
}

// LoadManualEntry reads a manual_entry_YYYY-MM_CODE.csv file into the same
// label-to-amount shape the document pipeline produces. Amounts are taken as
// already numeric; no accounting-notation cleanup is applied to an
// operator-authored template.
func LoadManualEntry(path string) (*statement.Metadata, map[string]decimal.Decimal, error) {
	meta, err := statement.ResolveFilename(filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}
	if !meta.ManualEntry {
		return nil, nil, fmt.Errorf("%w: %s is not a manual entry file", statement.ErrInvalidFilename, meta.FileName)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", statement.ErrDocumentRead, path, err)
	}
	defer f.Close()

	var rows []ManualEntryRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", statement.ErrDocumentRead, path, err)
	}

	facts := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		if row.LineItem == "" {
			continue
		}
		facts[row.LineItem] = row.Amount
	}
	return meta, facts, nil
}

// WriteManualEntryTemplate creates an all-zero CSV pre-populated with the P&L
// vocabulary for an operator to fill in by hand, for statements the automatic
// pipeline could not extract. Returns the path of the written template.
func WriteManualEntryTemplate(dir, locationCode string, year, month int) (string, error) {
	rows := make([]ManualEntryRow, len(statement.PnLItems))
	for i, label := range statement.PnLItems {
		rows[i] = ManualEntryRow{LineItem: label, Amount: decimal.Zero}
	}

	name := fmt.Sprintf("manual_entry_%04d-%02d_%s.csv", year, month, locationCode)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create template %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return "", fmt.Errorf("failed to write template %s: %w", path, err)
	}
	return path, nil
}
