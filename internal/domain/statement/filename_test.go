package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFilename_PDF(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		year     int
		month    int
		code     string
		stype    Type
	}{
		{"default type", "2026-01_ANN.pdf", 2026, 1, "ANN", TypeAll},
		{"explicit all", "2026-01_ANN_ALL.pdf", 2026, 1, "ANN", TypeAll},
		{"income statement", "2025-12_DEN_IS.pdf", 2025, 12, "DEN", TypeIncomeStatement},
		{"balance sheet", "2025-06_MOA_BS.pdf", 2025, 6, "MOA", TypeBalanceSheet},
		{"cash flow", "2024-09_CLT_CF.pdf", 2024, 9, "CLT", TypeCashFlow},
		{"alphanumeric code", "2026-03_FMD2.pdf", 2026, 3, "FMD2", TypeAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := ResolveFilename(tt.filename)
			require.NoError(t, err)

			assert.Equal(t, tt.year, meta.Year)
			assert.Equal(t, tt.month, meta.Month)
			assert.Equal(t, tt.code, meta.LocationCode)
			assert.Equal(t, tt.stype, meta.Type)
			assert.Equal(t, tt.filename, meta.FileName)
			assert.False(t, meta.ManualEntry)
		})
	}
}

func TestResolveFilename_ManualEntry(t *testing.T) {
	meta, err := ResolveFilename("manual_entry_2026-01_ANN.csv")
	require.NoError(t, err)

	assert.Equal(t, 2026, meta.Year)
	assert.Equal(t, 1, meta.Month)
	assert.Equal(t, "ANN", meta.LocationCode)
	assert.Equal(t, TypeAll, meta.Type)
	assert.True(t, meta.ManualEntry)
}

func TestResolveFilename_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"no period", "ANN.pdf"},
		{"wrong order", "ANN_2026-01.pdf"},
		{"bad extension", "2026-01_ANN.txt"},
		{"lowercase code", "2026-01_ann.pdf"},
		{"bad suffix", "2026-01_ANN_XX.pdf"},
		{"month out of range", "2026-13_ANN.pdf"},
		{"manual without prefix", "2026-01_ANN.csv"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveFilename(tt.filename)
			assert.ErrorIs(t, err, ErrInvalidFilename)
		})
	}
}

func TestResolveFilename_UnknownLocation(t *testing.T) {
	_, err := ResolveFilename("2026-01_ZZZ.pdf")
	assert.ErrorIs(t, err, ErrUnknownLocation)

	_, err = ResolveFilename("manual_entry_2026-01_QQQ.csv")
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestMetadata_Period(t *testing.T) {
	meta := Metadata{Year: 2026, Month: 1}
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), meta.Period())
	assert.Equal(t, "2026-01", meta.PeriodLabel())
}
