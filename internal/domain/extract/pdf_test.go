package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swhalen98/MasonsDBCC/internal/domain/statement"
)

func TestExtractContent_MissingFile(t *testing.T) {
	_, err := ExtractContent(filepath.Join(t.TempDir(), "2026-01_ANN.pdf"))
	assert.ErrorIs(t, err, statement.ErrDocumentRead)
}

func TestExtractContent_MalformedDocument(t *testing.T) {
	// Not a PDF at all; the reader must fail recoverably, not crash.
	path := filepath.Join(t.TempDir(), "2026-01_ANN.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	_, err := ExtractContent(path)
	assert.ErrorIs(t, err, statement.ErrDocumentRead)
}

func TestGroupTables(t *testing.T) {
	rows := []Row{
		{"Income Statement for January"},
		{"Line Item", "Amount"},
		{"Total Revenue", "$120,000.00"},
		{"Net Income", "($5,000.00)"},
		{"Notes follow below"},
		{"Item", "Q1", "Q2"},
		{"Labor", "10.00", "20.00"},
	}

	tables := groupTables(rows)

	require.Len(t, tables, 2)
	assert.Len(t, tables[0], 3)
	assert.Len(t, tables[1], 2)
	assert.Equal(t, Row{"Total Revenue", "$120,000.00"}, tables[0][1])
	assert.Equal(t, Row{"Labor", "10.00", "20.00"}, tables[1][1])
}

func TestGroupTables_NoMultiCellRows(t *testing.T) {
	rows := []Row{{"just"}, {"narrative"}, {"text"}}
	assert.Empty(t, groupTables(rows))
}

func TestWordGap(t *testing.T) {
	assert.Equal(t, 1.0, wordGap(0))
	assert.Equal(t, 1.0, wordGap(-4))
	assert.InDelta(t, 2.5, wordGap(10), 1e-9)
}
