package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swhalen98/MasonsDBCC/internal/domain/statement"
)

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMatchLineItems_TableTier(t *testing.T) {
	content := &Content{
		Tables: []Table{{
			{"Line Item", "Amount"},
			{"Total Revenue", "$120,000.00"},
			{"Net Income", "($5,000.00)"},
		}},
	}

	facts := MatchLineItems(content, statement.PnLItems)

	require.Len(t, facts, 2)
	assert.True(t, facts["Total Revenue"].Equal(amount("120000")))
	assert.True(t, facts["Net Income"].Equal(amount("-5000")))
}

func TestMatchLineItems_TableTierFirstAmountAfterLabelWins(t *testing.T) {
	content := &Content{
		Tables: []Table{{
			{"Line Item", "Prior", "Current"},
			{"Total Revenue", "not a number", "$100.00", "$999.00"},
		}},
	}

	facts := MatchLineItems(content, statement.PnLItems)

	require.Contains(t, facts, "Total Revenue")
	assert.True(t, facts["Total Revenue"].Equal(amount("100")))
}

func TestMatchLineItems_TableTierLaterRowOverwrites(t *testing.T) {
	content := &Content{
		Tables: []Table{{
			{"Line Item", "Amount"},
			{"Labor", "1,000.00"},
			{"Labor", "2,000.00"},
		}},
	}

	facts := MatchLineItems(content, statement.PnLItems)

	require.Contains(t, facts, "Labor")
	assert.True(t, facts["Labor"].Equal(amount("2000")))
}

func TestMatchLineItems_TableTierCaseInsensitiveSubstring(t *testing.T) {
	content := &Content{
		Tables: []Table{{
			{"Line Item", "Amount"},
			{"TOTAL REVENUE (consolidated)", "500.00"},
		}},
	}

	facts := MatchLineItems(content, statement.PnLItems)

	require.Contains(t, facts, "Total Revenue")
	assert.True(t, facts["Total Revenue"].Equal(amount("500")))
}

func TestMatchLineItems_TextTierOnlyWhenTablesEmpty(t *testing.T) {
	// Table and text disagree; the table tier wins and the text tier is
	// never consulted.
	content := &Content{
		Text: "Total Revenue 999,999.00",
		Tables: []Table{{
			{"Line Item", "Amount"},
			{"Total Revenue", "120,000.00"},
		}},
	}

	facts := MatchLineItems(content, statement.PnLItems)

	require.Contains(t, facts, "Total Revenue")
	assert.True(t, facts["Total Revenue"].Equal(amount("120000")))
}

func TestMatchLineItems_TextTierLastTokenOnLine(t *testing.T) {
	// Free-text lines often repeat prior-period figures before the current
	// total; the rightmost number is the one to keep.
	content := &Content{
		Text: "Total Revenue 100,000.00 120,000.00",
	}

	facts := MatchLineItems(content, statement.PnLItems)

	require.Contains(t, facts, "Total Revenue")
	assert.True(t, facts["Total Revenue"].Equal(amount("120000")))
}

func TestMatchLineItems_TextTierLaterLineOverwrites(t *testing.T) {
	content := &Content{
		Text: "Net Income (1,000.00)\nNet Income (2,000.00)",
	}

	facts := MatchLineItems(content, statement.PnLItems)

	require.Contains(t, facts, "Net Income")
	assert.True(t, facts["Net Income"].Equal(amount("-2000")))
}

func TestMatchLineItems_TextTierParenthesizedNegative(t *testing.T) {
	content := &Content{
		Text: "EBITDA (3,500.25)",
	}

	facts := MatchLineItems(content, statement.PnLItems)

	require.Contains(t, facts, "EBITDA")
	assert.True(t, facts["EBITDA"].Equal(amount("-3500.25")))
}

func TestMatchLineItems_UnmatchedLabelsAbsent(t *testing.T) {
	content := &Content{
		Text: "Total Revenue 120,000.00",
	}

	facts := MatchLineItems(content, statement.PnLItems)

	assert.Contains(t, facts, "Total Revenue")
	assert.NotContains(t, facts, "Net Income")
	assert.NotContains(t, facts, "Labor")
}

func TestMatchLineItems_HeaderRowNotMatched(t *testing.T) {
	content := &Content{
		Tables: []Table{{
			{"Total Revenue", "120,000.00"},
		}},
	}

	// A single-row table is all header; nothing to match.
	facts := MatchLineItems(content, statement.PnLItems)
	assert.Empty(t, facts)
}

func TestMatchLineItems_EmptyContent(t *testing.T) {
	assert.Empty(t, MatchLineItems(&Content{}, statement.PnLItems))
	assert.Empty(t, MatchLineItems(nil, statement.PnLItems))
}

func TestMatchLineItems_RowWithoutAmountLeavesNoFact(t *testing.T) {
	content := &Content{
		Tables: []Table{
			{
				{"Line Item", "Amount"},
				{"Rent", "see note 4"},
			},
		},
	}

	facts := MatchLineItems(content, statement.PnLItems)
	assert.NotContains(t, facts, "Rent")
}
