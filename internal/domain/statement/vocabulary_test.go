package statement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulariesFor(t *testing.T) {
	assert.Equal(t, [][]string{PnLItems}, VocabulariesFor(TypeIncomeStatement))
	assert.Equal(t, [][]string{BalanceSheetItems}, VocabulariesFor(TypeBalanceSheet))
	assert.Equal(t, [][]string{CashFlowItems}, VocabulariesFor(TypeCashFlow))

	all := VocabulariesFor(TypeAll)
	require.Len(t, all, 3)
}

func TestRank_FollowsVocabularyOrder(t *testing.T) {
	assert.Less(t, Rank("Total Revenue"), Rank("Net Income"))
	assert.Less(t, Rank("Net Income"), Rank("Total Assets"))
	assert.Less(t, Rank("Total Assets"), Rank("Net Change in Cash"))
}

func TestRank_UnknownLabelSortsLast(t *testing.T) {
	for _, label := range PnLItems {
		assert.Less(t, Rank(label), Rank("Unknown Label"))
	}
}

func TestVocabulary_NoShadowingOrder(t *testing.T) {
	// Substring matching resolves labels in order, so a label containing
	// another must come first or it can never win a match.
	for _, vocab := range [][]string{PnLItems, BalanceSheetItems, CashFlowItems} {
		for i, longer := range vocab {
			for j, shorter := range vocab {
				if i == j {
					continue
				}
				if strings.Contains(strings.ToLower(longer), strings.ToLower(shorter)) {
					assert.Less(t, i, j,
						"label %q contains %q and must precede it", longer, shorter)
				}
			}
		}
	}
}
