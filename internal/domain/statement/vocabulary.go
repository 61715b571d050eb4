package statement

// The controlled vocabularies of line-item labels the extractor recognizes.
// Matching is case-insensitive substring containment, so order matters:
// a longer, more specific label must precede any shorter label it contains,
// or the shorter one would shadow it.

// PnLItems is the standard P&L vocabulary, and the one manual-entry templates
// are generated from.
var PnLItems = []string{
	"Total Revenue",
	"Food Sales",
	"Beverage Sales",
	"Cost of Goods Sold",
	"Gross Profit",
	"Labor",
	"Rent",
	"Utilities",
	"Marketing",
	"Insurance",
	"Repairs & Maintenance",
	"Supplies",
	"Other Operating Expenses",
	"Total Operating Expenses",
	"EBITDA",
	"Net Income",
}

// BalanceSheetItems is the balance sheet vocabulary.
var BalanceSheetItems = []string{
	"Cash and Cash Equivalents",
	"Accounts Receivable",
	"Inventory",
	"Total Current Assets",
	"Total Assets",
	"Accounts Payable",
	"Total Current Liabilities",
	"Long-Term Debt",
	"Total Liabilities",
	"Total Equity",
}

// CashFlowItems is the cash flow statement vocabulary.
var CashFlowItems = []string{
	"Net Cash from Operating Activities",
	"Net Cash from Investing Activities",
	"Net Cash from Financing Activities",
	"Net Change in Cash",
	"Cash at Beginning of Period",
	"Cash at End of Period",
}

// VocabulariesFor returns the vocabularies to extract for a statement type.
// TypeAll runs every vocabulary.
func VocabulariesFor(t Type) [][]string {
	switch t {
	case TypeIncomeStatement:
		return [][]string{PnLItems}
	case TypeBalanceSheet:
		return [][]string{BalanceSheetItems}
	case TypeCashFlow:
		return [][]string{CashFlowItems}
	default:
		return [][]string{PnLItems, BalanceSheetItems, CashFlowItems}
	}
}

// vocabRank maps every label across all vocabularies to its position, used
// for the deterministic ordering of read-side results.
var vocabRank = func() map[string]int {
	rank := make(map[string]int)
	i := 0
	for _, vocab := range [][]string{PnLItems, BalanceSheetItems, CashFlowItems} {
		for _, label := range vocab {
			rank[label] = i
			i++
		}
	}
	return rank
}()

// Rank returns the natural vocabulary position of a label. Labels outside the
// vocabulary sort after all known labels.
func Rank(label string) int {
	if r, ok := vocabRank[label]; ok {
		return r
	}
	return len(vocabRank)
}
