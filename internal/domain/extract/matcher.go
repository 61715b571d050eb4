package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Permissive amount pattern for the text tier: optional $ or opening paren,
// digits with optional thousands separators, optional decimal part, optional
// closing paren.
var amountTokenRe = regexp.MustCompile(`[\$\(]?[\d,]+\.?\d*\)?`)

// MatchLineItems resolves a vocabulary of line-item labels against document
// content and returns label to amount. Labels matched by neither tier are
// simply absent, never zero.
//
// Table tier: a row matches a label when the label is a case-insensitive
// substring of any cell; the first cell after the matching one that
// normalizes to an amount wins for that row. Later rows overwrite earlier
// ones.
//
// Text tier: consulted only when the table tier produced nothing at all for
// this vocabulary. The last amount-looking token on a matching line wins, and
// later lines overwrite earlier ones. Statement rows tend to lead with the
// label and the current amount, while free text often repeats prior-period
// figures before the total, hence the asymmetric tie-break.
func MatchLineItems(content *Content, vocabulary []string) map[string]decimal.Decimal {
	facts := make(map[string]decimal.Decimal)
	if content == nil {
		return facts
	}

	lowered := make([]string, len(vocabulary))
	for i, label := range vocabulary {
		lowered[i] = strings.ToLower(label)
	}

	matchTables(content.Tables, vocabulary, lowered, facts)
	if len(facts) == 0 {
		matchText(content.Text, vocabulary, lowered, facts)
	}
	return facts
}

func matchTables(tables []Table, vocabulary, lowered []string, facts map[string]decimal.Decimal) {
	for _, table := range tables {
		if len(table) < 2 {
			continue
		}
		// First row is the header by convention.
		for _, row := range table[1:] {
			for i, label := range vocabulary {
				cellIdx := matchingCell(row, lowered[i])
				if cellIdx < 0 {
					continue
				}
				for _, cell := range row[cellIdx+1:] {
					if amount, ok := ParseAmount(cell); ok {
						facts[label] = amount
						break
					}
				}
			}
		}
	}
}

func matchingCell(row Row, loweredLabel string) int {
	for i, cell := range row {
		if strings.Contains(strings.ToLower(cell), loweredLabel) {
			return i
		}
	}
	return -1
}

func matchText(text string, vocabulary, lowered []string, facts map[string]decimal.Decimal) {
	for _, line := range strings.Split(text, "\n") {
		loweredLine := strings.ToLower(line)
		for i, label := range vocabulary {
			if !strings.Contains(loweredLine, lowered[i]) {
				continue
			}
			tokens := amountTokenRe.FindAllString(line, -1)
			if len(tokens) == 0 {
				continue
			}
			if amount, ok := ParseAmount(tokens[len(tokens)-1]); ok {
				facts[label] = amount
			}
		}
	}
}
