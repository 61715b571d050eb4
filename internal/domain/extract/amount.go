// Package extract turns statement documents into line-item facts: it flattens
// PDF content into text and tables, normalizes accounting-style amount
// notation, and matches the controlled vocabulary against the content.
package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

var amountCleaner = strings.NewReplacer("$", "", ",", "", " ", "", "\t", "")

// ParseAmount normalizes a raw token into a signed decimal. It strips
// currency symbols, thousands separators and surrounding whitespace, and
// treats a parenthesized value as negative per accounting convention.
// The second return is false when the token is empty or non-numeric after
// cleaning; callers treat that as "no amount here" and keep looking.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.Contains(s, "(") && strings.Contains(s, ")") {
		negative = true
		s = strings.ReplaceAll(s, "(", "")
		s = strings.ReplaceAll(s, ")", "")
	}

	s = amountCleaner.Replace(s)

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, true
}
