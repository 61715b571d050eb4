// Package statement defines the core domain types for financial statements:
// filename metadata, the controlled line-item vocabulary, and the error
// taxonomy shared by the extraction and persistence layers.
package statement

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type identifies which financial statement a file carries.
type Type string

const (
	TypeIncomeStatement Type = "IS"
	TypeBalanceSheet    Type = "BS"
	TypeCashFlow        Type = "CF"
	// TypeAll is the default when a filename carries no explicit suffix.
	TypeAll Type = "ALL"
)

// Metadata is the result of resolving a statement filename.
type Metadata struct {
	Year         int
	Month        int
	LocationCode string
	Type         Type
	FileName     string
	// ManualEntry is true for operator-authored CSV submissions.
	ManualEntry bool
}

// Period returns the first-of-month date for the statement's reporting period.
func (m Metadata) Period() time.Time {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodLabel formats the reporting period as YYYY-MM.
func (m Metadata) PeriodLabel() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Header is one submitted statement for a location and period.
// At most one header exists per (location, year, month).
type Header struct {
	ID           uuid.UUID
	LocationCode string
	Year         int
	Month        int
	PeriodDate   time.Time
	FileName     string
	UploadDate   time.Time
	Processed    bool
}

// Fact is one extracted (line item, amount) pair belonging to a header.
// At most one fact exists per (header, line item).
type Fact struct {
	ID          uuid.UUID
	StatementID uuid.UUID
	LineItem    string
	Amount      decimal.Decimal
}
