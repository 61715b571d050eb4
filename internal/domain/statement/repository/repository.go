// Package repository persists statement headers and line-item facts in
// PostgreSQL and serves the read-side aggregation queries.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/swhalen98/MasonsDBCC/internal/domain/location"
	"github.com/swhalen98/MasonsDBCC/internal/domain/statement"
)

// DB is the subset of pgxpool.Pool the repository needs. Satisfied by
// *pgxpool.Pool and by pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LocationFact is one row of the all-data view. Locations without any
// processed statement keep their row with nil period and fact fields, so
// reporting can show location existence.
type LocationFact struct {
	LocationCode string
	LocationName string
	City         string
	Region       string
	Status       string
	Year         *int
	Month        *int
	PeriodDate   *time.Time
	LineItem     *string
	Amount       *decimal.Decimal
}

// PeriodFact is one fact of a single location's processed statements.
type PeriodFact struct {
	Year       int
	Month      int
	PeriodDate time.Time
	LineItem   string
	Amount     decimal.Decimal
}

// AggregateFact is one summed fact across the locations of a region or the
// whole company.
type AggregateFact struct {
	Year     int
	Month    int
	LineItem string
	Amount   decimal.Decimal
	// LocationCount is how many locations contributed, populated by the
	// consolidated query only.
	LocationCount int
}

// SummaryStats describes the processed statements currently in the store.
type SummaryStats struct {
	TotalLocations  int
	TotalStatements int
	EarliestPeriod  *time.Time
	LatestPeriod    *time.Time
}

// StatementPeriod identifies one processed (location, period) pair.
type StatementPeriod struct {
	LocationCode string
	Year         int
	Month        int
}

// StatementRepository is the store contract the ingestion coordinator and the
// reporting consumers depend on.
type StatementRepository interface {
	// SeedLocations upserts the location registry. Run at store
	// initialization; rows are refreshed, never deleted.
	SeedLocations(ctx context.Context, locations []location.Location) error

	// CreateStatement inserts a header for a new (location, period) and
	// returns its id. Returns statement.ErrDuplicatePeriod when a header
	// already exists; the caller must then fetch it explicitly.
	CreateStatement(ctx context.Context, meta *statement.Metadata) (uuid.UUID, error)

	// StatementID returns the header id for a (location, year, month).
	StatementID(ctx context.Context, locationCode string, year, month int) (uuid.UUID, error)

	// UpsertFact writes one line-item amount, overwriting any prior amount
	// for the same (statement, line item).
	UpsertFact(ctx context.Context, statementID uuid.UUID, lineItem string, amount decimal.Decimal) error

	// MarkProcessed flags a header's facts as complete, making it visible
	// to the read queries.
	MarkProcessed(ctx context.Context, statementID uuid.UUID) error

	AllData(ctx context.Context) ([]LocationFact, error)
	DataByLocation(ctx context.Context, locationCode string) ([]PeriodFact, error)
	DataByRegion(ctx context.Context, region string) ([]AggregateFact, error)
	ConsolidatedData(ctx context.Context) ([]AggregateFact, error)
	SummaryStats(ctx context.Context) (*SummaryStats, error)

	// ProcessedPeriods lists every processed (location, period) pair, for
	// the missing-statement report.
	ProcessedPeriods(ctx context.Context) ([]StatementPeriod, error)
}
