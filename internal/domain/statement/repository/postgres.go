package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/swhalen98/MasonsDBCC/internal/domain/location"
	"github.com/swhalen98/MasonsDBCC/internal/domain/statement"
)

// Postgres unique_violation
const pgUniqueViolation = "23505"

// PostgresStatementRepository implements StatementRepository using PostgreSQL
type PostgresStatementRepository struct {
	db DB
}

// NewPostgresStatementRepository creates a new PostgreSQL statement repository
func NewPostgresStatementRepository(db DB) *PostgresStatementRepository {
	return &PostgresStatementRepository{db: db}
}

// SeedLocations upserts the location registry
func (r *PostgresStatementRepository) SeedLocations(ctx context.Context, locations []location.Location) error {
	query := `
		INSERT INTO locations (location_code, location_name, city, status, region)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (location_code)
		DO UPDATE SET
			location_name = EXCLUDED.location_name,
			city = EXCLUDED.city,
			status = EXCLUDED.status,
			region = EXCLUDED.region`

	for _, loc := range locations {
		if _, err := r.db.Exec(ctx, query, loc.Code, loc.Name, loc.City, loc.Status, loc.Region); err != nil {
			return fmt.Errorf("failed to seed location %s: %w", loc.Code, err)
		}
	}
	return nil
}

// CreateStatement inserts a new statement header with processed = false
func (r *PostgresStatementRepository) CreateStatement(ctx context.Context, meta *statement.Metadata) (uuid.UUID, error) {
	query := `
		INSERT INTO financial_statements (id, location_code, year, month, period_date, file_name, processed)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id`

	id := uuid.New()
	err := r.db.QueryRow(ctx, query,
		id,
		meta.LocationCode,
		meta.Year,
		meta.Month,
		meta.Period(),
		meta.FileName,
	).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return uuid.Nil, fmt.Errorf("%w: %s %s", statement.ErrDuplicatePeriod, meta.LocationCode, meta.PeriodLabel())
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create statement: %w", err)
	}
	return id, nil
}

// StatementID returns the header id for a location and period
func (r *PostgresStatementRepository) StatementID(ctx context.Context, locationCode string, year, month int) (uuid.UUID, error) {
	query := `
		SELECT id FROM financial_statements
		WHERE location_code = $1 AND year = $2 AND month = $3`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, locationCode, year, month).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("no statement for %s %04d-%02d", locationCode, year, month)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return id, nil
}

// UpsertFact writes one line-item amount, latest write wins
func (r *PostgresStatementRepository) UpsertFact(ctx context.Context, statementID uuid.UUID, lineItem string, amount decimal.Decimal) error {
	query := `
		INSERT INTO line_item_facts (id, statement_id, line_item, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (statement_id, line_item)
		DO UPDATE SET amount = EXCLUDED.amount`

	if _, err := r.db.Exec(ctx, query, uuid.New(), statementID, lineItem, amount); err != nil {
		return fmt.Errorf("failed to upsert fact %q: %w", lineItem, err)
	}
	return nil
}

// MarkProcessed flips the processed flag after all facts are persisted
func (r *PostgresStatementRepository) MarkProcessed(ctx context.Context, statementID uuid.UUID) error {
	query := `UPDATE financial_statements SET processed = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, statementID)
	if err != nil {
		return fmt.Errorf("failed to mark statement processed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("no statement with id %s", statementID)
	}
	return nil
}

// AllData returns every location with its processed facts. Locations without
// any processed statement are kept with nil fact fields.
func (r *PostgresStatementRepository) AllData(ctx context.Context) ([]LocationFact, error) {
	query := `
		SELECT
			l.location_code, l.location_name, l.city, l.region, l.status,
			fs.year, fs.month, fs.period_date,
			f.line_item, f.amount
		FROM locations l
		LEFT JOIN financial_statements fs
			ON l.location_code = fs.location_code AND fs.processed = TRUE
		LEFT JOIN line_item_facts f ON fs.id = f.statement_id
		ORDER BY fs.year DESC, fs.month DESC, l.location_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all data: %w", err)
	}
	defer rows.Close()

	var records []LocationFact
	for rows.Next() {
		var rec LocationFact
		if err := rows.Scan(
			&rec.LocationCode, &rec.LocationName, &rec.City, &rec.Region, &rec.Status,
			&rec.Year, &rec.Month, &rec.PeriodDate,
			&rec.LineItem, &rec.Amount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan all data row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read all data rows: %w", err)
	}

	sortLocationFacts(records)
	return records, nil
}

// DataByLocation returns the processed facts of one location
func (r *PostgresStatementRepository) DataByLocation(ctx context.Context, locationCode string) ([]PeriodFact, error) {
	query := `
		SELECT fs.year, fs.month, fs.period_date, f.line_item, f.amount
		FROM financial_statements fs
		JOIN line_item_facts f ON fs.id = f.statement_id
		WHERE fs.location_code = $1 AND fs.processed = TRUE
		ORDER BY fs.year DESC, fs.month DESC`

	rows, err := r.db.Query(ctx, query, locationCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query location data: %w", err)
	}
	defer rows.Close()

	var records []PeriodFact
	for rows.Next() {
		var rec PeriodFact
		if err := rows.Scan(&rec.Year, &rec.Month, &rec.PeriodDate, &rec.LineItem, &rec.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan location data row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read location data rows: %w", err)
	}

	sortPeriodFacts(records)
	return records, nil
}

// DataByRegion returns facts summed across a region's locations
func (r *PostgresStatementRepository) DataByRegion(ctx context.Context, region string) ([]AggregateFact, error) {
	query := `
		SELECT fs.year, fs.month, f.line_item, SUM(f.amount) AS amount
		FROM locations l
		JOIN financial_statements fs ON l.location_code = fs.location_code
		JOIN line_item_facts f ON fs.id = f.statement_id
		WHERE l.region = $1 AND fs.processed = TRUE
		GROUP BY fs.year, fs.month, f.line_item
		ORDER BY fs.year DESC, fs.month DESC`

	rows, err := r.db.Query(ctx, query, region)
	if err != nil {
		return nil, fmt.Errorf("failed to query region data: %w", err)
	}
	defer rows.Close()

	records, err := scanAggregates(rows, false)
	if err != nil {
		return nil, err
	}
	sortAggregateFacts(records)
	return records, nil
}

// ConsolidatedData returns facts summed across all locations, with the count
// of contributing locations per fact
func (r *PostgresStatementRepository) ConsolidatedData(ctx context.Context) ([]AggregateFact, error) {
	query := `
		SELECT fs.year, fs.month, f.line_item, SUM(f.amount) AS amount,
			COUNT(DISTINCT fs.location_code) AS location_count
		FROM financial_statements fs
		JOIN line_item_facts f ON fs.id = f.statement_id
		WHERE fs.processed = TRUE
		GROUP BY fs.year, fs.month, f.line_item
		ORDER BY fs.year DESC, fs.month DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query consolidated data: %w", err)
	}
	defer rows.Close()

	records, err := scanAggregates(rows, true)
	if err != nil {
		return nil, err
	}
	sortAggregateFacts(records)
	return records, nil
}

// SummaryStats returns headline counts over processed statements
func (r *PostgresStatementRepository) SummaryStats(ctx context.Context) (*SummaryStats, error) {
	query := `
		SELECT
			COUNT(DISTINCT location_code) AS total_locations,
			COUNT(*) AS total_statements,
			MIN(period_date) AS earliest_period,
			MAX(period_date) AS latest_period
		FROM financial_statements
		WHERE processed = TRUE`

	stats := &SummaryStats{}
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalLocations,
		&stats.TotalStatements,
		&stats.EarliestPeriod,
		&stats.LatestPeriod,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary stats: %w", err)
	}
	return stats, nil
}

// ProcessedPeriods lists every processed (location, period) pair
func (r *PostgresStatementRepository) ProcessedPeriods(ctx context.Context) ([]StatementPeriod, error) {
	query := `
		SELECT location_code, year, month
		FROM financial_statements
		WHERE processed = TRUE
		ORDER BY location_code, year DESC, month DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query processed periods: %w", err)
	}
	defer rows.Close()

	var periods []StatementPeriod
	for rows.Next() {
		var p StatementPeriod
		if err := rows.Scan(&p.LocationCode, &p.Year, &p.Month); err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read period rows: %w", err)
	}
	return periods, nil
}

func scanAggregates(rows pgx.Rows, withCount bool) ([]AggregateFact, error) {
	var records []AggregateFact
	for rows.Next() {
		var rec AggregateFact
		var err error
		if withCount {
			err = rows.Scan(&rec.Year, &rec.Month, &rec.LineItem, &rec.Amount, &rec.LocationCount)
		} else {
			err = rows.Scan(&rec.Year, &rec.Month, &rec.LineItem, &rec.Amount)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read aggregate rows: %w", err)
	}
	return records, nil
}

// Read queries order by period descending, then by the vocabulary's natural
// order within a period. SQL handles the period ordering; the vocabulary
// ordering is applied here because it lives in Go, not in the schema.

func sortPeriodFacts(records []PeriodFact) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year > records[j].Year
		}
		if records[i].Month != records[j].Month {
			return records[i].Month > records[j].Month
		}
		return statement.Rank(records[i].LineItem) < statement.Rank(records[j].LineItem)
	})
}

func sortAggregateFacts(records []AggregateFact) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year > records[j].Year
		}
		if records[i].Month != records[j].Month {
			return records[i].Month > records[j].Month
		}
		return statement.Rank(records[i].LineItem) < statement.Rank(records[j].LineItem)
	})
}

func sortLocationFacts(records []LocationFact) {
	sort.SliceStable(records, func(i, j int) bool {
		yi, yj := 0, 0
		if records[i].Year != nil {
			yi = *records[i].Year
		}
		if records[j].Year != nil {
			yj = *records[j].Year
		}
		if yi != yj {
			return yi > yj
		}
		mi, mj := 0, 0
		if records[i].Month != nil {
			mi = *records[i].Month
		}
		if records[j].Month != nil {
			mj = *records[j].Month
		}
		if mi != mj {
			return mi > mj
		}
		if records[i].LocationName != records[j].LocationName {
			return records[i].LocationName < records[j].LocationName
		}
		li, lj := "", ""
		if records[i].LineItem != nil {
			li = *records[i].LineItem
		}
		if records[j].LineItem != nil {
			lj = *records[j].LineItem
		}
		return statement.Rank(li) < statement.Rank(lj)
	})
}
