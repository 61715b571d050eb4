// Package report builds the missing-statement report: which open locations
// have not submitted a statement for recent periods.
package report

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/swhalen98/MasonsDBCC/internal/domain/location"
	"github.com/swhalen98/MasonsDBCC/internal/domain/statement/repository"
)

// MissingStatement is one (location, period) with no processed statement.
type MissingStatement struct {
	Period       string `csv:"period"`
	LocationCode string `csv:"location_code"`
	LocationName string `csv:"location_name"`
	Region       string `csv:"region"`
	Year         int    `csv:"year"`
	Month        int    `csv:"month"`
}

// CheckMissing compares the registry against processed statements for the
// last monthsBack reporting periods, counting back from now. Locations not
// yet open are skipped. Results are ordered by period descending, then by
// location code.
func CheckMissing(ctx context.Context, repo repository.StatementRepository, monthsBack int, now time.Time) ([]MissingStatement, error) {
	periods, err := repo.ProcessedPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load processed periods: %w", err)
	}

	type periodKey struct {
		code        string
		year, month int
	}
	submitted := make(map[periodKey]struct{}, len(periods))
	for _, p := range periods {
		submitted[periodKey{p.LocationCode, p.Year, p.Month}] = struct{}{}
	}

	var missing []MissingStatement
	for i := 0; i < monthsBack; i++ {
		period := now.AddDate(0, -i, 0)
		year, month := period.Year(), int(period.Month())

		for _, loc := range location.All() {
			if loc.Status == location.StatusComingSoon {
				continue
			}
			if _, ok := submitted[periodKey{loc.Code, year, month}]; ok {
				continue
			}
			missing = append(missing, MissingStatement{
				Period:       fmt.Sprintf("%04d-%02d", year, month),
				LocationCode: loc.Code,
				LocationName: loc.Name,
				Region:       loc.Region,
				Year:         year,
				Month:        month,
			})
		}
	}

	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Period != missing[j].Period {
			return missing[i].Period > missing[j].Period
		}
		return missing[i].LocationCode < missing[j].LocationCode
	})
	return missing, nil
}

// CountByRegion tallies missing statements per region.
func CountByRegion(missing []MissingStatement) map[string]int {
	counts := make(map[string]int)
	for _, m := range missing {
		counts[m.Region]++
	}
	return counts
}

// WriteCSV saves the report for distribution to operators.
func WriteCSV(path string, missing []MissingStatement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&missing, f); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
