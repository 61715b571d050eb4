package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swhalen98/MasonsDBCC/internal/domain/location"
	"github.com/swhalen98/MasonsDBCC/internal/domain/statement/repository"
)

// stubRepo satisfies StatementRepository for the one method the report reads.
type stubRepo struct {
	repository.StatementRepository
	periods []repository.StatementPeriod
	err     error
}

func (s *stubRepo) ProcessedPeriods(context.Context) ([]repository.StatementPeriod, error) {
	return s.periods, s.err
}

func openLocationCount(t *testing.T) int {
	t.Helper()
	n := 0
	for _, loc := range location.All() {
		if loc.Status != location.StatusComingSoon {
			n++
		}
	}
	require.Positive(t, n)
	return n
}

func TestCheckMissing_NoSubmissions(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	missing, err := CheckMissing(context.Background(), &stubRepo{}, 2, now)
	require.NoError(t, err)

	open := openLocationCount(t)
	assert.Len(t, missing, 2*open, "every open location should be missing for both periods")

	// Most recent period first, codes ascending within it.
	assert.Equal(t, "2026-03", missing[0].Period)
	assert.Equal(t, "2026-02", missing[len(missing)-1].Period)
	assert.Less(t, missing[0].LocationCode, missing[1].LocationCode)
}

func TestCheckMissing_SubmittedPeriodsExcluded(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{periods: []repository.StatementPeriod{
		{LocationCode: "ANN", Year: 2026, Month: 3},
		{LocationCode: "ANN", Year: 2026, Month: 2},
	}}

	missing, err := CheckMissing(context.Background(), repo, 2, now)
	require.NoError(t, err)

	for _, m := range missing {
		assert.NotEqual(t, "ANN", m.LocationCode)
	}
	assert.Len(t, missing, 2*(openLocationCount(t)-1))
}

func TestCheckMissing_ComingSoonSkipped(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	missing, err := CheckMissing(context.Background(), &stubRepo{}, 1, now)
	require.NoError(t, err)

	for _, m := range missing {
		assert.NotEqual(t, "DAL", m.LocationCode, "not-yet-open locations are never reported")
		assert.NotEqual(t, "FLO", m.LocationCode)
	}
}

func TestCheckMissing_YearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	missing, err := CheckMissing(context.Background(), &stubRepo{}, 2, now)
	require.NoError(t, err)

	periods := make(map[string]bool)
	for _, m := range missing {
		periods[m.Period] = true
	}
	assert.True(t, periods["2026-01"])
	assert.True(t, periods["2025-12"], "counting back must cross the year boundary")
}

func TestCheckMissing_StoreError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}

	_, err := CheckMissing(context.Background(), repo, 1, time.Now())
	assert.Error(t, err)
}

func TestCountByRegion(t *testing.T) {
	missing := []MissingStatement{
		{LocationCode: "ANN", Region: "Southwest Florida"},
		{LocationCode: "BON", Region: "Southwest Florida"},
		{LocationCode: "DEN", Region: "Colorado"},
	}

	counts := CountByRegion(missing)
	assert.Equal(t, 2, counts["Southwest Florida"])
	assert.Equal(t, 1, counts["Colorado"])
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	missing := []MissingStatement{
		{Period: "2026-03", LocationCode: "ANN", LocationName: "Ann Arbor", Region: "Midwest", Year: 2026, Month: 3},
	}

	require.NoError(t, WriteCSV(path, missing))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "period,location_code,location_name,region,year,month")
	assert.Contains(t, string(data), "2026-03,ANN,Ann Arbor,Midwest,2026,3")
}
