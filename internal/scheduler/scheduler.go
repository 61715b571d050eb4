// Package scheduler runs the periodic missing-statement check using
// robfig/cron.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/swhalen98/MasonsDBCC/internal/domain/report"
	"github.com/swhalen98/MasonsDBCC/internal/domain/statement/repository"
)

// Scheduler manages background scheduled jobs using robfig/cron.
type Scheduler struct {
	cron       *cron.Cron
	repo       repository.StatementRepository
	logger     *slog.Logger
	schedule   string
	monthsBack int
}

// NewScheduler creates a new job scheduler.
func NewScheduler(repo repository.StatementRepository, logger *slog.Logger, schedule string, monthsBack int) *Scheduler {
	// Standard 5-field cron format, seconds disabled
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:       c,
		repo:       repo,
		logger:     logger,
		schedule:   schedule,
		monthsBack: monthsBack,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.runMissingCheck)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		slog.String("schedule", s.schedule),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers the missing-statement check.
func (s *Scheduler) RunNow() {
	go s.runMissingCheck()
}

func (s *Scheduler) runMissingCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s.logger.Info("starting missing-statement check", slog.Int("months_back", s.monthsBack))

	missing, err := report.CheckMissing(ctx, s.repo, s.monthsBack, time.Now())
	if err != nil {
		s.logger.Error("missing-statement check failed", slog.Any("error", err))
		return
	}

	if len(missing) == 0 {
		s.logger.Info("all locations have submitted statements")
		return
	}

	s.logger.Warn("missing statements found", slog.Int("count", len(missing)))
	for region, count := range report.CountByRegion(missing) {
		s.logger.Warn("missing statements by region",
			slog.String("region", region),
			slog.Int("count", count),
		)
	}
}
