package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swhalen98/MasonsDBCC/internal/scheduler"
	"github.com/swhalen98/MasonsDBCC/pkg/config"
)

func newWatchCommand() *cobra.Command {
	var runNow bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the scheduled missing-statement check",
		Long: `Start a long-running process that periodically checks the registry for
open locations with missing statements, on the configured cron schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := newLogger()

			database, repo, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer database.Close()

			sched := scheduler.NewScheduler(repo, logger, cfg.Report.Schedule, cfg.Report.MonthsBack)
			if err := sched.Start(); err != nil {
				return fmt.Errorf("failed to start scheduler: %w", err)
			}
			if runNow {
				sched.RunNow()
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			// Let an in-flight check finish before releasing the store.
			<-sched.Stop().Done()
			return nil
		},
	}

	cmd.Flags().BoolVar(&runNow, "now", false, "run the check immediately on startup")
	return cmd
}
