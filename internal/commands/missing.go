package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/swhalen98/MasonsDBCC/internal/domain/report"
	"github.com/swhalen98/MasonsDBCC/pkg/config"
)

func newMissingCommand() *cobra.Command {
	var months int
	var csvOut string

	cmd := &cobra.Command{
		Use:   "missing",
		Short: "Report locations with missing statements",
		Long: `List open locations that have not submitted a statement for recent
reporting periods, optionally saving the report as CSV.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if months == 0 {
				months = cfg.Report.MonthsBack
			}

			ctx := cmd.Context()
			logger := newLogger()

			database, repo, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer database.Close()

			missing, err := report.CheckMissing(ctx, repo, months, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(missing) == 0 {
				fmt.Fprintf(out, "All locations have submitted statements for the last %d months\n", months)
				return nil
			}

			fmt.Fprintf(out, "Missing statements: %d\n\n", len(missing))
			for _, m := range missing {
				fmt.Fprintf(out, "  %s  %-5s %s (%s)\n", m.Period, m.LocationCode, m.LocationName, m.Region)
			}

			fmt.Fprintf(out, "\nBy region:\n")
			for region, count := range report.CountByRegion(missing) {
				fmt.Fprintf(out, "  %-20s %d\n", region, count)
			}

			if csvOut != "" {
				if err := report.WriteCSV(csvOut, missing); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nReport saved to %s\n", csvOut)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 0, "months to check (default: configured)")
	cmd.Flags().StringVar(&csvOut, "csv", "", "write the report to a CSV file")
	return cmd
}
