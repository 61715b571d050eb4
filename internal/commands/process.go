package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swhalen98/MasonsDBCC/internal/domain/ingest"
	"github.com/swhalen98/MasonsDBCC/pkg/config"
)

func newProcessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [path]",
		Short: "Ingest statement files from a file or directory",
		Long: `Ingest one statement file, or every eligible file in a directory.
With no argument, processes the configured financials directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			path := cfg.Ingest.FinancialsDir
			if len(args) > 0 {
				path = args[0]
			}

			return runProcess(cmd, cfg, path)
		},
	}
	return cmd
}

func runProcess(cmd *cobra.Command, cfg *config.Config, path string) error {
	ctx := cmd.Context()
	logger := newLogger()

	database, repo, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	service := ingest.NewService(repo, logger)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}

	if !info.IsDir() {
		result := service.ProcessFile(ctx, path)
		if !result.OK() {
			return fmt.Errorf("failed to process %s: %w", result.File, result.Err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Processed %s (%d line items)\n", result.File, result.Facts)
		return nil
	}

	summary, err := service.ProcessDirectory(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Processed: %d\nFailed:    %d\nTotal:     %d\n",
		summary.Processed, summary.Failed, summary.Total)

	stats, err := repo.SummaryStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nStore: %d statements across %d locations\n",
		stats.TotalStatements, stats.TotalLocations)
	return nil
}
