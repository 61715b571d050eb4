// Package commands wires the CLI: per-run config load, store acquisition and
// release, and the ingestion, template, reporting and registry subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/swhalen98/MasonsDBCC/internal/domain/location"
	"github.com/swhalen98/MasonsDBCC/internal/domain/statement/repository"
	"github.com/swhalen98/MasonsDBCC/pkg/config"
	"github.com/swhalen98/MasonsDBCC/pkg/db"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "masons",
		Short: "Restaurant financial statement ingestion pipeline",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newTemplateCommand())
	rootCmd.AddCommand(newMissingCommand())
	rootCmd.AddCommand(newLocationsCommand())
	rootCmd.AddCommand(newWatchCommand())

	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore acquires the store for the lifetime of one command run: connect,
// migrate, seed the location registry. The caller must Close the returned DB
// when the run ends.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.DB, *repository.PostgresStatementRepository, error) {
	database, err := db.New(ctx, db.Config{
		DSN:             cfg.Database.DSN(),
		MaxConns:        10,
		MinConns:        2,
		MaxConnLifetime: 5 * time.Minute,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, nil, err
	}

	repo := repository.NewPostgresStatementRepository(database.Pool)
	if err := repo.SeedLocations(ctx, location.All()); err != nil {
		database.Close()
		return nil, nil, err
	}

	logger.Debug("store ready")
	return database, repo, nil
}
