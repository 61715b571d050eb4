package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/swhalen98/MasonsDBCC/internal/domain/extract"
	"github.com/swhalen98/MasonsDBCC/internal/domain/location"
	"github.com/swhalen98/MasonsDBCC/pkg/config"
)

func newTemplateCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "template <location-code> <year> <month>",
		Short: "Generate a manual-entry CSV template",
		Long: `Generate an all-zero CSV pre-populated with the P&L vocabulary, for
periods where automatic extraction failed. Fill in the amounts and ingest the
file with the process command.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if !location.IsKnown(code) {
				return fmt.Errorf("unknown location code %q", code)
			}

			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}
			month, err := strconv.Atoi(args[2])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month %q", args[2])
			}

			if dir == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dir = cfg.Ingest.TemplateDir
			}

			path, err := extract.WriteManualEntryTemplate(dir, code, year, month)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created manual entry template: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default: configured template dir)")
	return cmd
}
