package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swhalen98/MasonsDBCC/internal/domain/location"
)

func newLocationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the location registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, loc := range location.All() {
				fmt.Fprintf(out, "%-5s %-36s %-24s %-12s %s\n",
					loc.Code, loc.Name, loc.City, loc.Status, loc.Region)
			}
			return nil
		},
	}
}
