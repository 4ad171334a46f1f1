package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var health Health
			if err := client.Get("/api/v1/health", &health); err != nil {
				return err
			}
			return output.PrintHealth(&health)
		},
	}
}
