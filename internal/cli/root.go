package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
	output *Output
)

// NewRootCommand creates the root CLI command
func NewRootCommand() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pokernight",
		Short: "Poker night ledger CLI",
		Long: `pokernight is a command-line client for the poker night ledger server.

Track buy-ins, rebuys, and cashouts for a home cash game, settle the
night, and check that the chips add up.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q (want text or json)", cfg.Output)
			}
			client = NewClient(cfg.ServerURL)
			output = NewOutput(cmd.OutOrStdout(), cfg.Output)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfg.ServerURL, "server", "s", cfg.ServerURL, "server URL")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newGameCommand())
	rootCmd.AddCommand(newPlayerCommand())
	rootCmd.AddCommand(newHealthCommand())

	return rootCmd
}

// Execute runs the CLI
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
