package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newGameCommand() *cobra.Command {
	gameCmd := &cobra.Command{
		Use:   "game",
		Short: "Manage the game",
	}

	gameCmd.AddCommand(newGameStartCommand())
	gameCmd.AddCommand(newGameStatusCommand())
	gameCmd.AddCommand(newGameCashoutCommand())
	gameCmd.AddCommand(newGameFinishCommand())
	gameCmd.AddCommand(newGameResetCommand())
	gameCmd.AddCommand(newGameTotalsCommand())
	gameCmd.AddCommand(newGameDebtorsCommand())
	gameCmd.AddCommand(newGameRankingCommand())
	gameCmd.AddCommand(newGameAuditCommand())
	gameCmd.AddCommand(newGameExportCommand())

	return gameCmd
}

func newGameStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <buy-in>",
		Short: "Start the game with a per-player buy-in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"buy_in": args[0]}
			var game Game
			if err := client.Post("/api/v1/game", body, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}
}

func newGameStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var game Game
			if err := client.Get("/api/v1/game", &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}
}

func newGameCashoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cashout",
		Short: "End play and begin the cashout phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var game Game
			if err := client.Post("/api/v1/game/cashout", nil, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}
}

func newGameFinishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Finish the game and lock the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var game Game
			if err := client.Post("/api/v1/game/finish", nil, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}
}

func newGameResetCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the game and all its records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset destroys the whole ledger; re-run with --force")
			}
			var game Game
			if err := client.Delete("/api/v1/game", &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the destructive reset")
	return cmd
}

func newGameTotalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show money totals for the game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var totals Totals
			if err := client.Get("/api/v1/game/totals", &totals); err != nil {
				return err
			}
			return output.PrintTotals(&totals)
		},
	}
}

func newGameDebtorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "debtors",
		Short: "List players with unpaid entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var debtors Debtors
			if err := client.Get("/api/v1/game/debtors", &debtors); err != nil {
				return err
			}
			return output.PrintDebtors(&debtors)
		},
	}
}

func newGameRankingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ranking",
		Short: "Show the settlement ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ranking Ranking
			if err := client.Get("/api/v1/game/ranking", &ranking); err != nil {
				return err
			}
			return output.PrintRanking(&ranking)
		},
	}
}

func newGameAuditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check that declared cashouts match chips in play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var audit Audit
			if err := client.Get("/api/v1/game/audit", &audit); err != nil {
				return err
			}
			return output.PrintAudit(&audit)
		},
	}
}

func newGameExportCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a text summary of the game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.GetRaw("/api/v1/game/export")
			if err != nil {
				return err
			}
			if file == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(file, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", file, err)
			}
			if cfg.Verbose {
				output.Printf("Wrote %d bytes to %s\n", len(data), file)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "write the summary to a file instead of stdout")
	return cmd
}
