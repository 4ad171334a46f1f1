package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCommand() *cobra.Command {
	playerCmd := &cobra.Command{
		Use:   "player",
		Short: "Manage players",
	}

	playerCmd.AddCommand(newPlayerAddCommand())
	playerCmd.AddCommand(newPlayerRemoveCommand())
	playerCmd.AddCommand(newPlayerBuyInCommand())
	playerCmd.AddCommand(newPlayerRebuyCommand())
	playerCmd.AddCommand(newPlayerCashoutCommand())

	return playerCmd
}

func newPlayerAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Seat a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"name": args[0]}
			var game Game
			if err := client.Post("/api/v1/players", body, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}
}

func newPlayerRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var game Game
			if err := client.Delete("/api/v1/players/"+args[0], &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}
}

func newPlayerBuyInCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "buyin <player-id> <paid|pending>",
		Short: "Mark a player's buy-in as paid or pending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := args[1]
			if status != "paid" && status != "pending" {
				return fmt.Errorf("invalid status %q (want paid or pending)", status)
			}
			body := map[string]string{"status": status}
			var game Game
			if err := client.Patch("/api/v1/players/"+args[0]+"/buyin", body, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}
}

func newPlayerRebuyCommand() *cobra.Command {
	rebuyCmd := &cobra.Command{
		Use:   "rebuy",
		Short: "Manage a player's rebuys",
	}

	rebuyCmd.AddCommand(&cobra.Command{
		Use:   "add <player-id> <amount>",
		Short: "Record a rebuy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"amount": args[1]}
			var game Game
			if err := client.Post("/api/v1/players/"+args[0]+"/rebuys", body, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	})

	rebuyCmd.AddCommand(&cobra.Command{
		Use:   "remove <player-id> <rebuy-id>",
		Short: "Remove a rebuy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var game Game
			path := "/api/v1/players/" + args[0] + "/rebuys/" + args[1]
			if err := client.Delete(path, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	})

	rebuyCmd.AddCommand(&cobra.Command{
		Use:   "toggle <player-id> <rebuy-id>",
		Short: "Toggle a rebuy between paid and pending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var game Game
			path := "/api/v1/players/" + args[0] + "/rebuys/" + args[1] + "/status"
			if err := client.Patch(path, nil, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	})

	return rebuyCmd
}

func newPlayerCashoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cashout <player-id> <amount>",
		Short: "Declare a player's final chip count",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"amount": args[1]}
			var game Game
			if err := client.Post("/api/v1/players/"+args[0]+"/cashout", body, &game); err != nil {
				return err
			}
			return output.PrintGame(&game)
		},
	}
}
