package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Create and check arena genesis state",
	}

	cmd.AddCommand(
		genesisDefaultCmd(),
		genesisValidateCmd(),
	)

	return cmd
}

func genesisPath(cmd *cobra.Command) string {
	home, _ := cmd.Flags().GetString("home")
	return filepath.Join(home, "config", "arena_genesis.json")
}

func genesisDefaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "default",
		Short: "Print the default genesis, or write it to the home directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, _ := cmd.Flags().GetString("admin")
			write, _ := cmd.Flags().GetBool("write")

			gs := types.DefaultGenesis()
			if admin != "" {
				if _, err := sdk.AccAddressFromBech32(admin); err != nil {
					return fmt.Errorf("admin: %w", err)
				}
				gs.Params.Admin = admin
			}
			bz, err := json.MarshalIndent(gs, "", "  ")
			if err != nil {
				return err
			}
			if !write {
				fmt.Println(string(bz))
				return nil
			}

			path := genesisPath(cmd)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create config dir: %w", err)
			}
			if err := os.WriteFile(path, bz, 0o644); err != nil {
				return fmt.Errorf("write genesis: %w", err)
			}
			fmt.Printf("Genesis written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().String("admin", "", "bech32 address of the arena admin")
	cmd.Flags().Bool("write", false, "write to <home>/config/arena_genesis.json instead of stdout")

	return cmd
}

func genesisValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a genesis file (defaults to the one in the home directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := genesisPath(cmd)
			if len(args) > 0 {
				path = args[0]
			}
			bz, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read genesis: %w", err)
			}
			var gs types.GenesisState
			if err := json.Unmarshal(bz, &gs); err != nil {
				return fmt.Errorf("decode genesis: %w", err)
			}
			if err := gs.Validate(); err != nil {
				return fmt.Errorf("invalid genesis %s: %w", path, err)
			}

			fmt.Printf("Genesis %s is valid\n", path)
			fmt.Printf("Users:     %d\n", len(gs.Users))
			fmt.Printf("Positions: %d\n", len(gs.Positions))
			fmt.Printf("Boosts:    %d\n", len(gs.BoostDefinitions))
			return nil
		},
	}
}
