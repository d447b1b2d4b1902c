package cmd

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var defaultHome = os.ExpandEnv("$HOME/.arenad")

func NewRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "arenad",
		Short: "X1 Mining Arena - rig mining, GAME staking and boosts",
		Long: `arenad inspects and exercises the arena module offline.

Players pay XNT to run one of four rigs and are minted GAME at a rate that
halves as supply grows. A share of every rig payment flows to GAME stakers.
Ranking points buy time-limited boosts.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		RigsCmd(),
		RollCmd(),
		StakePreviewCmd(),
		EmissionCmd(),
		GenesisCmd(),
		SimulateCmd(),
	)

	rootCmd.PersistentFlags().String("home", defaultHome, "arena home directory")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")

	return rootCmd, nil
}

func Execute() {
	rootCmd, err := NewRootCmd()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger for cmd from its --log-level flag.
func newLogger(cmd *cobra.Command) (log.Logger, error) {
	lvl, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewLogger(os.Stderr, log.LevelOption(level)), nil
}
