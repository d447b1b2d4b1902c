package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func EmissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emission",
		Short: "Show the halving level for a minted total",
		RunE: func(cmd *cobra.Command, args []string) error {
			minted, _ := cmd.Flags().GetUint64("minted")
			interval, _ := cmd.Flags().GetUint64("interval")

			e := types.NewEmissionState(interval)
			e.ApplyMint(minted)
			next := (e.HalvingLevel + 1) * e.HalvingInterval
			if next/e.HalvingInterval != e.HalvingLevel+1 {
				next = 0
			}

			fmt.Println("Emission")
			fmt.Println("========")
			fmt.Printf("Minted:           %s GAME\n", formatUnits(e.TotalMinted, types.GameDecimals))
			fmt.Printf("Halving interval: %s GAME\n", formatUnits(e.HalvingInterval, types.GameDecimals))
			fmt.Printf("Halving level:    %d\n", e.HalvingLevel)
			if next > 0 {
				fmt.Printf("Next halving at:  %s GAME\n", formatUnits(next, types.GameDecimals))
			}
			fmt.Println("")
			for _, rig := range types.Rigs() {
				fmt.Printf("Rig %d pays %s or %s GAME\n", rig.ID,
					formatUnits(rig.RewardLow(e.HalvingLevel), types.GameDecimals),
					formatUnits(rig.RewardHigh(e.HalvingLevel), types.GameDecimals))
			}
			return nil
		},
	}

	cmd.Flags().Uint64("minted", 0, "GAME minor units minted so far")
	cmd.Flags().Uint64("interval", types.DefaultHalvingInterval, "halving interval in GAME minor units")

	return cmd
}
