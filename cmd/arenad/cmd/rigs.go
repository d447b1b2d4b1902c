package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func RigsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rigs",
		Short: "Show the rig catalog at a halving level",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetUint64("level")

			fmt.Printf("Rig Catalog (halving level %d)\n", level)
			fmt.Println("==============================")
			fmt.Printf("%-4s %-16s %-12s %-12s %-7s %s\n", "ID", "Cost (XNT)", "Low", "High", "P(high)", "Points")
			for _, rig := range types.Rigs() {
				fmt.Printf("%-4d %-16s %-12s %-12s %-7s %d\n",
					rig.ID,
					formatUnits(rig.BaseCost, types.XntDecimals),
					formatUnits(rig.RewardLow(level), types.GameDecimals),
					formatUnits(rig.RewardHigh(level), types.GameDecimals),
					fmt.Sprintf("%d%%", rig.ProbHighBps/100),
					rig.Points,
				)
			}
			return nil
		},
	}

	cmd.Flags().Uint64("level", 0, "halving level")

	return cmd
}

// formatUnits renders minor units with the given number of decimals.
func formatUnits(amount uint64, decimals int) string {
	if decimals == 0 {
		return fmt.Sprintf("%d", amount)
	}
	div := uint64(1)
	for i := 0; i < decimals; i++ {
		div *= 10
	}
	return fmt.Sprintf("%d.%0*d", amount/div, decimals, amount%div)
}
