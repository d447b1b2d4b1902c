package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func RollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Reproduce the reward roll of a mining run",
		Long: `Recomputes the draw keccak256(slot || time || player || rig) and the reward
it selects, so a player can check a payout from the block it landed in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, _ := cmd.Flags().GetUint64("slot")
			ts, _ := cmd.Flags().GetInt64("time")
			player, _ := cmd.Flags().GetString("player")
			rigID, _ := cmd.Flags().GetUint8("rig")
			level, _ := cmd.Flags().GetUint64("level")

			addr, err := sdk.AccAddressFromBech32(player)
			if err != nil {
				return fmt.Errorf("player: %w", err)
			}
			rig, err := types.LookupRig(rigID)
			if err != nil {
				return err
			}
			res := types.RollReward(rig, level, types.RollInput{
				Slot:      slot,
				Timestamp: ts,
				Player:    addr,
				RigID:     rigID,
			})

			outcome := "low"
			if res.High {
				outcome = "high"
			}
			fmt.Println("Reward Roll")
			fmt.Println("===========")
			fmt.Printf("Draw:    %d / %d\n", res.Draw, types.BpsDenominator)
			fmt.Printf("Outcome: %s (high below %d)\n", outcome, rig.ProbHighBps)
			fmt.Printf("Reward:  %s GAME\n", formatUnits(res.Reward, types.GameDecimals))
			return nil
		},
	}

	cmd.Flags().Uint64("slot", 0, "block height of the run")
	cmd.Flags().Int64("time", 0, "block time of the run (unix seconds)")
	cmd.Flags().String("player", "", "bech32 address of the player")
	cmd.Flags().Uint8("rig", 0, "rig id")
	cmd.Flags().Uint64("level", 0, "halving level at the time of the run")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}
