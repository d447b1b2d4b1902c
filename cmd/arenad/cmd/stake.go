package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func StakePreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake-preview",
		Short: "Compute the effective stake of a new position",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _ := cmd.Flags().GetUint64("amount")
			lockDays, _ := cmd.Flags().GetUint16("lock-days")
			boostBps, _ := cmd.Flags().GetUint16("boost-bps")

			lockBps, err := types.LockMultiplier(lockDays)
			if err != nil {
				return err
			}
			if boostBps < types.BpsDenominator {
				return fmt.Errorf("boost multiplier %d is below %d", boostBps, types.BpsDenominator)
			}
			eff, err := types.EffectiveStake(amount, lockBps, boostBps)
			if err != nil {
				return err
			}

			fmt.Println("Stake Preview")
			fmt.Println("=============")
			fmt.Printf("Amount:           %s GAME\n", formatUnits(amount, types.GameDecimals))
			fmt.Printf("Lock:             %d days (x%s)\n", lockDays, formatUnits(uint64(lockBps), 4))
			fmt.Printf("Boost:            x%s\n", formatUnits(uint64(boostBps), 4))
			fmt.Printf("Effective stake:  %s\n", eff)
			return nil
		},
	}

	cmd.Flags().Uint64("amount", 0, "GAME minor units to stake")
	cmd.Flags().Uint16("lock-days", 7, "lock period: 7, 14 or 30")
	cmd.Flags().Uint16("boost-bps", types.BpsDenominator, "staking boost multiplier in basis points")

	return cmd
}
