package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wielop1/x1-mining-arena/x/arena/simulation"
	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [scenario.yaml]",
		Short: "Run a scripted session against an in-memory arena",
		Long: `Plays the steps of a YAML scenario (mine, stake, claim, unstake, boost,
rank, reset_day, halving, advance) through the arena message server on an
in-memory store, then prints balances, the staking pool and every account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			s, err := simulation.Load(args[0])
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}
			report, runErr := simulation.Run(s, logger)
			if report != nil {
				printReport(report, quiet)
			}
			if runErr != nil {
				return fmt.Errorf("simulation stopped: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().Bool("quiet", false, "only print the final state")

	return cmd
}

func printReport(r *simulation.Report, quiet bool) {
	if !quiet {
		fmt.Println("Steps")
		fmt.Println("=====")
		for _, st := range r.Steps {
			line := st.Detail
			if st.Err != "" {
				line = "error: " + st.Err
			}
			fmt.Printf("%3d %-10s %-10s %s\n", st.Index, st.Action, st.Actor, line)
		}
		fmt.Println("")
	}

	fmt.Println("Arena")
	fmt.Println("=====")
	fmt.Printf("Minted:          %s GAME (halving level %d)\n",
		formatUnits(r.Emission.TotalMinted, types.GameDecimals), r.Emission.HalvingLevel)
	fmt.Printf("Treasury:        %s XNT\n", formatUnits(r.Treasury, types.XntDecimals))
	fmt.Printf("Staking vault:   %s GAME\n", formatUnits(r.Vault, types.GameDecimals))
	fmt.Printf("Effective stake: %s\n", r.Pool.TotalEffectiveStake)
	fmt.Printf("Acc per share:   %s\n", r.Pool.AccRewardPerShare)
	fmt.Printf("Absorbed inflow: %s XNT\n", formatUnits(r.Pool.AbsorbedInflow, types.XntDecimals))

	for _, a := range r.Accounts {
		fmt.Println("")
		fmt.Printf("%s (%s)\n", a.Name, a.Address)
		fmt.Printf("  XNT:  %s\n", formatUnits(a.XNT, types.XntDecimals))
		fmt.Printf("  GAME: %s\n", formatUnits(a.Game, types.GameDecimals))
		if u := a.User; u != nil {
			fmt.Printf("  Points: %d boost, %d today, %d lifetime, streak %d\n",
				u.BoostPoints, u.DailyPoints, u.LifetimePoints, u.StreakDays)
			fmt.Printf("  Mining: %d runs by rig %v, %d crits\n", sum(u.MiningRunsByRig[:]), u.MiningRunsByRig, u.MiningCritCount)
			fmt.Printf("  Staking earned: %s XNT\n", formatUnits(u.StakingEarned, types.XntDecimals))
			if s := u.Achievements.String(); s != "" {
				fmt.Printf("  Achievements: %s\n", s)
			}
			for _, b := range u.ActiveBoosts {
				fmt.Printf("  Boost %d %s %d bps until %d\n", b.BoostID, b.Kind, b.ValueBps, b.ExpiresAt)
			}
		}
		for _, p := range a.Positions {
			state := "open"
			if p.Closed() {
				state = "closed"
			}
			fmt.Printf("  Position %d %s: %d staked, effective %s, pending %d, unlocks %d\n",
				p.PositionID, state, p.AmountStaked, p.EffectiveStake, p.Pending, p.LockUntil)
		}
	}
}

func sum(xs []uint64) uint64 {
	var total uint64
	for _, x := range xs {
		total += x
	}
	return total
}
