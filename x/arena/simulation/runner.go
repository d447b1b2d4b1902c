package simulation

import (
	"fmt"
	"strings"
	"time"

	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/testutil"
	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// Report is the outcome of a scenario run.
type Report struct {
	Steps    []StepResult
	Emission types.EmissionState
	Pool     types.StakingPool
	Treasury uint64
	Vault    uint64
	Accounts []AccountReport
}

type StepResult struct {
	Index  int
	Action string
	Actor  string
	Detail string
	Err    string
}

type AccountReport struct {
	Name      string
	Address   string
	XNT       uint64
	Game      uint64
	User      *types.UserAccount
	Positions []PositionReport
}

type PositionReport struct {
	types.StakePosition
	Address string
	Pending uint64
}

type runner struct {
	scenario *Scenario
	env      *testutil.Env
	accounts map[string]sdk.AccAddress
	report   *Report
}

// Run plays s against a fresh in-memory arena. The partial report is returned
// along with the error when a step fails unexpectedly.
func Run(s *Scenario, logger log.Logger) (*Report, error) {
	s.ApplyDefaults()
	env := testutil.NewEnv(logger)
	gs := types.DefaultGenesis()
	gs.Params.Admin = env.Admin.String()
	gs.Params.StakingShareBps = s.StakingShareBps
	gs.Emission = types.NewEmissionState(s.HalvingInterval)
	if err := env.Configure(gs); err != nil {
		return nil, fmt.Errorf("configure arena: %w", err)
	}

	r := &runner{
		scenario: s,
		env:      env,
		accounts: make(map[string]sdk.AccAddress, len(s.Accounts)),
		report:   &Report{},
	}
	for _, b := range s.Boosts {
		def, err := b.Definition()
		if err != nil {
			return nil, err
		}
		msg := &types.MsgUpsertBoostDefinition{Admin: env.Admin.String(), Definition: def}
		if err := env.Msgs.UpsertBoostDefinition(env.Ctx, msg); err != nil {
			return nil, fmt.Errorf("boost %d: %w", b.ID, err)
		}
	}
	for _, a := range s.Accounts {
		addr := testutil.Addr(a.Name)
		r.accounts[a.Name] = addr
		if a.XNT > 0 {
			env.FundXNT(addr, a.XNT)
		}
		if a.Game > 0 {
			env.FundGame(addr, a.Game)
		}
	}

	for i, st := range s.Steps {
		for n := 0; n < st.Repeat; n++ {
			res := StepResult{Index: i + 1, Action: st.Action, Actor: st.Actor}
			detail, err := r.exec(st)
			res.Detail = detail
			if err != nil {
				res.Err = err.Error()
			}
			r.report.Steps = append(r.report.Steps, res)
			if err := checkOutcome(st, err); err != nil {
				return r.finish(fmt.Errorf("step %d (%s): %w", i+1, st.Action, err))
			}
			if st.Action != ActionAdvance {
				env.Header.Advance(time.Duration(s.BlockSeconds) * time.Second)
			}
		}
	}
	if err := env.Keeper.CheckStakeTotal(env.Ctx); err != nil {
		return r.finish(err)
	}
	return r.finish(nil)
}

func checkOutcome(st Step, err error) error {
	switch {
	case st.ExpectError == "":
		return err
	case err == nil:
		return fmt.Errorf("expected error containing %q", st.ExpectError)
	case !strings.Contains(err.Error(), st.ExpectError):
		return fmt.Errorf("expected error containing %q, got: %w", st.ExpectError, err)
	}
	return nil
}

func (r *runner) exec(st Step) (string, error) {
	env := r.env
	admin := env.Admin.String()
	actor := r.accounts[st.Actor]

	switch st.Action {
	case ActionMine:
		res, err := env.Msgs.MineWithRig(env.Ctx, &types.MsgMineWithRig{Player: actor.String(), RigID: st.Rig})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("rig %d paid %d, reward %d, points %d, free %t, crit %t",
			st.Rig, res.Deposit, res.Reward, res.Points, res.UsedFreeRig, res.Critical), nil

	case ActionStake:
		res, err := env.Msgs.Stake(env.Ctx, &types.MsgStake{Owner: actor.String(), Amount: st.Amount, LockDays: st.LockDays})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("position %d, effective %s, locked until %d", res.PositionID, res.EffectiveStake, res.LockUntil), nil

	case ActionClaim:
		res, err := env.Msgs.Claim(env.Ctx, &types.MsgClaim{
			Owner:      actor.String(),
			PositionID: st.Position,
			Position:   types.StakePositionAddress(actor, st.Position).String(),
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("claimed %d", res.Claimed), nil

	case ActionUnstake:
		res, err := env.Msgs.Unstake(env.Ctx, &types.MsgUnstake{
			Owner:      actor.String(),
			PositionID: st.Position,
			Position:   types.StakePositionAddress(actor, st.Position).String(),
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("returned %d, claimed %d", res.Returned, res.Claimed), nil

	case ActionBoost:
		res, err := env.Msgs.ActivateBoost(env.Ctx, &types.MsgActivateBoost{User: actor.String(), BoostID: st.Boost})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("boost %d (%s) until %d", res.Boost.BoostID, res.Boost.Kind, res.Boost.ExpiresAt), nil

	case ActionRank:
		msg := &types.MsgApplyRankingResults{Admin: admin, User: actor.String(), Points: st.Points}
		return fmt.Sprintf("+%d boost points", st.Points), env.Msgs.ApplyRankingResults(env.Ctx, msg)

	case ActionResetDay:
		msg := &types.MsgResetDailyPoints{Admin: admin, User: actor.String(), DayID: st.Day}
		return fmt.Sprintf("closed day %d", st.Day), env.Msgs.ResetDailyPoints(env.Ctx, msg)

	case ActionHalving:
		level, err := env.Msgs.UpdateHalving(env.Ctx, &types.MsgUpdateHalving{Admin: admin})
		return fmt.Sprintf("halving level %d", level), err

	case ActionAdvance:
		env.Header.Advance(time.Duration(st.Seconds) * time.Second)
		return fmt.Sprintf("time +%ds", st.Seconds), nil
	}
	return "", fmt.Errorf("unknown action %q", st.Action)
}

func (r *runner) finish(runErr error) (*Report, error) {
	env := r.env
	var err error
	if r.report.Emission, err = env.Queries.Emission(env.Ctx); err != nil {
		return r.report, err
	}
	if r.report.Pool, err = env.Queries.Pool(env.Ctx); err != nil {
		return r.report, err
	}
	r.report.Treasury = env.Bank.ModuleBalance(types.TreasuryAccount, types.DefaultFeeDenom)
	r.report.Vault = env.Bank.ModuleBalance(types.StakingVault, types.DefaultGameDenom)

	for _, a := range r.scenario.Accounts {
		addr := r.accounts[a.Name]
		ar := AccountReport{
			Name:    a.Name,
			Address: addr.String(),
			XNT:     env.Bank.Balance(addr, types.DefaultFeeDenom),
			Game:    env.Bank.Balance(addr, types.DefaultGameDenom),
		}
		if has, err := env.Keeper.Users.Has(env.Ctx, addr); err != nil {
			return r.report, err
		} else if has {
			u, err := env.Queries.User(env.Ctx, addr)
			if err != nil {
				return r.report, err
			}
			ar.User = &u
		}
		positions, err := env.Queries.Positions(env.Ctx, addr)
		if err != nil {
			return r.report, err
		}
		for _, p := range positions {
			posAddr := types.StakePositionAddress(addr, p.PositionID)
			pending, err := env.Queries.PendingRewards(env.Ctx, posAddr)
			if err != nil {
				return r.report, err
			}
			ar.Positions = append(ar.Positions, PositionReport{StakePosition: p, Address: posAddr.String(), Pending: pending})
		}
		r.report.Accounts = append(r.report.Accounts, ar)
	}
	return r.report, runErr
}
