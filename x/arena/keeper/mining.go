package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// MineResult describes one completed mining run.
type MineResult struct {
	Deposit     uint64
	Inflow      uint64
	Roll        types.RollResult
	Reward      uint64
	Points      uint64
	UsedFreeRig bool
	Critical    bool
	Absorbed    bool
}

// MineWithRig runs one mining round for player on rigID. The player pays the
// rig cost into the treasury unless a free rig ticket covers it, a share of
// the cost is distributed to stakers, and the boosted reward is minted to
// the player.
func (k Keeper) MineWithRig(ctx context.Context, player sdk.AccAddress, rigID uint8) (MineResult, error) {
	rig, err := types.LookupRig(rigID)
	if err != nil {
		return MineResult{}, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return MineResult{}, err
	}
	emission, err := k.GetEmission(ctx)
	if err != nil {
		return MineResult{}, err
	}
	pool, err := k.GetPool(ctx)
	if err != nil {
		return MineResult{}, err
	}
	slot, now := k.now(ctx)
	user, err := k.loadUserForWrite(ctx, player, now)
	if err != nil {
		return MineResult{}, err
	}

	res := MineResult{Deposit: rig.BaseCost}
	if boosts, ok := user.ActiveBoosts.ConsumeFreeRig(rigID, now); ok {
		user.ActiveBoosts = boosts
		res.Deposit = 0
		res.UsedFreeRig = true
	}
	if res.Deposit > 0 {
		res.Inflow, err = types.ApplyBps(res.Deposit, params.StakingShareBps)
		if err != nil {
			return MineResult{}, err
		}
		if res.Absorbed, err = pool.Distribute(res.Inflow); err != nil {
			return MineResult{}, err
		}
	}

	level := emission.HalvingLevel
	res.Roll = types.RollReward(rig, level, types.RollInput{
		Slot:      slot,
		Timestamp: now,
		Player:    player,
		RigID:     rigID,
	})
	res.Reward = user.ActiveBoosts.MiningRewardMultiplier(res.Roll.Reward, now)
	res.Critical = res.Reward >= rig.RewardHigh(level)
	res.Points = user.ActiveBoosts.MiningPointsMultiplier(rig.Points, now)

	emission.ApplyMint(res.Reward)
	user.AwardPoints(res.Points)
	user.RecordMiningRun(rigID, res.Deposit, res.Reward, res.Critical)

	if res.Deposit > 0 {
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, player, types.TreasuryAccount, coins(params.FeeDenom, res.Deposit)); err != nil {
			return MineResult{}, err
		}
	}
	if res.Reward > 0 {
		minted := coins(params.GameDenom, res.Reward)
		if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, minted); err != nil {
			return MineResult{}, err
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, player, minted); err != nil {
			return MineResult{}, err
		}
	}

	if err := k.Users.Set(ctx, player, user); err != nil {
		return MineResult{}, err
	}
	if err := k.Emission.Set(ctx, emission); err != nil {
		return MineResult{}, err
	}
	if err := k.Pool.Set(ctx, pool); err != nil {
		return MineResult{}, err
	}

	k.logger.Debug("mined", "player", player.String(), "rig", rigID, "deposit", res.Deposit,
		"reward", res.Reward, "halving_level", emission.HalvingLevel)

	if res.Absorbed {
		if err := k.emit(ctx, types.EventTypeInflowAbsorbed,
			attr(types.AttributeKeyAmount, res.Inflow),
		); err != nil {
			return MineResult{}, err
		}
	}
	return res, k.emit(ctx, types.EventTypeMine,
		attr(types.AttributeKeyActor, player.String()),
		attr(types.AttributeKeyRig, rigID),
		attr(types.AttributeKeyDeposit, res.Deposit),
		attr(types.AttributeKeyReward, res.Reward),
		attr(types.AttributeKeyFreeRig, res.UsedFreeRig),
		attr(types.AttributeKeyPoints, res.Points),
	)
}
