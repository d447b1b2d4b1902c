package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// Stake locks amount GAME of owner for lockDays in a new position. The
// staking multiplier is resolved from the owner's boosts now and frozen into
// the position.
func (k Keeper) Stake(ctx context.Context, owner sdk.AccAddress, amount uint64, lockDays uint16) (types.StakePosition, sdk.AccAddress, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.StakePosition{}, nil, err
	}
	pool, err := k.GetPool(ctx)
	if err != nil {
		return types.StakePosition{}, nil, err
	}
	_, now := k.now(ctx)
	user, err := k.loadUserForWrite(ctx, owner, now)
	if err != nil {
		return types.StakePosition{}, nil, err
	}

	id, err := user.AllocatePositionID()
	if err != nil {
		return types.StakePosition{}, nil, err
	}
	addr := types.StakePositionAddress(owner, id)
	exists, err := k.Positions.Has(ctx, addr)
	if err != nil {
		return types.StakePosition{}, nil, err
	}
	if exists {
		return types.StakePosition{}, nil, errorsmod.Wrapf(types.ErrInvalidStakePda, "position %d already exists", id)
	}

	boost := user.ActiveBoosts.StakingMultiplier(now)
	pos, err := types.NewStakePosition(owner.String(), id, amount, lockDays, boost, now, pool.AccRewardPerShare)
	if err != nil {
		return types.StakePosition{}, nil, err
	}
	if err := pool.AddStake(pos.EffectiveStake); err != nil {
		return types.StakePosition{}, nil, err
	}
	user.StakingPrincipal = saturatingAdd(user.StakingPrincipal, amount)
	user.Achievements |= types.AchievementFirstStake

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.StakingVault, coins(params.GameDenom, amount)); err != nil {
		return types.StakePosition{}, nil, err
	}

	if err := k.Positions.Set(ctx, addr, pos); err != nil {
		return types.StakePosition{}, nil, err
	}
	if err := k.PositionsByOwner.Set(ctx, collections.Join(owner, id)); err != nil {
		return types.StakePosition{}, nil, err
	}
	if err := k.Users.Set(ctx, owner, user); err != nil {
		return types.StakePosition{}, nil, err
	}
	if err := k.Pool.Set(ctx, pool); err != nil {
		return types.StakePosition{}, nil, err
	}

	k.logger.Debug("staked", "owner", owner.String(), "position", id, "amount", amount,
		"lock_days", lockDays, "effective", pos.EffectiveStake.String())

	return pos, addr, k.emit(ctx, types.EventTypeStake,
		attr(types.AttributeKeyActor, owner.String()),
		attr(types.AttributeKeyPositionID, id),
		attr(types.AttributeKeyPosition, addr.String()),
		attr(types.AttributeKeyAmount, amount),
		attr(types.AttributeKeyLockDays, lockDays),
		attr(types.AttributeKeyEffectiveStake, pos.EffectiveStake.String()),
	)
}

// loadPosition re-derives the position address from owner and id, checks it
// against addr and loads the position.
func (k Keeper) loadPosition(ctx context.Context, owner sdk.AccAddress, id uint32, addr sdk.AccAddress) (types.StakePosition, error) {
	if err := types.VerifyStakePositionAddress(owner, id, addr); err != nil {
		return types.StakePosition{}, err
	}
	pos, err := k.Positions.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return types.StakePosition{}, errorsmod.Wrapf(types.ErrPositionNotFound, "%s", addr)
	}
	if err != nil {
		return types.StakePosition{}, err
	}
	if pos.Owner != owner.String() {
		return types.StakePosition{}, errorsmod.Wrapf(types.ErrUnauthorized, "position owned by %s", pos.Owner)
	}
	if pos.PositionID != id {
		return types.StakePosition{}, errorsmod.Wrapf(types.ErrInvalidStakePda, "stored id %d, requested %d", pos.PositionID, id)
	}
	return pos.Normalize(), nil
}

// Claim pays the pending rewards of a position without touching its stake.
func (k Keeper) Claim(ctx context.Context, owner sdk.AccAddress, id uint32, addr sdk.AccAddress) (uint64, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	pool, err := k.GetPool(ctx)
	if err != nil {
		return 0, err
	}
	pos, err := k.loadPosition(ctx, owner, id, addr)
	if err != nil {
		return 0, err
	}
	_, now := k.now(ctx)
	user, err := k.loadUserForWrite(ctx, owner, now)
	if err != nil {
		return 0, err
	}

	claimed, err := pos.Settle(pool.AccRewardPerShare)
	if err != nil {
		return 0, err
	}
	user.StakingEarned = saturatingAdd(user.StakingEarned, claimed)

	if err := k.requireFunds(ctx, types.TreasuryAccount, params.FeeDenom, claimed); err != nil {
		return 0, err
	}
	if claimed > 0 {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.TreasuryAccount, owner, coins(params.FeeDenom, claimed)); err != nil {
			return 0, err
		}
	}

	if err := k.Positions.Set(ctx, addr, pos); err != nil {
		return 0, err
	}
	if err := k.Users.Set(ctx, owner, user); err != nil {
		return 0, err
	}

	k.logger.Debug("claimed", "owner", owner.String(), "position", id, "amount", claimed)

	return claimed, k.emit(ctx, types.EventTypeClaim,
		attr(types.AttributeKeyActor, owner.String()),
		attr(types.AttributeKeyPositionID, id),
		attr(types.AttributeKeyClaimed, claimed),
	)
}

// Unstake settles an unlocked position, returns its principal and closes it.
// The closed position stays in the store with zeroed amounts.
func (k Keeper) Unstake(ctx context.Context, owner sdk.AccAddress, id uint32, addr sdk.AccAddress) (claimed, returned uint64, err error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, 0, err
	}
	pool, err := k.GetPool(ctx)
	if err != nil {
		return 0, 0, err
	}
	pos, err := k.loadPosition(ctx, owner, id, addr)
	if err != nil {
		return 0, 0, err
	}
	if pos.Closed() {
		return 0, 0, errorsmod.Wrapf(types.ErrPositionClosed, "position %d", id)
	}
	_, now := k.now(ctx)
	if !pos.Unlocked(now) {
		return 0, 0, errorsmod.Wrapf(types.ErrStakeLocked, "locked until %d, now %d", pos.LockUntil, now)
	}
	user, err := k.loadUserForWrite(ctx, owner, now)
	if err != nil {
		return 0, 0, err
	}

	if claimed, err = pos.Settle(pool.AccRewardPerShare); err != nil {
		return 0, 0, err
	}
	returned = pos.AmountStaked
	pool.RemoveStake(pos.EffectiveStake)
	pos.Close()
	user.StakingEarned = saturatingAdd(user.StakingEarned, claimed)
	user.StakingPrincipal = saturatingSub(user.StakingPrincipal, returned)

	if err := k.requireFunds(ctx, types.TreasuryAccount, params.FeeDenom, claimed); err != nil {
		return 0, 0, err
	}
	if err := k.requireFunds(ctx, types.StakingVault, params.GameDenom, returned); err != nil {
		return 0, 0, err
	}
	if claimed > 0 {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.TreasuryAccount, owner, coins(params.FeeDenom, claimed)); err != nil {
			return 0, 0, err
		}
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.StakingVault, owner, coins(params.GameDenom, returned)); err != nil {
		return 0, 0, err
	}

	if err := k.Positions.Set(ctx, addr, pos); err != nil {
		return 0, 0, err
	}
	if err := k.Users.Set(ctx, owner, user); err != nil {
		return 0, 0, err
	}
	if err := k.Pool.Set(ctx, pool); err != nil {
		return 0, 0, err
	}

	k.logger.Debug("unstaked", "owner", owner.String(), "position", id, "returned", returned, "claimed", claimed)

	return claimed, returned, k.emit(ctx, types.EventTypeUnstake,
		attr(types.AttributeKeyActor, owner.String()),
		attr(types.AttributeKeyPositionID, id),
		attr(types.AttributeKeyAmount, returned),
		attr(types.AttributeKeyClaimed, claimed),
	)
}

// PendingRewards reports what Claim would pay right now. It never writes.
func (k Keeper) PendingRewards(ctx context.Context, addr sdk.AccAddress) (uint64, error) {
	pool, err := k.GetPool(ctx)
	if err != nil {
		return 0, err
	}
	pos, err := k.Positions.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, errorsmod.Wrapf(types.ErrPositionNotFound, "%s", addr)
	}
	if err != nil {
		return 0, err
	}
	return pos.Normalize().Pending(pool.AccRewardPerShare)
}

func saturatingAdd(a, b uint64) uint64 {
	if b > ^uint64(0)-a {
		return ^uint64(0)
	}
	return a + b
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
