package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func (k Keeper) checkAdmin(ctx context.Context, signer string) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if params.Admin == "" || params.Admin != signer {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the arena admin", signer)
	}
	return nil
}

// InitializeTreasury enables the XNT treasury account.
func (k Keeper) InitializeTreasury(ctx context.Context, admin string) error {
	if err := k.checkAdmin(ctx, admin); err != nil {
		return err
	}
	exists, err := k.Treasury.Has(ctx)
	if err != nil {
		return err
	}
	if exists {
		return errorsmod.Wrap(types.ErrInvalidRequest, "treasury already initialized")
	}
	_, now := k.now(ctx)
	account := ModuleAddress(types.TreasuryAccount).String()
	if err := k.Treasury.Set(ctx, Treasury{Account: account, InitializedAt: now}); err != nil {
		return err
	}
	k.logger.Info("treasury initialized", "account", account)
	return k.emit(ctx, types.EventTypeTreasuryInit, attr(types.AttributeKeyActor, admin))
}

// InitializeStakingPool creates the empty staking pool. The treasury must
// exist first since it pays staking rewards.
func (k Keeper) InitializeStakingPool(ctx context.Context, admin string) error {
	if err := k.checkAdmin(ctx, admin); err != nil {
		return err
	}
	hasTreasury, err := k.Treasury.Has(ctx)
	if err != nil {
		return err
	}
	if !hasTreasury {
		return errorsmod.Wrap(types.ErrIncompleteConfig, "treasury not initialized")
	}
	hasPool, err := k.Pool.Has(ctx)
	if err != nil {
		return err
	}
	if hasPool {
		return errorsmod.Wrap(types.ErrInvalidRequest, "staking pool already initialized")
	}
	if err := k.Pool.Set(ctx, types.NewStakingPool()); err != nil {
		return err
	}
	k.logger.Info("staking pool initialized")
	return k.emit(ctx, types.EventTypeStakingPoolInit, attr(types.AttributeKeyActor, admin))
}

// ApplyRankingResults credits spendable boost points to user.
func (k Keeper) ApplyRankingResults(ctx context.Context, admin string, user sdk.AccAddress, points uint64) error {
	if err := k.checkAdmin(ctx, admin); err != nil {
		return err
	}
	_, now := k.now(ctx)
	acct, err := k.loadUserForWrite(ctx, user, now)
	if err != nil {
		return err
	}
	acct.AddBoostPoints(points)
	if err := k.Users.Set(ctx, user, acct); err != nil {
		return err
	}
	k.logger.Info("ranking applied", "user", user.String(), "points", points)
	return k.emit(ctx, types.EventTypeRankingApplied,
		attr(types.AttributeKeyUser, user.String()),
		attr(types.AttributeKeyPoints, points),
	)
}

// ResetDailyPoints closes dayID for user and updates the streak.
func (k Keeper) ResetDailyPoints(ctx context.Context, admin string, user sdk.AccAddress, dayID int64) error {
	if err := k.checkAdmin(ctx, admin); err != nil {
		return err
	}
	_, now := k.now(ctx)
	acct, err := k.loadUserForWrite(ctx, user, now)
	if err != nil {
		return err
	}
	acct.CloseDay(dayID)
	if err := k.Users.Set(ctx, user, acct); err != nil {
		return err
	}
	k.logger.Info("daily points reset", "user", user.String(), "day", dayID, "streak", acct.StreakDays)
	return k.emit(ctx, types.EventTypeDailyPointsReset,
		attr(types.AttributeKeyUser, user.String()),
		attr(types.AttributeKeyDayID, dayID),
	)
}

// UpdateHalving re-derives the halving level from the minted total.
func (k Keeper) UpdateHalving(ctx context.Context, admin string) (uint64, error) {
	if err := k.checkAdmin(ctx, admin); err != nil {
		return 0, err
	}
	emission, err := k.GetEmission(ctx)
	if err != nil {
		return 0, err
	}
	emission.Recompute()
	if err := k.Emission.Set(ctx, emission); err != nil {
		return 0, err
	}
	k.logger.Info("halving updated", "level", emission.HalvingLevel, "total_minted", emission.TotalMinted)
	return emission.HalvingLevel, k.emit(ctx, types.EventTypeHalvingUpdated,
		attr(types.AttributeKeyHalvingLevel, emission.HalvingLevel),
	)
}

// UpdateParams replaces the params. Only the module authority may call it.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.authority, authority)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, params); err != nil {
		return err
	}
	k.logger.Info("params updated", "admin", params.Admin, "staking_share_bps", params.StakingShareBps)
	return k.emit(ctx, types.EventTypeParamsUpdated, attr(types.AttributeKeyActor, authority))
}
