package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// RegisterInvariants registers the arena invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "stake-total", StakeInvariant(k))
}

// StakeInvariant checks that the pool total equals the effective stake of
// all open positions.
func StakeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		err := k.CheckStakeTotal(ctx)
		msg := "pool total matches open positions"
		if err != nil {
			msg = err.Error()
		}
		return sdk.FormatInvariant(types.ModuleName, "stake-total", msg), err != nil
	}
}

// CheckStakeTotal sums the effective stake of all open positions and compares
// it with the pool total.
func (k Keeper) CheckStakeTotal(ctx context.Context) error {
	hasPool, err := k.Pool.Has(ctx)
	if err != nil || !hasPool {
		return err
	}
	pool, err := k.GetPool(ctx)
	if err != nil {
		return err
	}
	sum := sdkmath.ZeroUint()
	err = k.Positions.Walk(ctx, nil, func(_ sdk.AccAddress, pos types.StakePosition) (bool, error) {
		pos = pos.Normalize()
		if !pos.Closed() {
			sum = sum.Add(pos.EffectiveStake)
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	if !sum.Equal(pool.TotalEffectiveStake) {
		return errorsmod.Wrapf(types.ErrStakeTotalMismatch, "pool total %s, open positions %s", pool.TotalEffectiveStake, sum)
	}
	return nil
}
