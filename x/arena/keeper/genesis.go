package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// InitGenesis initializes the module state from genesis
func (k Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, gs.Params); err != nil {
		return err
	}
	if err := k.Emission.Set(ctx, gs.Emission); err != nil {
		return err
	}
	if gs.TreasuryInitialized {
		_, now := k.now(ctx)
		if err := k.Treasury.Set(ctx, Treasury{Account: ModuleAddress(types.TreasuryAccount).String(), InitializedAt: now}); err != nil {
			return err
		}
	}
	if gs.StakingPool != nil {
		if err := k.Pool.Set(ctx, gs.StakingPool.Normalize()); err != nil {
			return err
		}
	}
	for _, def := range gs.BoostDefinitions {
		if err := k.BoostDefinitions.Set(ctx, def.ID, def); err != nil {
			return err
		}
	}
	for _, u := range gs.Users {
		addr, err := sdk.AccAddressFromBech32(u.Owner)
		if err != nil {
			return errorsmod.Wrapf(types.ErrInvalidAddress, "user %s", u.Owner)
		}
		if err := k.Users.Set(ctx, addr, u); err != nil {
			return err
		}
	}
	for _, pos := range gs.Positions {
		owner, err := pos.OwnerAddress()
		if err != nil {
			return errorsmod.Wrapf(types.ErrInvalidAddress, "position owner %s", pos.Owner)
		}
		if err := k.Positions.Set(ctx, types.StakePositionAddress(owner, pos.PositionID), pos.Normalize()); err != nil {
			return err
		}
		if err := k.PositionsByOwner.Set(ctx, collections.Join(owner, pos.PositionID)); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module state for genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := &types.GenesisState{}
	var err error
	if gs.Params, err = k.GetParams(ctx); err != nil {
		return nil, err
	}
	if gs.Emission, err = k.GetEmission(ctx); err != nil {
		return nil, err
	}
	if gs.TreasuryInitialized, err = k.Treasury.Has(ctx); err != nil {
		return nil, err
	}
	hasPool, err := k.Pool.Has(ctx)
	if err != nil {
		return nil, err
	}
	if hasPool {
		pool, err := k.GetPool(ctx)
		if err != nil {
			return nil, err
		}
		gs.StakingPool = &pool
	}
	err = k.BoostDefinitions.Walk(ctx, nil, func(_ uint32, def types.BoostDefinition) (bool, error) {
		gs.BoostDefinitions = append(gs.BoostDefinitions, def)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.Users.Walk(ctx, nil, func(_ sdk.AccAddress, u types.UserAccount) (bool, error) {
		gs.Users = append(gs.Users, u)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.PositionsByOwner.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, uint32]) (bool, error) {
		pos, err := k.Positions.Get(ctx, types.StakePositionAddress(key.K1(), key.K2()))
		if err != nil {
			return true, err
		}
		gs.Positions = append(gs.Positions, pos.Normalize())
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
