package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// QueryServer answers read-only questions about arena state. Nothing here
// purges boosts or writes to the store.
type QueryServer struct {
	keeper Keeper
}

func NewQueryServerImpl(k Keeper) *QueryServer {
	return &QueryServer{keeper: k}
}

// Params returns module parameters
func (qs *QueryServer) Params(ctx context.Context) (types.Params, error) {
	return qs.keeper.GetParams(ctx)
}

func (qs *QueryServer) Emission(ctx context.Context) (types.EmissionState, error) {
	return qs.keeper.GetEmission(ctx)
}

// RigView is a rig tier with rewards at the current halving level.
type RigView struct {
	types.RigTier
	HalvingLevel uint64 `json:"halving_level"`
	RewardLow    uint64 `json:"reward_low"`
	RewardHigh   uint64 `json:"reward_high"`
}

// Rigs returns the catalog projected onto the current halving level
func (qs *QueryServer) Rigs(ctx context.Context) ([]RigView, error) {
	emission, err := qs.keeper.GetEmission(ctx)
	if err != nil {
		return nil, err
	}
	var out []RigView
	for _, rig := range types.Rigs() {
		out = append(out, RigView{
			RigTier:      rig,
			HalvingLevel: emission.HalvingLevel,
			RewardLow:    rig.RewardLow(emission.HalvingLevel),
			RewardHigh:   rig.RewardHigh(emission.HalvingLevel),
		})
	}
	return out, nil
}

func (qs *QueryServer) Pool(ctx context.Context) (types.StakingPool, error) {
	return qs.keeper.GetPool(ctx)
}

// User returns the stored account as is, expired boosts included
func (qs *QueryServer) User(ctx context.Context, addr sdk.AccAddress) (types.UserAccount, error) {
	u, err := qs.keeper.Users.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return u, errorsmod.Wrapf(types.ErrInvalidRequest, "no account for %s", addr)
	}
	return u, err
}

// StakingMultiplier previews the multiplier a new stake of addr would get
func (qs *QueryServer) StakingMultiplier(ctx context.Context, addr sdk.AccAddress) (uint16, error) {
	u, err := qs.keeper.getUser(ctx, addr)
	if err != nil {
		return 0, err
	}
	_, now := qs.keeper.now(ctx)
	return u.ActiveBoosts.StakingMultiplier(now), nil
}

func (qs *QueryServer) Position(ctx context.Context, addr sdk.AccAddress) (types.StakePosition, error) {
	pos, err := qs.keeper.Positions.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return pos, errorsmod.Wrapf(types.ErrPositionNotFound, "%s", addr)
	}
	return pos.Normalize(), err
}

// Positions lists every position of owner, closed ones included
func (qs *QueryServer) Positions(ctx context.Context, owner sdk.AccAddress) ([]types.StakePosition, error) {
	var out []types.StakePosition
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint32](owner)
	err := qs.keeper.PositionsByOwner.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, uint32]) (bool, error) {
		pos, err := qs.keeper.Positions.Get(ctx, types.StakePositionAddress(key.K1(), key.K2()))
		if err != nil {
			return true, err
		}
		out = append(out, pos.Normalize())
		return false, nil
	})
	return out, err
}

func (qs *QueryServer) PendingRewards(ctx context.Context, addr sdk.AccAddress) (uint64, error) {
	return qs.keeper.PendingRewards(ctx, addr)
}

func (qs *QueryServer) BoostDefinitions(ctx context.Context) ([]types.BoostDefinition, error) {
	var out []types.BoostDefinition
	err := qs.keeper.BoostDefinitions.Walk(ctx, nil, func(_ uint32, def types.BoostDefinition) (bool, error) {
		out = append(out, def)
		return false, nil
	})
	return out, err
}
