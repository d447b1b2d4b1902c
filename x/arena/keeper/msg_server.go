package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

type MsgServer struct {
	keeper Keeper
}

func NewMsgServerImpl(k Keeper) *MsgServer {
	return &MsgServer{keeper: k}
}

func parseAddress(field, addr string) (sdk.AccAddress, error) {
	a, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidAddress, "%s: %s", field, err)
	}
	return a, nil
}

// MineWithRig runs one mining round for the signer
func (ms *MsgServer) MineWithRig(ctx context.Context, msg *types.MsgMineWithRig) (*types.MsgMineWithRigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	player, err := parseAddress("player", msg.Player)
	if err != nil {
		return nil, err
	}
	res, err := ms.keeper.MineWithRig(ctx, player, msg.RigID)
	if err != nil {
		return nil, err
	}
	return &types.MsgMineWithRigResponse{
		Deposit:     res.Deposit,
		Reward:      res.Reward,
		Points:      res.Points,
		UsedFreeRig: res.UsedFreeRig,
		Critical:    res.Critical,
	}, nil
}

// Stake opens a new locked position
func (ms *MsgServer) Stake(ctx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := parseAddress("owner", msg.Owner)
	if err != nil {
		return nil, err
	}
	pos, addr, err := ms.keeper.Stake(ctx, owner, msg.Amount, msg.LockDays)
	if err != nil {
		return nil, err
	}
	return &types.MsgStakeResponse{
		PositionID:     pos.PositionID,
		Position:       addr.String(),
		EffectiveStake: pos.EffectiveStake.String(),
		LockUntil:      pos.LockUntil,
	}, nil
}

// Claim pays pending staking rewards
func (ms *MsgServer) Claim(ctx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := parseAddress("owner", msg.Owner)
	if err != nil {
		return nil, err
	}
	position, err := parseAddress("position", msg.Position)
	if err != nil {
		return nil, err
	}
	claimed, err := ms.keeper.Claim(ctx, owner, msg.PositionID, position)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{Claimed: claimed}, nil
}

// Unstake closes an unlocked position
func (ms *MsgServer) Unstake(ctx context.Context, msg *types.MsgUnstake) (*types.MsgUnstakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := parseAddress("owner", msg.Owner)
	if err != nil {
		return nil, err
	}
	position, err := parseAddress("position", msg.Position)
	if err != nil {
		return nil, err
	}
	claimed, returned, err := ms.keeper.Unstake(ctx, owner, msg.PositionID, position)
	if err != nil {
		return nil, err
	}
	return &types.MsgUnstakeResponse{Claimed: claimed, Returned: returned}, nil
}

func (ms *MsgServer) ActivateBoost(ctx context.Context, msg *types.MsgActivateBoost) (*types.MsgActivateBoostResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	user, err := parseAddress("user", msg.User)
	if err != nil {
		return nil, err
	}
	ab, err := ms.keeper.ActivateBoost(ctx, user, msg.BoostID)
	if err != nil {
		return nil, err
	}
	return &types.MsgActivateBoostResponse{Boost: ab}, nil
}

func (ms *MsgServer) InitializeTreasury(ctx context.Context, msg *types.MsgInitializeTreasury) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.InitializeTreasury(ctx, msg.Admin)
}

func (ms *MsgServer) InitializeStakingPool(ctx context.Context, msg *types.MsgInitializeStakingPool) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.InitializeStakingPool(ctx, msg.Admin)
}

func (ms *MsgServer) UpsertBoostDefinition(ctx context.Context, msg *types.MsgUpsertBoostDefinition) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.UpsertBoostDefinition(ctx, msg.Admin, msg.Definition)
}

func (ms *MsgServer) ApplyRankingResults(ctx context.Context, msg *types.MsgApplyRankingResults) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	user, err := parseAddress("user", msg.User)
	if err != nil {
		return err
	}
	return ms.keeper.ApplyRankingResults(ctx, msg.Admin, user, msg.Points)
}

func (ms *MsgServer) ResetDailyPoints(ctx context.Context, msg *types.MsgResetDailyPoints) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	user, err := parseAddress("user", msg.User)
	if err != nil {
		return err
	}
	return ms.keeper.ResetDailyPoints(ctx, msg.Admin, user, msg.DayID)
}

func (ms *MsgServer) UpdateHalving(ctx context.Context, msg *types.MsgUpdateHalving) (uint64, error) {
	if err := msg.ValidateBasic(); err != nil {
		return 0, err
	}
	return ms.keeper.UpdateHalving(ctx, msg.Admin)
}

func (ms *MsgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.UpdateParams(ctx, msg.Authority, msg.Params)
}
