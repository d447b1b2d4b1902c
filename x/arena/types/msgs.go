package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgMineWithRig           = "mine_with_rig"
	TypeMsgStake                 = "stake"
	TypeMsgClaim                 = "claim"
	TypeMsgUnstake               = "unstake"
	TypeMsgActivateBoost         = "activate_boost"
	TypeMsgInitializeTreasury    = "initialize_treasury"
	TypeMsgInitializeStakingPool = "initialize_staking_pool"
	TypeMsgUpsertBoostDefinition = "upsert_boost_definition"
	TypeMsgApplyRankingResults   = "apply_ranking_results"
	TypeMsgResetDailyPoints      = "reset_daily_points"
	TypeMsgUpdateHalving         = "update_halving"
	TypeMsgUpdateParams          = "update_params"
)

func validateAddress(field, addr string) error {
	if addr == "" {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s cannot be empty", field)
	}
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s: %s", field, err)
	}
	return nil
}

func signers(addr string) []sdk.AccAddress {
	a, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{a}
}

func signBytes(msg any) []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgMineWithRig runs one mining round on a rig.
type MsgMineWithRig struct {
	Player string `json:"player"`
	RigID  uint8  `json:"rig_id"`
}

type MsgMineWithRigResponse struct {
	Deposit     uint64 `json:"deposit"`
	Reward      uint64 `json:"reward"`
	Points      uint64 `json:"points"`
	UsedFreeRig bool   `json:"used_free_rig"`
	Critical    bool   `json:"critical"`
}

func (msg MsgMineWithRig) Route() string { return ModuleName }
func (msg MsgMineWithRig) Type() string  { return TypeMsgMineWithRig }
func (msg MsgMineWithRig) ValidateBasic() error {
	if err := validateAddress("player", msg.Player); err != nil {
		return err
	}
	_, err := LookupRig(msg.RigID)
	return err
}
func (msg MsgMineWithRig) GetSigners() []sdk.AccAddress { return signers(msg.Player) }
func (msg MsgMineWithRig) GetSignBytes() []byte         { return signBytes(msg) }

// MsgStake locks GAME for LockDays and opens a new position.
type MsgStake struct {
	Owner    string `json:"owner"`
	Amount   uint64 `json:"amount"`
	LockDays uint16 `json:"lock_days"`
}

type MsgStakeResponse struct {
	PositionID     uint32 `json:"position_id"`
	Position       string `json:"position"`
	EffectiveStake string `json:"effective_stake"`
	LockUntil      int64  `json:"lock_until"`
}

func (msg MsgStake) Route() string { return ModuleName }
func (msg MsgStake) Type() string  { return TypeMsgStake }
func (msg MsgStake) ValidateBasic() error {
	if err := validateAddress("owner", msg.Owner); err != nil {
		return err
	}
	if msg.Amount == 0 {
		return errorsmod.Wrap(ErrInvalidRequest, "stake amount must be positive")
	}
	_, err := LockMultiplier(msg.LockDays)
	return err
}
func (msg MsgStake) GetSigners() []sdk.AccAddress { return signers(msg.Owner) }
func (msg MsgStake) GetSignBytes() []byte         { return signBytes(msg) }

// MsgClaim pays out the pending rewards of a position.
type MsgClaim struct {
	Owner      string `json:"owner"`
	PositionID uint32 `json:"position_id"`
	Position   string `json:"position"`
}

type MsgClaimResponse struct {
	Claimed uint64 `json:"claimed"`
}

func (msg MsgClaim) Route() string { return ModuleName }
func (msg MsgClaim) Type() string  { return TypeMsgClaim }
func (msg MsgClaim) ValidateBasic() error {
	if err := validateAddress("owner", msg.Owner); err != nil {
		return err
	}
	return validateAddress("position", msg.Position)
}
func (msg MsgClaim) GetSigners() []sdk.AccAddress { return signers(msg.Owner) }
func (msg MsgClaim) GetSignBytes() []byte         { return signBytes(msg) }

// MsgUnstake settles and closes an unlocked position.
type MsgUnstake struct {
	Owner      string `json:"owner"`
	PositionID uint32 `json:"position_id"`
	Position   string `json:"position"`
}

type MsgUnstakeResponse struct {
	Claimed  uint64 `json:"claimed"`
	Returned uint64 `json:"returned"`
}

func (msg MsgUnstake) Route() string { return ModuleName }
func (msg MsgUnstake) Type() string  { return TypeMsgUnstake }
func (msg MsgUnstake) ValidateBasic() error {
	if err := validateAddress("owner", msg.Owner); err != nil {
		return err
	}
	return validateAddress("position", msg.Position)
}
func (msg MsgUnstake) GetSigners() []sdk.AccAddress { return signers(msg.Owner) }
func (msg MsgUnstake) GetSignBytes() []byte         { return signBytes(msg) }

// MsgActivateBoost buys a catalog boost with boost points.
type MsgActivateBoost struct {
	User    string `json:"user"`
	BoostID uint32 `json:"boost_id"`
}

type MsgActivateBoostResponse struct {
	Boost ActiveBoost `json:"boost"`
}

func (msg MsgActivateBoost) Route() string { return ModuleName }
func (msg MsgActivateBoost) Type() string  { return TypeMsgActivateBoost }
func (msg MsgActivateBoost) ValidateBasic() error {
	return validateAddress("user", msg.User)
}
func (msg MsgActivateBoost) GetSigners() []sdk.AccAddress { return signers(msg.User) }
func (msg MsgActivateBoost) GetSignBytes() []byte         { return signBytes(msg) }

type MsgInitializeTreasury struct {
	Admin string `json:"admin"`
}

func (msg MsgInitializeTreasury) Route() string                { return ModuleName }
func (msg MsgInitializeTreasury) Type() string                 { return TypeMsgInitializeTreasury }
func (msg MsgInitializeTreasury) ValidateBasic() error         { return validateAddress("admin", msg.Admin) }
func (msg MsgInitializeTreasury) GetSigners() []sdk.AccAddress { return signers(msg.Admin) }
func (msg MsgInitializeTreasury) GetSignBytes() []byte         { return signBytes(msg) }

type MsgInitializeStakingPool struct {
	Admin string `json:"admin"`
}

func (msg MsgInitializeStakingPool) Route() string                { return ModuleName }
func (msg MsgInitializeStakingPool) Type() string                 { return TypeMsgInitializeStakingPool }
func (msg MsgInitializeStakingPool) ValidateBasic() error         { return validateAddress("admin", msg.Admin) }
func (msg MsgInitializeStakingPool) GetSigners() []sdk.AccAddress { return signers(msg.Admin) }
func (msg MsgInitializeStakingPool) GetSignBytes() []byte         { return signBytes(msg) }

// MsgUpsertBoostDefinition creates or replaces a catalog entry.
type MsgUpsertBoostDefinition struct {
	Admin      string          `json:"admin"`
	Definition BoostDefinition `json:"definition"`
}

func (msg MsgUpsertBoostDefinition) Route() string { return ModuleName }
func (msg MsgUpsertBoostDefinition) Type() string  { return TypeMsgUpsertBoostDefinition }
func (msg MsgUpsertBoostDefinition) ValidateBasic() error {
	if err := validateAddress("admin", msg.Admin); err != nil {
		return err
	}
	return msg.Definition.Validate()
}
func (msg MsgUpsertBoostDefinition) GetSigners() []sdk.AccAddress { return signers(msg.Admin) }
func (msg MsgUpsertBoostDefinition) GetSignBytes() []byte         { return signBytes(msg) }

// MsgApplyRankingResults credits spendable boost points to a user.
type MsgApplyRankingResults struct {
	Admin  string `json:"admin"`
	User   string `json:"user"`
	Points uint64 `json:"points"`
}

func (msg MsgApplyRankingResults) Route() string { return ModuleName }
func (msg MsgApplyRankingResults) Type() string  { return TypeMsgApplyRankingResults }
func (msg MsgApplyRankingResults) ValidateBasic() error {
	if err := validateAddress("admin", msg.Admin); err != nil {
		return err
	}
	return validateAddress("user", msg.User)
}
func (msg MsgApplyRankingResults) GetSigners() []sdk.AccAddress { return signers(msg.Admin) }
func (msg MsgApplyRankingResults) GetSignBytes() []byte         { return signBytes(msg) }

// MsgResetDailyPoints closes a user's scoring day.
type MsgResetDailyPoints struct {
	Admin string `json:"admin"`
	User  string `json:"user"`
	DayID int64  `json:"day_id"`
}

func (msg MsgResetDailyPoints) Route() string { return ModuleName }
func (msg MsgResetDailyPoints) Type() string  { return TypeMsgResetDailyPoints }
func (msg MsgResetDailyPoints) ValidateBasic() error {
	if err := validateAddress("admin", msg.Admin); err != nil {
		return err
	}
	return validateAddress("user", msg.User)
}
func (msg MsgResetDailyPoints) GetSigners() []sdk.AccAddress { return signers(msg.Admin) }
func (msg MsgResetDailyPoints) GetSignBytes() []byte         { return signBytes(msg) }

type MsgUpdateHalving struct {
	Admin string `json:"admin"`
}

func (msg MsgUpdateHalving) Route() string                { return ModuleName }
func (msg MsgUpdateHalving) Type() string                 { return TypeMsgUpdateHalving }
func (msg MsgUpdateHalving) ValidateBasic() error         { return validateAddress("admin", msg.Admin) }
func (msg MsgUpdateHalving) GetSigners() []sdk.AccAddress { return signers(msg.Admin) }
func (msg MsgUpdateHalving) GetSignBytes() []byte         { return signBytes(msg) }

// MsgUpdateParams replaces the module parameters. Only the module authority
// may send it.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (msg MsgUpdateParams) Route() string { return ModuleName }
func (msg MsgUpdateParams) Type() string  { return TypeMsgUpdateParams }
func (msg MsgUpdateParams) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}
	return msg.Params.Validate()
}
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress { return signers(msg.Authority) }
func (msg MsgUpdateParams) GetSignBytes() []byte         { return signBytes(msg) }
