package types

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	GameDecimals = 2
	XntDecimals  = 9

	BpsDenominator = 10_000

	DefaultHalvingInterval uint64 = 100_000_000 * 100
	DefaultStakingShareBps uint32 = 3000
	DefaultGameDenom              = "game"
	DefaultFeeDenom               = "xnt"
)

// Params are the module parameters set at genesis and changed only by the
// module authority.
type Params struct {
	Admin           string `json:"admin" yaml:"admin"`
	GameDenom       string `json:"game_denom" yaml:"game_denom"`
	FeeDenom        string `json:"fee_denom" yaml:"fee_denom"`
	StakingShareBps uint32 `json:"staking_share_bps" yaml:"staking_share_bps"`
}

func DefaultParams() Params {
	return Params{
		GameDenom:       DefaultGameDenom,
		FeeDenom:        DefaultFeeDenom,
		StakingShareBps: DefaultStakingShareBps,
	}
}

// WithDefaults substitutes defaults for unset fields, mirroring setup where a
// zero staking share means the default share.
func (p Params) WithDefaults() Params {
	if p.StakingShareBps == 0 {
		p.StakingShareBps = DefaultStakingShareBps
	}
	if p.GameDenom == "" {
		p.GameDenom = DefaultGameDenom
	}
	if p.FeeDenom == "" {
		p.FeeDenom = DefaultFeeDenom
	}
	return p
}

func (p Params) Validate() error {
	if p.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
			return errorsmod.Wrapf(ErrInvalidAddress, "admin: %s", err)
		}
	}
	if p.StakingShareBps > BpsDenominator {
		return errorsmod.Wrapf(ErrInvalidBps, "staking share %d exceeds %d", p.StakingShareBps, BpsDenominator)
	}
	if err := sdk.ValidateDenom(p.GameDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "game denom: %s", err)
	}
	if err := sdk.ValidateDenom(p.FeeDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "fee denom: %s", err)
	}
	if p.GameDenom == p.FeeDenom {
		return errorsmod.Wrap(ErrInvalidParams, "game and fee denoms must differ")
	}
	return nil
}
