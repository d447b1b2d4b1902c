package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the full exported module state. A nil StakingPool means
// the pool has not been initialized yet.
type GenesisState struct {
	Params              Params            `json:"params"`
	Emission            EmissionState     `json:"emission"`
	TreasuryInitialized bool              `json:"treasury_initialized"`
	StakingPool         *StakingPool      `json:"staking_pool,omitempty"`
	BoostDefinitions    []BoostDefinition `json:"boost_definitions"`
	Users               []UserAccount     `json:"users"`
	Positions           []StakePosition   `json:"positions"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Emission: NewEmissionState(DefaultHalvingInterval),
	}
}

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.Emission.Validate(); err != nil {
		return err
	}
	if gs.StakingPool != nil {
		if !gs.TreasuryInitialized {
			return errorsmod.Wrap(ErrIncompleteConfig, "staking pool requires the treasury")
		}
		if err := gs.StakingPool.Validate(); err != nil {
			return err
		}
	}

	boostIDs := make(map[uint32]struct{}, len(gs.BoostDefinitions))
	for _, def := range gs.BoostDefinitions {
		if _, dup := boostIDs[def.ID]; dup {
			return errorsmod.Wrapf(ErrInvalidRequest, "duplicate boost definition %d", def.ID)
		}
		boostIDs[def.ID] = struct{}{}
		if err := def.Validate(); err != nil {
			return errorsmod.Wrapf(err, "boost definition %d", def.ID)
		}
	}

	users := make(map[string]struct{}, len(gs.Users))
	for _, u := range gs.Users {
		if err := validateAddress("user owner", u.Owner); err != nil {
			return err
		}
		if _, dup := users[u.Owner]; dup {
			return errorsmod.Wrapf(ErrInvalidRequest, "duplicate user %s", u.Owner)
		}
		users[u.Owner] = struct{}{}
		if len(u.ActiveBoosts) > MaxActiveBoosts {
			return errorsmod.Wrapf(ErrTooManyActiveBoosts, "user %s holds %d", u.Owner, len(u.ActiveBoosts))
		}
	}

	if len(gs.Positions) > 0 && gs.StakingPool == nil {
		return errorsmod.Wrap(ErrIncompleteConfig, "positions without a staking pool")
	}
	total := sdkmath.ZeroUint()
	positions := make(map[string]struct{}, len(gs.Positions))
	for _, p := range gs.Positions {
		if err := validateAddress("position owner", p.Owner); err != nil {
			return err
		}
		key := fmt.Sprintf("%s/%d", p.Owner, p.PositionID)
		if _, dup := positions[key]; dup {
			return errorsmod.Wrapf(ErrInvalidRequest, "duplicate position %s", key)
		}
		positions[key] = struct{}{}
		p = p.Normalize()
		if p.Closed() {
			continue
		}
		var err error
		if total, err = checkedAdd(total, p.EffectiveStake); err != nil {
			return err
		}
	}
	if gs.StakingPool != nil {
		pool := gs.StakingPool.Normalize()
		if !pool.TotalEffectiveStake.Equal(total) {
			return errorsmod.Wrapf(ErrStakeTotalMismatch, "pool total %s, open positions %s",
				pool.TotalEffectiveStake, total)
		}
	}
	return nil
}

// OwnerAddress parses the owner of p.
func (p StakePosition) OwnerAddress() (sdk.AccAddress, error) {
	return sdk.AccAddressFromBech32(p.Owner)
}
