package types

import errorsmod "cosmossdk.io/errors"

const NumRigs = 4

const (
	xntUnit  uint64 = 1_000_000_000
	gameUnit uint64 = 100
)

// RigTier is one entry of the fixed rig catalog. Costs are in XNT minor
// units, rewards in GAME minor units.
type RigTier struct {
	ID             uint8  `json:"id"`
	BaseCost       uint64 `json:"base_cost"`
	BaseRewardLow  uint64 `json:"base_reward_low"`
	BaseRewardHigh uint64 `json:"base_reward_high"`
	ProbHighBps    uint16 `json:"prob_high_bps"`
	Points         uint64 `json:"points"`
}

var rigCatalog = [NumRigs]RigTier{
	{ID: 0, BaseCost: xntUnit / 20, BaseRewardLow: gameUnit / 2, BaseRewardHigh: gameUnit, ProbHighBps: 5000, Points: 1},
	{ID: 1, BaseCost: xntUnit / 4, BaseRewardLow: gameUnit * 3, BaseRewardHigh: gameUnit * 4, ProbHighBps: 5000, Points: 3},
	{ID: 2, BaseCost: xntUnit, BaseRewardLow: gameUnit * 14, BaseRewardHigh: gameUnit * 16, ProbHighBps: 5000, Points: 7},
	{ID: 3, BaseCost: xntUnit * 3, BaseRewardLow: gameUnit * 42, BaseRewardHigh: gameUnit * 48, ProbHighBps: 5000, Points: 12},
}

// LookupRig returns the tier for id.
func LookupRig(id uint8) (RigTier, error) {
	if int(id) >= NumRigs {
		return RigTier{}, errorsmod.Wrapf(ErrInvalidRig, "rig %d", id)
	}
	return rigCatalog[id], nil
}

// Rigs returns a copy of the whole catalog.
func Rigs() []RigTier {
	out := make([]RigTier, NumRigs)
	copy(out, rigCatalog[:])
	return out
}

func (r RigTier) RewardLow(halvingLevel uint64) uint64 {
	return halve(r.BaseRewardLow, halvingLevel)
}

func (r RigTier) RewardHigh(halvingLevel uint64) uint64 {
	return halve(r.BaseRewardHigh, halvingLevel)
}

// halve shifts base right by level; past the bit width the reward is zero.
func halve(base, level uint64) uint64 {
	if level >= 64 {
		return 0
	}
	return base >> level
}
