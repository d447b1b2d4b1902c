package types

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	errorsmod "cosmossdk.io/errors"
)

// MaxActiveBoosts bounds the active boost list of a single user.
const MaxActiveBoosts = 8

// BoostKind selects what a boost modifies.
type BoostKind uint8

const (
	BoostMiningReward BoostKind = iota
	BoostMiningPoints
	BoostFreeRigTicket
	BoostStakingMultiplier
)

var boostKindNames = map[BoostKind]string{
	BoostMiningReward:      "mining_reward",
	BoostMiningPoints:      "mining_points",
	BoostFreeRigTicket:     "free_rig_ticket",
	BoostStakingMultiplier: "staking_multiplier",
}

func (k BoostKind) String() string {
	if name, ok := boostKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("boost_kind(%d)", uint8(k))
}

func (k BoostKind) Valid() bool {
	_, ok := boostKindNames[k]
	return ok
}

// ParseBoostKind accepts the names produced by String.
func ParseBoostKind(s string) (BoostKind, error) {
	for k, name := range boostKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errorsmod.Wrapf(ErrInvalidBoostKind, "%q", s)
}

func (k BoostKind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, errorsmod.Wrapf(ErrInvalidBoostKind, "%d", uint8(k))
	}
	return json.Marshal(k.String())
}

func (k *BoostKind) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParseBoostKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// AppliesToMining reports whether boosts of this kind act on mining runs.
func (k BoostKind) AppliesToMining() bool {
	switch k {
	case BoostMiningReward, BoostMiningPoints, BoostFreeRigTicket:
		return true
	case BoostStakingMultiplier:
		return false
	}
	return false
}

// AppliesToStaking reports whether boosts of this kind act on new stakes.
func (k BoostKind) AppliesToStaking() bool {
	switch k {
	case BoostStakingMultiplier:
		return true
	case BoostMiningReward, BoostMiningPoints, BoostFreeRigTicket:
		return false
	}
	return false
}

// BoostDefinition is an admin-maintained catalog entry players buy with points.
type BoostDefinition struct {
	ID              uint32    `json:"id"`
	Kind            BoostKind `json:"kind"`
	CostPoints      uint64    `json:"cost_points"`
	ValueBps        uint16    `json:"value_bps"`
	DurationSeconds int64     `json:"duration_seconds"`
	RigID           *uint8    `json:"rig_id,omitempty"`
}

func (d BoostDefinition) Validate() error {
	if !d.Kind.Valid() {
		return errorsmod.Wrapf(ErrInvalidBoostKind, "%d", uint8(d.Kind))
	}
	switch d.Kind {
	case BoostMiningReward, BoostMiningPoints:
		if d.ValueBps == 0 {
			return errorsmod.Wrapf(ErrInvalidBps, "%s boost needs a nonzero value", d.Kind)
		}
	case BoostStakingMultiplier:
		if d.ValueBps < BpsDenominator {
			return errorsmod.Wrapf(ErrInvalidBps, "staking multiplier %d below %d", d.ValueBps, BpsDenominator)
		}
	case BoostFreeRigTicket:
	}
	if d.DurationSeconds < 0 {
		return errorsmod.Wrapf(ErrInvalidRequest, "negative duration %d", d.DurationSeconds)
	}
	if d.RigID != nil {
		if _, err := LookupRig(*d.RigID); err != nil {
			return err
		}
	}
	return nil
}

// ActiveBoost is the snapshot of a definition taken when a player activates
// it. Later catalog edits never change it.
type ActiveBoost struct {
	BoostID          uint32    `json:"boost_id"`
	Kind             BoostKind `json:"kind"`
	ValueBps         uint16    `json:"value_bps"`
	ExpiresAt        int64     `json:"expires_at"`
	RigID            *uint8    `json:"rig_id,omitempty"`
	AppliedToMining  bool      `json:"applied_to_mining"`
	AppliedToStaking bool      `json:"applied_to_staking"`
}

// NewActiveBoost snapshots def at now.
func NewActiveBoost(def BoostDefinition, now int64) ActiveBoost {
	var expiresAt int64
	if def.DurationSeconds > 0 {
		if def.DurationSeconds > math.MaxInt64-now {
			expiresAt = math.MaxInt64
		} else {
			expiresAt = now + def.DurationSeconds
		}
	}
	var rig *uint8
	if def.RigID != nil {
		id := *def.RigID
		rig = &id
	}
	return ActiveBoost{
		BoostID:          def.ID,
		Kind:             def.Kind,
		ValueBps:         def.ValueBps,
		ExpiresAt:        expiresAt,
		RigID:            rig,
		AppliedToMining:  def.Kind.AppliesToMining(),
		AppliedToStaking: def.Kind.AppliesToStaking(),
	}
}

// Expired is true once a nonzero expiry lies strictly before now.
func (b ActiveBoost) Expired(now int64) bool {
	return b.ExpiresAt > 0 && b.ExpiresAt < now
}

func (b ActiveBoost) AppliesToRig(rigID uint8) bool {
	return b.RigID == nil || *b.RigID == rigID
}

// ActiveBoosts is a user's bounded boost list.
type ActiveBoosts []ActiveBoost

// Purge drops every expired entry and keeps the rest in order.
func (bs ActiveBoosts) Purge(now int64) ActiveBoosts {
	kept := bs[:0:0]
	for _, b := range bs {
		if !b.Expired(now) {
			kept = append(kept, b)
		}
	}
	return kept
}

// Add appends b, failing when the list is full. The receiver is never modified.
func (bs ActiveBoosts) Add(b ActiveBoost) (ActiveBoosts, error) {
	if len(bs) >= MaxActiveBoosts {
		return bs, errorsmod.Wrapf(ErrTooManyActiveBoosts, "%d active", len(bs))
	}
	out := make(ActiveBoosts, len(bs), len(bs)+1)
	copy(out, bs)
	return append(out, b), nil
}

// ConsumeFreeRig removes the first usable free rig ticket for rigID.
func (bs ActiveBoosts) ConsumeFreeRig(rigID uint8, now int64) (ActiveBoosts, bool) {
	for i, b := range bs {
		if b.Kind == BoostFreeRigTicket && !b.Expired(now) && b.AppliesToRig(rigID) {
			out := make(ActiveBoosts, 0, len(bs)-1)
			out = append(out, bs[:i]...)
			return append(out, bs[i+1:]...), true
		}
	}
	return bs, false
}

// MiningRewardMultiplier scales a rolled reward by every active reward boost.
func (bs ActiveBoosts) MiningRewardMultiplier(base uint64, now int64) uint64 {
	num := new(big.Int).SetUint64(base)
	den := big.NewInt(1)
	for _, b := range bs {
		if !b.AppliedToMining || b.Expired(now) {
			continue
		}
		switch b.Kind {
		case BoostMiningReward:
			num.Mul(num, big.NewInt(int64(b.ValueBps)))
			den.Mul(den, big.NewInt(BpsDenominator))
		case BoostMiningPoints, BoostFreeRigTicket, BoostStakingMultiplier:
		}
	}
	return clampUint64(num.Quo(num, den))
}

// MiningPointsMultiplier scales awarded points by every active points boost.
func (bs ActiveBoosts) MiningPointsMultiplier(base uint64, now int64) uint64 {
	num := new(big.Int).SetUint64(base)
	den := big.NewInt(1)
	for _, b := range bs {
		if !b.AppliedToMining || b.Expired(now) {
			continue
		}
		switch b.Kind {
		case BoostMiningPoints:
			num.Mul(num, big.NewInt(int64(b.ValueBps)))
			den.Mul(den, big.NewInt(BpsDenominator))
		case BoostMiningReward, BoostFreeRigTicket, BoostStakingMultiplier:
		}
	}
	return clampUint64(num.Quo(num, den))
}

// StakingMultiplier is the largest active staking boost, never below 10000.
func (bs ActiveBoosts) StakingMultiplier(now int64) uint16 {
	mult := uint16(BpsDenominator)
	for _, b := range bs {
		if !b.AppliedToStaking || b.Expired(now) {
			continue
		}
		switch b.Kind {
		case BoostStakingMultiplier:
			if b.ValueBps > mult {
				mult = b.ValueBps
			}
		case BoostMiningReward, BoostMiningPoints, BoostFreeRigTicket:
		}
	}
	return mult
}
