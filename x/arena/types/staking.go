package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

const secondsPerDay = 86_400

// LockMultiplier maps a lock period to its stake multiplier.
func LockMultiplier(lockDays uint16) (uint16, error) {
	switch lockDays {
	case 7:
		return 10_500, nil
	case 14:
		return 11_000, nil
	case 30:
		return 12_000, nil
	}
	return 0, errorsmod.Wrapf(ErrInvalidLock, "%d days", lockDays)
}

// EffectiveStake is amount * lockBps * boostBps / 10000 / 10000.
func EffectiveStake(amount uint64, lockBps, boostBps uint16) (sdkmath.Uint, error) {
	r := new(big.Int).SetUint64(amount)
	r.Mul(r, big.NewInt(int64(lockBps)))
	r.Mul(r, big.NewInt(int64(boostBps)))
	r.Quo(r, big.NewInt(BpsDenominator))
	r.Quo(r, big.NewInt(BpsDenominator))
	return fromBig(r)
}

// StakingPool is the pool-wide reward-per-share ledger.
type StakingPool struct {
	TotalEffectiveStake sdkmath.Uint `json:"total_effective_stake"`
	AccRewardPerShare   sdkmath.Uint `json:"acc_reward_per_share"`
	// AbsorbedInflow counts fee inflow that arrived while nothing was staked.
	AbsorbedInflow uint64 `json:"absorbed_inflow"`
}

func NewStakingPool() StakingPool {
	return StakingPool{
		TotalEffectiveStake: sdkmath.ZeroUint(),
		AccRewardPerShare:   sdkmath.ZeroUint(),
	}
}

// Normalize replaces nil amounts with zero.
func (p StakingPool) Normalize() StakingPool {
	if p.TotalEffectiveStake.IsNil() {
		p.TotalEffectiveStake = sdkmath.ZeroUint()
	}
	if p.AccRewardPerShare.IsNil() {
		p.AccRewardPerShare = sdkmath.ZeroUint()
	}
	return p
}

// Distribute spreads inflow over the current effective stake. With nothing
// staked the inflow is absorbed and reported as such. On error the pool is
// unchanged.
func (p *StakingPool) Distribute(inflow uint64) (absorbed bool, err error) {
	if inflow == 0 {
		return false, nil
	}
	if p.TotalEffectiveStake.IsNil() || p.TotalEffectiveStake.IsZero() {
		p.AbsorbedInflow = saturatingAddUint64(p.AbsorbedInflow, inflow)
		return true, nil
	}
	delta, err := mulDiv(sdkmath.NewUint(inflow), RewardPrecision, p.TotalEffectiveStake)
	if err != nil {
		return false, err
	}
	acc, err := checkedAdd(p.AccRewardPerShare, delta)
	if err != nil {
		return false, err
	}
	p.AccRewardPerShare = acc
	return false, nil
}

func (p *StakingPool) AddStake(effective sdkmath.Uint) error {
	total, err := checkedAdd(p.TotalEffectiveStake, effective)
	if err != nil {
		return err
	}
	p.TotalEffectiveStake = total
	return nil
}

func (p *StakingPool) RemoveStake(effective sdkmath.Uint) {
	p.TotalEffectiveStake = saturatingSub(p.TotalEffectiveStake, effective)
}

func (p StakingPool) Validate() error {
	if _, err := fromBig(bigOf(p.TotalEffectiveStake)); err != nil {
		return err
	}
	if _, err := fromBig(bigOf(p.AccRewardPerShare)); err != nil {
		return err
	}
	return nil
}

// StakePosition is one locked stake of a user.
type StakePosition struct {
	Owner              string       `json:"owner"`
	PositionID         uint32       `json:"position_id"`
	AmountStaked       uint64       `json:"amount_staked"`
	LockMultiplierBps  uint16       `json:"lock_multiplier_bps"`
	BoostMultiplierBps uint16       `json:"boost_multiplier_bps"`
	EffectiveStake     sdkmath.Uint `json:"effective_stake"`
	RewardDebt         sdkmath.Uint `json:"reward_debt"`
	LockUntil          int64        `json:"lock_until"`
	StakedAt           int64        `json:"staked_at"`
}

// NewStakePosition opens a position whose debt is baselined at acc, so it
// earns nothing accrued before it existed.
func NewStakePosition(owner string, id uint32, amount uint64, lockDays uint16, boostBps uint16, now int64, acc sdkmath.Uint) (StakePosition, error) {
	if amount == 0 {
		return StakePosition{}, errorsmod.Wrap(ErrInvalidRequest, "stake amount must be positive")
	}
	lockBps, err := LockMultiplier(lockDays)
	if err != nil {
		return StakePosition{}, err
	}
	if boostBps < BpsDenominator {
		return StakePosition{}, errorsmod.Wrapf(ErrInvalidBps, "boost multiplier %d", boostBps)
	}
	eff, err := EffectiveStake(amount, lockBps, boostBps)
	if err != nil {
		return StakePosition{}, err
	}
	pos := StakePosition{
		Owner:              owner,
		PositionID:         id,
		AmountStaked:       amount,
		LockMultiplierBps:  lockBps,
		BoostMultiplierBps: boostBps,
		EffectiveStake:     eff,
		RewardDebt:         sdkmath.ZeroUint(),
		LockUntil:          now + int64(lockDays)*secondsPerDay,
		StakedAt:           now,
	}
	if pos.RewardDebt, err = pos.Accumulated(acc); err != nil {
		return StakePosition{}, err
	}
	return pos, nil
}

// Accumulated is effective * acc / RewardPrecision.
func (p StakePosition) Accumulated(acc sdkmath.Uint) (sdkmath.Uint, error) {
	return mulDiv(p.EffectiveStake, acc, RewardPrecision)
}

// Pending returns the rewards earned since the last settlement.
func (p StakePosition) Pending(acc sdkmath.Uint) (uint64, error) {
	accumulated, err := p.Accumulated(acc)
	if err != nil {
		return 0, err
	}
	return clampUint64(bigOf(saturatingSub(accumulated, p.RewardDebt))), nil
}

// Settle returns the pending reward and re-baselines the debt at acc. On
// error the position is unchanged.
func (p *StakePosition) Settle(acc sdkmath.Uint) (uint64, error) {
	accumulated, err := p.Accumulated(acc)
	if err != nil {
		return 0, err
	}
	pending := clampUint64(bigOf(saturatingSub(accumulated, p.RewardDebt)))
	p.RewardDebt = accumulated
	return pending, nil
}

// Close zeroes principal, effective stake and debt.
func (p *StakePosition) Close() {
	p.AmountStaked = 0
	p.EffectiveStake = sdkmath.ZeroUint()
	p.RewardDebt = sdkmath.ZeroUint()
}

func (p StakePosition) Closed() bool {
	return p.AmountStaked == 0 && (p.EffectiveStake.IsNil() || p.EffectiveStake.IsZero())
}

func (p StakePosition) Unlocked(now int64) bool {
	return now >= p.LockUntil
}

// Normalize replaces nil amounts with zero.
func (p StakePosition) Normalize() StakePosition {
	if p.EffectiveStake.IsNil() {
		p.EffectiveStake = sdkmath.ZeroUint()
	}
	if p.RewardDebt.IsNil() {
		p.RewardDebt = sdkmath.ZeroUint()
	}
	return p
}
