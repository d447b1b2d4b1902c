package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// SevenDayStreakDays is the streak length that unlocks the streak achievement.
const SevenDayStreakDays = 7

// Achievements is a bit set of one-time milestones.
type Achievements uint32

const (
	AchievementFirstMine Achievements = 1 << iota
	AchievementFirstStake
	AchievementSevenDayStreak
	AchievementHeavyOperator
)

var achievementNames = []struct {
	bit  Achievements
	name string
}{
	{AchievementFirstMine, "first_mine"},
	{AchievementFirstStake, "first_stake"},
	{AchievementSevenDayStreak, "seven_day_streak"},
	{AchievementHeavyOperator, "heavy_operator"},
}

func (a Achievements) Has(bit Achievements) bool { return a&bit == bit }

func (a Achievements) String() string {
	var names []string
	for _, an := range achievementNames {
		if a.Has(an.bit) {
			names = append(names, an.name)
		}
	}
	return strings.Join(names, ",")
}

// UserAccount is the per-player state. It is created lazily and bound to
// its owner on first write.
type UserAccount struct {
	Owner            string          `json:"owner"`
	BoostPoints      uint64          `json:"boost_points"`
	DailyPoints      uint64          `json:"daily_points"`
	LifetimePoints   uint64          `json:"lifetime_points"`
	LastDayID        int64           `json:"last_day_id"`
	StreakDays       uint32          `json:"streak_days"`
	MiningSpent      uint64          `json:"mining_spent"`
	MiningMinted     uint64          `json:"mining_minted"`
	MiningRunsByRig  [NumRigs]uint64 `json:"mining_runs_by_rig"`
	MiningCritCount  uint64          `json:"mining_crit_count"`
	StakingEarned    uint64          `json:"staking_earned"`
	StakingPrincipal uint64          `json:"staking_principal"`
	Achievements     Achievements    `json:"achievements"`
	NextPositionID   uint32          `json:"next_position_id"`
	ActiveBoosts     ActiveBoosts    `json:"active_boosts"`
}

func NewUserAccount(owner string) UserAccount {
	return UserAccount{Owner: owner, NextPositionID: 1}
}

// Authorize binds an unowned account to signer, or checks the existing owner.
func (u *UserAccount) Authorize(signer string) error {
	if u.Owner == "" {
		u.Owner = signer
		return nil
	}
	if u.Owner != signer {
		return errorsmod.Wrapf(ErrUnauthorized, "account owned by %s", u.Owner)
	}
	return nil
}

// ActivateBoost buys def with boost points. On error the account is unchanged.
func (u *UserAccount) ActivateBoost(def BoostDefinition, now int64) (ActiveBoost, error) {
	if len(u.ActiveBoosts) >= MaxActiveBoosts {
		return ActiveBoost{}, errorsmod.Wrapf(ErrTooManyActiveBoosts, "%d active", len(u.ActiveBoosts))
	}
	if u.BoostPoints < def.CostPoints {
		return ActiveBoost{}, errorsmod.Wrapf(ErrInsufficientBoostPoints, "have %d, need %d", u.BoostPoints, def.CostPoints)
	}
	ab := NewActiveBoost(def, now)
	boosts, err := u.ActiveBoosts.Add(ab)
	if err != nil {
		return ActiveBoost{}, err
	}
	u.BoostPoints -= def.CostPoints
	u.ActiveBoosts = boosts
	return ab, nil
}

func (u *UserAccount) AwardPoints(points uint64) {
	u.DailyPoints = saturatingAddUint64(u.DailyPoints, points)
	u.LifetimePoints = saturatingAddUint64(u.LifetimePoints, points)
}

func (u *UserAccount) AddBoostPoints(points uint64) {
	u.BoostPoints = saturatingAddUint64(u.BoostPoints, points)
}

// RecordMiningRun updates mining statistics and mining achievements.
func (u *UserAccount) RecordMiningRun(rigID uint8, spent, minted uint64, crit bool) {
	u.MiningSpent = saturatingAddUint64(u.MiningSpent, spent)
	u.MiningMinted = saturatingAddUint64(u.MiningMinted, minted)
	u.MiningRunsByRig[rigID] = saturatingAddUint64(u.MiningRunsByRig[rigID], 1)
	if crit {
		u.MiningCritCount = saturatingAddUint64(u.MiningCritCount, 1)
	}
	u.Achievements |= AchievementFirstMine
	if rigID == NumRigs-1 {
		u.Achievements |= AchievementHeavyOperator
	}
}

// CloseDay ends the scoring day. A day with points that directly follows the
// previous reset extends the streak; any other day with points starts a new
// one, and a day without points breaks it.
func (u *UserAccount) CloseDay(dayID int64) {
	switch {
	case u.DailyPoints == 0:
		u.StreakDays = 0
	case u.LastDayID != 0 && dayID == u.LastDayID+1:
		u.StreakDays++
	default:
		u.StreakDays = 1
	}
	if u.StreakDays >= SevenDayStreakDays {
		u.Achievements |= AchievementSevenDayStreak
	}
	u.DailyPoints = 0
	u.LastDayID = dayID
}

// AllocatePositionID hands out the next multi-position id.
func (u *UserAccount) AllocatePositionID() (uint32, error) {
	if u.NextPositionID == 0 {
		u.NextPositionID = 1
	}
	id := u.NextPositionID
	if id == ^uint32(0) {
		return 0, errorsmod.Wrap(ErrMathOverflow, "position id space exhausted")
	}
	u.NextPositionID++
	return id, nil
}

// Clone returns a deep copy so callers can compute on it before committing.
func (u UserAccount) Clone() UserAccount {
	out := u
	out.ActiveBoosts = make(ActiveBoosts, len(u.ActiveBoosts))
	copy(out.ActiveBoosts, u.ActiveBoosts)
	return out
}
