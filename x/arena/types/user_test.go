package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func TestUserAuthorize(t *testing.T) {
	var u types.UserAccount
	require.NoError(t, u.Authorize("alice"))
	require.Equal(t, "alice", u.Owner)
	require.NoError(t, u.Authorize("alice"))
	require.ErrorIs(t, u.Authorize("bob"), types.ErrUnauthorized)
	require.Equal(t, "alice", u.Owner)
}

func TestUserActivateBoost(t *testing.T) {
	u := types.NewUserAccount("alice")
	def := types.BoostDefinition{ID: 1, Kind: types.BoostMiningReward, CostPoints: 30, ValueBps: 12_000, DurationSeconds: 60}

	_, err := u.ActivateBoost(def, 100)
	require.ErrorIs(t, err, types.ErrInsufficientBoostPoints)
	require.Empty(t, u.ActiveBoosts)

	u.AddBoostPoints(100)
	ab, err := u.ActivateBoost(def, 100)
	require.NoError(t, err)
	require.Equal(t, uint64(70), u.BoostPoints)
	require.Equal(t, int64(160), ab.ExpiresAt)
	require.Len(t, u.ActiveBoosts, 1)
}

func TestUserActivateBoostFullListUnchanged(t *testing.T) {
	u := types.NewUserAccount("alice")
	u.AddBoostPoints(1000)
	def := types.BoostDefinition{ID: 1, Kind: types.BoostMiningPoints, CostPoints: 10, ValueBps: 11_000}
	for i := 0; i < types.MaxActiveBoosts; i++ {
		_, err := u.ActivateBoost(def, 0)
		require.NoError(t, err)
	}
	snapshot := u.Clone()

	_, err := u.ActivateBoost(def, 0)
	require.ErrorIs(t, err, types.ErrTooManyActiveBoosts)
	require.Equal(t, snapshot, u)
	require.Equal(t, uint64(920), u.BoostPoints)
}

func TestUserRecordMiningRun(t *testing.T) {
	u := types.NewUserAccount("alice")
	u.RecordMiningRun(0, 50, 100, true)
	require.True(t, u.Achievements.Has(types.AchievementFirstMine))
	require.False(t, u.Achievements.Has(types.AchievementHeavyOperator))

	u.RecordMiningRun(3, 0, 4200, false)
	require.True(t, u.Achievements.Has(types.AchievementHeavyOperator))
	require.Equal(t, [types.NumRigs]uint64{1, 0, 0, 1}, u.MiningRunsByRig)
	require.Equal(t, uint64(50), u.MiningSpent)
	require.Equal(t, uint64(4300), u.MiningMinted)
	require.Equal(t, uint64(1), u.MiningCritCount)
	require.Equal(t, "first_mine,heavy_operator", u.Achievements.String())
}

func TestUserCloseDayStreak(t *testing.T) {
	u := types.NewUserAccount("alice")
	for day := int64(1); day <= 7; day++ {
		u.AwardPoints(5)
		u.CloseDay(day)
		require.Equal(t, uint32(day), u.StreakDays)
		require.Zero(t, u.DailyPoints)
		require.Equal(t, day, u.LastDayID)
	}
	require.True(t, u.Achievements.Has(types.AchievementSevenDayStreak))
	require.Equal(t, uint64(35), u.LifetimePoints)

	// gap restarts the streak
	u.AwardPoints(1)
	u.CloseDay(10)
	require.Equal(t, uint32(1), u.StreakDays)

	// an empty day breaks it
	u.CloseDay(11)
	require.Zero(t, u.StreakDays)
	require.True(t, u.Achievements.Has(types.AchievementSevenDayStreak))
}

func TestUserAllocatePositionID(t *testing.T) {
	u := types.NewUserAccount("alice")
	for want := uint32(1); want <= 3; want++ {
		id, err := u.AllocatePositionID()
		require.NoError(t, err)
		require.Equal(t, want, id)
	}

	var legacy types.UserAccount
	id, err := legacy.AllocatePositionID()
	require.NoError(t, err)
	require.Equal(t, uint32(1), id)

	u.NextPositionID = ^uint32(0)
	_, err = u.AllocatePositionID()
	require.ErrorIs(t, err, types.ErrMathOverflow)
}
