package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Wielop1/x1-mining-arena/x/arena/testutil"
	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

var pointsBoost = types.BoostDefinition{
	ID: 1, Kind: types.BoostMiningPoints, CostPoints: 1, ValueBps: 20_000, DurationSeconds: 60,
}

func TestActivateBoostUnknown(t *testing.T) {
	env := setup(t)
	_, err := env.Keeper.ActivateBoost(env.Ctx, testutil.Addr("alice"), 42)
	require.ErrorIs(t, err, types.ErrBoostNotFound)
}

func TestActivateBoostNeedsPoints(t *testing.T) {
	env := setup(t)
	upsertBoost(t, env, pointsBoost)
	alice := testutil.Addr("alice")

	_, err := env.Keeper.ActivateBoost(env.Ctx, alice, pointsBoost.ID)
	require.ErrorIs(t, err, types.ErrInsufficientBoostPoints)
	has, err := env.Keeper.Users.Has(env.Ctx, alice)
	require.NoError(t, err)
	require.False(t, has)
}

func TestActivateBoost(t *testing.T) {
	env := setup(t)
	upsertBoost(t, env, pointsBoost)
	alice := testutil.Addr("alice")
	require.NoError(t, env.Keeper.ApplyRankingResults(env.Ctx, env.Admin.String(), alice, 5))

	ab, err := env.Keeper.ActivateBoost(env.Ctx, alice, pointsBoost.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.GenesisTime.Unix()+60, ab.ExpiresAt)
	require.True(t, ab.AppliedToMining)
	require.False(t, ab.AppliedToStaking)

	user, err := env.Queries.User(env.Ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(4), user.BoostPoints)
	require.Equal(t, alice.String(), user.Owner)
	require.Len(t, user.ActiveBoosts, 1)

	events := env.Events.OfType(types.EventTypeBoostActivated)
	require.Len(t, events, 1)
	require.Equal(t, "1", events[0].Attributes[types.AttributeKeyBoostID])
}

func TestActivateBoostCapacity(t *testing.T) {
	env := setup(t)
	upsertBoost(t, env, pointsBoost)
	alice := testutil.Addr("alice")
	require.NoError(t, env.Keeper.ApplyRankingResults(env.Ctx, env.Admin.String(), alice, types.MaxActiveBoosts+1))

	for i := 0; i < types.MaxActiveBoosts; i++ {
		_, err := env.Keeper.ActivateBoost(env.Ctx, alice, pointsBoost.ID)
		require.NoError(t, err)
	}
	_, err := env.Keeper.ActivateBoost(env.Ctx, alice, pointsBoost.ID)
	require.ErrorIs(t, err, types.ErrTooManyActiveBoosts)

	user, err := env.Queries.User(env.Ctx, alice)
	require.NoError(t, err)
	require.Len(t, user.ActiveBoosts, types.MaxActiveBoosts)
	require.Equal(t, uint64(1), user.BoostPoints)

	// expired entries free their slots on the next write
	env.Header.Advance(time.Hour)
	_, err = env.Keeper.ActivateBoost(env.Ctx, alice, pointsBoost.ID)
	require.NoError(t, err)
	user, err = env.Queries.User(env.Ctx, alice)
	require.NoError(t, err)
	require.Len(t, user.ActiveBoosts, 1)
	require.Zero(t, user.BoostPoints)
}

func TestQueriesDoNotPurgeBoosts(t *testing.T) {
	env := setup(t)
	upsertBoost(t, env, pointsBoost)
	buyBoost(t, env, "alice", pointsBoost)
	alice := testutil.Addr("alice")

	env.Header.Advance(time.Hour)
	user, err := env.Queries.User(env.Ctx, alice)
	require.NoError(t, err)
	require.Len(t, user.ActiveBoosts, 1)

	require.NoError(t, env.Keeper.ApplyRankingResults(env.Ctx, env.Admin.String(), alice, 1))
	user, err = env.Queries.User(env.Ctx, alice)
	require.NoError(t, err)
	require.Empty(t, user.ActiveBoosts)
}

func TestUpsertBoostDefinition(t *testing.T) {
	env := setup(t)
	reward := types.BoostDefinition{ID: 3, Kind: types.BoostMiningReward, CostPoints: 2, ValueBps: 20_000}

	err := env.Keeper.UpsertBoostDefinition(env.Ctx, testutil.Addr("mallory").String(), reward)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	bad := types.BoostDefinition{ID: 4, Kind: types.BoostStakingMultiplier, ValueBps: 9_000}
	err = env.Keeper.UpsertBoostDefinition(env.Ctx, env.Admin.String(), bad)
	require.ErrorIs(t, err, types.ErrInvalidBps)

	rig := uint8(types.NumRigs)
	bad = types.BoostDefinition{ID: 5, Kind: types.BoostFreeRigTicket, RigID: &rig}
	err = env.Keeper.UpsertBoostDefinition(env.Ctx, env.Admin.String(), bad)
	require.Error(t, err)

	upsertBoost(t, env, reward)
	ab := buyBoost(t, env, "alice", reward)
	require.Equal(t, uint16(20_000), ab.ValueBps)

	// replacing the entry leaves activated snapshots alone
	reward.ValueBps = 15_000
	upsertBoost(t, env, reward)
	stored, err := env.Keeper.GetBoostDefinition(env.Ctx, reward.ID)
	require.NoError(t, err)
	require.Equal(t, uint16(15_000), stored.ValueBps)

	user, err := env.Queries.User(env.Ctx, testutil.Addr("alice"))
	require.NoError(t, err)
	require.Equal(t, uint16(20_000), user.ActiveBoosts[0].ValueBps)

	defs, err := env.Queries.BoostDefinitions(env.Ctx)
	require.NoError(t, err)
	require.Len(t, defs, 1)
}
