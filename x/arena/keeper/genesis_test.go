package keeper_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/Wielop1/x1-mining-arena/x/arena/testutil"
	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	env := setup(t)
	stake(t, env, "alice", 1000, 30)
	feeInflow(t, env)
	upsertBoost(t, env, pointsBoost)
	buyBoost(t, env, "carol", pointsBoost)

	exported, err := env.Keeper.ExportGenesis(env.Ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.True(t, exported.TreasuryInitialized)
	require.NotNil(t, exported.StakingPool)
	require.Len(t, exported.Positions, 1)
	require.Len(t, exported.Users, 3)
	require.Len(t, exported.BoostDefinitions, 1)

	fresh := testutil.NewEnv(log.NewNopLogger())
	require.NoError(t, fresh.Keeper.InitGenesis(fresh.Ctx, exported))
	reexported, err := fresh.Keeper.ExportGenesis(fresh.Ctx)
	require.NoError(t, err)

	want, err := json.Marshal(exported)
	require.NoError(t, err)
	got, err := json.Marshal(reexported)
	require.NoError(t, err)
	require.JSONEq(t, string(want), string(got))

	// the imported position is reachable through its derived address
	alice := testutil.Addr("alice")
	pending, err := fresh.Queries.PendingRewards(fresh.Ctx, types.StakePositionAddress(alice, 1))
	require.NoError(t, err)
	require.Equal(t, uint64(299_999_999), pending)
	require.NoError(t, fresh.Keeper.CheckStakeTotal(fresh.Ctx))
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	env := testutil.NewEnv(log.NewNopLogger())
	gs := types.DefaultGenesis()
	gs.TreasuryInitialized = true
	pool := types.NewStakingPool()
	pool.TotalEffectiveStake = sdkmath.NewUint(10)
	gs.StakingPool = &pool

	err := env.Keeper.InitGenesis(env.Ctx, gs)
	require.ErrorIs(t, err, types.ErrStakeTotalMismatch)

	has, err := env.Keeper.Params.Has(env.Ctx)
	require.NoError(t, err)
	require.False(t, has)
}
