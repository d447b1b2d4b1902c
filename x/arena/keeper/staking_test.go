package keeper_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/keeper"
	"github.com/Wielop1/x1-mining-arena/x/arena/testutil"
	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

const day = 24 * time.Hour

func stake(t *testing.T, env *testutil.Env, owner string, amount uint64, lockDays uint16) (types.StakePosition, sdk.AccAddress) {
	t.Helper()
	addr := testutil.Addr(owner)
	env.FundGame(addr, amount)
	pos, posAddr, err := env.Keeper.Stake(env.Ctx, addr, amount, lockDays)
	require.NoError(t, err)
	return pos, posAddr
}

// feeInflow mines rig 2 so that 0.3 XNT flows to stakers.
func feeInflow(t *testing.T, env *testutil.Env) {
	t.Helper()
	miner := testutil.Addr("miner")
	env.FundXNT(miner, 1_000_000_000)
	res, err := env.Keeper.MineWithRig(env.Ctx, miner, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(300_000_000), res.Inflow)
}

func TestStake(t *testing.T) {
	env := setup(t)
	pos, addr := stake(t, env, "alice", 1000, 30)
	alice := testutil.Addr("alice")

	require.Equal(t, uint32(1), pos.PositionID)
	require.Equal(t, types.StakePositionAddress(alice, 1), addr)
	require.Equal(t, sdkmath.NewUint(1200), pos.EffectiveStake)
	require.Equal(t, uint16(12_000), pos.LockMultiplierBps)
	require.Equal(t, uint16(10_000), pos.BoostMultiplierBps)
	require.Equal(t, testutil.GenesisTime.Unix()+30*86_400, pos.LockUntil)

	require.Equal(t, uint64(1000), env.Bank.ModuleBalance(types.StakingVault, types.DefaultGameDenom))
	require.Zero(t, env.Bank.Balance(alice, types.DefaultGameDenom))

	pool, err := env.Keeper.GetPool(env.Ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewUint(1200), pool.TotalEffectiveStake)

	user, err := env.Queries.User(env.Ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint32(2), user.NextPositionID)
	require.Equal(t, uint64(1000), user.StakingPrincipal)
	require.True(t, user.Achievements.Has(types.AchievementFirstStake))

	second, secondAddr := stake(t, env, "alice", 500, 7)
	require.Equal(t, uint32(2), second.PositionID)
	require.NotEqual(t, addr, secondAddr)

	positions, err := env.Queries.Positions(env.Ctx, alice)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	staked := env.Events.OfType(types.EventTypeStake)
	require.Len(t, staked, 2)
	require.Equal(t, "1200", staked[0].Attributes[types.AttributeKeyEffectiveStake])
	require.NoError(t, env.Keeper.CheckStakeTotal(env.Ctx))
}

func TestStakeRejectsBadInput(t *testing.T) {
	env := setup(t)
	alice := testutil.Addr("alice")
	env.FundGame(alice, 1000)

	_, _, err := env.Keeper.Stake(env.Ctx, alice, 1000, 10)
	require.ErrorIs(t, err, types.ErrInvalidLock)
	_, _, err = env.Keeper.Stake(env.Ctx, alice, 0, 7)
	require.ErrorIs(t, err, types.ErrInvalidRequest)
	_, _, err = env.Keeper.Stake(env.Ctx, alice, 2000, 7)
	require.Error(t, err)

	has, err := env.Keeper.Users.Has(env.Ctx, alice)
	require.NoError(t, err)
	require.False(t, has)
	require.Equal(t, uint64(1000), env.Bank.Balance(alice, types.DefaultGameDenom))
	pool, err := env.Keeper.GetPool(env.Ctx)
	require.NoError(t, err)
	require.True(t, pool.TotalEffectiveStake.IsZero())
}

func TestStakeFreezesBoostMultiplier(t *testing.T) {
	env := setup(t)
	def := types.BoostDefinition{ID: 9, Kind: types.BoostStakingMultiplier, CostPoints: 1, ValueBps: 12_000, DurationSeconds: 60}
	upsertBoost(t, env, def)
	buyBoost(t, env, "alice", def)

	mult, err := env.Queries.StakingMultiplier(env.Ctx, testutil.Addr("alice"))
	require.NoError(t, err)
	require.Equal(t, uint16(12_000), mult)

	pos, addr := stake(t, env, "alice", 1000, 30)
	require.Equal(t, uint16(12_000), pos.BoostMultiplierBps)
	require.Equal(t, sdkmath.NewUint(1440), pos.EffectiveStake)

	// expiry of the boost does not touch the open position
	env.Header.Advance(time.Hour)
	later, _ := stake(t, env, "alice", 1000, 30)
	require.Equal(t, uint16(10_000), later.BoostMultiplierBps)

	stored, err := env.Queries.Position(env.Ctx, addr)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewUint(1440), stored.EffectiveStake)
}

func TestClaimDistributesFeeInflow(t *testing.T) {
	env := setup(t)
	_, aliceAddr := stake(t, env, "alice", 1000, 30)
	_, bobAddr := stake(t, env, "bob", 1000, 7)
	alice, bob := testutil.Addr("alice"), testutil.Addr("bob")

	feeInflow(t, env)

	pending, err := env.Queries.PendingRewards(env.Ctx, aliceAddr)
	require.NoError(t, err)
	require.Equal(t, uint64(159_999_999), pending)

	claimed, err := env.Keeper.Claim(env.Ctx, alice, 1, aliceAddr)
	require.NoError(t, err)
	require.Equal(t, uint64(159_999_999), claimed)
	require.Equal(t, claimed, env.Bank.Balance(alice, types.DefaultFeeDenom))

	again, err := env.Keeper.Claim(env.Ctx, alice, 1, aliceAddr)
	require.NoError(t, err)
	require.Zero(t, again)

	claimed, err = env.Keeper.Claim(env.Ctx, bob, 1, bobAddr)
	require.NoError(t, err)
	require.Equal(t, uint64(139_999_999), claimed)

	pos, err := env.Queries.Position(env.Ctx, aliceAddr)
	require.NoError(t, err)
	pool, err := env.Keeper.GetPool(env.Ctx)
	require.NoError(t, err)
	want, err := pos.Accumulated(pool.AccRewardPerShare)
	require.NoError(t, err)
	require.Equal(t, want, pos.RewardDebt)

	user, err := env.Queries.User(env.Ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(159_999_999), user.StakingEarned)
}

func TestLateStakerEarnsNothingRetroactively(t *testing.T) {
	env := setup(t)
	_, aliceAddr := stake(t, env, "alice", 1000, 7)
	feeInflow(t, env)
	_, bobAddr := stake(t, env, "bob", 1000, 7)

	pending, err := env.Queries.PendingRewards(env.Ctx, bobAddr)
	require.NoError(t, err)
	require.Zero(t, pending)

	pending, err = env.Queries.PendingRewards(env.Ctx, aliceAddr)
	require.NoError(t, err)
	require.Equal(t, uint64(299_999_999), pending)
}

func TestClaimChecksPositionAddress(t *testing.T) {
	env := setup(t)
	_, aliceAddr := stake(t, env, "alice", 1000, 7)
	_, bobAddr := stake(t, env, "bob", 1000, 7)
	alice := testutil.Addr("alice")

	_, err := env.Keeper.Claim(env.Ctx, alice, 2, aliceAddr)
	require.ErrorIs(t, err, types.ErrInvalidStakePda)
	_, err = env.Keeper.Claim(env.Ctx, alice, 1, bobAddr)
	require.ErrorIs(t, err, types.ErrInvalidStakePda)
	_, err = env.Keeper.Claim(env.Ctx, alice, 5, types.StakePositionAddress(alice, 5))
	require.ErrorIs(t, err, types.ErrPositionNotFound)

	// a record stored under alice's address but owned by someone else
	forged := types.StakePositionAddress(alice, 7)
	require.NoError(t, env.Keeper.Positions.Set(env.Ctx, forged, types.StakePosition{
		Owner: testutil.Addr("bob").String(), PositionID: 7,
	}))
	_, err = env.Keeper.Claim(env.Ctx, alice, 7, forged)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestUnstake(t *testing.T) {
	env := setup(t)
	pos, addr := stake(t, env, "alice", 1000, 7)
	alice := testutil.Addr("alice")
	feeInflow(t, env)

	env.Header.Advance(7*day - time.Second)
	_, _, err := env.Keeper.Unstake(env.Ctx, alice, 1, addr)
	require.ErrorIs(t, err, types.ErrStakeLocked)

	env.Header.Advance(time.Second)
	require.Equal(t, pos.LockUntil, env.Header.Info.Time.Unix())
	claimed, returned, err := env.Keeper.Unstake(env.Ctx, alice, 1, addr)
	require.NoError(t, err)
	require.Equal(t, uint64(299_999_999), claimed)
	require.Equal(t, uint64(1000), returned)
	require.Equal(t, uint64(1000), env.Bank.Balance(alice, types.DefaultGameDenom))
	require.Equal(t, claimed, env.Bank.Balance(alice, types.DefaultFeeDenom))
	require.Zero(t, env.Bank.ModuleBalance(types.StakingVault, types.DefaultGameDenom))

	closed, err := env.Queries.Position(env.Ctx, addr)
	require.NoError(t, err)
	require.True(t, closed.Closed())
	require.True(t, closed.RewardDebt.IsZero())

	pool, err := env.Keeper.GetPool(env.Ctx)
	require.NoError(t, err)
	require.True(t, pool.TotalEffectiveStake.IsZero())
	require.NoError(t, env.Keeper.CheckStakeTotal(env.Ctx))

	user, err := env.Queries.User(env.Ctx, alice)
	require.NoError(t, err)
	require.Zero(t, user.StakingPrincipal)

	_, _, err = env.Keeper.Unstake(env.Ctx, alice, 1, addr)
	require.ErrorIs(t, err, types.ErrPositionClosed)

	// claiming a closed position pays nothing
	claimed, err = env.Keeper.Claim(env.Ctx, alice, 1, addr)
	require.NoError(t, err)
	require.Zero(t, claimed)
}

func TestUnstakeReducesPoolByPriorEffectiveStake(t *testing.T) {
	env := setup(t)
	_, aliceAddr := stake(t, env, "alice", 1000, 7)
	stake(t, env, "bob", 2000, 30)

	env.Header.Advance(7 * day)
	_, _, err := env.Keeper.Unstake(env.Ctx, testutil.Addr("alice"), 1, aliceAddr)
	require.NoError(t, err)

	pool, err := env.Keeper.GetPool(env.Ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewUint(2400), pool.TotalEffectiveStake)
	require.NoError(t, env.Keeper.CheckStakeTotal(env.Ctx))
}

func TestLegacyPositionIsClaimable(t *testing.T) {
	env := setup(t)
	alice := testutil.Addr("alice")
	gs, err := env.Keeper.ExportGenesis(env.Ctx)
	require.NoError(t, err)
	gs.StakingPool.TotalEffectiveStake = sdkmath.NewUint(1050)
	gs.Positions = append(gs.Positions, types.StakePosition{
		Owner:              alice.String(),
		PositionID:         types.LegacyPositionID,
		AmountStaked:       1000,
		LockMultiplierBps:  10_500,
		BoostMultiplierBps: 10_000,
		EffectiveStake:     sdkmath.NewUint(1050),
		RewardDebt:         sdkmath.ZeroUint(),
		LockUntil:          testutil.GenesisTime.Unix(),
	})
	require.NoError(t, env.Keeper.InitGenesis(env.Ctx, gs))
	env.Bank.Fund(keeper.ModuleAddress(types.StakingVault), sdk.NewCoins(sdk.NewInt64Coin(types.DefaultGameDenom, 1000)))

	feeInflow(t, env)
	legacy := types.StakePositionAddress(alice, types.LegacyPositionID)

	_, err = env.Keeper.Claim(env.Ctx, alice, 1, legacy)
	require.ErrorIs(t, err, types.ErrInvalidStakePda)

	claimed, err := env.Keeper.Claim(env.Ctx, alice, types.LegacyPositionID, legacy)
	require.NoError(t, err)
	require.Equal(t, uint64(299_999_999), claimed)

	_, returned, err := env.Keeper.Unstake(env.Ctx, alice, types.LegacyPositionID, legacy)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), returned)

	// new stakes use the versioned scheme starting at 1
	pos, addr := stake(t, env, "alice", 10, 7)
	require.Equal(t, uint32(1), pos.PositionID)
	require.NotEqual(t, legacy, addr)
}

func TestStakeInvariantDetectsDrift(t *testing.T) {
	env := setup(t)
	stake(t, env, "alice", 1000, 7)
	require.NoError(t, env.Keeper.CheckStakeTotal(env.Ctx))

	pool, err := env.Keeper.GetPool(env.Ctx)
	require.NoError(t, err)
	pool.TotalEffectiveStake = pool.TotalEffectiveStake.Add(sdkmath.NewUint(1))
	require.NoError(t, env.Keeper.Pool.Set(env.Ctx, pool))
	require.ErrorIs(t, env.Keeper.CheckStakeTotal(env.Ctx), types.ErrStakeTotalMismatch)
}
