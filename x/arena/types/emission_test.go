package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func TestNewEmissionStateDefaultsInterval(t *testing.T) {
	e := types.NewEmissionState(0)
	require.Equal(t, types.DefaultHalvingInterval, e.HalvingInterval)
	require.NoError(t, e.Validate())
}

func TestApplyMintTracksHalvingLevel(t *testing.T) {
	e := types.NewEmissionState(1000)
	for _, amount := range []uint64{0, 1, 998, 1, 1, 2500, 7, 0, 123_456} {
		before := e.TotalMinted
		e.ApplyMint(amount)
		require.Equal(t, before+amount, e.TotalMinted)
		require.Equal(t, e.TotalMinted/e.HalvingInterval, e.HalvingLevel)
		require.NoError(t, e.Validate())
	}
	require.Equal(t, uint64(126_964), e.TotalMinted)
	require.Equal(t, uint64(126), e.HalvingLevel)
}

func TestApplyMintSaturates(t *testing.T) {
	e := types.NewEmissionState(1)
	e.ApplyMint(math.MaxUint64 - 5)
	e.ApplyMint(100)
	require.Equal(t, uint64(math.MaxUint64), e.TotalMinted)
	require.Equal(t, uint64(math.MaxUint64), e.HalvingLevel)

	rig, err := types.LookupRig(0)
	require.NoError(t, err)
	require.Zero(t, rig.RewardHigh(e.HalvingLevel))
}

func TestEmissionValidate(t *testing.T) {
	require.ErrorIs(t, types.EmissionState{}.Validate(), types.ErrInvalidParams)
	require.ErrorIs(t, types.EmissionState{TotalMinted: 10, HalvingInterval: 5, HalvingLevel: 1}.Validate(), types.ErrInvalidParams)
	require.NoError(t, types.EmissionState{TotalMinted: 10, HalvingInterval: 5, HalvingLevel: 2}.Validate())
}
