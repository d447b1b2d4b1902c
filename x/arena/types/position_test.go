package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func TestStakePositionAddress(t *testing.T) {
	alice := sdk.AccAddress([]byte("alice_______________"))
	bob := sdk.AccAddress([]byte("bob_________________"))

	legacy := types.StakePositionAddress(alice, types.LegacyPositionID)
	first := types.StakePositionAddress(alice, 1)
	second := types.StakePositionAddress(alice, 2)

	require.Len(t, legacy, 32)
	require.NotEqual(t, legacy, first)
	require.NotEqual(t, first, second)
	require.NotEqual(t, first, types.StakePositionAddress(bob, 1))
	require.Equal(t, first, types.StakePositionAddress(alice, 1))

	require.NoError(t, types.VerifyStakePositionAddress(alice, 0, legacy))
	require.NoError(t, types.VerifyStakePositionAddress(alice, 2, second))
	require.ErrorIs(t, types.VerifyStakePositionAddress(alice, 1, legacy), types.ErrInvalidStakePda)
	require.ErrorIs(t, types.VerifyStakePositionAddress(bob, 1, first), types.ErrInvalidStakePda)
}
