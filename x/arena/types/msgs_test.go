package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func TestMsgValidateBasic(t *testing.T) {
	addr := sdk.AccAddress([]byte("player______________"))
	player := addr.String()
	position := types.StakePositionAddress(addr, 1).String()

	tests := []struct {
		name string
		msg  interface{ ValidateBasic() error }
		err  error
	}{
		{"mine", types.MsgMineWithRig{Player: player, RigID: 3}, nil},
		{"mine bad rig", types.MsgMineWithRig{Player: player, RigID: 4}, types.ErrInvalidRig},
		{"mine no player", types.MsgMineWithRig{RigID: 0}, types.ErrInvalidAddress},
		{"stake", types.MsgStake{Owner: player, Amount: 1, LockDays: 14}, nil},
		{"stake zero", types.MsgStake{Owner: player, LockDays: 14}, types.ErrInvalidRequest},
		{"stake bad lock", types.MsgStake{Owner: player, Amount: 1, LockDays: 10}, types.ErrInvalidLock},
		{"claim", types.MsgClaim{Owner: player, PositionID: 1, Position: position}, nil},
		{"claim no position", types.MsgClaim{Owner: player, PositionID: 1}, types.ErrInvalidAddress},
		{"unstake", types.MsgUnstake{Owner: player, PositionID: 1, Position: position}, nil},
		{"activate", types.MsgActivateBoost{User: player, BoostID: 2}, nil},
		{"upsert bad def", types.MsgUpsertBoostDefinition{Admin: player, Definition: types.BoostDefinition{Kind: types.BoostMiningReward}}, types.ErrInvalidBps},
		{"ranking", types.MsgApplyRankingResults{Admin: player, User: player, Points: 5}, nil},
		{"reset no user", types.MsgResetDailyPoints{Admin: player}, types.ErrInvalidAddress},
		{"params", types.MsgUpdateParams{Authority: player, Params: types.DefaultParams()}, nil},
		{"params bad share", types.MsgUpdateParams{Authority: player, Params: types.Params{GameDenom: "game", FeeDenom: "xnt", StakingShareBps: 20_000}}, types.ErrInvalidBps},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMsgSigners(t *testing.T) {
	addr := sdk.AccAddress([]byte("player______________"))
	msg := types.MsgStake{Owner: addr.String(), Amount: 5, LockDays: 7}
	require.Equal(t, []sdk.AccAddress{addr}, msg.GetSigners())
	require.JSONEq(t, `{"owner":"`+addr.String()+`","amount":5,"lock_days":7}`, string(msg.GetSignBytes()))
	require.Equal(t, types.ModuleName, msg.Route())
}
