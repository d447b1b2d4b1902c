package keeper

import (
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	"cosmossdk.io/log"

	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// ModuleConfig overrides the params authority. The gov module account is
// used when it is not supplied.
type ModuleConfig struct {
	Authority string
}

type ModuleInputs struct {
	depinject.In

	Config        *ModuleConfig `optional:"true"`
	StoreService  store.KVStoreService
	HeaderService header.Service
	EventService  event.Service
	BankKeeper    types.BankKeeper
	Logger        log.Logger
}

type ModuleOutputs struct {
	depinject.Out

	Keeper      Keeper
	MsgServer   *MsgServer
	QueryServer *QueryServer
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	authority := ModuleAddress(govtypes.ModuleName).String()
	if in.Config != nil && in.Config.Authority != "" {
		authority = in.Config.Authority
	}
	k := NewKeeper(in.StoreService, in.HeaderService, in.EventService, in.BankKeeper, in.Logger, authority)
	return ModuleOutputs{
		Keeper:      k,
		MsgServer:   NewMsgServerImpl(k),
		QueryServer: NewQueryServerImpl(k),
	}
}
