package testutil

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/collections/colltest"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/keeper"
	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// GenesisTime is the block time of a fresh Env.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// Env is an arena keeper on an in-memory store with fake collaborators.
type Env struct {
	Ctx       context.Context
	Keeper    keeper.Keeper
	Msgs      *keeper.MsgServer
	Queries   *keeper.QueryServer
	Bank      *MemBank
	Header    *HeaderService
	Events    *EventService
	Admin     sdk.AccAddress
	Authority sdk.AccAddress
}

// NewEnv builds an unconfigured Env: no genesis, treasury or pool.
func NewEnv(logger log.Logger) *Env {
	storeService, ctx := colltest.MockStore()
	env := &Env{
		Ctx:       ctx,
		Bank:      NewMemBank(),
		Header:    NewHeaderService(1, GenesisTime),
		Events:    &EventService{},
		Admin:     Addr("admin"),
		Authority: Addr("authority"),
	}
	out := keeper.ProvideModule(keeper.ModuleInputs{
		Config:        &keeper.ModuleConfig{Authority: env.Authority.String()},
		StoreService:  storeService,
		HeaderService: env.Header,
		EventService:  env.Events,
		BankKeeper:    env.Bank,
		Logger:        logger,
	})
	env.Keeper = out.Keeper
	env.Msgs = out.MsgServer
	env.Queries = out.QueryServer
	return env
}

// NewConfiguredEnv builds an Env with default genesis, the admin set, and
// the treasury and staking pool initialized.
func NewConfiguredEnv(logger log.Logger) (*Env, error) {
	env := NewEnv(logger)
	gs := types.DefaultGenesis()
	gs.Params.Admin = env.Admin.String()
	return env, env.Configure(gs)
}

// Configure loads gs and initializes the treasury and staking pool with the
// Env admin. gs.Params.Admin must be that admin.
func (e *Env) Configure(gs *types.GenesisState) error {
	if err := e.Keeper.InitGenesis(e.Ctx, gs); err != nil {
		return err
	}
	if err := e.Keeper.InitializeTreasury(e.Ctx, e.Admin.String()); err != nil {
		return err
	}
	if err := e.Keeper.InitializeStakingPool(e.Ctx, e.Admin.String()); err != nil {
		return err
	}
	e.Events.Reset()
	return nil
}

// Addr derives a stable 20 byte test address from name.
func Addr(name string) sdk.AccAddress {
	b := make([]byte, 20)
	copy(b, fmt.Sprintf("%-20s", name))
	return sdk.AccAddress(b)
}

// FundXNT gives addr amount XNT minor units.
func (e *Env) FundXNT(addr sdk.AccAddress, amount uint64) {
	e.Bank.Fund(addr, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultFeeDenom, int64(amount))))
}

// FundGame gives addr amount GAME minor units.
func (e *Env) FundGame(addr sdk.AccAddress, amount uint64) {
	e.Bank.Fund(addr, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultGameDenom, int64(amount))))
}
