package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// Treasury records when the XNT treasury account was enabled.
type Treasury struct {
	Account       string `json:"account"`
	InitializedAt int64  `json:"initialized_at"`
}

type Keeper struct {
	storeService  store.KVStoreService
	headerService header.Service
	eventService  event.Service
	bankKeeper    types.BankKeeper
	logger        log.Logger

	// authority may change params; usually the gov module account.
	authority string

	Schema           collections.Schema
	Params           collections.Item[types.Params]
	Emission         collections.Item[types.EmissionState]
	Treasury         collections.Item[Treasury]
	Pool             collections.Item[types.StakingPool]
	Users            collections.Map[sdk.AccAddress, types.UserAccount]
	Positions        collections.Map[sdk.AccAddress, types.StakePosition]
	PositionsByOwner collections.KeySet[collections.Pair[sdk.AccAddress, uint32]]
	BoostDefinitions collections.Map[uint32, types.BoostDefinition]
}

func NewKeeper(
	storeService store.KVStoreService,
	headerService header.Service,
	eventService event.Service,
	bankKeeper types.BankKeeper,
	logger log.Logger,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:  storeService,
		headerService: headerService,
		eventService:  eventService,
		bankKeeper:    bankKeeper,
		logger:        logger.With(log.ModuleKey, "x/"+types.ModuleName),
		authority:     authority,

		Params:    collections.NewItem(sb, types.ParamsKey, "params", types.JSONValue[types.Params]()),
		Emission:  collections.NewItem(sb, types.EmissionKey, "emission", types.JSONValue[types.EmissionState]()),
		Treasury:  collections.NewItem(sb, types.TreasuryKey, "treasury", types.JSONValue[Treasury]()),
		Pool:      collections.NewItem(sb, types.PoolKey, "staking_pool", types.JSONValue[types.StakingPool]()),
		Users:     collections.NewMap(sb, types.UserKeyPrefix, "users", sdk.AccAddressKey, types.JSONValue[types.UserAccount]()),
		Positions: collections.NewMap(sb, types.PositionKeyPrefix, "positions", sdk.AccAddressKey, types.JSONValue[types.StakePosition]()),
		PositionsByOwner: collections.NewKeySet(sb, types.PositionOwnerKeyPrefix, "positions_by_owner",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint32Key)),
		BoostDefinitions: collections.NewMap(sb, types.BoostDefKeyPrefix, "boost_definitions", collections.Uint32Key, types.JSONValue[types.BoostDefinition]()),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

func (k Keeper) GetAuthority() string {
	return k.authority
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// ModuleAddress returns the account address of one of the module accounts.
func ModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

// now returns the block height and the block time in unix seconds.
func (k Keeper) now(ctx context.Context) (uint64, int64) {
	info := k.headerService.GetHeaderInfo(ctx)
	height := info.Height
	if height < 0 {
		height = 0
	}
	return uint64(height), info.Time.Unix()
}

func (k Keeper) emit(ctx context.Context, eventType string, attrs ...event.Attribute) error {
	return k.eventService.EventManager(ctx).EmitKV(ctx, eventType, attrs...)
}

func attr(key string, value any) event.Attribute {
	return event.Attribute{Key: key, Value: fmt.Sprint(value)}
}

func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	p, err := k.Params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams(), nil
	}
	return p, err
}

func (k Keeper) GetEmission(ctx context.Context) (types.EmissionState, error) {
	e, err := k.Emission.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewEmissionState(types.DefaultHalvingInterval), nil
	}
	return e, err
}

// GetPool returns the staking pool, or ErrIncompleteConfig before it is
// initialized.
func (k Keeper) GetPool(ctx context.Context) (types.StakingPool, error) {
	pool, err := k.Pool.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.StakingPool{}, errorsmod.Wrap(types.ErrIncompleteConfig, "staking pool not initialized")
	}
	if err != nil {
		return types.StakingPool{}, err
	}
	return pool.Normalize(), nil
}

// getUser loads the account of addr, or a fresh unbound one.
func (k Keeper) getUser(ctx context.Context, addr sdk.AccAddress) (types.UserAccount, error) {
	u, err := k.Users.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewUserAccount(""), nil
	}
	return u, err
}

// loadUserForWrite loads the account of signer, purges expired boosts and
// binds or checks the owner.
func (k Keeper) loadUserForWrite(ctx context.Context, signer sdk.AccAddress, now int64) (types.UserAccount, error) {
	u, err := k.getUser(ctx, signer)
	if err != nil {
		return u, err
	}
	u.ActiveBoosts = u.ActiveBoosts.Purge(now)
	if err := u.Authorize(signer.String()); err != nil {
		return u, err
	}
	return u, nil
}

func coins(denom string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
}

// requireFunds fails when module cannot cover amount of denom.
func (k Keeper) requireFunds(ctx context.Context, module, denom string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	bal := k.bankKeeper.GetBalance(ctx, ModuleAddress(module), denom)
	if bal.Amount.LT(sdkmath.NewIntFromUint64(amount)) {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s holds %s, needs %d%s", module, bal, amount, denom)
	}
	return nil
}
