package testutil

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// MemBank is an in-memory ledger implementing the arena bank keeper. Module
// accounts live at their derived module addresses.
type MemBank struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
}

func NewMemBank() *MemBank {
	return &MemBank{balances: make(map[string]sdk.Coins)}
}

// Fund credits amt to addr out of thin air, counting it as supply.
func (b *MemBank) Fund(addr sdk.AccAddress, amt sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(amt...)
	b.supply = b.supply.Add(amt...)
}

func (b *MemBank) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "%s", amt)
	}
	left, neg := b.balances[from.String()].SafeSub(amt...)
	if neg {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s < %s", b.balances[from.String()], amt)
	}
	b.balances[from.String()] = left
	b.balances[to.String()] = b.balances[to.String()].Add(amt...)
	return nil
}

func (b *MemBank) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.send(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (b *MemBank) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (b *MemBank) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	if !amt.IsValid() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "%s", amt)
	}
	b.Fund(authtypes.NewModuleAddress(moduleName), amt)
	return nil
}

func (b *MemBank) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

// Balance returns the amount of denom held by addr.
func (b *MemBank) Balance(addr sdk.AccAddress, denom string) uint64 {
	return b.balances[addr.String()].AmountOf(denom).Uint64()
}

// ModuleBalance returns the amount of denom held by a module account.
func (b *MemBank) ModuleBalance(module, denom string) uint64 {
	return b.Balance(authtypes.NewModuleAddress(module), denom)
}

// Supply returns the total amount of denom ever funded or minted.
func (b *MemBank) Supply(denom string) sdkmath.Int {
	return b.supply.AmountOf(denom)
}
