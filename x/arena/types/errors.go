package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrUnauthorized            = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrMathOverflow            = errorsmod.Register(ModuleName, 3, "math overflow")
	ErrInvalidRig              = errorsmod.Register(ModuleName, 4, "invalid rig")
	ErrInvalidLock             = errorsmod.Register(ModuleName, 5, "invalid lock")
	ErrStakeLocked             = errorsmod.Register(ModuleName, 6, "stake still locked")
	ErrInvalidBps              = errorsmod.Register(ModuleName, 7, "invalid basis points value")
	ErrTooManyActiveBoosts     = errorsmod.Register(ModuleName, 8, "too many active boosts")
	ErrInsufficientBoostPoints = errorsmod.Register(ModuleName, 9, "insufficient boost points")
	ErrIncompleteConfig        = errorsmod.Register(ModuleName, 10, "configuration incomplete")
	ErrInvalidStakePda         = errorsmod.Register(ModuleName, 11, "invalid stake position address")
	ErrInvalidRequest          = errorsmod.Register(ModuleName, 12, "invalid request")
	ErrInvalidAddress          = errorsmod.Register(ModuleName, 13, "invalid address")
	ErrInvalidParams           = errorsmod.Register(ModuleName, 14, "invalid params")
	ErrBoostNotFound           = errorsmod.Register(ModuleName, 15, "boost definition not found")
	ErrPositionNotFound        = errorsmod.Register(ModuleName, 16, "stake position not found")
	ErrPositionClosed          = errorsmod.Register(ModuleName, 17, "stake position already closed")
	ErrInvalidBoostKind        = errorsmod.Register(ModuleName, 18, "invalid boost kind")
	ErrStakeTotalMismatch      = errorsmod.Register(ModuleName, 19, "pool total does not match open positions")
)
