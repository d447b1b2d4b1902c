package types

import (
	"math"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// WideBits is the width of stake and accumulator quantities. Results that do
// not fit are reported as ErrMathOverflow.
const WideBits = 128

// RewardPrecision scales AccRewardPerShare.
var RewardPrecision = sdkmath.NewUint(1_000_000_000_000)

func bigOf(u sdkmath.Uint) *big.Int {
	if u.IsNil() {
		return new(big.Int)
	}
	return u.BigInt()
}

func fromBig(i *big.Int) (sdkmath.Uint, error) {
	if i.Sign() < 0 || i.BitLen() > WideBits {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrMathOverflow, "%s exceeds %d bits", i, WideBits)
	}
	return sdkmath.NewUintFromBigInt(i), nil
}

func checkedAdd(a, b sdkmath.Uint) (sdkmath.Uint, error) {
	return fromBig(new(big.Int).Add(bigOf(a), bigOf(b)))
}

// mulDiv returns a*b/c, failing when a*b or the result is wider than WideBits.
func mulDiv(a, b, c sdkmath.Uint) (sdkmath.Uint, error) {
	prod, err := fromBig(new(big.Int).Mul(bigOf(a), bigOf(b)))
	if err != nil {
		return prod, err
	}
	if c.IsNil() || c.IsZero() {
		return sdkmath.ZeroUint(), errorsmod.Wrap(ErrMathOverflow, "division by zero")
	}
	return fromBig(new(big.Int).Quo(bigOf(prod), bigOf(c)))
}

func saturatingSub(a, b sdkmath.Uint) sdkmath.Uint {
	r := new(big.Int).Sub(bigOf(a), bigOf(b))
	if r.Sign() <= 0 {
		return sdkmath.ZeroUint()
	}
	return sdkmath.NewUintFromBigInt(r)
}

// clampUint64 narrows u, saturating at MaxUint64.
func clampUint64(u *big.Int) uint64 {
	if !u.IsUint64() {
		if u.Sign() < 0 {
			return 0
		}
		return math.MaxUint64
	}
	return u.Uint64()
}

func saturatingAddUint64(a, b uint64) uint64 {
	if b > math.MaxUint64-a {
		return math.MaxUint64
	}
	return a + b
}

func saturatingSubUint64(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// ApplyBps scales amount by bps/10000, rounding down.
func ApplyBps(amount uint64, bps uint32) (uint64, error) {
	r := new(big.Int).Mul(new(big.Int).SetUint64(amount), big.NewInt(int64(bps)))
	r.Quo(r, big.NewInt(BpsDenominator))
	if !r.IsUint64() {
		return 0, errorsmod.Wrapf(ErrMathOverflow, "%d * %d bps", amount, bps)
	}
	return r.Uint64(), nil
}
