package types

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// EmissionState tracks the mined supply and the halving level derived from it.
type EmissionState struct {
	TotalMinted     uint64 `json:"total_minted"`
	HalvingInterval uint64 `json:"halving_interval"`
	HalvingLevel    uint64 `json:"halving_level"`
}

// NewEmissionState returns an empty tracker. A zero interval is replaced with
// DefaultHalvingInterval.
func NewEmissionState(halvingInterval uint64) EmissionState {
	if halvingInterval == 0 {
		halvingInterval = DefaultHalvingInterval
	}
	return EmissionState{HalvingInterval: halvingInterval}
}

// ApplyMint adds amount to the minted total (saturating) and re-derives the
// halving level.
func (e *EmissionState) ApplyMint(amount uint64) {
	if amount > math.MaxUint64-e.TotalMinted {
		e.TotalMinted = math.MaxUint64
	} else {
		e.TotalMinted += amount
	}
	e.Recompute()
}

// Recompute sets HalvingLevel from TotalMinted.
func (e *EmissionState) Recompute() {
	e.HalvingLevel = e.TotalMinted / e.HalvingInterval
}

func (e EmissionState) Validate() error {
	if e.HalvingInterval == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "halving interval must be positive")
	}
	if e.HalvingLevel != e.TotalMinted/e.HalvingInterval {
		return errorsmod.Wrapf(ErrInvalidParams, "halving level %d does not match minted %d / interval %d",
			e.HalvingLevel, e.TotalMinted, e.HalvingInterval)
	}
	return nil
}
