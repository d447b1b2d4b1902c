package types

import (
	"bytes"
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// LegacyPositionID is the id of the single position an owner could hold
// before multi-position staking.
const LegacyPositionID uint32 = 0

var userStakeSeed = []byte("user-stake")

// StakePositionAddress derives the store address of position id of owner.
// Id 0 uses the legacy owner-only derivation, every other id appends the
// little-endian id.
func StakePositionAddress(owner sdk.AccAddress, id uint32) sdk.AccAddress {
	key := make([]byte, 0, len(userStakeSeed)+len(owner)+4)
	key = append(key, userStakeSeed...)
	key = append(key, owner...)
	if id != LegacyPositionID {
		key = binary.LittleEndian.AppendUint32(key, id)
	}
	return address.Hash(ModuleName, key)
}

// VerifyStakePositionAddress checks that addr is the derived address of
// position id of owner.
func VerifyStakePositionAddress(owner sdk.AccAddress, id uint32, addr sdk.AccAddress) error {
	if !bytes.Equal(StakePositionAddress(owner, id), addr) {
		return errorsmod.Wrapf(ErrInvalidStakePda, "position %d of %s", id, owner)
	}
	return nil
}
