package types

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// RollInput holds everything a reward roll is derived from. None of it is
// known to the player when the mining request is submitted.
type RollInput struct {
	Slot      uint64
	Timestamp int64
	Player    []byte
	RigID     uint8
}

// Draw returns a value in [0, BpsDenominator) taken from the low 16 bits of
// keccak256(slot || timestamp || player || rig).
func (in RollInput) Draw() uint16 {
	var buf [8]byte
	h := sha3.NewLegacyKeccak256()
	binary.LittleEndian.PutUint64(buf[:], in.Slot)
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(in.Timestamp))
	h.Write(buf[:])
	h.Write(in.Player)
	h.Write([]byte{in.RigID})
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint16(sum[:2]) % BpsDenominator
}

// RollResult is the pre-boost payout of a single mining run.
type RollResult struct {
	Draw   uint16 `json:"draw"`
	High   bool   `json:"high"`
	Reward uint64 `json:"reward"`
}

// RollReward picks the high or low reward of rig at halvingLevel.
func RollReward(rig RigTier, halvingLevel uint64, in RollInput) RollResult {
	draw := in.Draw()
	if draw < rig.ProbHighBps {
		return RollResult{Draw: draw, High: true, Reward: rig.RewardHigh(halvingLevel)}
	}
	return RollResult{Draw: draw, Reward: rig.RewardLow(halvingLevel)}
}
