// Package xoodoo implements the Xoodoo permutation and two minimal wrappers which absorb a block, permute, and
// extract the state.
//
// The permutation runs over three planes of 32-bit lanes. The Full variant takes one to four lanes per plane, up to
// the canonical 384-bit state, and applies a tail of the twelve-round schedule. The NC variant fixes one lane per plane
// (a 96-bit state) and always applies the first three rounds.
//
// Violated preconditions (oversized input, out-of-range widths, round counts, or indexes) are programming errors and
// cause a panic.
package xoodoo

import (
	"math/bits"

	"github.com/raresifrim/xoodoo-hash/internal/xoodoo384"
)

const (
	MaxRounds            = xoodoo384.MaxRounds // The length of the round-constant schedule.
	NumPlanes            = 3                   // The number of planes in a state.
	MaxLanes             = 4                   // The maximum number of lanes in a plane.
	DefaultLanesPerPlane = MaxLanes
	LaneSize             = 4 // The size of a lane in bytes.
	MaxPlaneSize         = MaxLanes * LaneSize
	MaxStateSize         = NumPlanes * MaxPlaneSize
	NCStateSize          = NumPlanes * LaneSize
	NCRounds             = 3 // The fixed number of rounds applied by HashNC.
)

// RoundConstant returns the round constant for the given absolute position in the twelve-round schedule.
func RoundConstant(i int) uint32 {
	checkRound(i)
	return xoodoo384.RoundConstants[i]
}

// Permutation is the five-step Xoodoo round over a state of three planes of 32-bit lanes.
type Permutation interface {
	// Round applies theta, rho-west, iota, chi, and rho-east, using the round constant at position i.
	Round(i int)

	// XORState absorbs data into the state.
	XORState(data []byte)

	// AppendBytes appends the serialized state to b.
	AppendBytes(b []byte) []byte

	// Size returns the size of the serialized state in bytes.
	Size() int
}

var (
	_ Permutation = (*FullState)(nil)
	_ Permutation = (*NCState)(nil)
)

// permute applies rounds [from, to) of the schedule to p.
func permute(p Permutation, from, to int) {
	for i := from; i < to; i++ {
		p.Round(i)
	}
}

// rotateLane rotates a lane left by z bits. Negative values of z rotate right.
func rotateLane(lane uint32, z int) uint32 {
	return bits.RotateLeft32(lane, ((z%32)+32)%32)
}

// loadLane decodes a little-endian lane from up to four bytes. Missing high-order bytes are zero.
func loadLane(b []byte) uint32 {
	var lane uint32
	for j, v := range b[:min(len(b), LaneSize)] {
		lane |= uint32(v) << (8 * j)
	}
	return lane
}

func checkRound(i int) {
	if i < 0 || i >= MaxRounds {
		panic("xoodoo: round index out of range")
	}
}

func checkRounds(n int) {
	if n < 0 || n > MaxRounds {
		panic("xoodoo: invalid number of rounds")
	}
}
