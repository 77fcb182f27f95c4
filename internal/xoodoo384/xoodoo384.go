// Package xoodoo384 implements the Xoodoo permutation over the canonical 384-bit state of three four-lane planes,
// unrolled over twelve 32-bit words.
package xoodoo384

import "encoding/binary"

const (
	Width     = 48 // The width of the permutation in bytes.
	Words     = 12 // The width of the permutation in 32-bit lanes.
	MaxRounds = 12
)

// RoundConstants is the Xoodoo round-constant schedule, indexed by absolute round position.
var RoundConstants = [MaxRounds]uint32{ //nolint:gochecknoglobals // these are constants
	0x058, 0x038, 0x3c0, 0x0d0,
	0x120, 0x014, 0x060, 0x02c,
	0x380, 0x0f0, 0x1a0, 0x012,
}

// Permute applies the last n rounds of Xoodoo[12] to the state, i.e. rounds [12-n, 12).
func Permute(a *[Words]uint32, n int) {
	if n < 0 || n > MaxRounds {
		panic("xoodoo384: invalid number of rounds")
	}
	permute(a, MaxRounds-n, MaxRounds)
}

// PermuteRange applies rounds [from, to) of the schedule to the state.
func PermuteRange(a *[Words]uint32, from, to int) {
	if from < 0 || to > MaxRounds || from > to {
		panic("xoodoo384: invalid round range")
	}
	permute(a, from, to)
}

// PermuteBytes applies Xoodoo[12] to a state of little-endian words.
func PermuteBytes(state *[Width]byte) {
	var a [Words]uint32
	for i := range Words {
		a[i] = binary.LittleEndian.Uint32(state[i*4 : i*4+4])
	}

	permute(&a, 0, MaxRounds)

	for i := range Words {
		binary.LittleEndian.PutUint32(state[i*4:i*4+4], a[i])
	}
}
