package xoodoo

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/raresifrim/xoodoo-hash/internal/xoodoo384"
)

// A Hash absorbs blocks into a FullState and permutes it with a configured number of rounds.
//
// A reduced-round Hash applies the tail of the twelve-round schedule: with n rounds, Permute applies rounds
// [12-n, 12). This differs from HashNC, which always applies the first three.
type Hash struct {
	state  FullState
	rounds int
}

// New returns a Hash over an all-zero state with the given number of rounds and lanes per plane. A lanesPerPlane of
// zero selects DefaultLanesPerPlane. It panics if rounds is not in [0,12] or lanesPerPlane is not in [0,4].
func New(rounds, lanesPerPlane int) *Hash {
	checkRounds(rounds)
	return &Hash{state: *NewFullState(lanesPerPlane), rounds: rounds}
}

// NewFromBytes returns a Hash over a state decoded from data. It panics if rounds is not in [0,12], lanesPerPlane
// is not in [0,4], or data is longer than 12*lanesPerPlane bytes.
func NewFromBytes(data []byte, rounds, lanesPerPlane int) *Hash {
	checkRounds(rounds)
	return &Hash{state: *NewFullStateFromBytes(data, lanesPerPlane), rounds: rounds}
}

// Next absorbs data into the state. Nothing is buffered between calls.
func (h *Hash) Next(data []byte) {
	h.state.XORState(data)
}

// Permute applies the last Rounds rounds of the schedule to the state.
func (h *Hash) Permute() {
	if unrolled && h.state.LanesPerPlane() == MaxLanes {
		a := h.state.words()
		xoodoo384.Permute(&a, h.rounds)
		h.state.setWords(&a)
		return
	}

	permute(&h.state, MaxRounds-h.rounds, MaxRounds)
}

// Digest returns the serialized state.
func (h *Hash) Digest() []byte {
	return h.state.Bytes()
}

// Rounds returns the number of rounds applied by Permute.
func (h *Hash) Rounds() int {
	return h.rounds
}

// LanesPerPlane returns the number of lanes in each plane of the state.
func (h *Hash) LanesPerPlane() int {
	return h.state.LanesPerPlane()
}

// Size returns the size of the digest in bytes.
func (h *Hash) Size() int {
	return h.state.Size()
}

// Clone returns an independent copy of the Hash.
func (h *Hash) Clone() *Hash {
	c := *h
	return &c
}

func (h *Hash) String() string {
	return h.state.String()
}

// UnmarshalBinary replaces the state with data. The round count and width are kept; data must be exactly Size bytes.
func (h *Hash) UnmarshalBinary(data []byte) error {
	if len(data) != h.Size() {
		return errors.New("xoodoo: invalid state length")
	}
	h.state.load(data, h.LanesPerPlane())
	return nil
}

func (h *Hash) AppendBinary(b []byte) ([]byte, error) {
	return h.state.AppendBytes(b), nil
}

func (h *Hash) MarshalBinary() (data []byte, err error) {
	return h.AppendBinary(make([]byte, 0, h.Size()))
}

var (
	_ fmt.Stringer               = (*Hash)(nil)
	_ encoding.BinaryAppender    = (*Hash)(nil)
	_ encoding.BinaryMarshaler   = (*Hash)(nil)
	_ encoding.BinaryUnmarshaler = (*Hash)(nil)
)
