package xoodoo

import (
	"encoding"
	"errors"
	"fmt"
)

// A HashNC permutes a 96-bit NCState with exactly three rounds, taken from the start of the schedule.
type HashNC struct {
	state NCState
}

// NewNC returns a HashNC over a state decoded from data. It panics if data is longer than 12 bytes.
func NewNC(data []byte) *HashNC {
	return &HashNC{state: *NewNCStateFromBytes(data)}
}

// Next absorbs data into the state.
func (h *HashNC) Next(data []byte) {
	h.state.XORState(data)
}

// Permute applies rounds 0, 1, and 2 of the schedule to the state.
func (h *HashNC) Permute() {
	permute(&h.state, 0, NCRounds)
}

// Digest returns the 12-byte serialized state.
func (h *HashNC) Digest() []byte {
	return h.state.Bytes()
}

// Rounds returns the number of rounds applied by Permute, which is always NCRounds.
func (h *HashNC) Rounds() int {
	return NCRounds
}

// Size returns the size of the digest in bytes.
func (h *HashNC) Size() int {
	return NCStateSize
}

// Clone returns an independent copy of the HashNC.
func (h *HashNC) Clone() *HashNC {
	c := *h
	return &c
}

func (h *HashNC) String() string {
	return h.state.String()
}

func (h *HashNC) UnmarshalBinary(data []byte) error {
	if len(data) != NCStateSize {
		return errors.New("xoodoo: invalid state length")
	}
	h.state.load(data)
	return nil
}

func (h *HashNC) AppendBinary(b []byte) ([]byte, error) {
	return h.state.AppendBytes(b), nil
}

func (h *HashNC) MarshalBinary() (data []byte, err error) {
	return h.AppendBinary(make([]byte, 0, NCStateSize))
}

var (
	_ fmt.Stringer               = (*HashNC)(nil)
	_ encoding.BinaryAppender    = (*HashNC)(nil)
	_ encoding.BinaryMarshaler   = (*HashNC)(nil)
	_ encoding.BinaryUnmarshaler = (*HashNC)(nil)
)
