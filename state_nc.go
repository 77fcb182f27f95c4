package xoodoo

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// An NCState is a 96-bit Xoodoo state of three single-lane planes. With one lane per plane, every plane shift reduces
// to a bit rotation, so the planes are stored as bare words.
type NCState struct {
	words [NumPlanes]uint32
}

// NewNCState returns an all-zero state.
func NewNCState() *NCState {
	return &NCState{} //nolint:exhaustruct // zero state
}

// NewNCStateFromBytes returns a state whose words are decoded little-endian from successive 4-byte groups of data.
// Short input is zero-extended. It panics if data is longer than 12 bytes.
func NewNCStateFromBytes(data []byte) *NCState {
	var s NCState
	s.load(data)
	return &s
}

// NewNCStateFromUint32 returns a state with v in word 0.
func NewNCStateFromUint32(v uint32) *NCState {
	return &NCState{words: [NumPlanes]uint32{v, 0, 0}}
}

// NewNCStateFromUint64 returns a state with the low half of v in word 0 and the high half in word 1.
func NewNCStateFromUint64(v uint64) *NCState {
	return &NCState{words: [NumPlanes]uint32{uint32(v), uint32(v >> 32), 0}} //nolint:gosec // truncation intended
}

func (s *NCState) load(data []byte) {
	if len(data) > NCStateSize {
		panic("xoodoo: state input too long")
	}

	for i := range s.words {
		s.words[i] = 0
		if start := i * LaneSize; start < len(data) {
			s.words[i] = loadLane(data[start:])
		}
	}
}

// Words returns the three words of the state.
func (s *NCState) Words() [NumPlanes]uint32 {
	return s.words
}

// Size returns the size of the serialized state in bytes.
func (s *NCState) Size() int {
	return NCStateSize
}

// XORState absorbs data into the state. It panics if data is longer than 12 bytes.
func (s *NCState) XORState(data []byte) {
	var in NCState
	in.load(data)
	for i := range s.words {
		s.words[i] ^= in.words[i]
	}
}

// Theta adds the rotated parity of the three words to each of them.
func (s *NCState) Theta() {
	p := s.words[0] ^ s.words[1] ^ s.words[2]
	e := rotateLane(p, 5) ^ rotateLane(p, 14)

	s.words[0] ^= e
	s.words[1] ^= e
	s.words[2] ^= e
}

// RhoWest rotates word 2 by eleven bits. A one-lane shift of word 1 is the identity.
func (s *NCState) RhoWest() {
	s.words[2] = rotateLane(s.words[2], 11)
}

// Iota adds the round constant for round i to word 0.
func (s *NCState) Iota(i int) {
	s.words[0] ^= RoundConstant(i)
}

// Chi applies the nonlinear layer to the three words.
func (s *NCState) Chi() {
	a0, a1, a2 := s.words[0], s.words[1], s.words[2]
	s.words[0] ^= (^a1) & a2
	s.words[1] ^= (^a2) & a0
	s.words[2] ^= (^a0) & a1
}

// RhoEast rotates word 1 by one bit and word 2 by eight bits.
func (s *NCState) RhoEast() {
	s.words[1] = rotateLane(s.words[1], 1)
	s.words[2] = rotateLane(s.words[2], 8)
}

// Round applies one full round using the round constant at position i. It panics if i is not in [0,12).
func (s *NCState) Round(i int) {
	checkRound(i)
	s.Theta()
	s.RhoWest()
	s.Iota(i)
	s.Chi()
	s.RhoEast()
}

// AppendBytes appends the little-endian encoding of the three words to b.
func (s *NCState) AppendBytes(b []byte) []byte {
	for _, w := range s.words {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

// Bytes returns the serialized state.
func (s *NCState) Bytes() []byte {
	return s.AppendBytes(make([]byte, 0, NCStateSize))
}

func (s *NCState) String() string {
	return hex.EncodeToString(s.Bytes())
}

var _ fmt.Stringer = (*NCState)(nil)
