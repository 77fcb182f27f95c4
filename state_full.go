package xoodoo

import (
	"encoding/hex"
	"fmt"
)

// A FullState is a Xoodoo state of three planes of equal width, holding up to twelve 32-bit lanes.
type FullState struct {
	planes [NumPlanes]Plane
}

// NewFullState returns an all-zero state with the given number of lanes per plane. A lanesPerPlane of zero selects
// DefaultLanesPerPlane. It panics if lanesPerPlane is otherwise not in [1,4].
func NewFullState(lanesPerPlane int) *FullState {
	lanesPerPlane = normalizeLanes(lanesPerPlane)

	var s FullState
	for i := range s.planes {
		s.planes[i] = NewPlane(lanesPerPlane)
	}
	return &s
}

// NewFullStateFromBytes returns a state with the given number of lanes per plane, decoded from data. The first
// 4*lanesPerPlane bytes fill plane 0, the next plane 1, and the remainder plane 2. Short input is zero-extended. It
// panics if data is longer than 12*lanesPerPlane bytes.
func NewFullStateFromBytes(data []byte, lanesPerPlane int) *FullState {
	var s FullState
	s.load(data, normalizeLanes(lanesPerPlane))
	return &s
}

func (s *FullState) load(data []byte, lanesPerPlane int) {
	planeSize := lanesPerPlane * LaneSize
	if len(data) > NumPlanes*planeSize {
		panic("xoodoo: state input too long")
	}

	for i := range s.planes {
		start := min(i*planeSize, len(data))
		end := min(start+planeSize, len(data))
		s.planes[i] = NewPlaneFromBytes(data[start:end], lanesPerPlane)
	}
}

// LanesPerPlane returns the number of lanes in each plane.
func (s *FullState) LanesPerPlane() int {
	return s.planes[0].n
}

// Size returns the size of the serialized state in bytes.
func (s *FullState) Size() int {
	return NumPlanes * s.LanesPerPlane() * LaneSize
}

// XORState absorbs data, decoded at the state's width, into the state. It panics if data is longer than Size bytes.
func (s *FullState) XORState(data []byte) {
	var in FullState
	in.load(data, s.LanesPerPlane())
	for i := range s.planes {
		s.planes[i].XOR(&in.planes[i])
	}
}

// Plane returns a copy of the plane at index i. It panics if i is not in [0,3).
func (s *FullState) Plane(i int) Plane {
	if i < 0 || i >= NumPlanes {
		panic("xoodoo: plane index out of range")
	}
	return s.planes[i]
}

// Theta adds the column parity, shifted along two axes, to every plane.
func (s *FullState) Theta() {
	p1 := s.planes[0]
	p1.XOR(&s.planes[1])
	p1.XOR(&s.planes[2])

	p2 := p1
	p1.Shift(1, 5)
	p2.Shift(1, 14)

	e := p1
	e.XOR(&p2)

	for i := range s.planes {
		s.planes[i].XOR(&e)
	}
}

// RhoWest shifts plane 1 one lane and plane 2 eleven bits.
func (s *FullState) RhoWest() {
	s.planes[1].Shift(1, 0)
	s.planes[2].Shift(0, 11)
}

// Iota adds the round constant for round i to lane 0 of plane 0.
func (s *FullState) Iota(i int) {
	s.planes[0].XORWord(0, RoundConstant(i))
}

// Chi applies the nonlinear layer. Every plane is updated from the values of all three planes before the step.
func (s *FullState) Chi() {
	b0 := s.planes[1]
	b0.Complement()
	b0.AND(&s.planes[2])

	b1 := s.planes[2]
	b1.Complement()
	b1.AND(&s.planes[0])

	b2 := s.planes[0]
	b2.Complement()
	b2.AND(&s.planes[1])

	s.planes[0].XOR(&b0)
	s.planes[1].XOR(&b1)
	s.planes[2].XOR(&b2)
}

// RhoEast shifts plane 1 one bit and plane 2 two lanes and eight bits.
func (s *FullState) RhoEast() {
	s.planes[1].Shift(0, 1)
	s.planes[2].Shift(2, 8)
}

// Round applies one full round using the round constant at position i. It panics if i is not in [0,12).
func (s *FullState) Round(i int) {
	checkRound(i)
	s.Theta()
	s.RhoWest()
	s.Iota(i)
	s.Chi()
	s.RhoEast()
}

// AppendBytes appends plane 0, plane 1, and plane 2, serialized in that order, to b.
func (s *FullState) AppendBytes(b []byte) []byte {
	for i := range s.planes {
		b = s.planes[i].AppendBytes(b)
	}
	return b
}

// Bytes returns the serialized state.
func (s *FullState) Bytes() []byte {
	return s.AppendBytes(make([]byte, 0, s.Size()))
}

func (s *FullState) String() string {
	return hex.EncodeToString(s.Bytes())
}

// words returns the state as twelve lanes, plane-major. It is only meaningful at the default width.
func (s *FullState) words() (a [NumPlanes * MaxLanes]uint32) {
	for i := range s.planes {
		copy(a[i*MaxLanes:], s.planes[i].lanes[:])
	}
	return a
}

func (s *FullState) setWords(a *[NumPlanes * MaxLanes]uint32) {
	for i := range s.planes {
		copy(s.planes[i].lanes[:], a[i*MaxLanes:])
	}
}

func normalizeLanes(n int) int {
	if n == 0 {
		return DefaultLanesPerPlane
	}
	checkLanes(n)
	return n
}

var _ fmt.Stringer = (*FullState)(nil)
