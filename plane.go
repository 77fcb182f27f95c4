package xoodoo

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// A Plane is an ordered row of one to four 32-bit lanes. Its lane count is fixed at construction.
//
// The lane index is the x-coordinate of the Xoodoo state; the bit position within a lane is the z-coordinate.
type Plane struct {
	lanes [MaxLanes]uint32
	n     int
}

// NewPlane returns a plane of n zero lanes. It panics if n is not in [1,4].
func NewPlane(n int) Plane {
	checkLanes(n)
	return Plane{n: n} //nolint:exhaustruct // lanes are zero
}

// NewPlaneFromBytes returns a plane of n lanes decoded little-endian from successive 4-byte groups of data. A final
// partial group is zero-padded in its high-order bytes, and lanes beyond the end of data are zero. It panics if n is
// not in [1,4] or if data is longer than 4*n bytes.
func NewPlaneFromBytes(data []byte, n int) Plane {
	checkLanes(n)
	if len(data) > MaxPlaneSize || len(data) > n*LaneSize {
		panic("xoodoo: plane input too long")
	}

	p := Plane{n: n} //nolint:exhaustruct // lanes are filled below
	for i := 0; len(data) > 0; i++ {
		p.lanes[i] = loadLane(data)
		data = data[min(len(data), LaneSize):]
	}
	return p
}

// Len returns the number of lanes in the plane.
func (p *Plane) Len() int {
	return p.n
}

// Lane returns the lane at index i.
func (p *Plane) Lane(i int) uint32 {
	p.checkIndex(i)
	return p.lanes[i]
}

// XORWord XORs v into the lane at index i.
func (p *Plane) XORWord(i int, v uint32) {
	p.checkIndex(i)
	p.lanes[i] ^= v
}

// XOR sets each lane of p to the XOR of it and the matching lane of q. It panics if the lane counts differ.
func (p *Plane) XOR(q *Plane) {
	p.checkLen(q)
	for i := range p.n {
		p.lanes[i] ^= q.lanes[i]
	}
}

// AND sets each lane of p to the AND of it and the matching lane of q. It panics if the lane counts differ.
func (p *Plane) AND(q *Plane) {
	p.checkLen(q)
	for i := range p.n {
		p.lanes[i] &= q.lanes[i]
	}
}

// Complement inverts every bit of every lane.
func (p *Plane) Complement() {
	for i := range p.n {
		p.lanes[i] = ^p.lanes[i]
	}
}

// Shift cyclically moves every bit at (i, j) to (i+x, j+z), with the lane index taken modulo the lane count and the
// bit index modulo 32. Negative offsets shift the other way. A single-lane plane only rotates bits.
func (p *Plane) Shift(x, z int) {
	if p.n == 1 {
		p.lanes[0] = rotateLane(p.lanes[0], z)
		return
	}

	var tmp [MaxLanes]uint32
	for i := range p.n {
		tmp[i] = rotateLane(p.lanes[((i-x)%p.n+p.n)%p.n], z)
	}
	p.lanes = tmp
}

// AppendBytes appends the little-endian encoding of each lane, in lane order, to b.
func (p *Plane) AppendBytes(b []byte) []byte {
	for _, lane := range p.lanes[:p.n] {
		b = binary.LittleEndian.AppendUint32(b, lane)
	}
	return b
}

// Bytes returns the little-endian encoding of each lane, in lane order.
func (p *Plane) Bytes() []byte {
	return p.AppendBytes(make([]byte, 0, p.n*LaneSize))
}

func (p *Plane) String() string {
	return hex.EncodeToString(p.Bytes())
}

func (p *Plane) checkIndex(i int) {
	if i < 0 || i >= p.n {
		panic("xoodoo: lane index out of range")
	}
}

func (p *Plane) checkLen(q *Plane) {
	if p.n != q.n {
		panic("xoodoo: mismatched plane widths")
	}
}

func checkLanes(n int) {
	if n < 1 || n > MaxLanes {
		panic("xoodoo: invalid number of lanes per plane")
	}
}

var _ fmt.Stringer = (*Plane)(nil)
