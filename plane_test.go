package xoodoo //nolint:testpackage // testing plane internals

import (
	"math/rand"
	"testing"
	"time"
)

func TestNewPlaneFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		n     int
		lanes []uint32
	}{
		{"empty", nil, 4, []uint32{0, 0, 0, 0}},
		{"one lane", []byte{0x01, 0x02, 0x03, 0x04}, 1, []uint32{0x04030201}},
		{"partial lane", []byte{0x01, 0x02, 0x03, 0x04, 0xaa, 0xbb}, 3, []uint32{0x04030201, 0xbbaa, 0}},
		{"full plane", []byte{
			0x00, 0x00, 0x00, 0x80, 0x01, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x78, 0x56, 0x34, 0x12,
		}, 4, []uint32{0x80000000, 1, 0xffffffff, 0x12345678}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlaneFromBytes(tt.data, tt.n)

			if got, want := p.Len(), tt.n; got != want {
				t.Fatalf("Len() = %d, want %d", got, want)
			}

			for i, want := range tt.lanes {
				if got := p.Lane(i); got != want {
					t.Errorf("Lane(%d) = %#08x, want %#08x", i, got, want)
				}
			}
		})
	}
}

func TestNewPlaneFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		n    int
	}{
		{"too long for width", make([]byte, 5), 1},
		{"too long for a plane", make([]byte, 17), 4},
		{"too many lanes", nil, 5},
		{"no lanes", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewPlaneFromBytes(%d bytes, %d) did not panic", len(tt.data), tt.n)
				}
			}()

			NewPlaneFromBytes(tt.data, tt.n)
		})
	}
}

func TestPlane_Bytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	p := NewPlaneFromBytes(data, 2)

	if got, want := p.String(), "0102030405060000"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}

	if got, want := len(p.Bytes()), 8; got != want {
		t.Errorf("len(Bytes()) = %d, want %d", got, want)
	}
}

func TestPlane_Logic(t *testing.T) {
	p := NewPlaneFromBytes([]byte{0xf0, 0, 0, 0, 0x0f, 0, 0, 0}, 2)
	q := NewPlaneFromBytes([]byte{0xff, 0, 0, 0, 0xff, 0, 0, 0}, 2)

	x := p
	x.XOR(&q)
	if got, want := x.String(), "0f000000f0000000"; got != want {
		t.Errorf("XOR = %s, want %s", got, want)
	}

	a := p
	a.AND(&q)
	if got, want := a.String(), p.String(); got != want {
		t.Errorf("AND = %s, want %s", got, want)
	}

	c := p
	c.Complement()
	if got, want := c.String(), "0ffffffff0ffffff"; got != want {
		t.Errorf("Complement = %s, want %s", got, want)
	}

	w := p
	w.XORWord(1, 0x0f)
	if got, want := w.Lane(1), uint32(0); got != want {
		t.Errorf("XORWord lane = %#x, want %#x", got, want)
	}
}

func TestPlane_XOR_Mismatched(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("XOR of mismatched planes did not panic")
		}
	}()

	p, q := NewPlane(2), NewPlane(3)
	p.XOR(&q)
}

func TestPlane_Shift(t *testing.T) {
	t.Run("lanes", func(t *testing.T) {
		p := NewPlaneFromBytes([]byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 4, 0, 0, 0}, 4)
		p.Shift(1, 0)

		want := []uint32{4, 1, 2, 3}
		for i := range want {
			if got := p.Lane(i); got != want[i] {
				t.Errorf("Lane(%d) = %d, want %d", i, got, want[i])
			}
		}
	})

	t.Run("negative lanes", func(t *testing.T) {
		p := NewPlaneFromBytes([]byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}, 3)
		p.Shift(-1, 0)

		want := []uint32{2, 3, 1}
		for i := range want {
			if got := p.Lane(i); got != want[i] {
				t.Errorf("Lane(%d) = %d, want %d", i, got, want[i])
			}
		}
	})

	t.Run("bits", func(t *testing.T) {
		p := NewPlaneFromBytes([]byte{0x01, 0x00, 0x00, 0x80}, 1)
		p.Shift(3, 1)

		if got, want := p.Lane(0), uint32(0x00000003); got != want {
			t.Errorf("Lane(0) = %#08x, want %#08x", got, want)
		}
	})

	t.Run("negative bits", func(t *testing.T) {
		p := NewPlaneFromBytes([]byte{0x01, 0x00, 0x00, 0x00}, 1)
		p.Shift(0, -1)

		if got, want := p.Lane(0), uint32(0x80000000); got != want {
			t.Errorf("Lane(0) = %#08x, want %#08x", got, want)
		}
	})

	t.Run("full turns", func(t *testing.T) {
		p := NewPlaneFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 2)
		want := p.String()
		p.Shift(4, 64)

		if got := p.String(); got != want {
			t.Errorf("Shift(4, 64) = %s, want %s", got, want)
		}
	})

	t.Run("bijection", func(t *testing.T) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for n := 1; n <= MaxLanes; n++ {
			data := make([]byte, n*LaneSize)
			for _, x := range []int{-9, -4, -1, 0, 1, 2, 3, 4, 7} {
				for _, z := range []int{-65, -32, -11, -1, 0, 1, 5, 14, 31, 32, 96} {
					rng.Read(data)
					p := NewPlaneFromBytes(data, n)
					want := p.String()

					p.Shift(x, z)
					p.Shift(-x, -z)

					if got := p.String(); got != want {
						t.Errorf("n=%d: Shift(%d, %d) then Shift(%d, %d) = %s, want %s", n, x, z, -x, -z, got, want)
					}
				}
			}
		}
	})
}
