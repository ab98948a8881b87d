// Package mask provides the fixed-capacity visibility set used to hide
// outputs from the display.
//
// One bit per output. A set bit means the output is shown. The capacity is a
// hard structural bound tied to the wire format: a collection with more
// outputs than Capacity cannot be represented and is rejected when decoded.
package mask

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/zeebo/errs"
)

// Capacity is the number of outputs a Mask can track.
const Capacity = 32

// Error is the class of capacity violations.
var Error = errs.Class("capacity")

// Mask is a fixed-capacity bit-set. The zero value is not usable; use New.
type Mask struct {
	bits *bitset.BitSet
}

// New returns a mask with every bit set.
func New() Mask {
	bits := bitset.New(Capacity)
	bits.FlipRange(0, Capacity)

	return Mask{
		bits: bits,
	}
}

// Check returns a capacity error if n outputs cannot be tracked.
func Check(n uint64) error {
	if n > Capacity {
		return Error.New("too many outputs: count=%d capacity=%d", n, Capacity)
	}

	return nil
}

// Test reports whether bit i is set. Bits outside the capacity are never set.
func (m Mask) Test(i int) bool {
	if m.bits == nil || i < 0 || i >= Capacity {
		return false
	}

	return m.bits.Test(uint(i))
}

// Clear clears bit i.
func (m Mask) Clear(i int) error {
	if m.bits == nil {
		return Error.New("uninitialized mask")
	}

	if i < 0 || i >= Capacity {
		return Error.New("index out of range: index=%d capacity=%d", i, Capacity)
	}

	m.bits.Clear(uint(i))

	return nil
}

// Clone returns an independent copy.
func (m Mask) Clone() Mask {
	if m.bits == nil {
		return m
	}

	return Mask{
		bits: m.bits.Clone(),
	}
}
