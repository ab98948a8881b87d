// Package integer provides checked unsigned 64-bit arithmetic for amounts.
//
// Nothing here wraps or saturates: a result that does not fit in a u64 is an
// error of class Error.
package integer

import (
	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Error is the class of arithmetic overflow and underflow.
var Error = errs.Class("arithmetic")

// Add returns a + b.
func Add(a, b uint64) (_ uint64, err error) {
	var t Total

	t.Add(a)
	t.Add(b)

	return t.Uint64()
}

// Sub returns a - b.
func Sub(a, b uint64) (_ uint64, err error) {
	x := uint256.NewInt(a)
	y := uint256.NewInt(b)

	_, underflow := x.SubOverflow(x, y)
	if underflow {
		return 0, Error.New("underflow: %d - %d", a, b)
	}

	return x.Uint64(), nil
}

// Total is a running sum of u64 values. The zero value is an empty sum.
//
// The sum is carried in 256 bits so that adding never loses the carry; the
// u64 overflow is reported when the result is read.
type Total struct {
	sum uint256.Int
	n   int
}

// Add adds v to the total.
func (t *Total) Add(v uint64) {
	var x uint256.Int

	x.SetUint64(v)
	t.sum.Add(&t.sum, &x)
	t.n++
}

// Uint64 returns the total or an error if it does not fit in a u64.
func (t *Total) Uint64() (_ uint64, err error) {
	if !t.sum.IsUint64() {
		return 0, Error.New("overflow: sum of %d values exceeds 64 bits", t.n)
	}

	return t.sum.Uint64(), nil
}
