package decimal

import (
	"math/big"

	shopspring "github.com/shopspring/decimal"
)

// NanoScale is the number of fractional digits of an AVAX amount expressed in
// nano-AVAX.
const NanoScale = 9

// Fixed is a fixed point base 10 decimal number.
type Fixed struct {
	Value uint64
	Scale uint8
}

// AVAX returns the fixed point form of a nano-AVAX amount.
func AVAX(nano uint64) Fixed {
	return Fixed{
		Value: nano,
		Scale: NanoScale,
	}
}

// String renders the number without trailing fractional zeros.
func (f Fixed) String() string {
	v := new(big.Int).SetUint64(f.Value)

	return shopspring.NewFromBigInt(v, -int32(f.Scale)).String()
}
