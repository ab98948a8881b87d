package avax

import "github.com/btcsuite/btcd/btcutil/bech32"

// Address is the 20 byte hash of a public key.
type Address [20]byte

// Encode returns the bech32 form of the address under the human readable
// prefix hrp.
func (a Address) Encode(hrp string) (_ string, err error) {
	conv, err := bech32.ConvertBits(a[:], 8, 5, true)
	if err != nil {
		return "", err
	}

	return bech32.Encode(hrp, conv)
}
