package avax

import (
	"slices"

	"github.com/calebcase/stakeview/wire"
)

// OutputOwners names the addresses that may spend a future output, such as a
// staking reward.
type OutputOwners struct {
	Locktime  uint64
	Threshold uint32
	Addresses []Address
}

// Decode reads the typed owners.
func (o *OutputOwners) Decode(d *wire.Decoder) (err error) {
	err = d.Tag(OutputOwnersID)
	if err != nil {
		return err
	}

	o.Locktime, err = d.Uint64()
	if err != nil {
		return err
	}

	o.Threshold, err = d.Uint32()
	if err != nil {
		return err
	}

	o.Addresses, err = decodeAddresses(d)
	if err != nil {
		return err
	}

	return checkThreshold(d, o.Threshold, len(o.Addresses))
}

// Clone returns a copy that does not share its address list with o.
func (o OutputOwners) Clone() OutputOwners {
	o.Addresses = slices.Clone(o.Addresses)

	return o
}

// Encode writes the typed owners.
func (o OutputOwners) Encode(e *wire.Encoder) {
	e.Uint32(OutputOwnersID).Uint64(o.Locktime).Uint32(o.Threshold)
	encodeAddresses(e, o.Addresses)
}
