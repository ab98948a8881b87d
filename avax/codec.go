package avax

import "github.com/calebcase/stakeview/wire"

// Type ids of the typed values that appear inside transactions.
const (
	SECPTransferInputID  uint32 = 0x0000_0005
	SECPTransferOutputID uint32 = 0x0000_0007
	OutputOwnersID       uint32 = 0x0000_000b
	StakeableLockInID    uint32 = 0x0000_0015
	StakeableLockOutID   uint32 = 0x0000_0016
)

// Minimum encoded sizes, used to reject list counts that cannot fit in the
// remaining input before allocating for them.
const (
	addressSize   = 20
	sigIndexSize  = 4
	minOutputSize = 32 + 4 + 8 + 8 + 4 + 4
	minInputSize  = 32 + 4 + 32 + 4 + 8 + 4
)

// noLimit is the list limit for collections the mask does not track.
const noLimit uint32 = 1<<32 - 1

func decodeAddresses(d *wire.Decoder) (addrs []Address, err error) {
	n, err := d.Count(noLimit, addressSize)
	if err != nil {
		return nil, err
	}

	addrs = make([]Address, n)
	for i := range addrs {
		err = d.Fixed(addrs[i][:])
		if err != nil {
			return nil, err
		}
	}

	return addrs, nil
}

func encodeAddresses(e *wire.Encoder, addrs []Address) {
	e.Count(len(addrs))
	for _, a := range addrs {
		e.Fixed(a[:])
	}
}

func checkThreshold(d *wire.Decoder, threshold uint32, addrs int) error {
	if uint64(threshold) > uint64(addrs) {
		return d.Fail(wire.Error.New(
			"threshold exceeds addresses: threshold=%d addresses=%d",
			threshold,
			addrs,
		))
	}

	return nil
}
