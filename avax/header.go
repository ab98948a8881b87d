package avax

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/stakeview/wire"
)

// Network ids with a known address prefix.
const (
	MainnetID uint32 = 1
	FujiID    uint32 = 5
	LocalID   uint32 = 12345
)

var hrps = map[uint32]string{
	MainnetID: "avax",
	FujiID:    "fuji",
	LocalID:   "local",
}

// Header identifies the network and chain a transaction is bound to.
type Header struct {
	NetworkID    uint32
	BlockchainID ID
}

// Decode reads the header.
func (h *Header) Decode(d *wire.Decoder) (err error) {
	h.NetworkID, err = d.Uint32()
	if err != nil {
		return err
	}

	return h.BlockchainID.Decode(d)
}

// Encode writes the header.
func (h Header) Encode(e *wire.Encoder) {
	e.Uint32(h.NetworkID).Fixed(h.BlockchainID[:])
}

// HRP returns the human readable address prefix of the header's network.
func (h Header) HRP() (string, error) {
	hrp, ok := hrps[h.NetworkID]
	if !ok {
		return "", errs.New("unknown network id: %d", h.NetworkID)
	}

	return hrp, nil
}
