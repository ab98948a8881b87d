package avax

import (
	"github.com/calebcase/stakeview/display"
	"github.com/calebcase/stakeview/wire"
)

// SubnetID identifies the subnet a validator validates.
type SubnetID ID

// PrimaryNetwork is the reserved subnet id of the primary network.
var PrimaryNetwork SubnetID

// IsPrimary reports whether s is the primary network.
func (s SubnetID) IsPrimary() bool {
	return s == PrimaryNetwork
}

// String returns "Primary Network" or the CB58 form of the id.
func (s SubnetID) String() string {
	if s.IsPrimary() {
		return "Primary Network"
	}

	return ID(s).String()
}

// Decode reads the subnet id.
func (s *SubnetID) Decode(d *wire.Decoder) error {
	return d.Fixed(s[:])
}

// NumItems implements display.Item.
func (s SubnetID) NumItems() int {
	return 1
}

// RenderItem implements display.Item.
func (s SubnetID) RenderItem(item int, title, message []byte, page int) (pages int, err error) {
	if item != 0 {
		return 0, display.ErrNoData
	}

	display.Title(title, "SubnetID")

	return display.Message(message, s.String(), page)
}
