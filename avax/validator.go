package avax

import (
	"github.com/calebcase/stakeview/decimal"
	"github.com/calebcase/stakeview/display"
	"github.com/calebcase/stakeview/wire"
)

// NodeID identifies a validator node.
type NodeID ShortID

// String returns the "NodeID-" prefixed CB58 form.
func (id NodeID) String() string {
	return "NodeID-" + ShortID(id).String()
}

// Validator is a node staking Weight nano-AVAX between Start and End.
type Validator struct {
	NodeID NodeID
	Start  uint64
	End    uint64
	Weight uint64
}

// Decode reads the validator.
func (v *Validator) Decode(d *wire.Decoder) (err error) {
	err = d.Fixed(v.NodeID[:])
	if err != nil {
		return err
	}

	v.Start, err = d.Uint64()
	if err != nil {
		return err
	}

	v.End, err = d.Uint64()
	if err != nil {
		return err
	}

	v.Weight, err = d.Uint64()
	if err != nil {
		return err
	}

	return nil
}

// Encode writes the validator.
func (v Validator) Encode(e *wire.Encoder) {
	e.Fixed(v.NodeID[:]).Uint64(v.Start).Uint64(v.End).Uint64(v.Weight)
}

// NumItems implements display.Item.
func (v Validator) NumItems() int {
	return 4
}

// RenderItem implements display.Item.
func (v Validator) RenderItem(item int, title, message []byte, page int) (pages int, err error) {
	switch item {
	case 0:
		display.Title(title, "Validator")

		return display.Message(message, v.NodeID.String(), page)
	case 1:
		return renderTime(title, message, page, "Start time", v.Start)
	case 2:
		return renderTime(title, message, page, "End time", v.End)
	case 3:
		display.Title(title, "Total stake(AVAX)")

		return display.Message(message, decimal.AVAX(v.Weight).String(), page)
	}

	return 0, display.ErrNoData
}

func renderTime(title, message []byte, page int, label string, unix uint64) (pages int, err error) {
	text, err := Time(unix)
	if err != nil {
		return 0, err
	}

	display.Title(title, label)

	return display.Message(message, text, page)
}
