package avax

import (
	"slices"

	"github.com/calebcase/stakeview/display"
	"github.com/calebcase/stakeview/wire"
)

// SECPTransferOutput pays an amount to a threshold of addresses, optionally
// not before Locktime.
type SECPTransferOutput struct {
	Amount    uint64
	Locktime  uint64
	Threshold uint32
	Addresses []Address
}

func (o *SECPTransferOutput) decode(d *wire.Decoder) (err error) {
	o.Amount, err = d.Uint64()
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

func (o SECPTransferOutput) encode(e *wire.Encoder) {
	e.Uint32(SECPTransferOutputID).
		Uint64(o.Amount).
		Uint64(o.Locktime).
		Uint32(o.Threshold)
	encodeAddresses(e, o.Addresses)
}

// Output is a P-chain output: a SECP transfer output, possibly wrapped in a
// stakeable lock.
type Output struct {
	// Stakeable is set when the transfer is wrapped in a stakeable lock
	// expiring at StakeLocktime.
	Stakeable     bool
	StakeLocktime uint64

	Transfer SECPTransferOutput
}

// Decode reads a typed output.
func (o *Output) Decode(d *wire.Decoder) (err error) {
	typ, err := d.PeekUint32()
	if err != nil {
		return d.Fail(err)
	}

	switch typ {
	case SECPTransferOutputID:
	case StakeableLockOutID:
		_, err = d.Uint32()
		if err != nil {
			return err
		}

		o.Stakeable = true
		o.StakeLocktime, err = d.Uint64()
		if err != nil {
			return err
		}
	default:
		return d.Fail(wire.Error.New("unknown output type id: %#08x", typ))
	}

	err = d.Tag(SECPTransferOutputID)
	if err != nil {
		return err
	}

	return o.Transfer.decode(d)
}

// Encode writes the typed output.
func (o Output) Encode(e *wire.Encoder) {
	if o.Stakeable {
		e.Uint32(StakeableLockOutID).Uint64(o.StakeLocktime)
	}

	o.Transfer.encode(e)
}

// TransferableOutput is an output of a specific asset.
type TransferableOutput struct {
	AssetID ID
	Output  Output
}

// Decode reads the output.
func (o *TransferableOutput) Decode(d *wire.Decoder) (err error) {
	err = o.AssetID.Decode(d)
	if err != nil {
		return err
	}

	return o.Output.Decode(d)
}

// Encode writes the output.
func (o TransferableOutput) Encode(e *wire.Encoder) {
	e.Fixed(o.AssetID[:])
	o.Output.Encode(e)
}

// Clone returns a copy that does not share its address list with o.
func (o TransferableOutput) Clone() TransferableOutput {
	o.Output.Transfer.Addresses = slices.Clone(o.Output.Transfer.Addresses)

	return o
}

// CloneOutputs returns a deep copy of outputs.
func CloneOutputs(outputs []TransferableOutput) []TransferableOutput {
	if outputs == nil {
		return nil
	}

	c := make([]TransferableOutput, len(outputs))
	for i, o := range outputs {
		c[i] = o.Clone()
	}

	return c
}

// Amount returns the amount transferred.
func (o TransferableOutput) Amount() uint64 {
	return o.Output.Transfer.Amount
}

// NumAddresses returns the number of destination addresses.
func (o TransferableOutput) NumAddresses() int {
	return len(o.Output.Transfer.Addresses)
}

// AddressAt returns the i-th destination address.
func (o TransferableOutput) AddressAt(i int) (Address, bool) {
	addrs := o.Output.Transfer.Addresses
	if i < 0 || i >= len(addrs) {
		return Address{}, false
	}

	return addrs[i], true
}

// HasOnly reports whether addr is the one and only destination.
func (o TransferableOutput) HasOnly(addr Address) bool {
	return o.NumAddresses() == 1 && o.Output.Transfer.Addresses[0] == addr
}

// NumInnerItems is the number of items of the summary plus the addresses.
func (o TransferableOutput) NumInnerItems() int {
	return 1 + o.NumAddresses()
}

// NumItems returns the number of display items.
func (o TransferableOutput) NumItems() int {
	n := o.NumInnerItems()
	if o.Output.Transfer.Locktime > 0 {
		n++
	}
	if o.Output.Stakeable {
		n++
	}

	return n
}

// RenderItem renders item of the output:
//
//	Amount:       0.5 AVAX
//	Address:      avax1...
//	Funds locked: 0.5 AVAX until 2021-05-31 21:28:00 UTC
func (o TransferableOutput) RenderItem(l Labels, item int, title, message []byte, page int) (pages int, err error) {
	inner := o.NumInnerItems()

	switch {
	case item == 0:
		display.Title(title, "Amount")

		return display.Message(message, l.Amount(o.Amount(), o.AssetID), page)
	case item > 0 && item < inner:
		addr, _ := o.AddressAt(item - 1)

		text, err := l.Address(addr)
		if err != nil {
			return 0, display.ErrUnknown
		}

		display.Title(title, "Address")

		return display.Message(message, text, page)
	}

	item -= inner

	if o.Output.Transfer.Locktime > 0 {
		if item == 0 {
			return o.renderLock(l, o.Output.Transfer.Locktime, title, message, page)
		}
		item--
	}

	if o.Output.Stakeable && item == 0 {
		return o.renderLock(l, o.Output.StakeLocktime, title, message, page)
	}

	return 0, display.ErrNoData
}

func (o TransferableOutput) renderLock(l Labels, locktime uint64, title, message []byte, page int) (pages int, err error) {
	until, err := Time(locktime)
	if err != nil {
		return 0, display.ErrUnknown
	}

	display.Title(title, "Funds locked")

	return display.Message(message, l.Amount(o.Amount(), o.AssetID)+" until "+until, page)
}
