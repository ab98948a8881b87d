package avax

import (
	"slices"

	"github.com/calebcase/stakeview/display"
	"github.com/calebcase/stakeview/integer"
	"github.com/calebcase/stakeview/mask"
	"github.com/calebcase/stakeview/wire"
)

// BaseTxFields are the fields every P-chain transaction starts with, after
// its header. The outputs carry their own visibility mask.
type BaseTxFields struct {
	Outputs []TransferableOutput
	Inputs  []TransferableInput
	Memo    []byte

	visible mask.Mask
}

// Decode reads outputs, inputs and memo. The memo aliases the input buffer.
func (b *BaseTxFields) Decode(d *wire.Decoder) (err error) {
	count, err := d.PeekUint32()
	if err != nil {
		return d.Fail(err)
	}

	err = mask.Check(uint64(count))
	if err != nil {
		return d.Fail(err)
	}

	n, err := d.Count(mask.Capacity, minOutputSize)
	if err != nil {
		return err
	}

	outputs := make([]TransferableOutput, n)
	for i := range outputs {
		err = outputs[i].Decode(d)
		if err != nil {
			return err
		}
	}

	n, err = d.Count(noLimit, minInputSize)
	if err != nil {
		return err
	}

	inputs := make([]TransferableInput, n)
	for i := range inputs {
		err = inputs[i].Decode(d)
		if err != nil {
			return err
		}
	}

	memo, err := d.Bytes()
	if err != nil {
		return err
	}

	*b = BaseTxFields{
		Outputs: outputs,
		Inputs:  inputs,
		Memo:    memo,
		visible: mask.New(),
	}

	return nil
}

// Encode writes outputs, inputs and memo.
func (b BaseTxFields) Encode(e *wire.Encoder) {
	e.Count(len(b.Outputs))
	for _, o := range b.Outputs {
		o.Encode(e)
	}

	e.Count(len(b.Inputs))
	for _, in := range b.Inputs {
		in.Encode(e)
	}

	e.Bytes(b.Memo)
}

// SumInputs returns the total amount consumed.
func (b *BaseTxFields) SumInputs() (uint64, error) {
	var total integer.Total
	for _, in := range b.Inputs {
		total.Add(in.Amount())
	}

	return total.Uint64()
}

// SumOutputs returns the total amount produced, hidden outputs included.
func (b *BaseTxFields) SumOutputs() (uint64, error) {
	var total integer.Total
	for _, o := range b.Outputs {
		total.Add(o.Amount())
	}

	return total.Uint64()
}

// Visible reports whether output i is shown.
func (b *BaseTxFields) Visible(i int) bool {
	return b.visible.Test(i)
}

// ForceDisableOutput hides every output whose only destination is addr.
// Outputs with several destinations stay visible even if all of them match.
func (b *BaseTxFields) ForceDisableOutput(addr Address) (err error) {
	for i, o := range b.Outputs {
		if o.HasOnly(addr) {
			err = b.visible.Clear(i)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Clone returns a deep copy that shares nothing with b, visibility included.
func (b BaseTxFields) Clone() BaseTxFields {
	var inputs []TransferableInput
	if b.Inputs != nil {
		inputs = make([]TransferableInput, len(b.Inputs))
		for i, in := range b.Inputs {
			inputs[i] = in.Clone()
		}
	}

	return BaseTxFields{
		Outputs: CloneOutputs(b.Outputs),
		Inputs:  inputs,
		Memo:    slices.Clone(b.Memo),
		visible: b.visible.Clone(),
	}
}

// OutputsNumItems returns the number of display items of the visible outputs.
func (b *BaseTxFields) OutputsNumItems() int {
	n := 0
	for i, o := range b.Outputs {
		if b.visible.Test(i) {
			n += o.NumItems()
		}
	}

	return n
}

// OutputWithItem returns the visible output holding display item item and
// the item's index within that output.
func (b *BaseTxFields) OutputWithItem(item int) (_ TransferableOutput, _ int, err error) {
	return WithItem(b.Outputs, b.visible, item)
}

// WithItem finds, among the outputs whose bit is set in visible, the one
// holding display item item, and returns it with the item's local index.
func WithItem(outputs []TransferableOutput, visible mask.Mask, item int) (_ TransferableOutput, _ int, err error) {
	if item < 0 {
		return TransferableOutput{}, 0, display.ErrNoData
	}

	for i, o := range outputs {
		if !visible.Test(i) {
			continue
		}

		n := o.NumItems()
		if item < n {
			return o, item, nil
		}

		item -= n
	}

	return TransferableOutput{}, 0, display.ErrNoData
}
