package avax

import (
	"slices"

	"github.com/calebcase/stakeview/wire"
)

// SECPTransferInput spends an amount using the signatures at SigIndices.
type SECPTransferInput struct {
	Amount     uint64
	SigIndices []uint32
}

func (in *SECPTransferInput) decode(d *wire.Decoder) (err error) {
	in.Amount, err = d.Uint64()
	if err != nil {
		return err
	}

	n, err := d.Count(noLimit, sigIndexSize)
	if err != nil {
		return err
	}

	in.SigIndices = make([]uint32, n)
	for i := range in.SigIndices {
		in.SigIndices[i], err = d.Uint32()
		if err != nil {
			return err
		}
	}

	return nil
}

func (in SECPTransferInput) encode(e *wire.Encoder) {
	e.Uint32(SECPTransferInputID).Uint64(in.Amount).Count(len(in.SigIndices))
	for _, idx := range in.SigIndices {
		e.Uint32(idx)
	}
}

// Input is a P-chain input, possibly spending a stakeable locked output.
type Input struct {
	Stakeable     bool
	StakeLocktime uint64

	Transfer SECPTransferInput
}

// Decode reads a typed input.
func (in *Input) Decode(d *wire.Decoder) (err error) {
	typ, err := d.PeekUint32()
	if err != nil {
		return d.Fail(err)
	}

	switch typ {
	case SECPTransferInputID:
	case StakeableLockInID:
		_, err = d.Uint32()
		if err != nil {
			return err
		}

		in.Stakeable = true
		in.StakeLocktime, err = d.Uint64()
		if err != nil {
			return err
		}
	default:
		return d.Fail(wire.Error.New("unknown input type id: %#08x", typ))
	}

	err = d.Tag(SECPTransferInputID)
	if err != nil {
		return err
	}

	return in.Transfer.decode(d)
}

// Encode writes the typed input.
func (in Input) Encode(e *wire.Encoder) {
	if in.Stakeable {
		e.Uint32(StakeableLockInID).Uint64(in.StakeLocktime)
	}

	in.Transfer.encode(e)
}

// TransferableInput consumes output OutputIndex of transaction TxID.
type TransferableInput struct {
	TxID        ID
	OutputIndex uint32
	AssetID     ID
	Input       Input
}

// Decode reads the input.
func (in *TransferableInput) Decode(d *wire.Decoder) (err error) {
	err = in.TxID.Decode(d)
	if err != nil {
		return err
	}

	in.OutputIndex, err = d.Uint32()
	if err != nil {
		return err
	}

	err = in.AssetID.Decode(d)
	if err != nil {
		return err
	}

	return in.Input.Decode(d)
}

// Encode writes the input.
func (in TransferableInput) Encode(e *wire.Encoder) {
	e.Fixed(in.TxID[:]).Uint32(in.OutputIndex).Fixed(in.AssetID[:])
	in.Input.Encode(e)
}

// Amount returns the amount consumed.
func (in TransferableInput) Amount() uint64 {
	return in.Input.Transfer.Amount
}

// Clone returns a copy that does not share its signature indices with in.
func (in TransferableInput) Clone() TransferableInput {
	in.Input.Transfer.SigIndices = slices.Clone(in.Input.Transfer.SigIndices)

	return in
}
