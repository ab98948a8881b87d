package delegator

import (
	"github.com/calebcase/stakeview/avax"
	"github.com/calebcase/stakeview/integer"
	"github.com/calebcase/stakeview/mask"
	"github.com/calebcase/stakeview/trace"
	"github.com/calebcase/stakeview/wire"
)

// TypeID is the type discriminant of the transaction.
const TypeID uint32 = 0x0000_001a

// Tx is a decoded Add Permissionless Delegator transaction. Only the
// visibility of its outputs may change after decoding.
type Tx struct {
	header       avax.Header
	base         avax.BaseTxFields
	validator    avax.Validator
	subnet       avax.SubnetID
	stake        []avax.TransferableOutput
	rewardsOwner avax.OutputOwners

	// visible has one bit per stake output.
	visible mask.Mask

	labels avax.Labels

	// rendering is set by the first NumItems or RenderItem call.
	rendering bool
}

// Schema configures a Decoder. The zero value is ready to use.
type Schema struct {
	// Observer receives the decode entry marker. Nil uses trace.Default.
	Observer trace.Observer

	// AssetID is the native asset, shown as AVAX. Empty shows every asset
	// as AVAX.
	AssetID avax.ID
}

// Decoder decodes transactions.
type Decoder struct {
	schema Schema
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
	}
}

// Decode decodes a transaction with the zero Schema.
func Decode(buf []byte) (rem []byte, tx *Tx, err error) {
	return NewDecoder(Schema{}).Decode(buf)
}

// Decode decodes the transaction at the start of buf and returns it along
// with the bytes that follow it. On error no transaction is returned.
func (dec *Decoder) Decode(buf []byte) (rem []byte, tx *Tx, err error) {
	trace.Or(dec.schema.Observer).Mark("AddPermissionlessDelegatorTx::decode")

	d := wire.NewDecoder(buf)

	err = d.Tag(TypeID)
	if err != nil {
		return nil, nil, err
	}

	var header avax.Header
	err = header.Decode(d)
	if err != nil {
		return nil, nil, err
	}

	var base avax.BaseTxFields
	err = base.Decode(d)
	if err != nil {
		return nil, nil, err
	}

	var validator avax.Validator
	err = validator.Decode(d)
	if err != nil {
		return nil, nil, err
	}

	var subnet avax.SubnetID
	err = subnet.Decode(d)
	if err != nil {
		return nil, nil, err
	}

	// The mask width bounds the list; check it before reading any output.
	count, err := d.PeekUint32()
	if err != nil {
		return nil, nil, err
	}

	err = mask.Check(uint64(count))
	if err != nil {
		return nil, nil, err
	}

	n, err := d.Count(mask.Capacity, 0)
	if err != nil {
		return nil, nil, err
	}

	stake := make([]avax.TransferableOutput, n)
	for i := range stake {
		err = stake[i].Decode(d)
		if err != nil {
			return nil, nil, err
		}
	}

	staked, err := sumAmounts(stake)
	if err != nil {
		return nil, nil, err
	}

	if staked != validator.Weight {
		return nil, nil, InvariantError.New(
			"stake does not match validator weight: stake=%d weight=%d",
			staked,
			validator.Weight,
		)
	}

	var rewardsOwner avax.OutputOwners
	err = rewardsOwner.Decode(d)
	if err != nil {
		return nil, nil, err
	}

	tx = &Tx{
		header:       header,
		base:         base,
		validator:    validator,
		subnet:       subnet,
		stake:        stake,
		rewardsOwner: rewardsOwner,
		visible:      mask.New(),
		labels: avax.Labels{
			Header:  header,
			AssetID: dec.schema.AssetID,
		},
	}

	return d.Remaining(), tx, nil
}

func sumAmounts(outputs []avax.TransferableOutput) (uint64, error) {
	var total integer.Total
	for _, o := range outputs {
		total.Add(o.Amount())
	}

	return total.Uint64()
}

// Header returns the transaction header.
func (tx *Tx) Header() avax.Header { return tx.header }

// Base returns a copy of the base transaction fields.
func (tx *Tx) Base() avax.BaseTxFields { return tx.base.Clone() }

// Validator returns the validator being delegated to.
func (tx *Tx) Validator() avax.Validator { return tx.validator }

// Subnet returns the subnet id.
func (tx *Tx) Subnet() avax.SubnetID { return tx.subnet }

// Stake returns a copy of the stake outputs.
func (tx *Tx) Stake() []avax.TransferableOutput { return avax.CloneOutputs(tx.stake) }

// RewardsOwner returns a copy of the owner of the delegation rewards.
func (tx *Tx) RewardsOwner() avax.OutputOwners { return tx.rewardsOwner.Clone() }

// Visible reports whether stake output i is shown.
func (tx *Tx) Visible(i int) bool { return tx.visible.Test(i) }
