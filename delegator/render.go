package delegator

import (
	"github.com/calebcase/stakeview/avax"
	"github.com/calebcase/stakeview/decimal"
	"github.com/calebcase/stakeview/display"
)

const (
	bannerTitle = "Add Permissionless Delegator Transaction"
	bannerBody  = "Transaction"
)

var _ display.Item = (*Tx)(nil)

type segmentKind uint8

const (
	baseOutputs segmentKind = iota
	validatorInfo
	subnetID
	stakeOutputs
	rewardsTo
	fee
)

// segment is a run of consecutive display items rendered by the same code.
type segment struct {
	label string
	size  int
	kind  segmentKind
}

// segments lists the item runs after the banner, in display order. Sizes
// depend on the visibility masks, so they are recomputed on every call.
func (tx *Tx) segments() [6]segment {
	return [...]segment{
		{label: "Transfer", size: tx.base.OutputsNumItems(), kind: baseOutputs},
		{label: "Validator", size: tx.validator.NumItems(), kind: validatorInfo},
		{label: "SubnetID", size: tx.subnet.NumItems(), kind: subnetID},
		{label: "Stake", size: tx.stakeNumItems(), kind: stakeOutputs},
		{label: "Rewards to", size: len(tx.rewardsOwner.Addresses), kind: rewardsTo},
		{label: "Fee(AVAX)", size: 1, kind: fee},
	}
}

func (tx *Tx) stakeNumItems() int {
	n := 0
	for i, o := range tx.stake {
		if tx.visible.Test(i) {
			n += o.NumItems()
		}
	}

	return n
}

// NumItems implements display.Item.
func (tx *Tx) NumItems() int {
	tx.rendering = true

	n := 1
	for _, s := range tx.segments() {
		n += s.size
	}

	return n
}

// RenderItem implements display.Item. It writes the title and page number
// page of the body of item into the given buffers and returns the number of
// pages of the body. Items past the last one fail with display.ErrNoData.
func (tx *Tx) RenderItem(item int, title, message []byte, page int) (pages int, err error) {
	tx.rendering = true

	if item < 0 {
		return 0, display.ErrNoData
	}

	if item == 0 {
		display.Title(title, bannerTitle)

		return display.Message(message, bannerBody, page)
	}

	item--

	for _, s := range tx.segments() {
		if item < s.size {
			return tx.renderSegment(s, item, title, message, page)
		}

		item -= s.size
	}

	return 0, display.ErrNoData
}

func (tx *Tx) renderSegment(s segment, item int, title, message []byte, page int) (pages int, err error) {
	switch s.kind {
	case baseOutputs:
		o, local, err := tx.base.OutputWithItem(item)
		if err != nil {
			return 0, err
		}

		return tx.renderOutput(o, s.label, local, title, message, page)
	case validatorInfo:
		return tx.validator.RenderItem(item, title, message, page)
	case subnetID:
		return tx.subnet.RenderItem(item, title, message, page)
	case stakeOutputs:
		o, local, err := avax.WithItem(tx.stake, tx.visible, item)
		if err != nil {
			return 0, err
		}

		return tx.renderOutput(o, s.label, local, title, message, page)
	case rewardsTo:
		return tx.renderAddress(tx.rewardsOwner.Addresses[item], s.label, title, message, page)
	case fee:
		v, err := tx.Fee()
		if err != nil {
			return 0, display.ErrUnknown
		}

		display.Title(title, s.label)

		return display.Message(message, decimal.AVAX(v).String(), page)
	}

	return 0, display.ErrNoData
}

// renderOutput renders a base or stake output. Item 0 is the output's own
// summary under the segment caption, the next items are its addresses, and
// the rest (lock times) are left to the output.
func (tx *Tx) renderOutput(o avax.TransferableOutput, caption string, item int, title, message []byte, page int) (pages int, err error) {
	switch {
	case item == 0:
		pages, err = o.RenderItem(tx.labels, 0, title, message, page)
		display.Title(title, caption)

		return pages, err
	case item < o.NumInnerItems():
		addr, ok := o.AddressAt(item - 1)
		if !ok {
			return 0, display.ErrNoData
		}

		return tx.renderAddress(addr, "Address", title, message, page)
	}

	return o.RenderItem(tx.labels, item, title, message, page)
}

func (tx *Tx) renderAddress(addr avax.Address, label string, title, message []byte, page int) (pages int, err error) {
	text, err := tx.labels.Address(addr)
	if err != nil {
		return 0, display.ErrUnknown
	}

	display.Title(title, label)

	return display.Message(message, text, page)
}

// Validate renders the first page of every item and returns the first
// failure. The shell runs it before showing anything so that a transaction
// that cannot be fully displayed is rejected up front.
func (tx *Tx) Validate() error {
	var title, message [40]byte

	n := tx.NumItems()
	for i := 0; i < n; i++ {
		_, err := tx.RenderItem(i, title[:], message[:], 0)
		if err != nil {
			return err
		}
	}

	return nil
}
