package delegator

import (
	"github.com/calebcase/stakeview/integer"
)

// Fee returns what the inputs consume beyond the base and stake outputs.
func (tx *Tx) Fee() (fee uint64, err error) {
	inputs, err := tx.base.SumInputs()
	if err != nil {
		return 0, err
	}

	outputs, err := tx.base.SumOutputs()
	if err != nil {
		return 0, err
	}

	staked, err := sumAmounts(tx.stake)
	if err != nil {
		return 0, err
	}

	spent, err := integer.Add(outputs, staked)
	if err != nil {
		return 0, err
	}

	return integer.Sub(inputs, spent)
}
