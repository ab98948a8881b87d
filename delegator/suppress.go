package delegator

import (
	"github.com/calebcase/stakeview/avax"
)

// SuppressMatching hides the outputs, base and stake, that pay back to
// change. Only outputs with exactly one destination are hidden; an output
// with several destinations stays visible even when every one of them is
// change.
//
// It fails if rendering has already started, since item numbers handed out
// before would no longer mean the same thing.
func (tx *Tx) SuppressMatching(change avax.Address) error {
	if tx.rendering {
		return InvariantError.New("visibility changed after rendering started")
	}

	err := tx.base.ForceDisableOutput(change)
	if err != nil {
		return err
	}

	for i, o := range tx.stake {
		if o.HasOnly(change) {
			err = tx.visible.Clear(i)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
