package delegator

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/stakeview/display"
	"github.com/calebcase/stakeview/integer"
	"github.com/calebcase/stakeview/mask"
	"github.com/calebcase/stakeview/wire"
)

// InvariantError is the class of transactions whose stake does not match the
// validator weight, and of visibility changes made after rendering started.
var InvariantError = errs.Class("invariant")

// Error classes a caller may see, for use with Has.
var (
	FormatError     = &wire.Error
	CapacityError   = &mask.Error
	ArithmeticError = &integer.Error
	RenderError     = &display.Error
)
