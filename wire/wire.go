package wire

import "github.com/zeebo/errs"

// Error is the class of structurally invalid input.
var Error = errs.Class("format")

// ErrInvalidOperation is returned when the codec is used in a way the wire
// format cannot represent.
var ErrInvalidOperation = Error.New("invalid operation")
