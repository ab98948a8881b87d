//go:build !diag

package trace

// Default is the observer used when none is configured.
var Default Observer = Nop{}
