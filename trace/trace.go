// Package trace carries payload-free diagnostic markers.
//
// Markers never influence control flow. Normal builds discard them; building
// with the diag tag sends them to a logrus logger at trace level.
package trace

import (
	"github.com/sirupsen/logrus"
)

// Observer receives diagnostic markers.
type Observer interface {
	Mark(name string)
}

// Nop discards every marker.
type Nop struct{}

// Mark implements Observer.
func (Nop) Mark(string) {}

// Logger forwards markers to a logrus logger.
type Logger struct {
	log *logrus.Entry
}

// NewLogger returns an observer that logs each marker at trace level.
func NewLogger(log *logrus.Logger) *Logger {
	return &Logger{
		log: log.WithField("component", "trace"),
	}
}

// Mark implements Observer.
func (l *Logger) Mark(name string) {
	l.log.Trace(name)
}

// Or returns o, or Default when o is nil.
func Or(o Observer) Observer {
	if o == nil {
		return Default
	}

	return o
}
