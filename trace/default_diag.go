//go:build diag

package trace

import (
	"github.com/sirupsen/logrus"
)

// Default is the observer used when none is configured.
var Default Observer = func() Observer {
	log := logrus.New()
	log.SetLevel(logrus.TraceLevel)

	return NewLogger(log)
}()
