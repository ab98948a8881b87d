package trace

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	log := logrus.New()
	log.SetOutput(buf)
	log.SetLevel(logrus.TraceLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	NewLogger(log).Mark("AddPermissionlessDelegatorTx::decode")

	require.Contains(t, buf.String(), "AddPermissionlessDelegatorTx::decode")
	require.Contains(t, buf.String(), "level=trace")
	require.Contains(t, buf.String(), "component=trace")
}

func TestLoggerBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}

	log := logrus.New()
	log.SetOutput(buf)
	log.SetLevel(logrus.InfoLevel)

	NewLogger(log).Mark("hidden")

	require.Empty(t, buf.String())
}

func TestOr(t *testing.T) {
	require.Equal(t, Default, Or(nil))

	l := NewLogger(logrus.New())
	require.Equal(t, Observer(l), Or(l))

	Nop{}.Mark("ignored")
}
