package logger

import (
	"bytes"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	prev := L.GetLevel()
	defer L.SetLevel(prev)

	require.NoError(t, SetLevel("debug"))
	require.Equal(t, logger.DebugLevel, L.GetLevel())

	require.Error(t, SetLevel("loud"))
	require.Equal(t, logger.DebugLevel, L.GetLevel())
}

func TestWithPrefix(t *testing.T) {
	prevOut := L.Out
	defer func() { L.Out = prevOut }()

	buf := &bytes.Buffer{}
	L.Out = buf
	WithPrefix("heap").Warn("capacity exhausted")

	require.Contains(t, buf.String(), "heap")
	require.Contains(t, buf.String(), "capacity exhausted")
}
