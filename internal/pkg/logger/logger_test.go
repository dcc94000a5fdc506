package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(Options{Level: "DEBUG", Format: "console"})
	require.NoError(t, err)
	assert.True(t, l.Zap().Core().Enabled(-1))

	l, err = New(Options{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Zap().Core().Enabled(0))
}

func TestNew_RejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := NewNop().WithField("session_id", "abc").WithCorrelationID("req-1")
	assert.NotPanics(t, func() {
		l.Info("cart persisted", "items", 3)
		l.Error("odd field count", "dangling")
	})
}

func TestFromZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core))

	log.Debug("hidden")
	log.Error("Failed to close connection", "backend", "redis")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Failed to close connection", entries[0].Message)
	assert.Equal(t, "redis", entries[0].ContextMap()["backend"])
}
