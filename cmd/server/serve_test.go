package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

func TestStoresCloseLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	st := &stores{log: logger.FromZap(zap.New(core))}

	var order []string
	st.addCloser("redis", func() error {
		order = append(order, "redis")
		return errors.New("connection reset")
	})
	st.addCloser("database", func() error {
		order = append(order, "database")
		return nil
	})

	st.Close()

	assert.Equal(t, []string{"database", "redis"}, order)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "redis", fields["backend"])
	assert.Equal(t, "connection reset", fields["error"])
}

func TestRootCommandServesByDefault(t *testing.T) {
	assert.True(t, rootCmd.Runnable())
	assert.NotNil(t, rootCmd.RunE)
}
