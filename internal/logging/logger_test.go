package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "WARN")
}

func TestNewLogger_DebugWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Component: "generate", Level: "DEBUG", Output: &buf})
	require.NoError(t, err)

	logger.Debug("parsed table statement", zap.String("table", "shop_goods"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, "parsed table statement")
	assert.Contains(t, out, `"component": "generate"`)
	assert.Contains(t, out, `"table": "shop_goods"`)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(Config{Level: "loud"})
	assert.Error(t, err)
}
