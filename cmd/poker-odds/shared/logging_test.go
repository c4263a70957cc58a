package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerStructured(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, zerolog.InfoLevel, true)

	logger.Debug().Msg("hidden")
	logger.Info().Int("trials", 1000).Msg("done")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "done", line["message"])
	assert.Equal(t, float64(1000), line["trials"])
	assert.Contains(t, line, "time")
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, zerolog.DebugLevel, false)
	logger.Debug().Str("hand", "AS AH").Msg("evaluating")

	out := buf.String()
	assert.Contains(t, out, "evaluating")
	assert.Contains(t, out, "AS AH")
}

func TestLogFlagsLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, LogFlags{Debug: true}.Logger().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, LogFlags{}.Logger().GetLevel())
}

func TestSignalContextCancel(t *testing.T) {
	ctx, cancel := SignalContext(context.Background(), zerolog.Nop())
	require.NoError(t, ctx.Err())
	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
