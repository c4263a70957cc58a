// Package shared holds process setup used by the poker-odds commands.
package shared

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogFlags are the logging options every command accepts
type LogFlags struct {
	Debug    bool `help:"Enable debug logging" env:"POKER_ODDS_DEBUG"`
	JSONLogs bool `name:"json-logs" help:"Emit structured JSON logs" env:"POKER_ODDS_JSON_LOGS"`
}

// Logger builds the logger described by the flags, writing to stderr
func (f LogFlags) Logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if f.Debug {
		level = zerolog.DebugLevel
	}
	return NewLogger(os.Stderr, level, f.JSONLogs)
}

// NewLogger configures zerolog with pretty console output, or JSON lines
// when structured is set.
func NewLogger(w io.Writer, level zerolog.Level, structured bool) zerolog.Logger {
	if structured {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	} else {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
