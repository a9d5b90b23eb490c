package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger routes application log lines to zerolog.
type Logger struct {
	log zerolog.Logger
}

// New creates a Logger writing human-readable lines to stderr. Unless verbose
// is set, everything is discarded so log output never mixes with results.
func New(verbose bool) *Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	if !verbose {
		return &Logger{log: zerolog.Nop()}
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return &Logger{log: zerolog.New(out).With().Timestamp().Logger().Level(zerolog.DebugLevel)}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}
