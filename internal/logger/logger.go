// Package logger builds the process logger from configuration.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/postline/internal/config"
)

// New returns a zerolog logger writing JSON, or human readable console output
// when format is "console". Unknown levels fall back to info.
func New(w io.Writer, format, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    config.GetEnv("NO_COLOR", "") != "",
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Init builds a logger and installs it as the zerolog global, which is what
// the debug tracer writes to.
func Init(w io.Writer, format, level string) zerolog.Logger {
	l := New(w, format, level)
	log.Logger = l
	zerolog.SetGlobalLevel(l.GetLevel())
	return l
}
