package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		level     string
		wantLevel zerolog.Level
	}{
		{"json debug", "json", "debug", zerolog.DebugLevel},
		{"console warn", "console", "WARN", zerolog.WarnLevel},
		{"unknown level", "json", "loud", zerolog.InfoLevel},
		{"empty level", "json", "", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.format, tt.level)
			assert.Equal(t, tt.wantLevel, l.GetLevel())
		})
	}
}

func TestNew_Output(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "json", "info")
	l.Debug().Msg("hidden")
	l.Info().Str("address", "123 Main St").Msg("parsed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"address":"123 Main St"`)

	buf.Reset()
	c := New(&buf, "console", "info")
	c.Info().Msg("parsed")
	assert.Contains(t, buf.String(), "parsed")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestInit(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Init(&buf, "json", "debug")
	log.Debug().Msg("through the global")
	assert.Contains(t, buf.String(), "through the global")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
