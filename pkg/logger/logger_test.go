package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"warn":     zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"":         zerolog.InfoLevel,
		"verbose":  zerolog.InfoLevel,
	}

	for name, want := range cases {
		assert.Equal(t, want, parseLevel(name), "level %q", name)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn", false, false)

	log.Info().Msg("dropped")
	log.Warn().Str("op", "getStories").Msg("kept")

	out := buf.String()
	require.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"op":"getStories"`)
	assert.Contains(t, out, `"level":"warn"`)
}
