package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		format string
		level  string
		want   zerolog.Level
	}{
		{"json", "info", zerolog.InfoLevel},
		{"text", "debug", zerolog.DebugLevel},
		{"", "trace", zerolog.TraceLevel},
		{"json", "nonsense", zerolog.InfoLevel},
	}

	for _, tc := range tests {
		logger := NewLogger(&bytes.Buffer{}, tc.format, tc.level, "")
		require.Equal(t, tc.want, logger.GetLevel())
	}
}

func TestNewLoggerFormat(t *testing.T) {
	var b bytes.Buffer
	l := NewLogger(&b, "json", "info", "")
	l.Info().Str("item", "0x33").Msg("[binstr] parse")
	require.Equal(t, `{"level":"info","item":"0x33","message":"[binstr] parse"}`+"\n", b.String())

	b.Reset()
	l = NewLogger(&b, "text", "info", "")
	l.Info().Msg("[binstr] parse")
	require.Equal(t, "INF [binstr] parse\n", b.String())
}

func TestGetLogger(t *testing.T) {
	l := New(map[string]string{
		"output":  "",
		"binstr":  "debug",
		"fixture": "warn",
	})

	require.Equal(t, zerolog.DebugLevel, l.GetLogger("binstr").GetLevel())
	require.Equal(t, zerolog.WarnLevel, l.GetLogger("fixture").GetLevel())

	// not configured module gets the main logger
	require.Equal(t, l.Logger.GetLevel(), l.GetLogger("nonexistent").GetLevel())
}

func TestNewOutput(t *testing.T) {
	l := New(nil)
	require.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l = New(map[string]string{"output": ""})
	require.Equal(t, zerolog.Disabled, l.GetLevel())
}
