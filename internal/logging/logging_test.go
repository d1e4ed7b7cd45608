package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/logging"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
	require.Equal(t, slog.LevelInfo, logging.ParseLevel("nonsense"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	log := logging.New(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
