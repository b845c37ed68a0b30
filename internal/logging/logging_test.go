package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Format = FormatJSON
	cfg.Level = "debug"

	logger, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Int("entries", 5).Msg("split node")
	output := buf.String()
	assert.Contains(t, output, `"level":"debug"`)
	assert.Contains(t, output, `"entries":5`)
	assert.Contains(t, output, `"message":"split node"`)
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Format = FormatJSON
	cfg.Level = "warn"

	logger, _, err := New(cfg, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewConsoleWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()

	logger, _, err := New(cfg, &buf)
	require.NoError(t, err)

	logger.Info().Str("path", "w.json").Msg("loaded workload")
	output := buf.String()
	assert.Contains(t, output, "INF")
	assert.Contains(t, output, "loaded workload")
	assert.Contains(t, output, "path=w.json")
	assert.NotContains(t, output, "\x1b[")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtreectl.log")
	cfg := Default()
	cfg.Format = FormatJSON
	cfg.File = path

	var console bytes.Buffer
	logger, closer, err := New(cfg, &console)
	require.NoError(t, err)
	logger.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, console.String())
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := Default()
	cfg.Level = "loud"
	_, _, err := New(cfg, &bytes.Buffer{})
	assert.Error(t, err)

	cfg = Default()
	cfg.Format = "xml"
	_, _, err = New(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(ColorAlways, &buf))
	assert.False(t, ColorEnabled(ColorNever, &buf))
	assert.False(t, ColorEnabled(ColorAuto, &buf))
}
