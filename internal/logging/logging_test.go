package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", "key", "value")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
	assert.Contains(t, buf.String(), "cyberjet")
}

func TestNewUnknownLevelIsInfo(t *testing.T) {
	l := New(&bytes.Buffer{}, "chatty")
	assert.Equal(t, log.InfoLevel, l.GetLevel())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	l, closeFn, err := OpenFile(path, "debug")
	require.NoError(t, err)

	l.Debug("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestOpenFileError(t *testing.T) {
	_, _, err := OpenFile(filepath.Join(t.TempDir(), "missing", "game.log"), "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}
