package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestNewLogger_WritesJSONToFileAndConsole(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := NewLogger("admin", WithLogDir(dir), WithLevel("debug"), WithConsole(&console))
	require.NoError(t, err)

	logger.WithField("alert_id", "a-1").Debug("alert exported")
	Close(logger)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(console.Bytes(), &entry))
	assert.Equal(t, "alert exported", entry["msg"])
	assert.Equal(t, "a-1", entry["alert_id"])
	assert.Contains(t, entry, "time")

	data, err := os.ReadFile(filepath.Join(dir, "admin.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"alert exported"`))
}

func TestNewLogger_WithoutFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger("scan", WithLogDir(dir), WithoutFile(), WithConsole(nil))
	require.NoError(t, err)
	logger.Info("nothing to see")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAsyncFileWriter_CloseDrainsQueue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drain.log")
	w, err := NewAsyncFileWriter(path, 16)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		_, err := w.Write([]byte("line\n"))
		require.NoError(t, err)
	}
	w.Close()
	w.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 100-int(w.Dropped()), strings.Count(string(data), "line\n"))

	_, err = w.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
}
