package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel(" Debug ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.WarnLevel)
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Str("action", "bogus").Msg("unknown action")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "bogus", entry["action"])
	assert.Contains(t, entry, "time")
}

func TestOpen_CreatesDirectoryAndTagsSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rover.log")
	logger, closer, err := Open(path, "info", "session-1")
	require.NoError(t, err)
	logger.Info().Msg("hello")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	assert.Equal(t, "session-1", entry["session"])
	assert.Equal(t, "hello", entry["message"])
}

func TestOpen_BadLevel(t *testing.T) {
	_, closer, err := Open(filepath.Join(t.TempDir(), "x.log"), "loud", "")
	assert.Error(t, err)
	assert.NoError(t, closer.Close())
}

func TestNewSessionID_Unique(t *testing.T) {
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}
