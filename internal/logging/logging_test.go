package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewUnknownLevelIsInfo(t *testing.T) {
	l := New(&bytes.Buffer{}, "loud")
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestComponentAndRunFields(t *testing.T) {
	var buf bytes.Buffer
	l := WithRun(Component(New(&buf, "debug"), "boss"), "abc")
	l.Info().Msg("spawned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boss", entry["component"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "spawned", entry["message"])
}
