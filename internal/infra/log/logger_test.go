package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"booksy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = parseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_TagsServiceIdentity(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "booksy"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "booksy", entry["service"])
	assert.Equal(t, "develop", entry["env"])
}
