package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "9999", cfg.Server.TCPPort)
	assert.Equal(t, 1, cfg.Game.HumanDeck)
	assert.Equal(t, 2, cfg.Game.AIDeck)
	assert.Equal(t, 1.0, cfg.Game.PaceScale)
	assert.False(t, cfg.Game.NoShuffle)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skirmish.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
game:
  decks_file: decks.yaml
  pace_scale: 0.25
  seed: 7
log:
  level: debug
`), 0o644))

	t.Setenv("SKIRMISH_GAME_NO_SHUFFLE", "true")
	t.Setenv("SKIRMISH_LOG_FORMAT", "json")
	t.Setenv("SKIRMISH_SERVER_ADDR", ":9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Server.Addr)
	assert.Equal(t, "decks.yaml", cfg.Game.DecksFile)
	assert.Equal(t, 0.25, cfg.Game.PaceScale)
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.True(t, cfg.Game.NoShuffle)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = NewLogger(LoggingConfig{Level: "bogus"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
