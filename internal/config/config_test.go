package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the game section", func(t *testing.T) {
		// Given: a config file with custom game settings
		path := writeConfig(t, `
log-level: debug
socket-port: "8181"
game:
  tables-count: 3
  move-timeout: 5s
  ready-timeout: 1m
  tick-interval: 100ms
  reset-on-start: true
`)

		// When: the file is loaded
		conf, err := Load(path)

		// Then: every field is parsed
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8181", conf.SocketPort)
		assert.Equal(t, 3, conf.Game.TablesCount)
		assert.Equal(t, 5*time.Second, conf.Game.MoveTimeout)
		assert.Equal(t, time.Minute, conf.Game.ReadyTimeout)
		assert.Equal(t, 100*time.Millisecond, conf.Game.TickInterval)
		assert.True(t, conf.Game.ResetOnStart)
	})

	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file without a game section
		path := writeConfig(t, "log-level: info\n")

		// When: the file is loaded
		conf, err := Load(path)

		// Then: the documented defaults are used
		require.NoError(t, err)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 8, conf.Game.TablesCount)
		assert.Equal(t, 10*time.Second, conf.Game.MoveTimeout)
		assert.Equal(t, 30*time.Second, conf.Game.ReadyTimeout)
		assert.False(t, conf.Game.ResetOnStart)
	})

	t.Run("Rejects a negative table count", func(t *testing.T) {
		path := writeConfig(t, "game:\n  tables-count: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidTablesCount)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestGame_Validate(t *testing.T) {
	valid := Game{TablesCount: 1, MoveTimeout: time.Second, ReadyTimeout: time.Second, TickInterval: time.Millisecond}
	require.NoError(t, valid.Validate())

	invalid := valid
	invalid.MoveTimeout = 0
	require.ErrorIs(t, invalid.Validate(), ErrInvalidDuration)

	invalid = valid
	invalid.TickInterval = -time.Second
	require.ErrorIs(t, invalid.Validate(), ErrInvalidDuration)
}
