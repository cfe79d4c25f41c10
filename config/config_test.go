package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults from the environment", func(t *testing.T) {
		// Given: no config file and no overrides
		// When: loading the configuration
		conf, err := Load("")

		// Then: every field has its default
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, uint64(0), conf.Seed)
		assert.Equal(t, 300, conf.MaxTurns)
		assert.Equal(t, 100, conf.SelfPlay.Games)
		assert.Equal(t, 8, conf.SelfPlay.Workers)
		assert.Equal(t, "experiments", conf.SelfPlay.OutputDir)
		assert.False(t, conf.SelfPlay.RecordMoves)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		// Given: overrides in the environment
		t.Setenv("KNUCKLEBONES_SEED", "42")
		t.Setenv("KNUCKLEBONES_SELF_PLAY_GAMES", "5")

		// When: loading the configuration
		conf, err := Load("")

		// Then: the overrides are applied
		require.NoError(t, err)
		assert.Equal(t, uint64(42), conf.Seed)
		assert.Equal(t, 5, conf.SelfPlay.Games)
		assert.Equal(t, 8, conf.SelfPlay.Workers)
	})

	t.Run("reads a YAML file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
seed: 7
max-turns: 50
self-play:
  games: 20
  workers: 2
  output-dir: out
  record-moves: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, uint64(7), conf.Seed)
		assert.Equal(t, 50, conf.MaxTurns)
		assert.Equal(t, SelfPlay{Games: 20, Workers: 2, OutputDir: "out", RecordMoves: true}, conf.SelfPlay)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
