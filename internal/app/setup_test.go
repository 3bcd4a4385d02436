package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-creep-defense/internal/config"
	"go-creep-defense/pkg/tilemap"
)

func TestNewGameFromDefaultSettings(t *testing.T) {
	g, m, err := NewGameFromSettings(config.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 10, m.Width)
	assert.Equal(t, config.StartMoney, g.State.Money)
	assert.Equal(t, m.Waypoints(), g.Path.Points())
	assert.Equal(t, 10, g.WaveSystem.WaveCount())
}

func TestNewGameFromFiles(t *testing.T) {
	dir := t.TempDir()
	mapFile := filepath.Join(dir, "map.txt")
	wavesFile := filepath.Join(dir, "waves.txt")
	require.NoError(t, os.WriteFile(mapFile, []byte("S#B\n...\n"), 0o644))
	require.NoError(t, os.WriteFile(wavesFile, []byte("N\nHH\n"), 0o644))

	s := config.DefaultSettings()
	s.MapFile = mapFile
	s.WavesFile = wavesFile
	s.StartMoney = 40

	g, m, err := NewGameFromSettings(s)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 40, g.State.Money)
	assert.Equal(t, 2, g.WaveSystem.WaveCount())
	assert.InDelta(t, 32, g.Path.Length(), 1e-9)
	assert.True(t, g.PlaceTower(1, 1, 0))
}

func TestNewGameFromBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	badMap := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(badMap, []byte("...\n"), 0o644))

	s := config.DefaultSettings()
	s.MapFile = badMap
	_, _, err := NewGameFromSettings(s)
	assert.ErrorIs(t, err, tilemap.ErrNoSpawn)

	s = config.DefaultSettings()
	s.WavesFile = filepath.Join(dir, "missing.txt")
	_, _, err = NewGameFromSettings(s)
	assert.ErrorIs(t, err, os.ErrNotExist)

	s = config.DefaultSettings()
	s.TowersFile = filepath.Join(dir, "missing.json")
	_, _, err = NewGameFromSettings(s)
	assert.Error(t, err)
}
