package tilemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-creep-defense/pkg/curve"
)

func TestParseStraightLine(t *testing.T) {
	m, err := Parse("S##B\n....\n", 16)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, Coord{0, 0}, m.Spawn)
	assert.Equal(t, Coord{3, 0}, m.Base)
	assert.Len(t, m.Route, 4)

	// Промежуточные клетки прямого участка выкидываются.
	assert.Equal(t, []curve.Point{{X: 8, Y: 8}, {X: 56, Y: 8}}, m.Waypoints())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		err    error
	}{
		{"no spawn", "###B", ErrNoSpawn},
		{"no base", "S###", ErrNoBase},
		{"disconnected", "S.B", ErrNoPath},
		{"diagonal only", "S.\n.B", ErrNoPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.layout, 16)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestBuildable(t *testing.T) {
	m, err := Parse("S#B\n.x.\n.", 16)
	require.NoError(t, err)

	assert.True(t, m.Buildable(0, 1))
	assert.True(t, m.Buildable(2, 1))
	assert.False(t, m.Buildable(1, 1), "blocked tile")
	assert.False(t, m.Buildable(1, 0), "path tile")
	assert.False(t, m.Buildable(0, 0), "spawn tile")
	assert.False(t, m.Buildable(1, 2), "short row is padded as blocked")
	assert.False(t, m.Buildable(-1, 0))
	assert.False(t, m.Buildable(10, 10))
}

func TestTileCoordinates(t *testing.T) {
	m, err := Parse("S#B\n...", 16)
	require.NoError(t, err)

	x, y := m.TileCenter(1, 1)
	assert.Equal(t, 24.0, x)
	assert.Equal(t, 24.0, y)

	tx, ty, ok := m.TileAt(31.9, 16.0)
	require.True(t, ok)
	assert.Equal(t, 1, tx)
	assert.Equal(t, 1, ty)

	_, _, ok = m.TileAt(48, 0)
	assert.False(t, ok)
	_, _, ok = m.TileAt(-1, 3)
	assert.False(t, ok)
}

func TestDefaultMap(t *testing.T) {
	m := Default(16)

	assert.Equal(t, 10, m.Width)
	assert.Equal(t, 9, m.Height)
	assert.Len(t, m.Route, 31)

	path := curve.New(m.Waypoints())
	assert.InDelta(t, 30*16.0, path.Length(), 1e-9)
	assert.Equal(t, curve.Point{X: 8, Y: 8}, path.Start())
	assert.Equal(t, curve.Point{X: 40, Y: 136}, path.End())
}

func TestSymbol(t *testing.T) {
	m, err := Parse("S#B\n.x", 16)
	require.NoError(t, err)

	assert.Equal(t, SymbolSpawn, m.Symbol(0, 0))
	assert.Equal(t, SymbolPath, m.Symbol(1, 0))
	assert.Equal(t, SymbolBase, m.Symbol(2, 0))
	assert.Equal(t, SymbolBuildable, m.Symbol(0, 1))
	assert.Equal(t, SymbolBlocked, m.Symbol(1, 1))
	assert.Equal(t, SymbolBlocked, m.Symbol(2, 1))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("S#\r\n.B\r\n"), 0o644))

	m, err := Load(path, 8)
	require.NoError(t, err)
	assert.Equal(t, Coord{1, 1}, m.Base)
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {1, 1}}, m.Route)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), 8)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
