package termview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/types"
	"go-creep-defense/pkg/tilemap"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func line(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return strings.TrimRight(b.String(), " \x00")
}

func TestDrawMapAndEntities(t *testing.T) {
	screen := newScreen(t)
	m := tilemap.Default(16)
	v := New(screen, m)
	v.CursorX, v.CursorY = 9, 8
	v.TowerType = defs.TowerLaser

	snap := app.Snapshot{
		State: component.GameState{Money: 110, PlayerHealth: 19, Wave: 2, NextWaveIn: 12, StatusText: "Wave 2"},
		Towers: []component.Tower{
			{Tile: types.Tile{X: 1, Y: 1}, Type: defs.TowerLaser, Level: 3},
		},
		Enemies: []component.Enemy{
			{Type: defs.EnemyHeavy, State: component.EnemyTraveling, Position: component.Position{X: 24, Y: 8}},
			{Type: defs.EnemyNormal, State: component.EnemySpawned, Position: component.Position{X: 8, Y: 8}},
		},
		Bullets: []component.Bullet{
			{Position: component.Position{X: 56, Y: 40}},
		},
	}
	v.Draw(snap)

	assert.Equal(t, 'S', runeAt(screen, 0, 0), "spawned enemies are not drawn")
	assert.Equal(t, 'h', runeAt(screen, 1*CellWidth, 0))
	assert.Equal(t, 'L', runeAt(screen, 1*CellWidth, 1))
	assert.Equal(t, '3', runeAt(screen, 1*CellWidth+1, 1))
	assert.Equal(t, '*', runeAt(screen, 3*CellWidth, 2))
	assert.Equal(t, 'B', runeAt(screen, 2*CellWidth, 8))
	assert.Equal(t, '.', runeAt(screen, 0, 1))
	assert.Equal(t, '#', runeAt(screen, 3*CellWidth, 1))

	_, _, style, _ := screen.GetContent(9*CellWidth, 8)
	assert.Equal(t, styleBuildable.Reverse(true), style)

	assert.Equal(t, "Wave 2  Next 12s  $110  HP 19", line(screen, m.Height+1))
	assert.Equal(t, "Wave 2", line(screen, m.Height+2))
	assert.True(t, strings.HasPrefix(line(screen, m.Height+3), "[LASER]"))
}

func TestMoveCursorStaysOnMap(t *testing.T) {
	v := New(newScreen(t), tilemap.Default(16))

	v.MoveCursor(-1, -1)
	assert.Equal(t, 0, v.CursorX)
	assert.Equal(t, 0, v.CursorY)

	v.MoveCursor(100, 3)
	assert.Equal(t, 9, v.CursorX)
	assert.Equal(t, 3, v.CursorY)
}
