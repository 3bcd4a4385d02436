// Package termview рисует снимок партии в терминале через tcell.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	"go-creep-defense/pkg/tilemap"
)

// CellWidth - колонок терминала на одну клетку карты.
const CellWidth = 2

var (
	styleBuildable = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	stylePath      = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleBlocked   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSpawn     = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleBase      = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleTower     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEnemy     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBullet    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var towerGlyphs = map[defs.TowerType]rune{
	defs.TowerNormal: 'T',
	defs.TowerLaser:  'L',
	defs.TowerAir:    'A',
}

var enemyGlyphs = map[defs.EnemyType]rune{
	defs.EnemyNormal: 'n',
	defs.EnemySpeedy: 's',
	defs.EnemyHeavy:  'h',
	defs.EnemyFlying: 'f',
}

// View хранит экран, карту и курсор выбора клетки.
type View struct {
	screen    tcell.Screen
	m         *tilemap.Map
	CursorX   int
	CursorY   int
	TowerType defs.TowerType
}

func New(screen tcell.Screen, m *tilemap.Map) *View {
	return &View{screen: screen, m: m}
}

// MoveCursor сдвигает курсор, не выпуская его за карту.
func (v *View) MoveCursor(dx, dy int) {
	v.CursorX = clamp(v.CursorX+dx, 0, v.m.Width-1)
	v.CursorY = clamp(v.CursorY+dy, 0, v.m.Height-1)
}

func (v *View) Draw(snap app.Snapshot) {
	v.screen.Clear()

	for y := 0; y < v.m.Height; y++ {
		for x := 0; x < v.m.Width; x++ {
			sym := v.m.Symbol(x, y)
			v.putTile(x, y, sym, tileStyle(sym))
		}
	}
	for _, b := range snap.Bullets {
		if x, y, ok := v.m.TileAt(b.Position.X, b.Position.Y); ok {
			v.putTile(x, y, '*', styleBullet)
		}
	}
	for _, e := range snap.Enemies {
		if e.State != component.EnemyTraveling {
			continue
		}
		if x, y, ok := v.m.TileAt(e.Position.X, e.Position.Y); ok {
			v.putTile(x, y, enemyGlyphs[e.Type], styleEnemy)
		}
	}
	for _, t := range snap.Towers {
		v.putTile(t.Tile.X, t.Tile.Y, towerGlyphs[t.Type], styleTower)
		if t.Level > 1 {
			v.screen.SetContent(t.Tile.X*CellWidth+1, t.Tile.Y, levelRune(t.Level), nil, styleTower)
		}
	}

	// Курсор - инверсия клетки.
	mainc, _, style, _ := v.screen.GetContent(v.CursorX*CellWidth, v.CursorY)
	v.screen.SetContent(v.CursorX*CellWidth, v.CursorY, mainc, nil, style.Reverse(true))

	row := v.m.Height + 1
	s := snap.State
	v.print(0, row, styleText, fmt.Sprintf("Wave %d  Next %ds  $%d  HP %d", s.Wave, s.NextWaveIn, s.Money, s.PlayerHealth))
	v.print(0, row+1, styleText, s.StatusText)
	v.print(0, row+2, styleDim, fmt.Sprintf("[%s] 1-3 type  arrows move  space build  w wave  p/r pause  q quit", v.TowerType))

	v.screen.Show()
}

func (v *View) putTile(x, y int, r rune, style tcell.Style) {
	v.screen.SetContent(x*CellWidth, y, r, nil, style)
	v.screen.SetContent(x*CellWidth+1, y, ' ', nil, style)
}

func (v *View) print(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func tileStyle(sym rune) tcell.Style {
	switch sym {
	case tilemap.SymbolBuildable:
		return styleBuildable
	case tilemap.SymbolPath:
		return stylePath
	case tilemap.SymbolSpawn:
		return styleSpawn
	case tilemap.SymbolBase:
		return styleBase
	default:
		return styleBlocked
	}
}

func levelRune(level int) rune {
	if level > 9 {
		return '+'
	}
	return rune('0' + level)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
