// Package tilemap - квадратная карта клеток: где можно строить башни
// и по какому пути идут враги.
package tilemap

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"go-creep-defense/pkg/curve"
)

// Символы раскладки карты.
const (
	SymbolBuildable = '.'
	SymbolPath      = '#'
	SymbolSpawn     = 'S'
	SymbolBase      = 'B'
	SymbolBlocked   = 'x'
)

var (
	ErrNoSpawn = errors.New("tilemap: layout has no spawn tile")
	ErrNoBase  = errors.New("tilemap: layout has no base tile")
	ErrNoPath  = errors.New("tilemap: no path from spawn to base")
)

//go:embed maps/default.txt
var defaultLayout string

type Tile struct {
	Passable      bool
	CanPlaceTower bool
}

// Coord - координаты клетки (столбец, строка).
type Coord struct {
	X, Y int
}

type Map struct {
	Tiles    map[Coord]Tile
	Width    int
	Height   int
	TileSize float64
	Spawn    Coord
	Base     Coord
	Route    []Coord // клетки пути от спавна до базы

	waypoints []curve.Point
}

// Parse читает ASCII-раскладку. Строки разной длины допустимы:
// недостающие клетки считаются заблокированными.
func Parse(layout string, tileSize float64) (*Map, error) {
	layout = strings.ReplaceAll(layout, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(layout, "\n"), "\n")

	m := &Map{
		Tiles:    make(map[Coord]Tile),
		TileSize: tileSize,
		Height:   len(lines),
	}
	hasSpawn, hasBase := false, false

	for y, line := range lines {
		if len(line) > m.Width {
			m.Width = len(line)
		}
		for x, ch := range line {
			c := Coord{X: x, Y: y}
			switch ch {
			case SymbolBuildable:
				m.Tiles[c] = Tile{Passable: false, CanPlaceTower: true}
			case SymbolPath:
				m.Tiles[c] = Tile{Passable: true, CanPlaceTower: false}
			case SymbolSpawn:
				m.Tiles[c] = Tile{Passable: true, CanPlaceTower: false}
				m.Spawn = c
				hasSpawn = true
			case SymbolBase:
				m.Tiles[c] = Tile{Passable: true, CanPlaceTower: false}
				m.Base = c
				hasBase = true
			default:
				m.Tiles[c] = Tile{}
			}
		}
	}

	if !hasSpawn {
		return nil, ErrNoSpawn
	}
	if !hasBase {
		return nil, ErrNoBase
	}

	m.Route = AStar(m.Spawn, m.Base, m)
	if m.Route == nil {
		return nil, ErrNoPath
	}
	m.waypoints = m.buildWaypoints()
	return m, nil
}

// Load читает раскладку из файла.
func Load(path string, tileSize float64) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	m, err := Parse(string(data), tileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return m, nil
}

// Default возвращает встроенную карту.
func Default(tileSize float64) *Map {
	m, err := Parse(defaultLayout, tileSize)
	if err != nil {
		panic(fmt.Sprintf("built-in map is broken: %v", err))
	}
	return m
}

// Buildable reports whether a tower may stand on the tile.
func (m *Map) Buildable(x, y int) bool {
	tile, ok := m.Tiles[Coord{X: x, Y: y}]
	return ok && tile.CanPlaceTower
}

func (m *Map) IsPassable(c Coord) bool {
	tile, ok := m.Tiles[c]
	return ok && tile.Passable
}

// TileCenter возвращает центр клетки в пикселях.
func (m *Map) TileCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * m.TileSize, (float64(y) + 0.5) * m.TileSize
}

// TileAt переводит пиксельные координаты в клетку.
func (m *Map) TileAt(px, py float64) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x := int(math.Floor(px / m.TileSize))
	y := int(math.Floor(py / m.TileSize))
	if x >= m.Width || y >= m.Height {
		return 0, 0, false
	}
	return x, y, true
}

// Waypoints returns tile centers of the route, keeping only the corners.
func (m *Map) Waypoints() []curve.Point {
	return append([]curve.Point(nil), m.waypoints...)
}

// Symbol возвращает символ раскладки для клетки (для текстового вывода).
func (m *Map) Symbol(x, y int) rune {
	c := Coord{X: x, Y: y}
	switch {
	case c == m.Spawn:
		return SymbolSpawn
	case c == m.Base:
		return SymbolBase
	}
	tile, ok := m.Tiles[c]
	switch {
	case !ok:
		return SymbolBlocked
	case tile.Passable:
		return SymbolPath
	case tile.CanPlaceTower:
		return SymbolBuildable
	default:
		return SymbolBlocked
	}
}

func (m *Map) buildWaypoints() []curve.Point {
	points := make([]curve.Point, 0, len(m.Route))
	for i, c := range m.Route {
		if i > 0 && i < len(m.Route)-1 {
			prev, next := m.Route[i-1], m.Route[i+1]
			// Прямой участок: промежуточная точка не нужна.
			if c.X-prev.X == next.X-c.X && c.Y-prev.Y == next.Y-c.Y {
				continue
			}
		}
		x, y := m.TileCenter(c.X, c.Y)
		points = append(points, curve.Point{X: x, Y: y})
	}
	return points
}
