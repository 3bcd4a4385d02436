package types

// EntityID идентифицирует башню, врага или снаряд в реестре.
// Ноль означает "нет сущности".
type EntityID uint64

// Tile - координаты клетки карты.
type Tile struct {
	X, Y int
}
