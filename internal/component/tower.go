// component/tower.go
package component

import (
	"math"

	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/types"
)

type Tower struct {
	ID          types.EntityID
	Tile        types.Tile     // Клетка, на которой стоит башня
	Position    Position       // Центр клетки
	Type        defs.TowerType
	Damage      int
	Range       float64 // px
	TurnSpeed   float64 // rad/ms
	AttackSpeed float64 // ms между выстрелами
	Level       int
	Experience  int
	TargetID    types.EntityID // Текущая цель, только для поиска в реестре
	TurretAngle float64        // rad
	LastFiredAt float64        // ms, до первого выстрела -Inf
}

// NewTower создает башню первого уровня по определению.
func NewTower(def defs.TowerDefinition, tile types.Tile, pos Position) *Tower {
	return &Tower{
		Tile:        tile,
		Position:    pos,
		Type:        def.Type,
		Damage:      def.Damage,
		Range:       def.Range,
		TurnSpeed:   def.TurnSpeed,
		AttackSpeed: def.AttackSpeed,
		Level:       1,
		LastFiredAt: math.Inf(-1),
	}
}

// CanFire сообщает, прошла ли перезарядка к моменту now.
func (t *Tower) CanFire(now float64) bool {
	return now >= t.LastFiredAt+t.AttackSpeed
}

// GainExperience adds points and reports whether the tower leveled up.
// Experience above the threshold is not carried over.
func (t *Tower) GainExperience(points, threshold int) bool {
	t.Experience += points
	if t.Experience > threshold {
		t.Level++
		t.Experience = 0
		return true
	}
	return false
}
