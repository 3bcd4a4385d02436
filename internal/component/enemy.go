package component

import (
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/types"
)

// EnemyState - стадия жизни врага.
type EnemyState int

const (
	EnemySpawned EnemyState = iota // создан, ждет своего времени старта
	EnemyTraveling
	EnemyKilled
	EnemyReachedBase
)

func (s EnemyState) String() string {
	switch s {
	case EnemySpawned:
		return "spawned"
	case EnemyTraveling:
		return "traveling"
	case EnemyKilled:
		return "killed"
	case EnemyReachedBase:
		return "reached-base"
	default:
		return "unknown"
	}
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID        types.EntityID
	Type      defs.EnemyType
	Health    int
	MaxHealth int
	Speed     float64 // множитель скорости
	Bounty    int
	Progress  float64 // 0 на старте, 1 у базы
	State     EnemyState
	LaunchAt  float64 // ms, когда враг начинает движение
	Position  Position
}

func NewEnemy(def defs.EnemyDefinition, launchAt float64, start Position) *Enemy {
	return &Enemy{
		Type:      def.Type,
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Bounty:    def.Bounty,
		State:     EnemySpawned,
		LaunchAt:  launchAt,
		Position:  start,
	}
}

// Traveling - только такие враги видны башням.
func (e *Enemy) Traveling() bool {
	return e.State == EnemyTraveling
}
