// internal/system/movement.go
package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/pkg/curve"
)

// MovementSystem ведет врагов по пути: Spawned -> Traveling -> ReachedBase.
// Убийство (Killed) обрабатывает ApplyDamage.
type MovementSystem struct {
	ecs             *entity.ECS
	path            *curve.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path *curve.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(now, deltaTime float64) {
	s.ecs.EachEnemy(func(enemy *component.Enemy) {
		switch enemy.State {
		case component.EnemySpawned:
			if now < enemy.LaunchAt {
				return
			}
			enemy.State = component.EnemyTraveling
			enemy.Progress = 0
			enemy.Position = toPosition(s.path.Start())
		case component.EnemyTraveling:
			s.advance(enemy, deltaTime)
		}
	})
}

// TravelDuration - время прохождения всего пути врагом, ms.
// Для нулевой скорости возвращает 0 и ok = false: враг стоит на месте.
func (s *MovementSystem) TravelDuration(enemy *component.Enemy) (float64, bool) {
	if enemy.Speed <= 0 {
		return 0, false
	}
	return s.path.Length() * (1 / enemy.Speed) * config.TravelConstant, true
}

func (s *MovementSystem) advance(enemy *component.Enemy, deltaTime float64) {
	duration, moving := s.TravelDuration(enemy)
	if !moving {
		return
	}
	if duration <= 0 {
		enemy.Progress = 1
	} else if deltaTime > 0 {
		enemy.Progress += deltaTime / duration
	}

	if enemy.Progress >= 1 {
		enemy.Progress = 1
		enemy.Position = toPosition(s.path.End())
		s.reachBase(enemy)
		return
	}
	enemy.Position = toPosition(s.path.PointAt(enemy.Progress))
}

// reachBase: враг дошел до базы. Ни награды, ни опыта.
func (s *MovementSystem) reachBase(enemy *component.Enemy) {
	enemy.State = component.EnemyReachedBase
	if !s.ecs.RemoveEnemy(enemy.ID) {
		return
	}
	s.eventDispatcher.Publish(event.BaseDamage, enemy.ID)
}

func toPosition(p curve.Point) component.Position {
	return component.Position{X: p.X, Y: p.Y}
}
