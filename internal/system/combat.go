package system

import (
	"math"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/internal/utils"
)

// CombatSystem управляет атакой башен: выбор цели, поворот турели, выстрел.
// Урон наносит не выстрел, а долетевший снаряд (ProjectileSystem).
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(now, deltaTime float64) {
	s.ecs.EachTower(func(tower *component.Tower) {
		target := FindTarget(s.ecs, tower)
		if target == nil {
			tower.TargetID = 0
			return
		}
		tower.TargetID = target.ID

		bearing := utils.Bearing(tower.Position.X, tower.Position.Y, target.Position.X, target.Position.Y)
		tower.TurretAngle = utils.RotateTowards(tower.TurretAngle, bearing, tower.TurnSpeed*deltaTime)

		if !InSight(tower.TurretAngle, bearing) || !tower.CanFire(now) {
			return
		}
		s.fire(now, tower, target)
	})
}

// InSight - турель смотрит на цель с точностью до InSightThreshold.
func InSight(turretAngle, bearing float64) bool {
	return math.Abs(utils.AngleDiff(turretAngle, bearing)) < config.InSightThreshold
}

func (s *CombatSystem) fire(now float64, tower *component.Tower, target *component.Enemy) {
	vx, vy := utils.Direction(tower.Position.X, tower.Position.Y, target.Position.X, target.Position.Y, config.BulletSpeed)
	s.ecs.AddBullet(&component.Bullet{
		Position: tower.Position,
		Velocity: component.Velocity{X: vx, Y: vy},
		Damage:   tower.Damage,
		TargetID: target.ID,
		OwnerID:  tower.ID,
		Lifespan: config.BulletLifespan,
	})
	tower.LastFiredAt = now
	s.eventDispatcher.Publish(event.TowerFired, tower.ID)
}
