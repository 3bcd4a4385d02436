// internal/system/projectile.go
package system

import (
	"math"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.ecs.EachBullet(func(bullet *component.Bullet) {
		// Снаряд, выпущенный в этом тике, начинает лететь со следующего.
		if !bullet.Armed {
			bullet.Armed = true
			return
		}

		target, alive := s.ecs.Enemy(bullet.TargetID)
		alive = alive && target.Traveling()
		if alive {
			// Самонаведение: курс на текущую позицию цели.
			vx, vy := utils.Direction(bullet.Position.X, bullet.Position.Y, target.Position.X, target.Position.Y, config.BulletSpeed)
			bullet.Velocity = component.Velocity{X: vx, Y: vy}
		}
		// Цель пропала - летим прежним курсом до истечения времени жизни.

		bullet.Position.X += bullet.Velocity.X * deltaTime
		bullet.Position.Y += bullet.Velocity.Y * deltaTime
		bullet.Age += deltaTime

		if alive && HitTest(bullet.Position, target.Position) {
			s.ecs.RemoveBullet(bullet.ID)
			ApplyDamage(s.ecs, s.eventDispatcher, bullet.TargetID, bullet.Damage, bullet.OwnerID)
			return
		}
		if bullet.Expired() {
			s.ecs.RemoveBullet(bullet.ID)
		}
	})
}

// HitTest - точка внутри квадратного хитбокса врага со стороной HitBoxSize.
func HitTest(p, enemy component.Position) bool {
	half := config.HitBoxSize / 2
	return math.Abs(p.X-enemy.X) <= half && math.Abs(p.Y-enemy.Y) <= half
}
