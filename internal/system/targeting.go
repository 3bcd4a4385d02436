package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/utils"
)

// FindTarget выбирает врага в радиусе башни, который дальше всех прошел
// по пути. При равенстве побеждает встреченный первым. Цель не "залипает":
// выбор делается заново каждый тик.
func FindTarget(ecs *entity.ECS, tower *component.Tower) *component.Enemy {
	var best *component.Enemy
	ecs.EachEnemy(func(enemy *component.Enemy) {
		if !enemy.Traveling() || !InRange(tower, enemy) {
			return
		}
		if best == nil || enemy.Progress > best.Progress {
			best = enemy
		}
	})
	return best
}

// InRange - враг внутри круга действия башни (граница включается).
func InRange(tower *component.Tower, enemy *component.Enemy) bool {
	d := utils.Distance(tower.Position.X, tower.Position.Y, enemy.Position.X, enemy.Position.Y)
	return d <= tower.Range
}
