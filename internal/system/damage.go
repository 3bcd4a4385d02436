package system

import (
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/internal/types"
)

// ApplyDamage наносит урон врагу и обрабатывает убийство.
// towerID - башня, которой засчитывается убийство (0, если нет).
// Урон по отсутствующему или уже не идущему врагу игнорируется.
// Возвращает true, если этим уроном враг убит.
func ApplyDamage(ecs *entity.ECS, eventDispatcher *event.Dispatcher, enemyID types.EntityID, damage int, towerID types.EntityID) bool {
	enemy, ok := ecs.Enemy(enemyID)
	if !ok || !enemy.Traveling() {
		return false
	}
	if damage < 0 {
		damage = 0
	}

	enemy.Health -= damage
	if enemy.Health > 0 {
		return false
	}

	enemy.Health = 0
	enemy.State = component.EnemyKilled
	ecs.RemoveEnemy(enemyID)

	kill := event.Kill{EnemyID: enemyID, Bounty: enemy.Bounty}
	if tower, ok := ecs.Tower(towerID); ok {
		kill.TowerID = towerID
		if tower.GainExperience(1, config.LevelUpThreshold) {
			eventDispatcher.Publish(event.TowerLevelUp, towerID)
		}
	}
	eventDispatcher.Publish(event.MoneyGain, enemy.Bounty)
	eventDispatcher.Publish(event.EnemyKilled, kill)
	return true
}
