package event

import "go-creep-defense/internal/types"

// Kill описывает убийство врага.
type Kill struct {
	EnemyID types.EntityID
	TowerID types.EntityID // 0, если башни уже нет
	Bounty  int
}
