package app

import (
	"github.com/google/uuid"

	"go-creep-defense/internal/component"
)

// Snapshot - копия состояния партии для отрисовки. Изменения снимка
// не влияют на игру.
type Snapshot struct {
	SessionID uuid.UUID
	Time      float64 // ms
	State     component.GameState
	Towers    []component.Tower
	Enemies   []component.Enemy
	Bullets   []component.Bullet
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		SessionID: g.SessionID,
		Time:      g.gameTime,
		State:     *g.State,
		Towers:    make([]component.Tower, 0, g.ECS.Towers.Len()),
		Enemies:   make([]component.Enemy, 0, g.ECS.Enemies.Len()),
		Bullets:   make([]component.Bullet, 0, g.ECS.Bullets.Len()),
	}
	g.ECS.EachTower(func(t *component.Tower) { s.Towers = append(s.Towers, *t) })
	g.ECS.EachEnemy(func(e *component.Enemy) { s.Enemies = append(s.Enemies, *e) })
	g.ECS.EachBullet(func(b *component.Bullet) { s.Bullets = append(s.Bullets, *b) })
	return s
}

// Value returns the exported state entry for key, see component.GameState.Value.
func (s Snapshot) Value(key string) (any, bool) {
	return s.State.Value(key)
}
