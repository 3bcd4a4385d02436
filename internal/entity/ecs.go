// internal/entity/ecs.go
package entity

import (
	"errors"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/types"
)

// ErrTileOccupied - на клетке уже стоит башня.
var ErrTileOccupied = errors.New("tile is already occupied by a tower")

// ECS владеет всеми живыми башнями, врагами и снарядами.
// Ссылки между сущностями хранятся как EntityID и проверяются через реестр.
type ECS struct {
	NextID  types.EntityID
	Towers  *Store[component.Tower]
	Enemies *Store[component.Enemy]
	Bullets *Store[component.Bullet]

	towerTiles map[types.Tile]types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Towers:     NewStore[component.Tower](),
		Enemies:    NewStore[component.Enemy](),
		Bullets:    NewStore[component.Bullet](),
		towerTiles: make(map[types.Tile]types.EntityID),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddTower занимает клетку башней. Вторая башня на ту же клетку
// отклоняется с ErrTileOccupied.
func (ecs *ECS) AddTower(tile types.Tile, tower *component.Tower) (types.EntityID, error) {
	if _, occupied := ecs.towerTiles[tile]; occupied {
		return 0, ErrTileOccupied
	}
	id := ecs.NewEntity()
	tower.ID = id
	tower.Tile = tile
	ecs.Towers.Add(id, tower)
	ecs.towerTiles[tile] = id
	return id, nil
}

func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	return ecs.Towers.Get(id)
}

// TowerAt возвращает башню на клетке, если она есть.
func (ecs *ECS) TowerAt(tile types.Tile) (*component.Tower, bool) {
	id, ok := ecs.towerTiles[tile]
	if !ok {
		return nil, false
	}
	return ecs.Towers.Get(id)
}

func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	tower, ok := ecs.Towers.Get(id)
	if !ok {
		return false
	}
	delete(ecs.towerTiles, tower.Tile)
	return ecs.Towers.Remove(id)
}

func (ecs *ECS) AddEnemy(enemy *component.Enemy) types.EntityID {
	id := ecs.NewEntity()
	enemy.ID = id
	ecs.Enemies.Add(id, enemy)
	return id
}

func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	return ecs.Enemies.Get(id)
}

func (ecs *ECS) RemoveEnemy(id types.EntityID) bool {
	return ecs.Enemies.Remove(id)
}

func (ecs *ECS) AddBullet(bullet *component.Bullet) types.EntityID {
	id := ecs.NewEntity()
	bullet.ID = id
	ecs.Bullets.Add(id, bullet)
	return id
}

func (ecs *ECS) Bullet(id types.EntityID) (*component.Bullet, bool) {
	return ecs.Bullets.Get(id)
}

func (ecs *ECS) RemoveBullet(id types.EntityID) bool {
	return ecs.Bullets.Remove(id)
}

func (ecs *ECS) EachTower(fn func(*component.Tower)) {
	ecs.Towers.Each(func(_ types.EntityID, t *component.Tower) { fn(t) })
}

func (ecs *ECS) EachEnemy(fn func(*component.Enemy)) {
	ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) { fn(e) })
}

func (ecs *ECS) EachBullet(fn func(*component.Bullet)) {
	ecs.Bullets.Each(func(_ types.EntityID, b *component.Bullet) { fn(b) })
}
