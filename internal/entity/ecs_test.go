package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/types"
)

func TestAddTowerRejectsOccupiedTile(t *testing.T) {
	ecs := NewECS()
	tile := types.Tile{X: 3, Y: 4}

	first := &component.Tower{Damage: 10}
	id, err := ecs.AddTower(tile, first)
	require.NoError(t, err)
	assert.Equal(t, id, first.ID)
	assert.Equal(t, tile, first.Tile)

	_, err = ecs.AddTower(tile, &component.Tower{Damage: 99})
	assert.ErrorIs(t, err, ErrTileOccupied)

	assert.Equal(t, 1, ecs.Towers.Len())
	got, ok := ecs.TowerAt(tile)
	require.True(t, ok)
	assert.Equal(t, 10, got.Damage)
}

func TestRemoveTowerFreesTile(t *testing.T) {
	ecs := NewECS()
	tile := types.Tile{X: 1, Y: 1}
	id, err := ecs.AddTower(tile, &component.Tower{})
	require.NoError(t, err)

	assert.True(t, ecs.RemoveTower(id))
	assert.False(t, ecs.RemoveTower(id))
	_, ok := ecs.TowerAt(tile)
	assert.False(t, ok)

	_, err = ecs.AddTower(tile, &component.Tower{})
	assert.NoError(t, err)
}

func TestIDsAreUniqueAcrossKinds(t *testing.T) {
	ecs := NewECS()
	seen := map[types.EntityID]bool{}
	for i := 0; i < 5; i++ {
		ids := []types.EntityID{
			ecs.AddEnemy(&component.Enemy{}),
			ecs.AddBullet(&component.Bullet{}),
		}
		id, err := ecs.AddTower(types.Tile{X: i}, &component.Tower{})
		require.NoError(t, err)
		ids = append(ids, id)
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			assert.NotZero(t, id)
			seen[id] = true
		}
	}
}

func TestRemoveDuringIteration(t *testing.T) {
	ecs := NewECS()
	var ids []types.EntityID
	for i := 0; i < 6; i++ {
		ids = append(ids, ecs.AddEnemy(&component.Enemy{Health: i}))
	}

	var visited []int
	ecs.EachEnemy(func(e *component.Enemy) {
		visited = append(visited, e.Health)
		// Удаляем текущего и следующего за ним.
		if e.Health%2 == 0 {
			ecs.RemoveEnemy(e.ID)
			if e.Health+1 < len(ids) {
				ecs.RemoveEnemy(ids[e.Health+1])
			}
		}
	})

	assert.Equal(t, []int{0, 2, 4}, visited)
	assert.Equal(t, 0, ecs.Enemies.Len())
	assert.Empty(t, ecs.Enemies.IDs())
}

func TestAddDuringIterationIsNotVisited(t *testing.T) {
	ecs := NewECS()
	ecs.AddBullet(&component.Bullet{Damage: 1})
	ecs.AddBullet(&component.Bullet{Damage: 2})

	visits := 0
	ecs.EachBullet(func(b *component.Bullet) {
		visits++
		ecs.AddBullet(&component.Bullet{Damage: b.Damage * 10})
	})

	assert.Equal(t, 2, visits)
	assert.Equal(t, 4, ecs.Bullets.Len())
}

func TestIterationOrderIsInsertionOrder(t *testing.T) {
	ecs := NewECS()
	a := ecs.AddEnemy(&component.Enemy{})
	b := ecs.AddEnemy(&component.Enemy{})
	c := ecs.AddEnemy(&component.Enemy{})
	ecs.RemoveEnemy(b)
	d := ecs.AddEnemy(&component.Enemy{})

	assert.Equal(t, []types.EntityID{a, c, d}, ecs.Enemies.IDs())

	var order []types.EntityID
	ecs.EachEnemy(func(e *component.Enemy) { order = append(order, e.ID) })
	assert.Equal(t, []types.EntityID{a, c, d}, order)
}

func TestNestedIteration(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 3; i++ {
		v := i
		s.Add(types.EntityID(i), &v)
	}

	pairs := 0
	s.Each(func(outer types.EntityID, _ *int) {
		s.Each(func(inner types.EntityID, _ *int) {
			pairs++
			if inner == 3 {
				s.Remove(inner)
			}
		})
	})

	// Внешний обход видит 1 и 2, третий удален во внутреннем обходе.
	assert.Equal(t, 3+2, pairs)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []types.EntityID{1, 2}, s.IDs())
}

func TestStoreClear(t *testing.T) {
	s := NewStore[int]()
	v := 1
	s.Add(1, &v)
	s.Add(2, &v)

	s.Each(func(id types.EntityID, _ *int) {
		if id == 1 {
			s.Clear()
		}
	})
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())

	s.Add(3, &v)
	assert.Equal(t, []types.EntityID{3}, s.IDs())
}
