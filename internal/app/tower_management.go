// internal/app/tower_management.go
package app

import (
	"log"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/event"
	"go-creep-defense/internal/types"
)

// PlaceTower attempts to place a tower of the given type on tile (tx, ty).
// Returns false for non-buildable or occupied tiles and unknown types.
func (g *Game) PlaceTower(tx, ty int, towerType defs.TowerType) bool {
	if !g.Map.Buildable(tx, ty) {
		return false
	}
	def, ok := g.Library.Towers[towerType]
	if !ok {
		log.Printf("Error: Tower definition not found for type: %s", towerType)
		return false
	}

	x, y := g.Map.TileCenter(tx, ty)
	tile := types.Tile{X: tx, Y: ty}
	tower := component.NewTower(def, tile, component.Position{X: x, Y: y})
	id, err := g.ECS.AddTower(tile, tower)
	if err != nil {
		return false
	}

	g.EventDispatcher.Publish(event.TowerPlaced, id)
	return true
}

// TowerAt returns the tower standing on tile (tx, ty).
func (g *Game) TowerAt(tx, ty int) (*component.Tower, bool) {
	return g.ECS.TowerAt(types.Tile{X: tx, Y: ty})
}
