// internal/render/tile_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-creep-defense/internal/app"
	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/pkg/tilemap"
)

// TileRenderer рисует карту и сущности из снимка партии.
type TileRenderer struct {
	m        *tilemap.Map
	colors   *MapColors
	mapImage *ebiten.Image // Предрендеренная карта
}

func NewTileRenderer(m *tilemap.Map, colors *MapColors, screenWidth, screenHeight int) *TileRenderer {
	r := &TileRenderer{
		m:        m,
		colors:   colors,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *TileRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	size := float32(r.m.TileSize)
	for y := 0; y < r.m.Height; y++ {
		for x := 0; x < r.m.Width; x++ {
			c := r.tileColor(r.m.Symbol(x, y))
			px, py := float32(x)*size, float32(y)*size
			vector.DrawFilledRect(r.mapImage, px, py, size, size, c, false)
			vector.StrokeRect(r.mapImage, px, py, size, size, r.colors.GridWidth, DarkenColor(c), false)
		}
	}
}

func (r *TileRenderer) tileColor(sym rune) color.RGBA {
	switch sym {
	case tilemap.SymbolBuildable:
		return r.colors.BuildableColor
	case tilemap.SymbolPath:
		return r.colors.PathColor
	case tilemap.SymbolSpawn:
		return r.colors.SpawnColor
	case tilemap.SymbolBase:
		return r.colors.BaseColor
	default:
		return r.colors.BlockedColor
	}
}

// Draw рисует кадр. hovered - башня под курсором, для нее показывается радиус.
func (r *TileRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, hovered *component.Tower) {
	screen.DrawImage(r.mapImage, nil)

	if hovered != nil {
		vector.DrawFilledCircle(screen, float32(hovered.Position.X), float32(hovered.Position.Y), float32(hovered.Range), config.RangeColor, true)
	}

	for i := range snap.Towers {
		r.drawTower(screen, &snap.Towers[i])
	}
	for i := range snap.Enemies {
		if snap.Enemies[i].State == component.EnemyTraveling {
			r.drawEnemy(screen, &snap.Enemies[i])
		}
	}
	for _, b := range snap.Bullets {
		vector.DrawFilledCircle(screen, float32(b.Position.X), float32(b.Position.Y), config.ProjectileRadius, config.BulletColor, true)
	}
}

func (r *TileRenderer) drawTower(screen *ebiten.Image, t *component.Tower) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius+1, config.TowerStrokeColor, true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, towerColor(int(t.Type)), true)

	// Ствол по направлению турели.
	length := float32(config.TowerRadius + 3)
	ex := x + length*float32(math.Cos(t.TurretAngle))
	ey := y + length*float32(math.Sin(t.TurretAngle))
	vector.StrokeLine(screen, x, y, ex, ey, 2, config.TowerStrokeColor, true)

	// Уровень - точки под башней.
	for i := 1; i < t.Level && i <= 4; i++ {
		px := x - 6 + float32(i-1)*4
		vector.DrawFilledRect(screen, px, y+config.TowerRadius+1, 2, 2, config.BulletColor, false)
	}
}

func (r *TileRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	vector.DrawFilledCircle(screen, x, y, config.EnemyRadius, enemyColor(int(e.Type)), true)
	vector.StrokeCircle(screen, x, y, config.EnemyRadius, 1, DarkenColor(enemyColor(int(e.Type))), true)

	if e.MaxHealth <= 0 || e.Health >= e.MaxHealth {
		return
	}
	w := float32(config.EnemyRadius * 2)
	frac := float32(e.Health) / float32(e.MaxHealth)
	top := y - config.EnemyRadius - 3
	vector.DrawFilledRect(screen, x-w/2, top, w, 2, config.BlockedColor, false)
	vector.DrawFilledRect(screen, x-w/2, top, w*frac, 2, config.HealthBarColor, false)
}
