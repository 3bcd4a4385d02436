// internal/render/color.go
package render

import (
	"image/color"

	"go-creep-defense/internal/config"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	BuildableColor  color.RGBA
	PathColor       color.RGBA
	BlockedColor    color.RGBA
	SpawnColor      color.RGBA
	BaseColor       color.RGBA
	GridWidth       float32
}

func DefaultMapColors() *MapColors {
	return &MapColors{
		BackgroundColor: config.BackgroundColor,
		BuildableColor:  config.BuildableColor,
		PathColor:       config.PathColor,
		BlockedColor:    config.BlockedColor,
		SpawnColor:      config.SpawnColor,
		BaseColor:       config.BaseColor,
		GridWidth:       1,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

func towerColor(i int) color.RGBA {
	if i < 0 || i >= len(config.TowerColors) {
		return config.TowerStrokeColor
	}
	return config.TowerColors[i]
}

func enemyColor(i int) color.RGBA {
	if i < 0 || i >= len(config.EnemyColors) {
		return config.TextLightColor
	}
	return config.EnemyColors[i]
}
