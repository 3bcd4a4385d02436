package app

import (
	"fmt"

	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/pkg/tilemap"
)

// NewGameFromSettings загружает карту, характеристики и волны по настройкам
// и создает партию. Пустые пути в настройках означают встроенные данные.
func NewGameFromSettings(s config.Settings) (*Game, *tilemap.Map, error) {
	m := tilemap.Default(config.TileSize)
	if s.MapFile != "" {
		loaded, err := tilemap.Load(s.MapFile, config.TileSize)
		if err != nil {
			return nil, nil, err
		}
		m = loaded
	}

	library, err := defs.LoadLibrary(s.TowersFile, s.EnemiesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load definitions: %w", err)
	}

	waves := defs.DefaultWaves()
	if s.WavesFile != "" {
		if waves, err = defs.LoadWaves(s.WavesFile); err != nil {
			return nil, nil, err
		}
	}

	g := NewGame(m, Options{
		Library:     library,
		Waves:       waves,
		StartMoney:  s.StartMoney,
		StartHealth: s.StartHealth,
	})
	return g, m, nil
}
