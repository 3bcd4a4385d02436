package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

//go:embed data/towers.json
var defaultTowers []byte

//go:embed data/enemies.json
var defaultEnemies []byte

//go:embed data/waves.txt
var defaultWaves string

// Library - справочник характеристик башен и врагов одной игры.
type Library struct {
	Towers  map[TowerType]TowerDefinition
	Enemies map[EnemyType]EnemyDefinition
}

// DefaultLibrary возвращает встроенные характеристики.
func DefaultLibrary() *Library {
	lib := &Library{
		Towers:  make(map[TowerType]TowerDefinition),
		Enemies: make(map[EnemyType]EnemyDefinition),
	}
	if err := lib.addTowers(defaultTowers); err != nil {
		panic(fmt.Sprintf("built-in tower definitions are broken: %v", err))
	}
	if err := lib.addEnemies(defaultEnemies); err != nil {
		panic(fmt.Sprintf("built-in enemy definitions are broken: %v", err))
	}
	return lib
}

// LoadLibrary starts from the built-in definitions and overrides them with
// the given files. An empty path keeps the defaults for that kind.
func LoadLibrary(towersPath, enemiesPath string) (*Library, error) {
	lib := DefaultLibrary()
	if towersPath != "" {
		if err := lib.LoadTowerDefinitions(towersPath); err != nil {
			return nil, err
		}
	}
	if enemiesPath != "" {
		if err := lib.LoadEnemyDefinitions(enemiesPath); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// LoadTowerDefinitions reads the tower configuration file into the library.
func (l *Library) LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	if err := l.addTowers(file); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}
	log.Printf("Loaded tower definitions from %s", path)
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file into the library.
func (l *Library) LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	if err := l.addEnemies(file); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	log.Printf("Loaded enemy definitions from %s", path)
	return nil
}

func (l *Library) addTowers(data []byte) error {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(data, &towerDefs); err != nil {
		return err
	}
	for _, def := range towerDefs {
		l.Towers[def.Type] = def
	}
	return nil
}

func (l *Library) addEnemies(data []byte) error {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return err
	}
	for _, def := range enemyDefs {
		l.Enemies[def.Type] = def
	}
	return nil
}

// DefaultWaves возвращает встроенный список волн.
func DefaultWaves() []Wave {
	return ParseWaves(defaultWaves)
}

// LoadWaves читает волны из текстового файла, одна строка - одна волна.
func LoadWaves(path string) ([]Wave, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read waves file: %w", err)
	}
	waves := ParseWaves(string(data))
	log.Printf("Loaded %d waves from %s", len(waves), path)
	return waves, nil
}
