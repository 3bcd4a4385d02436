package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Переменные окружения, которыми можно переопределить настройки.
const (
	EnvStartMoney  = "TD_START_MONEY"
	EnvStartHealth = "TD_START_HEALTH"
	EnvWavesFile   = "TD_WAVES_FILE"
	EnvMapFile     = "TD_MAP_FILE"
	EnvTowersFile  = "TD_TOWERS_FILE"
	EnvEnemiesFile = "TD_ENEMIES_FILE"
	EnvScale       = "TD_SCALE"
	EnvSound       = "TD_SOUND"
	EnvPprofAddr   = "TD_PPROF_ADDR"
)

// Settings - настройки запуска. Пустые пути означают встроенные данные.
type Settings struct {
	StartMoney  int
	StartHealth int
	WavesFile   string
	MapFile     string
	TowersFile  string
	EnemiesFile string
	Scale       int
	Sound       bool
	PprofAddr   string
}

func DefaultSettings() Settings {
	return Settings{
		StartMoney:  StartMoney,
		StartHealth: StartHealth,
		Scale:       ScreenScale,
		Sound:       true,
	}
}

// LoadSettings подгружает .env файлы (отсутствующие пропускаются),
// затем читает переменные окружения поверх значений по умолчанию.
// Уже выставленные переменные окружения имеют приоритет над .env.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s := DefaultSettings()
	var err error
	if s.StartMoney, err = envInt(EnvStartMoney, s.StartMoney); err != nil {
		return Settings{}, err
	}
	if s.StartHealth, err = envInt(EnvStartHealth, s.StartHealth); err != nil {
		return Settings{}, err
	}
	if s.Scale, err = envInt(EnvScale, s.Scale); err != nil {
		return Settings{}, err
	}
	if s.Sound, err = envBool(EnvSound, s.Sound); err != nil {
		return Settings{}, err
	}
	s.WavesFile = os.Getenv(EnvWavesFile)
	s.MapFile = os.Getenv(EnvMapFile)
	s.TowersFile = os.Getenv(EnvTowersFile)
	s.EnemiesFile = os.Getenv(EnvEnemiesFile)
	s.PprofAddr = os.Getenv(EnvPprofAddr)

	if s.StartMoney < 0 {
		s.StartMoney = 0
	}
	if s.StartHealth < 0 {
		s.StartHealth = 0
	}
	if s.Scale < 1 {
		s.Scale = 1
	}
	return s, nil
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return b, nil
}
