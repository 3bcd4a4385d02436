package defs

import (
	"fmt"
	"strings"
)

// TowerType - вид башни.
type TowerType int

const (
	TowerNormal TowerType = iota
	TowerLaser
	TowerAir
)

var towerTypeNames = []string{"NORMAL", "LASER", "AIR"}

func (t TowerType) String() string {
	if t < 0 || int(t) >= len(towerTypeNames) {
		return fmt.Sprintf("TowerType(%d)", int(t))
	}
	return towerTypeNames[t]
}

func (t TowerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TowerType) UnmarshalText(text []byte) error {
	parsed, err := ParseTowerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTowerType принимает имя типа без учета регистра.
func ParseTowerType(s string) (TowerType, error) {
	for i, name := range towerTypeNames {
		if strings.EqualFold(s, name) {
			return TowerType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tower type %q", s)
}

// EnemyType - вид врага.
type EnemyType int

const (
	EnemyNormal EnemyType = iota
	EnemySpeedy
	EnemyHeavy
	EnemyFlying
)

var enemyTypeNames = []string{"NORMAL", "SPEEDY", "HEAVY", "FLYING"}

func (t EnemyType) String() string {
	if t < 0 || int(t) >= len(enemyTypeNames) {
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
	return enemyTypeNames[t]
}

func (t EnemyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EnemyType) UnmarshalText(text []byte) error {
	for i, name := range enemyTypeNames {
		if strings.EqualFold(string(text), name) {
			*t = EnemyType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown enemy type %q", string(text))
}
