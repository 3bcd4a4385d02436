package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type   EnemyType `json:"type"`
	Name   string    `json:"name"`
	Health int       `json:"health"`
	Speed  float64   `json:"speed"` // множитель скорости, 1.0 - обычная
	Bounty int       `json:"bounty"`
}
