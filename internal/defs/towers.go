package defs

// TowerDefinition holds the static stats of one tower type.
type TowerDefinition struct {
	Type        TowerType `json:"type"`
	Name        string    `json:"name"`
	Damage      int       `json:"damage"`
	Range       float64   `json:"range"`        // px
	TurnSpeed   float64   `json:"turn_speed"`   // rad/ms
	AttackSpeed float64   `json:"attack_speed"` // ms между выстрелами
}
