package component

// Ключи состояния, доступные внешним наблюдателям.
const (
	KeyWave         = "wave"
	KeyNextWaveIn   = "nextWaveIn"
	KeyMoney        = "money"
	KeyPlayerHealth = "playerHealth"
	KeyStatusText   = "statusText"
)

// GameState - общее состояние партии: экономика, волны, статус.
type GameState struct {
	Money        int    `json:"money"`
	PlayerHealth int    `json:"playerHealth"`
	Wave         int    `json:"wave"`
	NextWaveIn   int    `json:"nextWaveIn"` // секунды
	Running      bool   `json:"running"`
	StatusText   string `json:"statusText"`
}

// Value returns the state entry for one of the exported keys.
func (s *GameState) Value(key string) (any, bool) {
	switch key {
	case KeyWave:
		return s.Wave, true
	case KeyNextWaveIn:
		return s.NextWaveIn, true
	case KeyMoney:
		return s.Money, true
	case KeyPlayerHealth:
		return s.PlayerHealth, true
	case KeyStatusText:
		return s.StatusText, true
	}
	return nil, false
}

// Clamp убирает отрицательные деньги и здоровье.
func (s *GameState) Clamp() {
	if s.Money < 0 {
		s.Money = 0
	}
	if s.PlayerHealth < 0 {
		s.PlayerHealth = 0
	}
}
