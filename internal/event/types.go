package event

// Экономика и статус партии.
const (
	MoneyGain        EventType = "money:gain"        // Data: int, сумма
	BaseDamage       EventType = "base:damage"       // Data: types.EntityID врага
	EnemyKilled      EventType = "enemy:killed"      // Data: Kill
	WaveChanged      EventType = "wave:changed"      // Data: int, номер волны
	HealthChanged    EventType = "health:changed"    // Data: int
	MoneyChanged     EventType = "money:changed"     // Data: int
	StatusChanged    EventType = "status:changed"    // Data: string
	CountdownChanged EventType = "countdown:changed" // Data: int, секунды
	GameOver         EventType = "game:over"
)

// Башни.
const (
	TowerPlaced  EventType = "tower:placed"  // Data: types.EntityID
	TowerFired   EventType = "tower:fired"   // Data: types.EntityID башни
	TowerLevelUp EventType = "tower:levelup" // Data: types.EntityID
)
