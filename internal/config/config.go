package config

import "image/color"

// Время в симуляции измеряется в миллисекундах, расстояния - в пикселях.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
	ScreenScale  = 4
	TileSize     = 16.0
	MaxDeltaTime = 60.0 // ms, ограничение шага при подвисаниях

	StartMoney  = 100
	StartHealth = 20

	BulletSpeed      = 0.2    // px/ms
	BulletLifespan   = 1000.0 // ms
	HitBoxSize       = 16.0   // сторона хитбокса врага
	InSightThreshold = 0.1    // rad
	LevelUpThreshold = 20

	// TravelConstant = базовая скорость 100 * 0.8: миллисекунд на пиксель пути.
	TravelConstant = 80.0

	WaveTimerPeriod      = 1000.0 // ms
	WaveRestartCountdown = 30     // s
	ResumeCountdown      = 3      // s
	SpawnStagger         = 2000.0 // ms между врагами одной волны

	EnemyRadius      = 5.0
	ProjectileRadius = 1.5
	TowerRadius      = 6.0
)

const (
	StatusBuild    = "Build your defenses"
	StatusPaused   = "Paused"
	StatusResumed  = "Next wave incoming"
	StatusWave     = "Wave %d"
	StatusGameOver = "Base destroyed"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	BuildableColor   = color.RGBA{70, 100, 120, 220}
	PathColor        = color.RGBA{150, 120, 80, 220}
	BlockedColor     = color.RGBA{40, 40, 50, 255}
	SpawnColor       = color.RGBA{0, 255, 0, 255}
	BaseColor        = color.RGBA{50, 205, 50, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	RangeColor       = color.RGBA{255, 0, 0, 50}
	BulletColor      = color.RGBA{255, 255, 0, 255}
	HealthBarColor   = color.RGBA{220, 60, 60, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	TowerColors      = []color.RGBA{
		{255, 50, 50, 255},  // Normal
		{50, 100, 255, 255}, // Laser
		{180, 50, 230, 255}, // Air
	}
	EnemyColors = []color.RGBA{
		{230, 230, 230, 255}, // Normal
		{255, 215, 0, 255},   // Speedy
		{128, 128, 128, 255}, // Heavy
		{100, 200, 255, 255}, // Flying
	}
)
