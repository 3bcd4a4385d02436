// internal/app/game.go
package app

import (
	"log"

	"github.com/google/uuid"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/internal/system"
	"go-creep-defense/pkg/curve"
)

// Map - то, что игре нужно от карты: где можно строить и по какому пути идут враги.
type Map interface {
	Buildable(x, y int) bool
	TileCenter(x, y int) (float64, float64)
	Waypoints() []curve.Point
}

// Options задает данные партии. Пустые Library и Waves заменяются встроенными.
type Options struct {
	Library     *defs.Library
	Waves       []defs.Wave
	StartMoney  int
	StartHealth int
}

func DefaultOptions() Options {
	return Options{
		Library:     defs.DefaultLibrary(),
		Waves:       defs.DefaultWaves(),
		StartMoney:  config.StartMoney,
		StartHealth: config.StartHealth,
	}
}

// Game holds one session: registry, event bus, shared state and systems.
type Game struct {
	SessionID       uuid.UUID
	Map             Map
	Path            *curve.Path
	Library         *defs.Library
	ECS             *entity.ECS
	State           *component.GameState
	EventDispatcher *event.Dispatcher

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EconomySystem    *system.EconomySystem

	gameTime float64 // ms, время последнего Update
}

// NewGame initializes a new game instance.
func NewGame(m Map, opts Options) *Game {
	if m == nil {
		panic("map cannot be nil")
	}
	if opts.Library == nil {
		opts.Library = defs.DefaultLibrary()
	}
	if opts.Waves == nil {
		opts.Waves = defs.DefaultWaves()
	}

	waypoints := m.Waypoints()
	if len(waypoints) < 2 {
		log.Printf("NewGame: map path has %d waypoints, enemies will reach the base at once", len(waypoints))
	}
	path := curve.New(waypoints)

	state := &component.GameState{
		Money:        opts.StartMoney,
		PlayerHealth: opts.StartHealth,
		Wave:         0,
		NextWaveIn:   config.WaveRestartCountdown,
		Running:      true,
		StatusText:   config.StatusBuild,
	}
	state.Clamp()

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		SessionID:       uuid.New(),
		Map:             m,
		Path:            path,
		Library:         opts.Library,
		ECS:             ecs,
		State:           state,
		EventDispatcher: eventDispatcher,
	}
	g.EconomySystem = system.NewEconomySystem(state, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, state, eventDispatcher, opts.Library, opts.Waves, path)
	g.MovementSystem = system.NewMovementSystem(ecs, path, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)

	eventDispatcher.SubscribeFunc(event.GameOver, func(event.Event) {
		log.Printf("Session %s: base destroyed at wave %d", g.SessionID, g.State.Wave)
	})

	log.Printf("Session %s started: %d waves, path %.0fpx", g.SessionID, len(opts.Waves), path.Length())
	return g
}

// Update продвигает симуляцию на один тик. now и deltaTime - в миллисекундах.
func (g *Game) Update(now, deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.gameTime = now

	g.WaveSystem.Update(now, deltaTime)
	g.MovementSystem.Update(now, deltaTime)
	g.CombatSystem.Update(now, deltaTime)
	g.ProjectileSystem.Update(deltaTime)

	g.State.Clamp()
}

// GameTime возвращает время последнего тика, ms.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// StartWave выпускает волну с указанным номером, по умолчанию текущую.
// Номер вне списка волн ничего не делает.
func (g *Game) StartWave(index ...int) bool {
	n := g.State.Wave
	if len(index) > 0 {
		n = index[0]
	}
	return g.WaveSystem.StartWave(g.gameTime, n)
}

// Pause останавливает таймер волн. Враги и башни продолжают работать.
func (g *Game) Pause() {
	g.WaveSystem.Pause()
}

func (g *Game) Resume() {
	g.WaveSystem.Resume()
}

// GameOver сообщает, что здоровье базы кончилось.
func (g *Game) GameOver() bool {
	return g.State.PlayerHealth <= 0
}
