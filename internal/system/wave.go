// internal/system/wave.go
package system

import (
	"fmt"
	"log"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/entity"
	"go-creep-defense/internal/event"
	"go-creep-defense/pkg/curve"
)

// WaveSystem - таймер волн. Раз в WaveTimerPeriod уменьшает обратный отсчет;
// когда он уходит в минус, начинается следующая волна.
// Пауза останавливает только этот таймер: враги и башни продолжают работать.
type WaveSystem struct {
	ecs             *entity.ECS
	state           *component.GameState
	eventDispatcher *event.Dispatcher
	library         *defs.Library
	waves           []defs.Wave
	path            *curve.Path
	timer           float64 // ms, накопленное время до следующего тика таймера
}

func NewWaveSystem(ecs *entity.ECS, state *component.GameState, eventDispatcher *event.Dispatcher,
	library *defs.Library, waves []defs.Wave, path *curve.Path) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		state:           state,
		eventDispatcher: eventDispatcher,
		library:         library,
		waves:           waves,
		path:            path,
	}
}

func (s *WaveSystem) Update(now, deltaTime float64) {
	if !s.state.Running {
		return
	}
	s.timer += deltaTime
	for s.timer >= config.WaveTimerPeriod && s.state.Running {
		s.timer -= config.WaveTimerPeriod
		s.tick(now)
	}
}

func (s *WaveSystem) tick(now float64) {
	next := s.state.NextWaveIn - 1
	if next >= 0 {
		s.setCountdown(next)
		return
	}
	s.setWave(s.state.Wave + 1)
	s.setCountdown(config.WaveRestartCountdown)
	s.StartWave(now, s.state.Wave)
}

// WaveCount - число известных волн.
func (s *WaveSystem) WaveCount() int {
	return len(s.waves)
}

// StartWave выпускает волну с номером index (с единицы). Враги создаются
// сразу, но стартуют с интервалом SpawnStagger. Номер вне списка - no-op.
func (s *WaveSystem) StartWave(now float64, index int) bool {
	if index < 1 || index > len(s.waves) {
		log.Printf("StartWave: wave %d out of range (1..%d), skipped", index, len(s.waves))
		return false
	}
	wave := s.waves[index-1]
	start := toPosition(s.path.Start())
	spawned := 0
	for i, enemyType := range wave.Creeps {
		def, ok := s.library.Enemies[enemyType]
		if !ok {
			log.Printf("Error: Enemy definition not found for type: %s", enemyType)
			continue
		}
		launchAt := now + float64(i)*config.SpawnStagger
		s.ecs.AddEnemy(component.NewEnemy(def, launchAt, start))
		spawned++
	}
	log.Printf("Wave %d started: %d creeps", index, spawned)
	s.setStatus(fmt.Sprintf(config.StatusWave, index))
	return true
}

// Pause останавливает таймер волн.
func (s *WaveSystem) Pause() {
	if !s.state.Running {
		return
	}
	s.state.Running = false
	s.setStatus(config.StatusPaused)
}

// Resume запускает таймер и дает игроку ResumeCountdown секунд до волны.
func (s *WaveSystem) Resume() {
	if s.state.Running {
		return
	}
	s.state.Running = true
	s.timer = 0
	s.setCountdown(config.ResumeCountdown)
	s.setStatus(config.StatusResumed)
}

func (s *WaveSystem) setWave(index int) {
	s.state.Wave = index
	s.eventDispatcher.Publish(event.WaveChanged, index)
}

func (s *WaveSystem) setCountdown(seconds int) {
	s.state.NextWaveIn = seconds
	s.eventDispatcher.Publish(event.CountdownChanged, seconds)
}

func (s *WaveSystem) setStatus(text string) {
	s.state.StatusText = text
	s.eventDispatcher.Publish(event.StatusChanged, text)
}
