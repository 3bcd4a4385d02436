package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-creep-defense/internal/component"
	"go-creep-defense/internal/config"
	"go-creep-defense/internal/defs"
	"go-creep-defense/internal/event"
)

func newWaveSystem(state *component.GameState) (*WaveSystem, *recorder) {
	ecs, d, rec := newWorld()
	waves := defs.ParseWaves("NS\nH")
	return NewWaveSystem(ecs, state, d, defs.DefaultLibrary(), waves, straightPath()), rec
}

func countdowns(rec *recorder) []int {
	var out []int
	for _, e := range rec.of(event.CountdownChanged) {
		out = append(out, e.Data.(int))
	}
	return out
}

func TestWaveCountdownLaunchesNextWave(t *testing.T) {
	state := &component.GameState{Running: true, NextWaveIn: 2}
	waves, rec := newWaveSystem(state)

	waves.Update(0, 999)
	assert.Equal(t, 2, state.NextWaveIn)

	waves.Update(1000, 1)
	assert.Equal(t, 1, state.NextWaveIn)
	waves.Update(2000, 1000)
	assert.Equal(t, 0, state.NextWaveIn)
	assert.Equal(t, 0, waves.ecs.Enemies.Len())

	waves.Update(3000, 1000)
	assert.Equal(t, 1, state.Wave)
	assert.Equal(t, config.WaveRestartCountdown, state.NextWaveIn)
	assert.Equal(t, "Wave 1", state.StatusText)

	assert.Equal(t, []int{1, 0, config.WaveRestartCountdown}, countdowns(rec))
	changed := rec.of(event.WaveChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, 1, changed[0].Data)

	var launches []float64
	var kinds []defs.EnemyType
	waves.ecs.EachEnemy(func(e *component.Enemy) {
		assert.Equal(t, component.EnemySpawned, e.State)
		assert.Equal(t, component.Position{X: 0, Y: 0}, e.Position)
		launches = append(launches, e.LaunchAt)
		kinds = append(kinds, e.Type)
	})
	assert.Equal(t, []float64{3000, 3000 + config.SpawnStagger}, launches)
	assert.Equal(t, []defs.EnemyType{defs.EnemyNormal, defs.EnemySpeedy}, kinds)
}

func TestWaveTimerHandlesLongFrames(t *testing.T) {
	state := &component.GameState{Running: true, NextWaveIn: 5}
	waves, _ := newWaveSystem(state)

	waves.Update(0, 2500)
	assert.Equal(t, 3, state.NextWaveIn)

	waves.Update(0, 500)
	assert.Equal(t, 2, state.NextWaveIn)
}

func TestWavePauseFreezesTimer(t *testing.T) {
	state := &component.GameState{Running: true, NextWaveIn: 10}
	waves, rec := newWaveSystem(state)

	waves.Update(0, 600)
	waves.Pause()
	assert.False(t, state.Running)
	assert.Equal(t, config.StatusPaused, state.StatusText)

	waves.Update(0, 50000)
	assert.Equal(t, 10, state.NextWaveIn)
	assert.Equal(t, 0, state.Wave)

	waves.Resume()
	assert.True(t, state.Running)
	assert.Equal(t, config.ResumeCountdown, state.NextWaveIn)
	assert.Equal(t, config.StatusResumed, state.StatusText)

	// Накопленные до паузы 600ms сброшены.
	waves.Update(0, 999)
	assert.Equal(t, config.ResumeCountdown, state.NextWaveIn)

	statuses := rec.of(event.StatusChanged)
	require.Len(t, statuses, 2)
	assert.Equal(t, config.StatusPaused, statuses[0].Data)
	assert.Equal(t, config.StatusResumed, statuses[1].Data)
}

func TestPauseResumeAreIdempotent(t *testing.T) {
	state := &component.GameState{Running: true, NextWaveIn: 10}
	waves, rec := newWaveSystem(state)

	waves.Resume()
	assert.Equal(t, 10, state.NextWaveIn)

	waves.Pause()
	waves.Pause()
	assert.Len(t, rec.of(event.StatusChanged), 1)
}

func TestStartWaveDirectly(t *testing.T) {
	state := &component.GameState{Running: true, NextWaveIn: 10}
	waves, _ := newWaveSystem(state)

	assert.False(t, waves.StartWave(0, 0))
	assert.False(t, waves.StartWave(0, 3))
	assert.Equal(t, 0, waves.ecs.Enemies.Len())

	assert.True(t, waves.StartWave(500, 2))
	assert.Equal(t, 1, waves.ecs.Enemies.Len())
	assert.Equal(t, 0, state.Wave)
	assert.Equal(t, 10, state.NextWaveIn)
	assert.Equal(t, 2, waves.WaveCount())

	waves.ecs.EachEnemy(func(e *component.Enemy) {
		assert.Equal(t, defs.EnemyHeavy, e.Type)
		assert.Equal(t, 200, e.Health)
		assert.Equal(t, 500.0, e.LaunchAt)
	})
}
