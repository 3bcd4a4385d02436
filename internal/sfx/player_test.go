package sfx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-creep-defense/internal/event"
)

func drain(p *Player, d time.Duration) [][2]float64 {
	buf := make([][2]float64, SampleRate.N(d))
	n, ok := p.Stream(buf)
	if n != len(buf) || !ok {
		panic("player stream ended")
	}
	return buf
}

func TestPlayerPlaysAndDrains(t *testing.T) {
	p := NewPlayer(SampleRate, 1, nil)
	p.Play(SoundShot)
	require.Equal(t, 1, p.Pending())

	buf := drain(p, 20*time.Millisecond)
	loud := false
	for _, s := range buf {
		if s[0] != 0 {
			loud = true
			break
		}
	}
	assert.True(t, loud)

	drain(p, time.Second)
	assert.Equal(t, 0, p.Pending())
}

func TestPlayerIsSilentWhenIdle(t *testing.T) {
	p := NewPlayer(SampleRate, 1, nil)
	for _, s := range drain(p, 10*time.Millisecond) {
		require.Equal(t, [2]float64{}, s)
	}
}

func TestPlayerFollowsEvents(t *testing.T) {
	d := event.NewDispatcher()
	p := NewPlayer(SampleRate, 1, nil)
	detach := p.Attach(d)

	d.Publish(event.TowerFired, nil)
	d.Publish(event.EnemyKilled, event.Kill{})
	d.Publish(event.MoneyChanged, 10) // без звука
	assert.Equal(t, 2, p.Pending())

	detach()
	d.Publish(event.BaseDamage, nil)
	assert.Equal(t, 2, p.Pending())
}

func TestPlayerMuted(t *testing.T) {
	p := NewPlayer(SampleRate, 1, nil)
	p.Play(SoundWave)
	p.SetMuted(true)
	assert.Equal(t, 0, p.Pending())

	p.Play(SoundGameOver)
	assert.Equal(t, 0, p.Pending())

	p.SetMuted(false)
	p.Play(SoundLevelUp)
	assert.Equal(t, 1, p.Pending())
}

func TestNoteLength(t *testing.T) {
	s := Note(SampleRate, 440, 10*time.Millisecond, Sine)
	buf := make([][2]float64, SampleRate.N(time.Second))
	n, _ := s.Stream(buf)
	assert.Equal(t, SampleRate.N(10*time.Millisecond), n)
}
