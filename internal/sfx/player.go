// Package sfx озвучивает события игры короткими синтезированными звуками.
package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"

	"go-creep-defense/internal/event"
)

// SampleRate - частота, с которой cmd инициализирует speaker.
const SampleRate = beep.SampleRate(44100)

// Sound - звуковой эффект.
type Sound int

const (
	SoundShot Sound = iota
	SoundKill
	SoundBaseHit
	SoundWave
	SoundLevelUp
	SoundGameOver
)

var eventSounds = map[event.EventType]Sound{
	event.TowerFired:   SoundShot,
	event.EnemyKilled:  SoundKill,
	event.BaseDamage:   SoundBaseHit,
	event.WaveChanged:  SoundWave,
	event.TowerLevelUp: SoundLevelUp,
	event.GameOver:     SoundGameOver,
}

// Player микширует звуки и сам является beep.Streamer. Его читает
// speaker из своей горутины, поэтому доступ к микшеру идет под lock.
// В cmd это speaker.Lock/Unlock, в тестах - обычный мьютекс.
type Player struct {
	lock   sync.Locker
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	muted  bool
}

// NewPlayer создает плеер. lock == nil означает собственный мьютекс.
func NewPlayer(rate beep.SampleRate, volume float64, lock sync.Locker) *Player {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &Player{
		lock:   lock,
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: volume,
	}
}

// Attach подписывает плеер на события игры. Возвращает функцию отписки.
func (p *Player) Attach(d *event.Dispatcher) (detach func()) {
	unsubs := make([]func(), 0, len(eventSounds))
	for t := range eventSounds {
		unsubs = append(unsubs, d.Subscribe(t, p))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// OnEvent реализует event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if s, ok := eventSounds[e.Type]; ok {
		p.Play(s)
	}
}

// Play ставит звук в микшер.
func (p *Player) Play(s Sound) {
	streamer := p.build(s)
	if streamer == nil {
		return
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.muted {
		return
	}
	p.mixer.Add(streamer)
}

// SetMuted включает и выключает звук; при выключении очередь очищается.
func (p *Player) SetMuted(muted bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.muted = muted
	if muted {
		p.mixer.Clear()
	}
}

// Pending - сколько звуков сейчас играет.
func (p *Player) Pending() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mixer.Len()
}

// Stream реализует beep.Streamer. Плеер не кончается: без звуков отдает тишину.
// Вызывается speaker'ом уже под его блокировкой, поэтому lock здесь не берется.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	n, _ = p.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (p *Player) Err() error { return nil }

func (p *Player) build(s Sound) beep.Streamer {
	r := p.rate
	switch s {
	case SoundShot:
		return withVolume(Note(r, 660, 40*time.Millisecond, Square), p.volume*0.15)
	case SoundKill:
		return withVolume(beep.Seq(
			Note(r, 987.77, 60*time.Millisecond, Square),
			Note(r, 1318.51, 120*time.Millisecond, Square),
		), p.volume*0.3)
	case SoundBaseHit:
		return withVolume(Note(r, 110, 200*time.Millisecond, Saw), p.volume*0.5)
	case SoundWave:
		return withVolume(beep.Seq(
			Note(r, 440, 120*time.Millisecond, Sine),
			Note(r, 554.37, 120*time.Millisecond, Sine),
			Note(r, 659.25, 200*time.Millisecond, Sine),
		), p.volume*0.4)
	case SoundLevelUp:
		return withVolume(beep.Mix(
			Note(r, 880, 250*time.Millisecond, Sine),
			Note(r, 1760, 150*time.Millisecond, Sine),
		), p.volume*0.3)
	case SoundGameOver:
		return withVolume(Note(r, 80, 800*time.Millisecond, Saw), p.volume*0.6)
	}
	return nil
}
