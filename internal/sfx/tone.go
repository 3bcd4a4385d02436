package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Waveform - форма волны генератора.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Saw
)

// tone - бесконечный генератор; длину задает beep.Take.
type tone struct {
	freq  float64
	phase float64
	wave  Waveform
	rate  beep.SampleRate
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var v float64
		switch t.wave {
		case Square:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case Saw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade линейно гасит сигнал к концу звука, чтобы не было щелчка.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.pos)/float64(f.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// Note builds a finite tone of the given length with a linear fade-out.
func Note(rate beep.SampleRate, freq float64, d time.Duration, wave Waveform) beep.Streamer {
	total := rate.N(d)
	if total < 1 {
		total = 1
	}
	var src beep.Streamer = &tone{freq: freq, wave: wave, rate: rate}
	if wave == Sine {
		if sine, err := generators.SineTone(rate, freq); err == nil {
			src = sine
		}
	}
	return beep.Take(total, &fade{streamer: src, total: total})
}

// withVolume: vol в линейной шкале, 0 - тишина.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
