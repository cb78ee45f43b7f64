package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Sweep is a sine tone gliding from one frequency to another with a short
// attack and a linear release. It ends after its duration.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	pos      int
	total    int
	phase    float64
}

// NewSweep creates a tone of duration d gliding from `from` to `to` Hz.
func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration, volume float64) *Sweep {
	return &Sweep{
		sr:     sr,
		from:   from,
		to:     to,
		volume: volume,
		total:  max(sr.N(d), 1),
	}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	attack := max(g.sr.N(5*time.Millisecond), 1)

	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		env := 1 - progress
		if g.pos < attack {
			env *= float64(g.pos) / float64(attack)
		}
		sample := g.volume * env * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error {
	return nil
}

// PickupCue is two quick rising notes.
func PickupCue(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewSweep(sr, 660, 700, 60*time.Millisecond, 0.25),
		NewSweep(sr, 880, 990, 90*time.Millisecond, 0.25),
	)
}

// GameOverCue is a slow falling tone.
func GameOverCue(sr beep.SampleRate) beep.Streamer {
	return NewSweep(sr, 440, 160, 450*time.Millisecond, 0.3)
}
