// Package audio plays a short chime each time an electron completes a revolution
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"

	"github.com/lixenwraith/neon-atom/parameter"
)

// envelope applies a linear attack/release gain to a stream of known length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over total samples; the caller bounds the length with beep.Take
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) gain() float64 {
	if e.position < e.attackSamples {
		return float64(e.position) / float64(e.attackSamples)
	}
	releaseStart := e.totalSamples - e.releaseSamples
	if e.position >= releaseStart && e.releaseSamples > 0 {
		return max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewChime builds one bell-like tone: a sine fundamental with a quieter octave,
// shaped by the chime envelope and scaled by vol
func NewChime(freq, vol float64, rate beep.SampleRate) (beep.Streamer, error) {
	if !(freq > 0) {
		return nil, errors.Errorf("chime frequency %v must be positive", freq)
	}
	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "chime fundamental %.2fHz", freq)
	}
	layers := []beep.Streamer{newVolume(fund, 0.7)}

	// The octave is dropped when it would alias
	if over, err := generators.SineTone(rate, 2*freq); err == nil {
		layers = append(layers, newVolume(over, 0.3))
	}

	shaped := NewEnvelope(beep.Mix(layers...), parameter.ChimeDuration,
		parameter.ChimeAttack, parameter.ChimeRelease, rate)
	return beep.Take(rate.N(parameter.ChimeDuration), newVolume(shaped, vol)), nil
}
