package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Revolution chime
const (
	ChimeDuration = 350 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 300 * time.Millisecond
	ChimeVolume   = 0.25

	// ChimeMinGap suppresses chimes closer than this on the same orbit
	ChimeMinGap = 120 * time.Millisecond
)

// ChimeFrequencies is the fundamental per orbit (A4, C#5, E5)
var ChimeFrequencies = [3]float64{440.0, 554.37, 659.25}
