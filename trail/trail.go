package trail

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// sampleSlack absorbs frame-time rounding so a 0.5s interval at 60fps fires every 30 frames
const sampleSlack = 1e-9

// Settings configure a trail
type Settings struct {
	// Width is the ribbon width at the head in world units
	Width float64
	// MaxLength is the sample capacity; 1 or less renders a single point
	MaxLength int
	// Interval is the minimum seconds between samples; 0 or less samples every frame
	Interval float64
	// Decay is the per-second exponential opacity fade by sample age
	Decay float64
	// Color is over-bright HDR
	Color colorful.Color
	// Attenuation shapes width and opacity from head to tail
	Attenuation Attenuation
}

// Sanitize clamps malformed settings to the nearest valid value
func (s Settings) Sanitize() Settings {
	if s.MaxLength < 1 {
		s.MaxLength = 1
	}
	if !(s.Width >= 0) {
		s.Width = 0
	}
	if !(s.Interval >= 0) {
		s.Interval = 0
	}
	if !(s.Decay >= 0) {
		s.Decay = 0
	}
	if s.Attenuation == nil {
		s.Attenuation = Linear()
	}
	return s
}

// Trail is the per-electron sampler and history
type Trail struct {
	settings Settings
	buf      *Buffer
	last     float64
	sampled  bool
}

// New creates an empty trail
func New(s Settings) *Trail {
	s = s.Sanitize()
	return &Trail{
		settings: s,
		buf:      NewBuffer(s.MaxLength),
	}
}

// Settings returns the sanitized settings in use
func (t *Trail) Settings() Settings {
	return t.settings
}

// Len returns the number of stored samples
func (t *Trail) Len() int {
	return t.buf.Len()
}

// Buffer exposes the underlying history, read-only by convention
func (t *Trail) Buffer() *Buffer {
	return t.buf
}

// Update offers the electron's current world position for this frame
// Invalid positions (electron not yet written) are never recorded
// Returns true when a sample was appended
func (t *Trail) Update(now float64, pos mgl64.Vec3, valid bool) bool {
	if !valid {
		return false
	}
	// Clock went backwards: animation restarted, sample immediately
	if t.sampled && now < t.last {
		t.sampled = false
	}
	if t.sampled && t.settings.Interval > 0 && now-t.last+sampleSlack < t.settings.Interval {
		return false
	}
	t.buf.Push(Sample{Pos: pos, Time: now})
	t.last = now
	t.sampled = true
	return true
}

// Reset drops the history and restarts the sampling throttle
func (t *Trail) Reset() {
	t.buf.Reset()
	t.sampled = false
	t.last = 0
}
