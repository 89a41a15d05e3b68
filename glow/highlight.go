// Package glow computes the moving bright arc drawn on an orbit ring
package glow

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-atom/orbit"
	"github.com/lixenwraith/neon-atom/vmath"
)

// Uniform names consumed by the shader sink
const (
	UniformAngle     = "angle"
	UniformGlowWidth = "glowWidth"
)

// MinWidth is the narrowest accepted glow width in radians
const MinWidth = 1e-3

// TrackMode selects the angle the arc follows
type TrackMode uint8

const (
	// TrackPolar follows the electron's polar angle in the ring plane, so the arc sits on the particle
	TrackPolar TrackMode = iota
	// TrackPhase follows the raw orbit phase θ; the electron at (a·sinθ, b·cosθ) has polar
	// angle near π/2-θ, so this arc sweeps the ring in the opposite direction
	TrackPhase
)

// ParseTrackMode maps "polar" / "phase"; unknown names fall back to TrackPolar
func ParseTrackMode(s string) TrackMode {
	if s == "phase" {
		return TrackPhase
	}
	return TrackPolar
}

// Intensity returns the highlight strength of a vertex at ring angle phi
// for a highlight centered on theta: 1 at distance 0, 0 at or beyond width,
// cubic falloff in between
func Intensity(phi, theta, width float64) float64 {
	if width < MinWidth {
		width = MinWidth
	}
	d := vmath.AngleDist(phi, theta)
	return 1 - vmath.Smoothstep(0, width, d)
}

// VertexAngle is the ring-plane angle of a local vertex
func VertexAngle(v mgl64.Vec3) float64 {
	return orbit.PolarAngle(v)
}

// Highlight is the per-frame glow state of one ring
// Angle is overwritten each frame, no history is kept
type Highlight struct {
	Angle float64
	Width float64
	Mode  TrackMode
}

// NewHighlight creates a highlight with the given width and tracking mode
func NewHighlight(width float64, mode TrackMode) *Highlight {
	if width < MinWidth {
		width = MinWidth
	}
	return &Highlight{Width: width, Mode: mode}
}

// Update refreshes the tracked angle from the driving orbit for this frame
// Must run after the orbit's electron was written in the same frame
func (h *Highlight) Update(o *orbit.Instance, elapsed float64) {
	switch h.Mode {
	case TrackPolar:
		if o.Electron.Valid {
			h.Angle = vmath.WrapAngle(orbit.PolarAngle(o.Electron.Local))
			return
		}
		fallthrough
	default:
		h.Angle = vmath.WrapAngle(o.Phase(elapsed))
	}
}

// Program is the per-vertex shading program handed to a shader sink
// Color is over-bright HDR; Alpha scales the final intensity
type Program struct {
	Color colorful.Color
	Alpha float64
}

// Shade returns the color and opacity of a local ring vertex under the given uniforms
// Missing uniforms read as zero
func (p Program) Shade(local mgl64.Vec3, uniforms map[string]float64) (colorful.Color, float64) {
	i := Intensity(VertexAngle(local), uniforms[UniformAngle], uniforms[UniformGlowWidth])
	return p.Color, i * p.Alpha
}
