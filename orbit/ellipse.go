// Package orbit generates orbit curves and evaluates electron motion along them
//
// All evaluation is a pure function of elapsed time: phases are recomputed from the
// global clock on every call and never integrated frame to frame
package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/neon-atom/vmath"
)

// Limits applied by Sanitize
const (
	MinAxis    = 1e-3
	MinSamples = 2
)

// Ellipse describes a planar elliptical arc sampled into a point sequence
// Comparable value type: usable directly as a memo key
type Ellipse struct {
	CenterX, CenterY     float64
	SemiMajor, SemiMinor float64
	StartAngle, EndAngle float64
	Clockwise            bool
	Samples              int
}

// FullEllipse returns a closed counter-clockwise ellipse centered at the origin
func FullEllipse(a, b float64, samples int) Ellipse {
	return Ellipse{
		SemiMajor:  a,
		SemiMinor:  b,
		StartAngle: 0,
		EndAngle:   vmath.TwoPi,
		Samples:    samples,
	}
}

// Sanitize clamps malformed fields to the nearest valid value
// Axes must be positive, at least two samples are produced
func (e Ellipse) Sanitize() Ellipse {
	if !(e.SemiMajor >= MinAxis) {
		e.SemiMajor = MinAxis
	}
	if !(e.SemiMinor >= MinAxis) {
		e.SemiMinor = MinAxis
	}
	if e.Samples < MinSamples {
		e.Samples = MinSamples
	}
	return e
}

// Sweep returns the signed angular extent traversed from StartAngle
func (e Ellipse) Sweep() float64 {
	delta := e.EndAngle - e.StartAngle
	samePoints := math.Abs(delta) < vmath.Epsilon

	for delta < 0 {
		delta += vmath.TwoPi
	}
	for delta > vmath.TwoPi {
		delta -= vmath.TwoPi
	}

	if delta < vmath.Epsilon {
		if samePoints {
			delta = 0
		} else {
			delta = vmath.TwoPi
		}
	}

	if e.Clockwise && !samePoints {
		if delta == vmath.TwoPi {
			delta = -vmath.TwoPi
		} else {
			delta -= vmath.TwoPi
		}
	}
	return delta
}

// PointAt returns the curve point at parameter t in [0, 1], z = 0
func (e Ellipse) PointAt(t float64) mgl64.Vec3 {
	angle := e.StartAngle + t*e.Sweep()
	x, y := vmath.EllipsePolar(e.CenterX, e.CenterY, e.SemiMajor, e.SemiMinor, angle)
	return mgl64.Vec3{x, y, 0}
}

// Points samples the ellipse uniformly from StartAngle to EndAngle
// Always returns Samples points; a zero sweep returns Samples copies of the start point
func (e Ellipse) Points() []mgl64.Vec3 {
	e = e.Sanitize()
	sweep := e.Sweep()
	points := make([]mgl64.Vec3, e.Samples)
	last := float64(e.Samples - 1)
	for i := range points {
		angle := e.StartAngle + float64(i)/last*sweep
		x, y := vmath.EllipsePolar(e.CenterX, e.CenterY, e.SemiMajor, e.SemiMinor, angle)
		points[i] = mgl64.Vec3{x, y, 0}
	}
	return points
}
