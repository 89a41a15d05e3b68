// Package vmath holds the scalar and rotation helpers shared by the orbit, glow and trail models
package vmath

import "math"

const (
	// TwoPi is one full turn in radians
	TwoPi = 2 * math.Pi

	// Epsilon is the tolerance used for angle and sweep comparisons
	Epsilon = 1e-9
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]; NaN maps to 0
func Clamp01(v float64) float64 {
	if v != v {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates between a and b
// t=0 returns a, t=1 returns b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep is the cubic Hermite step between edge0 and edge1
// Reversed edges are allowed and invert the curve, equal edges degrade to a hard step
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
