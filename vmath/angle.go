package vmath

import "math"

// NormalizeAngle maps a to [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a tiny negative value can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// WrapAngle maps a to (-π, π]
func WrapAngle(a float64) float64 {
	a = NormalizeAngle(a)
	if a > math.Pi {
		a -= TwoPi
	}
	return a
}

// AngleDist returns the unsigned shortest angular distance between a and b, in [0, π]
func AngleDist(a, b float64) float64 {
	return math.Abs(WrapAngle(a - b))
}
