package vmath

import "math"

// EllipseNormSq returns (x/a)² + (y/b)²
// Result of 1 means the point lies on the ellipse with semi-axes a, b
// Non-positive axes return 0
func EllipseNormSq(x, y, a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	nx := x / a
	ny := y / b
	return nx*nx + ny*ny
}

// EllipsePolar returns the point on the ellipse at parametric angle theta
// x = cx + a·cos θ, y = cy + b·sin θ
func EllipsePolar(cx, cy, a, b, theta float64) (x, y float64) {
	s, c := math.Sincos(theta)
	return cx + a*c, cy + b*s
}
