package orbit

import (
	"math"

	"github.com/lixenwraith/neon-atom/vmath"
)

// Phase converts elapsed seconds and angular speed into an angle in [0, 2π)
// Evaluated fresh every call so independent orbits never drift apart
func Phase(elapsed, speed float64) float64 {
	return vmath.NormalizeAngle(elapsed * speed)
}

// Revolutions returns the number of completed turns at elapsed seconds
// Negative totals count toward negative infinity
func Revolutions(elapsed, speed float64) int {
	return int(math.Floor(elapsed * speed / vmath.TwoPi))
}
