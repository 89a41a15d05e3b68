package trail

import (
	"math"

	"github.com/lixenwraith/neon-atom/vmath"
)

// Attenuation maps position along the trail (0 = head, 1 = tail) to a width/opacity factor
// Implementations should decrease monotonically from 1 at the head toward 0 at the tail
type Attenuation func(t float64) float64

// Power returns (1-t)^p; non-positive exponents fall back to linear
func Power(p float64) Attenuation {
	if !(p > 0) {
		p = 1
	}
	return func(t float64) float64 {
		return math.Pow(1-vmath.Clamp01(t), p)
	}
}

// Linear is (1-t)
func Linear() Attenuation {
	return Power(1)
}

// eval evaluates a with input and output clamped to [0, 1]
func (a Attenuation) eval(t float64) float64 {
	return vmath.Clamp01(a(vmath.Clamp01(t)))
}
