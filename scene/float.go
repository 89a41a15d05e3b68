package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/neon-atom/vmath"
)

// FloatGroup is the gentle whole-atom bob and sway
type FloatGroup struct {
	Speed             float64
	RotationIntensity float64
	FloatIntensity    float64
	Offset            float64
}

// Rotation returns the group tilt at elapsed seconds
func (f FloatGroup) Rotation(elapsed float64) vmath.Euler {
	a := (elapsed + f.Offset) / 4 * f.Speed
	return vmath.Euler{
		X: math.Cos(a) / 8 * f.RotationIntensity,
		Y: math.Sin(a) / 8 * f.RotationIntensity,
		Z: math.Sin(a) / 20 * f.RotationIntensity,
	}
}

// Height returns the vertical bob at elapsed seconds
func (f FloatGroup) Height(elapsed float64) float64 {
	a := (elapsed + f.Offset) / 4 * f.Speed
	return math.Sin(a) / 10 * f.FloatIntensity
}

// Matrix returns the group transform: translate after rotate
func (f FloatGroup) Matrix(elapsed float64) mgl64.Mat4 {
	return mgl64.Translate3D(0, f.Height(elapsed), 0).Mul4(f.Rotation(elapsed).Matrix())
}
