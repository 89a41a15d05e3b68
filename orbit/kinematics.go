package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/neon-atom/vmath"
)

// Position maps phase theta onto the ellipse with semi-axes a, b in the local plane
// Starts at (0, b) and travels toward +x: (a·sin θ, b·cos θ, 0)
func Position(a, b, theta float64) mgl64.Vec3 {
	s, c := math.Sincos(theta)
	return mgl64.Vec3{a * s, b * c, 0}
}

// PolarAngle returns the local plane angle atan2(y, x) of p
func PolarAngle(p mgl64.Vec3) float64 {
	return math.Atan2(p.Y(), p.X())
}

// Electron is the per-frame kinematic state of one particle
// Valid stays false until the first Update writes a position
type Electron struct {
	Local mgl64.Vec3
	World mgl64.Vec3
	Phase float64
	Valid bool
}

// Instance is one orbit: shared ellipse, fixed plane tilt, own speed and drift
type Instance struct {
	Name     string
	Path     Ellipse
	Rotation vmath.Euler
	Speed    float64
	Drift    Drift

	Electron Electron
}

// PlaneRotation returns the tilt plus drift offset at elapsed seconds
func (o *Instance) PlaneRotation(elapsed float64) vmath.Euler {
	return o.Rotation.Add(o.Drift.Offset(elapsed))
}

// PlaneMatrix returns the local-to-parent transform of the orbit plane
func (o *Instance) PlaneMatrix(elapsed float64) mgl64.Mat4 {
	return o.PlaneRotation(elapsed).Matrix()
}

// Phase returns the electron phase at elapsed seconds
func (o *Instance) Phase(elapsed float64) float64 {
	return Phase(elapsed, o.Speed)
}

// Update writes the electron position for this frame
// parent is the world transform of the group holding the orbit plane
func (o *Instance) Update(elapsed float64, parent mgl64.Mat4) {
	p := o.Path.Sanitize()
	theta := o.Phase(elapsed)
	local := Position(p.SemiMajor, p.SemiMinor, theta)

	world := parent.Mul4(o.PlaneMatrix(elapsed))
	o.Electron = Electron{
		Local: local,
		World: vmath.TransformPoint(world, local),
		Phase: theta,
		Valid: true,
	}
}

// Reset clears the electron so downstream consumers see "no sample yet"
func (o *Instance) Reset() {
	o.Electron = Electron{}
}
