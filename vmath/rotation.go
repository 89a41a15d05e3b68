package vmath

import "github.com/go-gl/mathgl/mgl64"

// TransformPoint applies the affine transform m to point v (w = 1)
func TransformPoint(m mgl64.Mat4, v mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}

// Euler is an XYZ-ordered rotation in radians, matching the scene-graph convention
// where the composed matrix is Rx · Ry · Rz
type Euler struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two rotations
func (e Euler) Add(o Euler) Euler {
	return Euler{e.X + o.X, e.Y + o.Y, e.Z + o.Z}
}

// Matrix returns the homogeneous rotation matrix Rx · Ry · Rz
func (e Euler) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(e.X).
		Mul4(mgl64.HomogRotate3DY(e.Y)).
		Mul4(mgl64.HomogRotate3DZ(e.Z))
}

// IsZero reports whether all components are zero
func (e Euler) IsZero() bool {
	return e.X == 0 && e.Y == 0 && e.Z == 0
}
