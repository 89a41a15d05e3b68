package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective pinhole camera with a Y-up basis
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	// FovY is the vertical field of view in degrees
	FovY      float64
	Near, Far float64

	w, h     int
	viewProj mgl64.Mat4
	focal    float64 // pixels per unit at depth 1
}

// NewCamera creates a camera at eye aimed at target
func NewCamera(eye, target mgl64.Vec3, fovY, near, far float64) *Camera {
	c := &Camera{
		Eye:    eye,
		Target: target,
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   fovY,
		Near:   near,
		Far:    far,
	}
	c.SetViewport(1, 1)
	return c
}

// SetViewport recomputes the projection for a w × h pixel target
func (c *Camera) SetViewport(w, h int) {
	c.w, c.h = max(w, 1), max(h, 1)
	fov := mgl64.DegToRad(c.FovY)
	aspect := float64(c.w) / float64(c.h)
	proj := mgl64.Perspective(fov, aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Eye, c.Target, c.Up)
	c.viewProj = proj.Mul4(view)
	c.focal = float64(c.h) / (2 * math.Tan(fov/2))
}

// Viewport returns the current pixel dimensions
func (c *Camera) Viewport() (w, h int) {
	return c.w, c.h
}

// Project maps a world point to pixel coordinates (origin top-left) and view depth
// ok is false for points at or behind the near plane
func (c *Camera) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < c.Near {
		return 0, 0, w, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	x = (nx + 1) / 2 * float64(c.w)
	y = (1 - ny) / 2 * float64(c.h)
	return x, y, w, true
}

// PixelsPerUnit returns the screen size of one world unit at the given view depth
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth < c.Near {
		depth = c.Near
	}
	return c.focal / depth
}
