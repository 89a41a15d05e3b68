// Package scene assembles the atom from orbits, glow rings, trails, nucleus and stars
// and pushes per-frame state into a rendering collaborator through sinks
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-atom/glow"
	"github.com/lixenwraith/neon-atom/trail"
)

// Handle identifies a drawable registered with a sink, 0 is never issued
type Handle uint32

// NoHandle marks an absent drawable
const NoHandle Handle = 0

// GeometrySink accepts static polylines in local space
type GeometrySink interface {
	// AddLine registers a polyline, width is a screen-space hint in pixels
	AddLine(points []mgl64.Vec3, color colorful.Color, width float64) Handle
	// SetPoints replaces the vertices of a line or shader line
	SetPoints(h Handle, points []mgl64.Vec3)
}

// MeshSink accepts spheres centered on their local origin
type MeshSink interface {
	AddSphere(radius float64, color colorful.Color) Handle
}

// ShaderSink accepts polylines shaded per vertex by a program with named float uniforms
type ShaderSink interface {
	AddShaderLine(points []mgl64.Vec3, program glow.Program, width float64) Handle
	SetUniform(h Handle, name string, v float64)
}

// TrailSink accepts ribbons given in world space
type TrailSink interface {
	AddTrail(color colorful.Color) Handle
	// SetRibbon replaces the ribbon, the sink must copy what it keeps
	SetRibbon(h Handle, r trail.Ribbon)
}

// PointSink accepts sprite clouds with per-point color and size
type PointSink interface {
	AddPoints(points []mgl64.Vec3, colors []colorful.Color, sizes []float64) Handle
	SetSizes(h Handle, sizes []float64)
}

// Node positions any drawable in the world
type Node interface {
	SetTransform(h Handle, m mgl64.Mat4)
}

// Sink is the full rendering collaborator
type Sink interface {
	GeometrySink
	MeshSink
	ShaderSink
	TrailSink
	PointSink
	Node
}
