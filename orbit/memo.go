package orbit

import "github.com/go-gl/mathgl/mgl64"

// CurveMemo caches the point sequence of the last requested ellipse
// Rebuilds only when the descriptor differs from the cached one, so per-frame
// callers get the same slice back until an axis or sampling parameter changes
type CurveMemo struct {
	key    Ellipse
	points []mgl64.Vec3
	valid  bool
	builds int
}

// Get returns the points for e, regenerating only on a descriptor change
// The returned slice is shared and must be treated as read-only
func (m *CurveMemo) Get(e Ellipse) []mgl64.Vec3 {
	e = e.Sanitize()
	if m.valid && m.key == e {
		return m.points
	}
	m.key = e
	m.points = e.Points()
	m.valid = true
	m.builds++
	return m.points
}

// Builds returns how many times the curve was generated
func (m *CurveMemo) Builds() int {
	return m.builds
}
