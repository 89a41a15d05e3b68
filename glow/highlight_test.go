package glow

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-atom/orbit"
	"github.com/lixenwraith/neon-atom/vmath"
)

func TestIntensityEndpoints(t *testing.T) {
	thetas := []float64{0, 1, math.Pi, -math.Pi + 0.01, 5}
	for _, theta := range thetas {
		if v := Intensity(theta, theta, 0.3); v != 1 {
			t.Errorf("θ=%v: intensity at d=0 = %v, want 1", theta, v)
		}
		if v := Intensity(theta+0.3+1e-9, theta, 0.3); v != 0 {
			t.Errorf("θ=%v: intensity at d=width = %v, want 0", theta, v)
		}
		if v := Intensity(theta+1.5, theta, 0.3); v != 0 {
			t.Errorf("θ=%v: intensity beyond width = %v, want 0", theta, v)
		}
	}
}

func TestIntensityMonotonic(t *testing.T) {
	for _, theta := range []float64{0, 2, -3, math.Pi} {
		prev := 1.0
		for i := 0; i <= 400; i++ {
			d := float64(i) * math.Pi / 400
			v := Intensity(theta+d, theta, 0.3)
			if v > prev {
				t.Fatalf("θ=%v: intensity rose at d=%v: %v > %v", theta, d, v, prev)
			}
			if v < 0 || v > 1 {
				t.Fatalf("θ=%v: intensity %v outside [0, 1]", theta, v)
			}
			prev = v
		}
	}
}

func TestIntensityWrapsAcrossSeam(t *testing.T) {
	// φ just below +π, θ just above -π: angular distance is small
	v := Intensity(math.Pi-0.05, -math.Pi+0.05, 0.3)
	if v < 0.5 {
		t.Errorf("intensity across ±π seam = %v, want close to 1", v)
	}
}

func TestIntensitySmoothNotLinear(t *testing.T) {
	// Cubic falloff at the quarter point sits above the linear ramp
	v := Intensity(0.075, 0, 0.3)
	if v <= 0.75 {
		t.Errorf("quarter-width intensity = %v, want > 0.75", v)
	}
}

func TestIntensityClampsWidth(t *testing.T) {
	if v := Intensity(0, 0, -1); v != 1 {
		t.Errorf("non-positive width at d=0 = %v", v)
	}
	if v := Intensity(0.1, 0, 0); v != 0 {
		t.Errorf("non-positive width at d>0 = %v", v)
	}
}

func TestHighlightTracksOrbitPhase(t *testing.T) {
	o := &orbit.Instance{Path: orbit.FullEllipse(3, 1.14, 151), Speed: 6}
	h := NewHighlight(0.3, TrackPhase)

	for i := 0; i < 240; i++ {
		elapsed := float64(i) / 60
		o.Update(elapsed, mgl64.Ident4())
		h.Update(o, elapsed)
		want := vmath.WrapAngle(orbit.Phase(elapsed, 6))
		if math.Abs(h.Angle-want) > 1e-12 {
			t.Fatalf("frame %d: angle %v, want %v", i, h.Angle, want)
		}
		if h.Angle <= -math.Pi || h.Angle > math.Pi {
			t.Fatalf("frame %d: angle %v not wrapped", i, h.Angle)
		}
	}
}

func TestHighlightPolarTracksElectron(t *testing.T) {
	o := &orbit.Instance{Path: orbit.FullEllipse(2.75, 1.045, 151), Speed: 6}
	h := NewHighlight(0.3, TrackPolar)

	// Before the first electron write it falls back to the phase
	h.Update(o, 0.5)
	if want := vmath.WrapAngle(orbit.Phase(0.5, 6)); math.Abs(h.Angle-want) > 1e-12 {
		t.Errorf("fallback angle = %v, want %v", h.Angle, want)
	}

	o.Update(0.5, mgl64.Ident4())
	h.Update(o, 0.5)
	want := math.Atan2(o.Electron.Local.Y(), o.Electron.Local.X())
	if math.Abs(h.Angle-want) > 1e-12 {
		t.Errorf("polar angle = %v, want %v", h.Angle, want)
	}
	if v := Intensity(want, h.Angle, h.Width); v != 1 {
		t.Errorf("arc not centered on electron: %v", v)
	}
}

func TestProgramShadesRing(t *testing.T) {
	ring := orbit.FullEllipse(3, 1.14, 151).Points()
	p := Program{Color: colorful.Color{R: 4, G: 1, B: 10}, Alpha: 0.9}
	uniforms := map[string]float64{UniformAngle: 0, UniformGlowWidth: 0.3}

	// Vertex 0 sits at angle 0, the opposite vertex is dark
	if _, a := p.Shade(ring[0], uniforms); math.Abs(a-0.9) > 1e-12 {
		t.Errorf("alpha at vertex 0 = %v, want 0.9", a)
	}
	if _, a := p.Shade(ring[75], uniforms); a != 0 {
		t.Errorf("alpha at opposite vertex = %v, want 0", a)
	}
}

func TestProgramUniforms(t *testing.T) {
	p := Program{Color: colorful.Color{R: 4, G: 1, B: 10}, Alpha: 0.9}
	uniforms := map[string]float64{UniformAngle: 1.25, UniformGlowWidth: 0.4}
	s, c := math.Sincos(1.25)
	col, a := p.Shade(mgl64.Vec3{c, s, 0}, uniforms)
	if col != p.Color {
		t.Errorf("color = %v", col)
	}
	if math.Abs(a-0.9) > 1e-12 {
		t.Errorf("alpha on arc center = %v, want 0.9", a)
	}
	if _, a := p.Shade(mgl64.Vec3{-c, -s, 0}, uniforms); a != 0 {
		t.Errorf("alpha opposite arc = %v, want 0", a)
	}

	// Missing uniforms read as zero, the width floor keeps the arc finite
	if _, a := p.Shade(mgl64.Vec3{1, 0, 0}, nil); math.IsNaN(a) || a < 0 || a > 0.9 {
		t.Errorf("alpha without uniforms = %v", a)
	}
}

func TestParseTrackMode(t *testing.T) {
	if ParseTrackMode("polar") != TrackPolar || ParseTrackMode("phase") != TrackPhase || ParseTrackMode("bogus") != TrackPolar {
		t.Error("ParseTrackMode mapping wrong")
	}
}
