package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/glow"
	"github.com/lixenwraith/neon-atom/orbit"
	"github.com/lixenwraith/neon-atom/parameter"
	"github.com/lixenwraith/neon-atom/trail"
	"github.com/lixenwraith/neon-atom/vmath"
)

// Strategy selects how electron motion is emphasized
type Strategy uint8

const (
	// StrategyGlow draws a moving bright arc on a ring per orbit
	StrategyGlow Strategy = iota
	// StrategyTrail draws a fading ribbon behind each electron
	StrategyTrail
)

// ParseStrategy maps "glow" / "trail", unknown names fall back to StrategyGlow
func ParseStrategy(s string) Strategy {
	if s == parameter.StrategyTrail {
		return StrategyTrail
	}
	return StrategyGlow
}

func (s Strategy) String() string {
	if s == StrategyTrail {
		return parameter.StrategyTrail
	}
	return parameter.StrategyGlow
}

// orbitParts is the per-orbit drawable set and derived state
type orbitParts struct {
	inst *orbit.Instance

	guide    Handle
	electron Handle
	glowLine Handle
	trail    Handle

	highlight *glow.Highlight
	tr        *trail.Trail
	ribbon    []trail.RibbonPoint

	revolutions int
}

// Atom owns every orbit, the nucleus and the starfield
// All methods run on the frame goroutine
type Atom struct {
	sink     Sink
	strategy Strategy
	float    FloatGroup

	guideMemo orbit.CurveMemo
	glowMemo  orbit.CurveMemo
	guidePath orbit.Ellipse
	glowPath  orbit.Ellipse
	glowDirty bool

	// counted is false until the first frame after New or Reset has seeded the revolution counters
	counted bool

	orbits  []*orbitParts
	nucleus Handle

	stars     *Starfield
	starsH    Handle
	starSizes []float64

	// OnRevolution is called with the orbit index and its new revolution count
	// The first frame after New or Reset only records the count, whatever its time
	OnRevolution func(orbit, revolutions int)
}

// New builds the atom described by cfg and registers its drawables with sink
func New(cfg *config.Config, sink Sink) *Atom {
	a := &Atom{
		sink:     sink,
		strategy: ParseStrategy(cfg.Scene.Strategy),
		float: FloatGroup{
			Speed:             cfg.Float.Speed,
			RotationIntensity: cfg.Float.RotationIntensity,
			FloatIntensity:    cfg.Float.FloatIntensity,
			Offset:            cfg.Float.Offset,
		},
		guidePath: orbit.FullEllipse(cfg.Guide.SemiMajor, cfg.Guide.SemiMinor, cfg.Guide.Samples),
		glowPath:  orbit.FullEllipse(cfg.Glow.SemiMajor(), cfg.Glow.SemiMinor(), cfg.Glow.Samples),
	}

	guidePoints := a.guideMemo.Get(a.guidePath)
	electronPath := orbit.FullEllipse(cfg.Electron.Radius, cfg.Electron.Radius*cfg.Electron.Ratio, 2)
	program := glow.Program{Color: cfg.Glow.Color.Colorful(), Alpha: cfg.Glow.Alpha}
	trackMode := glow.ParseTrackMode(cfg.Glow.Track)

	for _, oc := range cfg.Orbits {
		parts := &orbitParts{
			inst: &orbit.Instance{
				Name:     oc.Name,
				Path:     electronPath,
				Rotation: vmath.Euler{X: oc.Rotation[0], Y: oc.Rotation[1], Z: oc.Rotation[2]},
				Speed:    oc.Speed,
				Drift: orbit.Drift{
					Axis:      orbit.ParseAxis(oc.Drift.Axis),
					Amplitude: oc.Drift.Amplitude,
					Frequency: oc.Drift.Frequency,
					Phase:     oc.Drift.Phase,
				},
			},
		}

		parts.guide = sink.AddLine(guidePoints, cfg.Guide.Color.Colorful(), cfg.Guide.Width)
		parts.electron = sink.AddSphere(cfg.Electron.Size, cfg.Electron.Color.Colorful())

		switch a.strategy {
		case StrategyGlow:
			parts.highlight = glow.NewHighlight(cfg.Glow.Width, trackMode)
			parts.glowLine = sink.AddShaderLine(a.glowMemo.Get(a.glowPath), program, cfg.Glow.LineWidth)
		case StrategyTrail:
			parts.tr = trail.New(trail.Settings{
				Width:       cfg.Trail.Width,
				MaxLength:   cfg.Trail.Length,
				Interval:    cfg.Trail.Interval,
				Decay:       cfg.Trail.Decay,
				Color:       cfg.Trail.Color.Colorful(),
				Attenuation: trail.Power(cfg.Trail.Exponent),
			})
			parts.trail = sink.AddTrail(cfg.Trail.Color.Colorful())
		}

		a.orbits = append(a.orbits, parts)
	}

	a.nucleus = sink.AddSphere(cfg.Nucleus.Radius, cfg.Nucleus.Color.Colorful())

	a.stars = NewStarfield(StarSettings{
		Count:      cfg.Stars.Count,
		Radius:     cfg.Stars.Radius,
		Depth:      cfg.Stars.Depth,
		Factor:     cfg.Stars.Factor,
		Saturation: cfg.Stars.Saturation,
		Lightness:  cfg.Stars.Lightness,
		Speed:      cfg.Stars.Speed,
		Seed:       uint64(cfg.Stars.Seed),
	})
	if a.stars.Len() > 0 {
		a.starSizes = a.stars.Sizes(0, nil)
		a.starsH = sink.AddPoints(a.stars.Points, a.stars.Colors, a.starSizes)
	}

	return a
}

// Strategy returns the active emphasis strategy
func (a *Atom) Strategy() Strategy {
	return a.strategy
}

// Len returns the orbit count
func (a *Atom) Len() int {
	return len(a.orbits)
}

// Orbit returns the i-th orbit instance for inspection
func (a *Atom) Orbit(i int) *orbit.Instance {
	return a.orbits[i].inst
}

// Highlight returns the glow state of orbit i, nil under the trail strategy
func (a *Atom) Highlight(i int) *glow.Highlight {
	return a.orbits[i].highlight
}

// Trail returns the trail of orbit i, nil under the glow strategy
func (a *Atom) Trail(i int) *trail.Trail {
	return a.orbits[i].tr
}

// GlowBuilds returns how many times the glow ring geometry was generated
func (a *Atom) GlowBuilds() int {
	return a.glowMemo.Builds()
}

// SetGlowAxes changes the highlighted ring ellipse, applied on the next Update
func (a *Atom) SetGlowAxes(semiMajor, semiMinor float64) {
	next := a.glowPath
	next.SemiMajor = semiMajor
	next.SemiMinor = semiMinor
	if next.Sanitize() == a.glowPath.Sanitize() {
		return
	}
	a.glowPath = next
	a.glowDirty = true
}

// Update runs one frame at elapsed seconds
// Order: group transform, then per orbit kinematics before glow and trail, then stars
func (a *Atom) Update(elapsed float64) {
	group := a.float.Matrix(elapsed)
	a.sink.SetTransform(a.nucleus, group)

	var glowPoints []mgl64.Vec3
	if a.glowDirty && a.strategy == StrategyGlow {
		glowPoints = a.glowMemo.Get(a.glowPath)
	}

	for i, p := range a.orbits {
		plane := group.Mul4(p.inst.PlaneMatrix(elapsed))
		p.inst.Update(elapsed, group)
		e := p.inst.Electron

		a.sink.SetTransform(p.guide, plane)
		a.sink.SetTransform(p.electron, mgl64.Translate3D(e.World.X(), e.World.Y(), e.World.Z()))

		switch a.strategy {
		case StrategyGlow:
			if glowPoints != nil {
				a.sink.SetPoints(p.glowLine, glowPoints)
			}
			p.highlight.Update(p.inst, elapsed)
			a.sink.SetTransform(p.glowLine, plane)
			a.sink.SetUniform(p.glowLine, glow.UniformAngle, p.highlight.Angle)
			a.sink.SetUniform(p.glowLine, glow.UniformGlowWidth, p.highlight.Width)
		case StrategyTrail:
			p.tr.Update(elapsed, e.World, e.Valid)
			r := p.tr.Ribbon(elapsed, p.ribbon)
			p.ribbon = r.Points
			a.sink.SetRibbon(p.trail, r)
		}

		revs := orbit.Revolutions(elapsed, p.inst.Speed)
		if a.counted && revs > p.revolutions && a.OnRevolution != nil {
			a.OnRevolution(i, revs)
		}
		p.revolutions = revs
	}
	a.glowDirty = false
	a.counted = true

	if a.starsH != NoHandle {
		a.starSizes = a.stars.Sizes(elapsed, a.starSizes)
		a.sink.SetSizes(a.starsH, a.starSizes)
	}
}

// Reset clears trails, electrons and revolution counters for a restart from time zero
func (a *Atom) Reset() {
	a.counted = false
	for _, p := range a.orbits {
		p.inst.Reset()
		p.revolutions = 0
		if p.tr != nil {
			p.tr.Reset()
			a.sink.SetRibbon(p.trail, trail.Ribbon{})
		}
	}
}
