package parameter

import "math"

// Guide ring ellipse (thin, always visible)
const (
	GuideSemiMajor = 3.0
	GuideSemiMinor = 1.15
	// GuideSamples is the point count, 151 closes the ring with 150 segments
	GuideSamples   = 151
	GuideLineWidth = 1.0
)

// Electron path
const (
	// ElectronRadius is the semi-major axis of the electron path
	ElectronRadius = 2.75
	// OrbitAspect is semi-minor / semi-major for electron and glow ring
	OrbitAspect = 0.38
	// ElectronSize is the sphere radius of an electron
	ElectronSize = 0.25
)

// Nucleus
const (
	NucleusRadius = 0.35
)

// Orbit instances share geometry and differ by plane tilt and speed
var (
	OrbitTilts  = [3]float64{0, math.Pi / 3, -math.Pi / 3}
	OrbitSpeeds = [3]float64{6, 6.5, 7}

	// DriftFrequencies keep the three plane wobbles out of step
	DriftFrequencies = [3]float64{0.7, 0.9, 1.1}
)

// Plane drift (slow wobble layered on the fixed tilt)
const (
	DriftAmplitude = 0.12
	DriftAxis      = "y"
)

// Float group motion of the whole atom
const (
	FloatSpeed             = 4.0
	FloatRotationIntensity = 1.0
	FloatIntensity         = 2.0
)

// Strategy selects the electron presentation
const (
	StrategyGlow  = "glow"
	StrategyTrail = "trail"
)
