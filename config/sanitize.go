package config

import (
	"log"
	"math"

	"github.com/lixenwraith/neon-atom/parameter"
)

// Limits applied by Sanitize
const (
	minAxis     = 1e-3
	minSamples  = 2
	minGlow     = 1e-3
	maxBloomLvl = 8
	minFov      = 1.0
	maxFov      = 179.0
	minFPS      = 1
	maxFPS      = 240
)

// Sanitize clamps every out-of-range value to the nearest valid one and logs each clamp
// Never fails, a malformed file still produces a renderable atom
func (c *Config) Sanitize() {
	switch c.Scene.Strategy {
	case parameter.StrategyGlow, parameter.StrategyTrail:
	default:
		log.Printf("config: unknown scene.strategy %q, using %q", c.Scene.Strategy, parameter.StrategyGlow)
		c.Scene.Strategy = parameter.StrategyGlow
	}

	switch c.Scene.ToneMap {
	case "aces", "clamp":
	default:
		log.Printf("config: unknown scene.toneMap %q, using %q", c.Scene.ToneMap, parameter.ToneMapping)
		c.Scene.ToneMap = parameter.ToneMapping
	}

	switch c.Scene.Blend {
	case "add", "screen", "max":
	default:
		log.Printf("config: unknown scene.blend %q, using %q", c.Scene.Blend, parameter.EmissiveBlend)
		c.Scene.Blend = parameter.EmissiveBlend
	}

	for i := range c.Orbits {
		o := &c.Orbits[i]
		switch o.Drift.Axis {
		case "x", "y", "z":
		case "":
			o.Drift.Axis = parameter.DriftAxis
		default:
			log.Printf("config: orbit %d unknown drift axis %q, using %q", i, o.Drift.Axis, parameter.DriftAxis)
			o.Drift.Axis = parameter.DriftAxis
		}
		finite(&o.Speed, "orbit speed", 0)
		finite(&o.Drift.Amplitude, "drift amplitude", 0)
		finite(&o.Drift.Frequency, "drift frequency", 0)
	}

	atLeast(&c.Guide.SemiMajor, "guide.semiMajor", minAxis)
	atLeast(&c.Guide.SemiMinor, "guide.semiMinor", minAxis)
	atLeastInt(&c.Guide.Samples, "guide.samples", minSamples)
	atLeast(&c.Guide.Width, "guide.width", 0)

	atLeast(&c.Electron.Radius, "electron.radius", minAxis)
	atLeast(&c.Electron.Ratio, "electron.ratio", minAxis)
	atLeast(&c.Electron.Size, "electron.size", 0)

	atLeast(&c.Glow.Radius, "glow.radius", minAxis)
	atLeast(&c.Glow.Ratio, "glow.ratio", minAxis)
	atLeastInt(&c.Glow.Samples, "glow.samples", minSamples)
	atLeast(&c.Glow.Width, "glow.width", minGlow)
	between(&c.Glow.Alpha, "glow.alpha", 0, 1)
	atLeast(&c.Glow.LineWidth, "glow.lineWidth", 0)
	switch c.Glow.Track {
	case "phase", "polar":
	default:
		log.Printf("config: unknown glow.track %q, using %q", c.Glow.Track, parameter.GlowTrackMode)
		c.Glow.Track = parameter.GlowTrackMode
	}

	atLeast(&c.Trail.Width, "trail.width", 0)
	atLeastInt(&c.Trail.Length, "trail.length", 1)
	atLeast(&c.Trail.Interval, "trail.interval", 0)
	atLeast(&c.Trail.Decay, "trail.decay", 0)
	atLeast(&c.Trail.Exponent, "trail.exponent", minAxis)

	atLeast(&c.Nucleus.Radius, "nucleus.radius", 0)

	finite(&c.Float.Speed, "float.speed", parameter.FloatSpeed)
	finite(&c.Float.RotationIntensity, "float.rotationIntensity", 0)
	finite(&c.Float.FloatIntensity, "float.floatIntensity", 0)
	finite(&c.Float.Offset, "float.offset", 0)

	atLeastInt(&c.Stars.Count, "stars.count", 0)
	atLeast(&c.Stars.Radius, "stars.radius", 0)
	atLeast(&c.Stars.Depth, "stars.depth", 0)
	atLeast(&c.Stars.Factor, "stars.factor", 0)
	between(&c.Stars.Saturation, "stars.saturation", 0, 1)
	between(&c.Stars.Lightness, "stars.lightness", 0, 1)

	atLeast(&c.Bloom.Threshold, "bloom.threshold", 0)
	between(&c.Bloom.Radius, "bloom.radius", 0, 1)
	atLeast(&c.Bloom.Intensity, "bloom.intensity", 0)
	if c.Bloom.Levels < 0 || c.Bloom.Levels > maxBloomLvl {
		log.Printf("config: bloom.levels %d out of [0, %d], clamped", c.Bloom.Levels, maxBloomLvl)
		c.Bloom.Levels = min(max(c.Bloom.Levels, 0), maxBloomLvl)
	}

	between(&c.Camera.Fov, "camera.fov", minFov, maxFov)
	atLeast(&c.Camera.Near, "camera.near", 1e-4)
	if !(c.Camera.Far > c.Camera.Near) {
		log.Printf("config: camera.far %v not beyond near %v, using %v", c.Camera.Far, c.Camera.Near, parameter.CameraFar)
		c.Camera.Far = math.Max(parameter.CameraFar, c.Camera.Near*10)
	}

	fps(&c.Terminal.FPS, "terminal.fps")
	fps(&c.Window.TPS, "window.tps")
	fps(&c.Capture.FPS, "capture.fps")
	atLeastInt(&c.Window.Width, "window.width", 16)
	atLeastInt(&c.Window.Height, "window.height", 16)
	atLeastInt(&c.Window.Scale, "window.scale", 1)
	atLeastInt(&c.Capture.Width, "capture.width", 16)
	atLeastInt(&c.Capture.Height, "capture.height", 16)
	atLeast(&c.Capture.Seconds, "capture.seconds", 0)

	between(&c.Audio.Volume, "audio.volume", 0, 1)
	if len(c.Audio.Frequencies) == 0 {
		c.Audio.Frequencies = append([]float64(nil), parameter.ChimeFrequencies[:]...)
	}
}

func atLeast(v *float64, name string, lo float64) {
	if !(*v >= lo) {
		log.Printf("config: %s %v below %v, clamped", name, *v, lo)
		*v = lo
	}
}

func between(v *float64, name string, lo, hi float64) {
	switch {
	case !(*v >= lo):
		log.Printf("config: %s %v below %v, clamped", name, *v, lo)
		*v = lo
	case *v > hi:
		log.Printf("config: %s %v above %v, clamped", name, *v, hi)
		*v = hi
	}
}

func atLeastInt(v *int, name string, lo int) {
	if *v < lo {
		log.Printf("config: %s %d below %d, clamped", name, *v, lo)
		*v = lo
	}
}

func finite(v *float64, name string, fallback float64) {
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		log.Printf("config: %s not finite, using %v", name, fallback)
		*v = fallback
	}
}

func fps(v *int, name string) {
	if *v < minFPS || *v > maxFPS {
		log.Printf("config: %s %d out of [%d, %d], clamped", name, *v, minFPS, maxFPS)
		*v = min(max(*v, minFPS), maxFPS)
	}
}
