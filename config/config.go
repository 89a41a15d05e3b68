// Package config loads the atom description from YAML over built-in defaults
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/neon-atom/parameter"
)

// Config is the full scene and presenter description
// Zero-length Orbits is a valid, empty atom
type Config struct {
	Scene    SceneConfig    `yaml:"scene"`
	Orbits   []OrbitConfig  `yaml:"orbits"`
	Guide    GuideConfig    `yaml:"guide"`
	Electron ElectronConfig `yaml:"electron"`
	Glow     GlowConfig     `yaml:"glow"`
	Trail    TrailConfig    `yaml:"trail"`
	Nucleus  NucleusConfig  `yaml:"nucleus"`
	Float    FloatConfig    `yaml:"float"`
	Stars    StarsConfig    `yaml:"stars"`
	Bloom    BloomConfig    `yaml:"bloom"`
	Camera   CameraConfig   `yaml:"camera"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Capture  CaptureConfig  `yaml:"capture"`
	Audio    AudioConfig    `yaml:"audio"`
}

// SceneConfig holds scene-wide switches
type SceneConfig struct {
	// Strategy is "glow" (moving arc on a ring) or "trail" (fading ribbon)
	Strategy   string `yaml:"strategy"`
	Background Color  `yaml:"background"`
	// ToneMap is "aces" or "clamp"
	ToneMap string `yaml:"toneMap"`
	// Blend composites the glowing lines and trails: "add", "screen" or "max"
	Blend string `yaml:"blend"`
}

// OrbitConfig is one orbit instance, all instances share the guide, glow and electron geometry
type OrbitConfig struct {
	Name string `yaml:"name"`
	// Rotation is the Euler XYZ plane tilt in radians
	Rotation [3]float64  `yaml:"rotation"`
	Speed    float64     `yaml:"speed"`
	Drift    DriftConfig `yaml:"drift"`
}

// DriftConfig is the slow plane wobble, zero amplitude disables it
type DriftConfig struct {
	Axis      string  `yaml:"axis"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
}

// GuideConfig is the thin always-visible ring
type GuideConfig struct {
	SemiMajor float64 `yaml:"semiMajor"`
	SemiMinor float64 `yaml:"semiMinor"`
	Samples   int     `yaml:"samples"`
	Width     float64 `yaml:"width"`
	Color     Color   `yaml:"color"`
}

// ElectronConfig is the electron path and sphere
type ElectronConfig struct {
	Radius float64 `yaml:"radius"`
	// Ratio is semi-minor / semi-major
	Ratio float64 `yaml:"ratio"`
	Size  float64 `yaml:"size"`
	Color Color   `yaml:"color"`
}

// GlowConfig is the highlighted ring used by the glow strategy
type GlowConfig struct {
	Radius    float64 `yaml:"radius"`
	Ratio     float64 `yaml:"ratio"`
	Samples   int     `yaml:"samples"`
	Width     float64 `yaml:"width"`
	Alpha     float64 `yaml:"alpha"`
	LineWidth float64 `yaml:"lineWidth"`
	Color     Color   `yaml:"color"`
	// Track is "polar" (arc on the electron) or "phase" (raw clock angle)
	Track string `yaml:"track"`
}

// SemiMajor returns the glow ellipse semi-major axis
func (g GlowConfig) SemiMajor() float64 {
	return g.Radius
}

// SemiMinor returns the glow ellipse semi-minor axis
func (g GlowConfig) SemiMinor() float64 {
	return g.Radius * g.Ratio
}

// TrailConfig is the fading ribbon used by the trail strategy
type TrailConfig struct {
	Width    float64 `yaml:"width"`
	Length   int     `yaml:"length"`
	Interval float64 `yaml:"interval"`
	Decay    float64 `yaml:"decay"`
	// Exponent of the (1-t)^p attenuation, 1 is linear
	Exponent float64 `yaml:"exponent"`
	Color    Color   `yaml:"color"`
}

// NucleusConfig is the central sphere
type NucleusConfig struct {
	Radius float64 `yaml:"radius"`
	Color  Color   `yaml:"color"`
}

// FloatConfig is the whole-atom wobble
type FloatConfig struct {
	Speed             float64 `yaml:"speed"`
	RotationIntensity float64 `yaml:"rotationIntensity"`
	FloatIntensity    float64 `yaml:"floatIntensity"`
	// Offset shifts the wobble time base
	Offset float64 `yaml:"offset"`
}

// StarsConfig is the background starfield
type StarsConfig struct {
	Count      int     `yaml:"count"`
	Radius     float64 `yaml:"radius"`
	Depth      float64 `yaml:"depth"`
	Factor     float64 `yaml:"factor"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
	Speed      float64 `yaml:"speed"`
	Seed       int64   `yaml:"seed"`
}

// BloomConfig is the additive glow post-process
type BloomConfig struct {
	Threshold float64 `yaml:"threshold"`
	Radius    float64 `yaml:"radius"`
	Intensity float64 `yaml:"intensity"`
	Levels    int     `yaml:"levels"`
}

// CameraConfig is a perspective camera aimed at Target
type CameraConfig struct {
	Position [3]float64 `yaml:"position"`
	Target   [3]float64 `yaml:"target"`
	// Fov is the vertical field of view in degrees
	Fov  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

// TerminalConfig is the tcell presenter
type TerminalConfig struct {
	FPS int `yaml:"fps"`
}

// WindowConfig is the ebiten presenter
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
}

// CaptureConfig is the offline GIF recorder
type CaptureConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	FPS     int     `yaml:"fps"`
	Seconds float64 `yaml:"seconds"`
}

// AudioConfig is the revolution chime
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// Frequencies are assigned to orbits by index, cycling when shorter
	Frequencies []float64 `yaml:"frequencies"`
}

// Load reads a YAML file and overlays it on Default
// Keys absent from the file keep their default; a present orbits list replaces the default list
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse overlays YAML data on Default and sanitizes the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	cfg.Sanitize()
	return cfg, nil
}

// Default returns the reference atom
func Default() *Config {
	orbits := make([]OrbitConfig, len(parameter.OrbitTilts))
	names := [...]string{"alpha", "beta", "gamma"}
	for i := range orbits {
		orbits[i] = OrbitConfig{
			Name:     names[i%len(names)],
			Rotation: [3]float64{0, 0, parameter.OrbitTilts[i]},
			Speed:    parameter.OrbitSpeeds[i],
			Drift: DriftConfig{
				Axis:      parameter.DriftAxis,
				Amplitude: parameter.DriftAmplitude,
				Frequency: parameter.DriftFrequencies[i],
				Phase:     float64(i) * 2.1,
			},
		}
	}

	bg := MustHex(parameter.Background)

	return &Config{
		Scene: SceneConfig{
			Strategy:   parameter.StrategyGlow,
			Background: bg,
			ToneMap:    parameter.ToneMapping,
			Blend:      parameter.EmissiveBlend,
		},
		Orbits: orbits,
		Guide: GuideConfig{
			SemiMajor: parameter.GuideSemiMajor,
			SemiMinor: parameter.GuideSemiMinor,
			Samples:   parameter.GuideSamples,
			Width:     parameter.GuideLineWidth,
			Color:     parameter.GuideColor,
		},
		Electron: ElectronConfig{
			Radius: parameter.ElectronRadius,
			Ratio:  parameter.OrbitAspect,
			Size:   parameter.ElectronSize,
			Color:  parameter.ElectronColor,
		},
		Glow: GlowConfig{
			Radius:    parameter.GlowRadius,
			Ratio:     parameter.OrbitAspect,
			Samples:   parameter.GlowSamples,
			Width:     parameter.GlowWidth,
			Alpha:     parameter.GlowAlpha,
			LineWidth: parameter.GlowLineWidth,
			Color:     parameter.GlowColor,
			Track:     parameter.GlowTrackMode,
		},
		Trail: TrailConfig{
			Width:    parameter.TrailWidth,
			Length:   parameter.TrailLength,
			Interval: parameter.TrailInterval,
			Decay:    parameter.TrailDecay,
			Exponent: parameter.TrailExponent,
			Color:    parameter.TrailColor,
		},
		Nucleus: NucleusConfig{
			Radius: parameter.NucleusRadius,
			Color:  parameter.NucleusColor,
		},
		Float: FloatConfig{
			Speed:             parameter.FloatSpeed,
			RotationIntensity: parameter.FloatRotationIntensity,
			FloatIntensity:    parameter.FloatIntensity,
		},
		Stars: StarsConfig{
			Count:      parameter.StarCount,
			Radius:     parameter.StarRadius,
			Depth:      parameter.StarDepth,
			Factor:     parameter.StarFactor,
			Saturation: parameter.StarSaturation,
			Lightness:  parameter.StarLightness,
			Speed:      parameter.StarSpeed,
			Seed:       parameter.StarSeed,
		},
		Bloom: BloomConfig{
			Threshold: parameter.BloomThreshold,
			Radius:    parameter.BloomRadius,
			Intensity: parameter.BloomIntensity,
			Levels:    parameter.BloomLevels,
		},
		Camera: CameraConfig{
			Position: [3]float64{parameter.CameraPosX, parameter.CameraPosY, parameter.CameraPosZ},
			Fov:      parameter.CameraFovDeg,
			Near:     parameter.CameraNear,
			Far:      parameter.CameraFar,
		},
		Terminal: TerminalConfig{
			FPS: parameter.TerminalFPS,
		},
		Window: WindowConfig{
			Width:  parameter.WindowWidth,
			Height: parameter.WindowHeight,
			TPS:    parameter.WindowTPS,
			Scale:  parameter.WindowRenderScale,
			Title:  "neon-atom",
		},
		Capture: CaptureConfig{
			Width:   parameter.CaptureWidth,
			Height:  parameter.CaptureHeight,
			FPS:     parameter.CaptureFPS,
			Seconds: parameter.CaptureSeconds,
		},
		Audio: AudioConfig{
			Volume:      parameter.ChimeVolume,
			Frequencies: append([]float64(nil), parameter.ChimeFrequencies[:]...),
		},
	}
}
