package parameter

// HDR colors are linear RGB, components above 1 feed the bloom stage
var (
	GuideColor    = [3]float64{4, 1, 10}
	GlowColor     = [3]float64{4, 1, 10}
	ElectronColor = [3]float64{10, 1, 10}
	NucleusColor  = [3]float64{6, 0.5, 2}
	TrailColor    = [3]float64{10, 1, 10}
)

// Ring glow highlight
const (
	GlowRadius  = 3.0
	GlowSamples = 151
	// GlowWidth is the angular half width of the bright arc in radians
	GlowWidth = 0.3
	// GlowAlpha scales the highlight intensity
	GlowAlpha     = 0.9
	GlowLineWidth = 2.0
	GlowTrackMode = "polar"
)

// Trail ribbon
const (
	TrailWidth = 0.12
	// TrailLength is the sample capacity of the trail buffer
	TrailLength = 40
	// TrailInterval is seconds between samples
	TrailInterval = 0.012
	// TrailDecay is the exponential opacity fade per second of sample age
	TrailDecay = 1.5
	// TrailExponent shapes the (1-t)^p head-to-tail attenuation
	TrailExponent = 2.0
)

// Starfield
const (
	StarCount      = 400
	StarRadius     = 100.0
	StarDepth      = 50.0
	StarFactor     = 4.0
	StarSaturation = 0.0
	StarSpeed      = 0.5
	StarSeed       = 1
	// StarLightness is the HSL lightness of every star
	StarLightness = 0.9
)

// Bloom post-process
const (
	BloomThreshold = 0.1
	BloomRadius    = 0.7
	BloomIntensity = 1.5
	BloomLevels    = 5
)

// ToneMapping is the HDR to display curve, "aces" or "clamp"
const ToneMapping = "aces"

// EmissiveBlend composites lines and trails onto the frame, "add", "screen" or "max"
const EmissiveBlend = "add"
