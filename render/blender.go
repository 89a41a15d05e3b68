package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-atom/vmath"
)

// BlendMode defines how a source color composites onto the framebuffer
// All operations run in linear HDR space, components are not clamped to 1
type BlendMode uint8

const (
	BlendAdd BlendMode = iota
	BlendAlpha
	BlendMax
	BlendScreen
)

// ParseBlendMode maps the emissive layer names "add", "screen" and "max"
// Unknown names fall back to additive
func ParseBlendMode(s string) BlendMode {
	switch s {
	case "screen":
		return BlendScreen
	case "max":
		return BlendMax
	default:
		return BlendAdd
	}
}

// Blend composites src onto dst at opacity alpha
func Blend(dst, src colorful.Color, alpha float64, mode BlendMode) colorful.Color {
	alpha = vmath.Clamp01(alpha)
	switch mode {
	case BlendAlpha:
		return colorful.Color{
			R: vmath.Lerp(dst.R, src.R, alpha),
			G: vmath.Lerp(dst.G, src.G, alpha),
			B: vmath.Lerp(dst.B, src.B, alpha),
		}
	case BlendAdd:
		return colorful.Color{
			R: dst.R + src.R*alpha,
			G: dst.G + src.G*alpha,
			B: dst.B + src.B*alpha,
		}
	case BlendMax:
		return colorful.Color{
			R: math.Max(dst.R, src.R*alpha),
			G: math.Max(dst.G, src.G*alpha),
			B: math.Max(dst.B, src.B*alpha),
		}
	case BlendScreen:
		// Additive that saturates toward the destination's unlit share
		return colorful.Color{
			R: dst.R + src.R*alpha*(1-vmath.Clamp01(dst.R)),
			G: dst.G + src.G*alpha*(1-vmath.Clamp01(dst.G)),
			B: dst.B + src.B*alpha*(1-vmath.Clamp01(dst.B)),
		}
	default:
		return dst
	}
}

// Scale multiplies every component by k
func Scale(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// Luminance is the Rec. 709 relative luminance of a linear color
func Luminance(c colorful.Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
