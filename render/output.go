package render

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-atom/vmath"
)

// ToneMap selects the HDR to display mapping
type ToneMap uint8

const (
	// ToneMapACES is the filmic curve fitted to ACES, compresses highlights smoothly
	ToneMapACES ToneMap = iota
	// ToneMapClamp cuts every component at 1
	ToneMapClamp
)

// ParseToneMap maps "aces" / "clamp", unknown names fall back to ACES
func ParseToneMap(s string) ToneMap {
	if s == "clamp" {
		return ToneMapClamp
	}
	return ToneMapACES
}

const encodeLUTSize = 4096

// encodeLUT maps quantized linear [0, 1] to 8-bit sRGB, avoids a pow per channel per pixel
var encodeLUT [encodeLUTSize]uint8

func init() {
	for i := range encodeLUT {
		v := float64(i) / (encodeLUTSize - 1)
		r, _, _ := colorful.LinearRgb(v, v, v).Clamped().RGB255()
		encodeLUT[i] = r
	}
}

func aces(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func encodeChannel(v float64, tm ToneMap) uint8 {
	if tm == ToneMapACES {
		v = aces(v)
	}
	return encodeLUT[int(vmath.Clamp01(v)*(encodeLUTSize-1)+0.5)]
}

// Display maps one linear HDR color to 8-bit sRGB
func Display(c colorful.Color, tm ToneMap) (r, g, b uint8) {
	return encodeChannel(c.R, tm), encodeChannel(c.G, tm), encodeChannel(c.B, tm)
}

// Encode writes fb into dst as sRGB, reallocating when dimensions differ
func (f *Framebuffer) Encode(dst *image.RGBA, tm ToneMap) *image.RGBA {
	if dst == nil || dst.Rect.Dx() != f.W || dst.Rect.Dy() != f.H {
		dst = image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	}
	for y := 0; y < f.H; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < f.W; x++ {
			r, g, b := Display(f.Pix[y*f.W+x], tm)
			o := x * 4
			row[o], row[o+1], row[o+2], row[o+3] = r, g, b, 0xff
		}
	}
	return dst
}
