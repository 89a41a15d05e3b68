package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-atom/vmath"
)

// thresholdSmoothing is the luminance band over which the bright pass fades in
const thresholdSmoothing = 0.025

// Bloom configures the additive glow post-process
// Pixels brighter than Threshold bleed into a mip chain that is blurred,
// recombined with Radius as the upsample mix, and added back at Intensity
type Bloom struct {
	Threshold float64
	Radius    float64
	Intensity float64
	Levels    int
}

// Enabled reports whether the pass contributes anything
func (b Bloom) Enabled() bool {
	return b.Intensity > 0 && b.Levels > 0
}

// bloomPass owns the mip chain between frames
type bloomPass struct {
	levels []*Framebuffer
	tmp    *Framebuffer
}

// apply runs the bloom pass on fb in place
func (p *bloomPass) apply(fb *Framebuffer, b Bloom) {
	if !b.Enabled() {
		return
	}
	n := p.build(fb.W, fb.H, b.Levels)
	if n == 0 {
		return
	}

	// Bright pass fused with the first 2x downsample
	l0 := p.levels[0]
	for y := 0; y < l0.H; y++ {
		for x := 0; x < l0.W; x++ {
			var acc colorful.Color
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					acc = addColor(acc, brightPass(fb.At(min(2*x+i, fb.W-1), min(2*y+j, fb.H-1)), b.Threshold))
				}
			}
			l0.Pix[y*l0.W+x] = Scale(acc, 0.25)
		}
	}
	for i := 1; i < n; i++ {
		downsample(p.levels[i-1], p.levels[i])
	}

	for i := 0; i < n; i++ {
		p.blur(p.levels[i])
	}

	radius := vmath.Clamp01(b.Radius)
	for i := n - 2; i >= 0; i-- {
		dst, src := p.levels[i], p.levels[i+1]
		for y := 0; y < dst.H; y++ {
			for x := 0; x < dst.W; x++ {
				up := sampleUp(src, dst.W, dst.H, x, y)
				k := y*dst.W + x
				dst.Pix[k] = Blend(dst.Pix[k], up, radius, BlendAlpha)
			}
		}
	}

	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			up := sampleUp(l0, fb.W, fb.H, x, y)
			k := y*fb.W + x
			fb.Pix[k] = addColor(fb.Pix[k], Scale(up, b.Intensity))
		}
	}
}

// build sizes the mip chain, returns the usable level count
func (p *bloomPass) build(w, h, levels int) int {
	n := 0
	for n < levels {
		w, h = (w+1)/2, (h+1)/2
		if n > 0 && (w < 2 || h < 2) {
			break
		}
		if n < len(p.levels) {
			p.levels[n].Resize(w, h)
		} else {
			p.levels = append(p.levels, NewFramebuffer(w, h))
		}
		n++
	}
	return n
}

func brightPass(c colorful.Color, threshold float64) colorful.Color {
	l := Luminance(c)
	return Scale(c, vmath.Smoothstep(threshold, threshold+thresholdSmoothing, l))
}

func addColor(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

func downsample(src, dst *Framebuffer) {
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			var acc colorful.Color
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					acc = addColor(acc, src.At(min(2*x+i, src.W-1), min(2*y+j, src.H-1)))
				}
			}
			dst.Pix[y*dst.W+x] = Scale(acc, 0.25)
		}
	}
}

var blurKernel = [5]float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

// blur applies a separable 5-tap binomial filter with clamped edges
func (p *bloomPass) blur(f *Framebuffer) {
	if p.tmp == nil {
		p.tmp = NewFramebuffer(f.W, f.H)
	}
	p.tmp.Resize(f.W, f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			var acc colorful.Color
			for k, wgt := range blurKernel {
				sx := min(max(x+k-2, 0), f.W-1)
				acc = addColor(acc, Scale(f.Pix[y*f.W+sx], wgt))
			}
			p.tmp.Pix[y*f.W+x] = acc
		}
	}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			var acc colorful.Color
			for k, wgt := range blurKernel {
				sy := min(max(y+k-2, 0), f.H-1)
				acc = addColor(acc, Scale(p.tmp.Pix[sy*f.W+x], wgt))
			}
			f.Pix[y*f.W+x] = acc
		}
	}
}

// sampleUp bilinearly samples src at the center of pixel (x, y) of a w × h target
func sampleUp(src *Framebuffer, w, h, x, y int) colorful.Color {
	u := (float64(x)+0.5)*float64(src.W)/float64(w) - 0.5
	v := (float64(y)+0.5)*float64(src.H)/float64(h) - 0.5
	u = vmath.Clamp(u, 0, float64(src.W-1))
	v = vmath.Clamp(v, 0, float64(src.H-1))
	x0, y0 := int(u), int(v)
	x1, y1 := min(x0+1, src.W-1), min(y0+1, src.H-1)
	fx, fy := u-float64(x0), v-float64(y0)

	top := Blend(src.Pix[y0*src.W+x0], src.Pix[y0*src.W+x1], fx, BlendAlpha)
	bot := Blend(src.Pix[y1*src.W+x0], src.Pix[y1*src.W+x1], fx, BlendAlpha)
	return Blend(top, bot, fy, BlendAlpha)
}
