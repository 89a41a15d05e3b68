package render

import "github.com/lucasb-eyer/go-colorful"

// Framebuffer is a row-major grid of linear HDR pixels
type Framebuffer struct {
	W, H int
	Pix  []colorful.Color
}

// NewFramebuffer allocates a framebuffer, dimensions below 1 become 1
func NewFramebuffer(w, h int) *Framebuffer {
	f := &Framebuffer{}
	f.Resize(w, h)
	return f
}

// Resize changes dimensions, contents are undefined afterwards
func (f *Framebuffer) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	f.W, f.H = w, h
	if cap(f.Pix) < w*h {
		f.Pix = make([]colorful.Color, w*h)
		return
	}
	f.Pix = f.Pix[:w*h]
}

// Clear fills every pixel with c
func (f *Framebuffer) Clear(c colorful.Color) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// InBounds reports whether (x, y) is a valid pixel
func (f *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.W && y < f.H
}

// At returns the pixel at (x, y), black outside bounds
func (f *Framebuffer) At(x, y int) colorful.Color {
	if !f.InBounds(x, y) {
		return colorful.Color{}
	}
	return f.Pix[y*f.W+x]
}

// Set overwrites the pixel at (x, y), ignored outside bounds
func (f *Framebuffer) Set(x, y int, c colorful.Color) {
	if f.InBounds(x, y) {
		f.Pix[y*f.W+x] = c
	}
}

// Blend composites c at (x, y), ignored outside bounds
func (f *Framebuffer) Blend(x, y int, c colorful.Color, alpha float64, mode BlendMode) {
	if !f.InBounds(x, y) || alpha <= 0 {
		return
	}
	i := y*f.W + x
	f.Pix[i] = Blend(f.Pix[i], c, alpha, mode)
}
