package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-atom/vmath"
)

// coverage is a scratch alpha layer for one primitive
// Overlapping pieces of the same primitive (polyline joints) max-blend
// instead of stacking, then the whole layer composites once
type coverage struct {
	w, h                   int
	a                      []float64
	minX, minY, maxX, maxY int
}

func (c *coverage) reset(w, h int) {
	if c.w != w || c.h != h {
		c.w, c.h = w, h
		c.a = make([]float64, w*h)
	}
	c.minX, c.minY = w, h
	c.maxX, c.maxY = -1, -1
}

func (c *coverage) empty() bool {
	return c.maxX < c.minX
}

func (c *coverage) plot(x, y int, a float64) {
	if a <= 0 || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := y*c.w + x
	if a > c.a[i] {
		c.a[i] = a
	}
	c.minX, c.maxX = min(c.minX, x), max(c.maxX, x)
	c.minY, c.maxY = min(c.minY, y), max(c.maxY, y)
}

// capsule rasterizes a segment whose radius and alpha interpolate from a to b
// Radii below half a pixel keep a one-pixel footprint and dim proportionally
func (c *coverage) capsule(ax, ay, ar, aa, bx, by, br, ba float64) {
	if aa <= 0 && ba <= 0 {
		return
	}
	pad := math.Max(math.Max(ar, br), 0.5) + 1
	x0 := max(int(math.Floor(math.Min(ax, bx)-pad)), 0)
	y0 := max(int(math.Floor(math.Min(ay, by)-pad)), 0)
	x1 := min(int(math.Ceil(math.Max(ax, bx)+pad)), c.w-1)
	y1 := min(int(math.Ceil(math.Max(ay, by)+pad)), c.h-1)
	if x0 > x1 || y0 > y1 {
		return
	}

	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5 - ay
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5 - ax
			u := 0.0
			if l2 > 0 {
				u = vmath.Clamp01((px*dx + py*dy) / l2)
			}
			ex, ey := px-u*dx, py-u*dy
			dist := math.Sqrt(ex*ex + ey*ey)

			r := vmath.Lerp(ar, br, u)
			re := math.Max(r, 0.5)
			cov := vmath.Clamp01(re-dist+0.5) * (r / re)
			c.plot(x, y, cov*vmath.Lerp(aa, ba, u))
		}
	}
}

// disc rasterizes a filled anti-aliased circle
func (c *coverage) disc(cx, cy, r, a float64) {
	c.capsule(cx, cy, r, a, cx, cy, r, a)
}

// flush composites the layer in color col and clears it
func (c *coverage) flush(fb *Framebuffer, col colorful.Color, mode BlendMode) {
	if c.empty() {
		return
	}
	for y := c.minY; y <= c.maxY; y++ {
		row := y * c.w
		for x := c.minX; x <= c.maxX; x++ {
			if a := c.a[row+x]; a > 0 {
				fb.Blend(x, y, col, a, mode)
				c.a[row+x] = 0
			}
		}
	}
	c.minX, c.minY = c.w, c.h
	c.maxX, c.maxY = -1, -1
}
