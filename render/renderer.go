package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-atom/glow"
	"github.com/lixenwraith/neon-atom/scene"
	"github.com/lixenwraith/neon-atom/trail"
	"github.com/lixenwraith/neon-atom/vmath"
)

// Screen-space calibration
const (
	// LineReferenceHeight is the framebuffer height at which line widths are exact pixels
	LineReferenceHeight = 540.0
	// starPointScale converts star size and view depth into a pixel diameter at the reference height
	starPointScale = 45.0
)

type itemKind uint8

const (
	kindLine itemKind = iota
	kindShaderLine
	kindSphere
	kindTrail
	kindPoints
)

// item is one registered drawable
type item struct {
	kind      itemKind
	transform mgl64.Mat4

	points []mgl64.Vec3
	color  colorful.Color
	width  float64
	radius float64

	program  glow.Program
	uniforms map[string]float64

	ribbon    []trail.RibbonPoint
	pointOnly bool

	colors []colorful.Color
	sizes  []float64
}

// Options configure a renderer
type Options struct {
	Background colorful.Color
	Bloom      Bloom
	ToneMap    ToneMap
	// Emissive composites guide rings, glow arcs and trails
	Emissive BlendMode
}

// Renderer is a software HDR rasterizer implementing every scene sink
// Not safe for concurrent use, all calls come from the frame goroutine
type Renderer struct {
	cam   *Camera
	opts  Options
	items []*item

	cov    coverage
	bloom  bloomPass
	sphere []sphereDraw
}

type sphereDraw struct {
	x, y, r, depth float64
	color          colorful.Color
}

var _ scene.Sink = (*Renderer)(nil)

// NewRenderer creates a renderer drawing through cam
func NewRenderer(cam *Camera, opts Options) *Renderer {
	return &Renderer{cam: cam, opts: opts}
}

// Camera returns the active camera
func (r *Renderer) Camera() *Camera {
	return r.cam
}

// Len returns the number of registered drawables
func (r *Renderer) Len() int {
	return len(r.items)
}

func (r *Renderer) add(it *item) scene.Handle {
	it.transform = mgl64.Ident4()
	r.items = append(r.items, it)
	return scene.Handle(len(r.items))
}

func (r *Renderer) get(h scene.Handle) *item {
	if h == scene.NoHandle || int(h) > len(r.items) {
		return nil
	}
	return r.items[h-1]
}

// AddLine implements scene.GeometrySink
func (r *Renderer) AddLine(points []mgl64.Vec3, color colorful.Color, width float64) scene.Handle {
	return r.add(&item{kind: kindLine, points: points, color: color, width: width})
}

// SetPoints implements scene.GeometrySink
func (r *Renderer) SetPoints(h scene.Handle, points []mgl64.Vec3) {
	if it := r.get(h); it != nil {
		it.points = points
	}
}

// AddSphere implements scene.MeshSink
func (r *Renderer) AddSphere(radius float64, color colorful.Color) scene.Handle {
	return r.add(&item{kind: kindSphere, radius: radius, color: color})
}

// AddShaderLine implements scene.ShaderSink
func (r *Renderer) AddShaderLine(points []mgl64.Vec3, program glow.Program, width float64) scene.Handle {
	return r.add(&item{
		kind:     kindShaderLine,
		points:   points,
		program:  program,
		width:    width,
		uniforms: make(map[string]float64, 2),
	})
}

// SetUniform implements scene.ShaderSink
func (r *Renderer) SetUniform(h scene.Handle, name string, v float64) {
	if it := r.get(h); it != nil && it.uniforms != nil {
		it.uniforms[name] = v
	}
}

// AddTrail implements scene.TrailSink
func (r *Renderer) AddTrail(color colorful.Color) scene.Handle {
	return r.add(&item{kind: kindTrail, color: color})
}

// SetRibbon implements scene.TrailSink, the points are copied
func (r *Renderer) SetRibbon(h scene.Handle, rb trail.Ribbon) {
	it := r.get(h)
	if it == nil {
		return
	}
	it.ribbon = append(it.ribbon[:0], rb.Points...)
	it.pointOnly = rb.PointOnly
	if rb.Color != (colorful.Color{}) {
		it.color = rb.Color
	}
}

// AddPoints implements scene.PointSink
func (r *Renderer) AddPoints(points []mgl64.Vec3, colors []colorful.Color, sizes []float64) scene.Handle {
	return r.add(&item{
		kind:   kindPoints,
		points: points,
		colors: colors,
		sizes:  append([]float64(nil), sizes...),
	})
}

// SetSizes implements scene.PointSink
func (r *Renderer) SetSizes(h scene.Handle, sizes []float64) {
	if it := r.get(h); it != nil {
		it.sizes = append(it.sizes[:0], sizes...)
	}
}

// SetTransform implements scene.Node
func (r *Renderer) SetTransform(h scene.Handle, m mgl64.Mat4) {
	if it := r.get(h); it != nil {
		it.transform = m
	}
}

// Render draws every registered item into fb and applies bloom
// Order: background, stars, rings, trails, spheres far to near
func (r *Renderer) Render(fb *Framebuffer) {
	if w, h := r.cam.Viewport(); w != fb.W || h != fb.H {
		r.cam.SetViewport(fb.W, fb.H)
	}
	r.cov.reset(fb.W, fb.H)
	fb.Clear(r.opts.Background)

	lineScale := float64(fb.H) / LineReferenceHeight

	for _, it := range r.items {
		if it.kind == kindPoints {
			r.drawPoints(fb, it, lineScale)
		}
	}
	for _, it := range r.items {
		switch it.kind {
		case kindLine:
			r.drawLine(fb, it, lineScale)
		case kindShaderLine:
			r.drawShaderLine(fb, it, lineScale)
		}
	}
	for _, it := range r.items {
		if it.kind == kindTrail {
			r.drawTrail(fb, it)
		}
	}

	r.sphere = r.sphere[:0]
	for _, it := range r.items {
		if it.kind != kindSphere {
			continue
		}
		center := vmath.TransformPoint(it.transform, mgl64.Vec3{})
		x, y, depth, ok := r.cam.Project(center)
		if !ok {
			continue
		}
		r.sphere = append(r.sphere, sphereDraw{
			x: x, y: y, depth: depth,
			r:     it.radius * r.cam.PixelsPerUnit(depth),
			color: it.color,
		})
	}
	sort.SliceStable(r.sphere, func(i, j int) bool {
		return r.sphere[i].depth > r.sphere[j].depth
	})
	for _, s := range r.sphere {
		r.cov.disc(s.x, s.y, s.r, 1)
		r.cov.flush(fb, s.color, BlendAlpha)
	}

	r.bloom.apply(fb, r.opts.Bloom)
}

// lineRadius converts a pixel width hint into a coverage radius
func lineRadius(width, scale float64) float64 {
	return math.Max(width*scale, 0) / 2
}

func (r *Renderer) drawLine(fb *Framebuffer, it *item, scale float64) {
	rad := lineRadius(it.width, scale)
	var px, py float64
	prev := false
	for _, p := range it.points {
		x, y, _, ok := r.cam.Project(vmath.TransformPoint(it.transform, p))
		if ok && prev {
			r.cov.capsule(px, py, rad, 1, x, y, rad, 1)
		}
		px, py, prev = x, y, ok
	}
	r.cov.flush(fb, it.color, r.opts.Emissive)
}

func (r *Renderer) drawShaderLine(fb *Framebuffer, it *item, scale float64) {
	rad := lineRadius(it.width, scale)
	var px, py, pa float64
	var color colorful.Color
	prev := false
	for _, p := range it.points {
		c, a := it.program.Shade(p, it.uniforms)
		color = c
		x, y, _, ok := r.cam.Project(vmath.TransformPoint(it.transform, p))
		if ok && prev {
			r.cov.capsule(px, py, rad, pa, x, y, rad, a)
		}
		px, py, pa, prev = x, y, a, ok
	}
	r.cov.flush(fb, color, r.opts.Emissive)
}

func (r *Renderer) drawTrail(fb *Framebuffer, it *item) {
	if len(it.ribbon) == 0 {
		return
	}
	type proj struct {
		x, y, rad, a float64
		ok           bool
	}
	project := func(p trail.RibbonPoint) proj {
		x, y, depth, ok := r.cam.Project(p.Pos)
		return proj{x: x, y: y, rad: p.Width / 2 * r.cam.PixelsPerUnit(depth), a: p.Opacity, ok: ok}
	}

	if it.pointOnly {
		head := project(it.ribbon[0])
		if head.ok {
			r.cov.disc(head.x, head.y, head.rad, head.a)
		}
		r.cov.flush(fb, it.color, r.opts.Emissive)
		return
	}

	prev := project(it.ribbon[0])
	for _, p := range it.ribbon[1:] {
		cur := project(p)
		if prev.ok && cur.ok {
			r.cov.capsule(prev.x, prev.y, prev.rad, prev.a, cur.x, cur.y, cur.rad, cur.a)
		}
		prev = cur
	}
	r.cov.flush(fb, it.color, r.opts.Emissive)
}

func (r *Renderer) drawPoints(fb *Framebuffer, it *item, scale float64) {
	for i, p := range it.points {
		if i >= len(it.sizes) || i >= len(it.colors) {
			return
		}
		x, y, depth, ok := r.cam.Project(vmath.TransformPoint(it.transform, p))
		if !ok {
			continue
		}
		rad := it.sizes[i] * starPointScale / depth * scale / 2
		if rad < 0.5 {
			// Sub-pixel star: energy proportional to its area
			fb.Blend(int(math.Floor(x)), int(math.Floor(y)), it.colors[i], math.Pi*rad*rad, BlendAdd)
			continue
		}
		r.cov.disc(x, y, rad, 1)
		r.cov.flush(fb, it.colors[i], BlendAdd)
	}
}
