package engine

import (
	"image"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/render"
	"github.com/lixenwraith/neon-atom/scene"
)

// Pipeline turns animation time into finished frames: scene update, raster, bloom, encode
type Pipeline struct {
	Atom     *scene.Atom
	Renderer *render.Renderer

	fb      *render.Framebuffer
	img     *image.RGBA
	toneMap render.ToneMap

	mu          sync.Mutex
	pendingGlow *[2]float64
}

// resetter is a clock that can restart from zero
type resetter interface {
	Reset()
}

// NewCamera builds the configured perspective camera
func NewCamera(cfg *config.Config) *render.Camera {
	c := cfg.Camera
	return render.NewCamera(
		mgl64.Vec3{c.Position[0], c.Position[1], c.Position[2]},
		mgl64.Vec3{c.Target[0], c.Target[1], c.Target[2]},
		c.Fov, c.Near, c.Far,
	)
}

// RenderOptions maps the configuration onto renderer options
func RenderOptions(cfg *config.Config) render.Options {
	return render.Options{
		Background: cfg.Scene.Background.Colorful(),
		Bloom: render.Bloom{
			Threshold: cfg.Bloom.Threshold,
			Radius:    cfg.Bloom.Radius,
			Intensity: cfg.Bloom.Intensity,
			Levels:    cfg.Bloom.Levels,
		},
		ToneMap:  render.ParseToneMap(cfg.Scene.ToneMap),
		Emissive: render.ParseBlendMode(cfg.Scene.Blend),
	}
}

// NewPipeline assembles the atom and renderer for a w × h framebuffer
func NewPipeline(cfg *config.Config, w, h int) *Pipeline {
	opts := RenderOptions(cfg)
	r := render.NewRenderer(NewCamera(cfg), opts)
	return &Pipeline{
		Atom:     scene.New(cfg, r),
		Renderer: r,
		fb:       render.NewFramebuffer(w, h),
		toneMap:  opts.ToneMap,
	}
}

// Size returns the framebuffer dimensions
func (p *Pipeline) Size() (w, h int) {
	return p.fb.W, p.fb.H
}

// Resize changes the framebuffer dimensions for subsequent frames
func (p *Pipeline) Resize(w, h int) {
	p.fb.Resize(w, h)
}

// Restart rewinds the animation to time zero: trails and revolution counters are
// cleared and clock is reset when it supports it
func (p *Pipeline) Restart(clock Clock) {
	p.Atom.Reset()
	if r, ok := clock.(resetter); ok {
		r.Reset()
	}
}

// RequestGlowAxes queues a highlighted-ring size change for the next Frame
// Safe to call from any goroutine; the last request before a frame wins
func (p *Pipeline) RequestGlowAxes(semiMajor, semiMinor float64) {
	p.mu.Lock()
	p.pendingGlow = &[2]float64{semiMajor, semiMinor}
	p.mu.Unlock()
}

// Frame renders the animation at elapsed seconds
// The returned image is reused by the next call
func (p *Pipeline) Frame(elapsed float64) *image.RGBA {
	p.mu.Lock()
	if g := p.pendingGlow; g != nil {
		p.Atom.SetGlowAxes(g[0], g[1])
		p.pendingGlow = nil
	}
	p.mu.Unlock()

	p.Atom.Update(elapsed)
	p.Renderer.Render(p.fb)
	p.img = p.fb.Encode(p.img, p.toneMap)
	return p.img
}
