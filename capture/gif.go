// Package capture records the animation offline into an animated GIF
package capture

import (
	"context"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"log"
	"math"
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/neon-atom/engine"
)

// Options describe one capture
type Options struct {
	Width, Height int
	FPS           int
	Seconds       float64
	// Supersample renders at n× resolution and filters down, 1 disables
	Supersample int
	// Dither enables Floyd-Steinberg error diffusion into the palette
	Dither bool
}

func (o Options) sanitize() Options {
	o.Width, o.Height = max(o.Width, 1), max(o.Height, 1)
	o.FPS = max(o.FPS, 1)
	o.Supersample = max(o.Supersample, 1)
	if !(o.Seconds > 0) {
		o.Seconds = 0
	}
	return o
}

// FrameCount returns the number of frames a capture produces, at least one
func (o Options) FrameCount() int {
	o = o.sanitize()
	return max(int(math.Ceil(o.Seconds*float64(o.FPS)-1e-9)), 1)
}

// Delay returns the per-frame delay in hundredths of a second
func (o Options) Delay() int {
	o = o.sanitize()
	return max(int(math.Round(100/float64(o.FPS))), 2)
}

// Recorder accumulates frames for one GIF
type Recorder struct {
	opts   Options
	anim   gif.GIF
	scaled *image.RGBA
}

// NewRecorder creates an empty recorder
func NewRecorder(opts Options) *Recorder {
	return &Recorder{opts: opts.sanitize()}
}

// Len returns the number of recorded frames
func (r *Recorder) Len() int {
	return len(r.anim.Image)
}

// Add quantizes img to the output size and palette and appends it
func (r *Recorder) Add(img *image.RGBA) {
	src := img
	out := image.Rect(0, 0, r.opts.Width, r.opts.Height)
	if img.Bounds() != out {
		if r.scaled == nil {
			r.scaled = image.NewRGBA(out)
		}
		xdraw.CatmullRom.Scale(r.scaled, out, img, img.Bounds(), xdraw.Src, nil)
		src = r.scaled
	}

	pal := image.NewPaletted(out, palette.Plan9)
	if r.opts.Dither {
		draw.FloydSteinberg.Draw(pal, out, src, image.Point{})
	} else {
		draw.Draw(pal, out, src, image.Point{}, draw.Src)
	}
	r.anim.Image = append(r.anim.Image, pal)
	r.anim.Delay = append(r.anim.Delay, r.opts.Delay())
}

// Encode writes the looping animation
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.anim.Image) == 0 {
		return errors.New("capture: no frames recorded")
	}
	r.anim.LoopCount = 0
	if err := gif.EncodeAll(w, &r.anim); err != nil {
		return errors.Wrap(err, "encode gif")
	}
	return nil
}

// Record renders FrameCount frames on a fixed-step clock and writes the GIF to w
func Record(ctx context.Context, pipeline *engine.Pipeline, opts Options, w io.Writer) error {
	opts = opts.sanitize()
	pipeline.Resize(opts.Width*opts.Supersample, opts.Height*opts.Supersample)

	clock := engine.NewStepClock(opts.FPS)
	pipeline.Restart(clock)
	rec := NewRecorder(opts)
	n := opts.FrameCount()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "capture interrupted at frame %d/%d", i, n)
		}
		rec.Add(pipeline.Frame(clock.Elapsed()))
		clock.Step()
	}
	log.Printf("capture: %d frames at %dx%d, %d fps", n, opts.Width, opts.Height, opts.FPS)
	return rec.Encode(w)
}

// RecordFile is Record into a newly created file at path
func RecordFile(ctx context.Context, pipeline *engine.Pipeline, opts Options, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return Record(ctx, pipeline, opts, f)
}
