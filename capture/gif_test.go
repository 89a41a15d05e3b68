package capture

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/engine"
)

func testPipeline() *engine.Pipeline {
	cfg := config.Default()
	cfg.Stars.Count = 16
	return engine.NewPipeline(cfg, 8, 8)
}

func TestFrameCountAndDelay(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		frames  int
		delayCS int
	}{
		{"one second at 20", Options{FPS: 20, Seconds: 1}, 20, 5},
		{"fractional rounds up", Options{FPS: 10, Seconds: 0.55}, 6, 10},
		{"zero seconds", Options{FPS: 30, Seconds: 0}, 1, 3},
		{"fps floor", Options{FPS: 0, Seconds: 2}, 2, 100},
		{"fast fps clamps delay", Options{FPS: 100, Seconds: 0.1}, 10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.FrameCount(); got != tt.frames {
				t.Errorf("FrameCount = %d, want %d", got, tt.frames)
			}
			if got := tt.opts.Delay(); got != tt.delayCS {
				t.Errorf("Delay = %d, want %d", got, tt.delayCS)
			}
		})
	}
}

func TestRecord(t *testing.T) {
	opts := Options{Width: 32, Height: 18, FPS: 10, Seconds: 0.5, Supersample: 2, Dither: true}
	var buf bytes.Buffer
	if err := Record(context.Background(), testPipeline(), opts, &buf); err != nil {
		t.Fatalf("Record: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 5 {
		t.Fatalf("frames = %d, want 5", len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0", anim.LoopCount)
	}
	for i, frame := range anim.Image {
		if b := frame.Bounds(); b.Dx() != 32 || b.Dy() != 18 {
			t.Errorf("frame %d bounds %v", i, b)
		}
		if anim.Delay[i] != 10 {
			t.Errorf("frame %d delay %d, want 10", i, anim.Delay[i])
		}
	}

	// Frames advance in time so the electrons move between them
	if bytes.Equal(anim.Image[0].Pix, anim.Image[4].Pix) {
		t.Error("first and last frame identical")
	}
}

func TestRecordCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := Record(ctx, testPipeline(), Options{Width: 8, Height: 8, FPS: 10, Seconds: 1}, &buf)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes after cancel", buf.Len())
	}
}

func TestRecorderAdd(t *testing.T) {
	rec := NewRecorder(Options{Width: 4, Height: 4, FPS: 10})
	if err := rec.Encode(&bytes.Buffer{}); err == nil {
		t.Error("encoding zero frames should fail")
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	rec.Add(img)
	if rec.Len() != 1 {
		t.Fatalf("Len = %d, want 1", rec.Len())
	}
	r, g, b, _ := rec.anim.Image[0].At(1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("white quantized to %v", color.RGBA64{uint16(r), uint16(g), uint16(b), 0xffff})
	}

	// Larger input is scaled down to the output size
	rec.Add(image.NewRGBA(image.Rect(0, 0, 16, 16)))
	if b := rec.anim.Image[1].Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("scaled frame bounds %v", b)
	}
}

func TestRecordFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atom.gif")
	opts := Options{Width: 16, Height: 9, FPS: 5, Seconds: 0.4}
	if err := RecordFile(context.Background(), testPipeline(), opts, path); err != nil {
		t.Fatalf("RecordFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Errorf("frames = %d, want 2", len(anim.Image))
	}

	bad := filepath.Join(dir, "missing", "atom.gif")
	err = RecordFile(context.Background(), testPipeline(), opts, bad)
	if err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("error %v should name %s", err, bad)
	}
}

func TestRecordStartsFromZero(t *testing.T) {
	newPipeline := func() *engine.Pipeline {
		cfg := config.Default()
		cfg.Scene.Strategy = "trail"
		cfg.Stars.Count = 8
		return engine.NewPipeline(cfg, 8, 8)
	}
	opts := Options{Width: 24, Height: 14, FPS: 10, Seconds: 0.3}

	var fresh bytes.Buffer
	if err := Record(context.Background(), newPipeline(), opts, &fresh); err != nil {
		t.Fatal(err)
	}

	// A pipeline that already animated must record the same clip
	used := newPipeline()
	for f := 0; f < 20; f++ {
		used.Frame(40 + float64(f)/10)
	}
	var again bytes.Buffer
	if err := Record(context.Background(), used, opts, &again); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(fresh.Bytes(), again.Bytes()) {
		t.Error("recording depends on earlier frames")
	}
}
