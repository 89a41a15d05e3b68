package engine

import (
	"bytes"
	"testing"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/parameter"
)

func smallConfig(strategy string) *config.Config {
	cfg := config.Default()
	cfg.Scene.Strategy = strategy
	cfg.Stars.Count = 32
	return cfg
}

func TestPipelineFrame(t *testing.T) {
	for _, strategy := range []string{parameter.StrategyGlow, parameter.StrategyTrail} {
		t.Run(strategy, func(t *testing.T) {
			p := NewPipeline(smallConfig(strategy), 96, 54)
			if w, h := p.Size(); w != 96 || h != 54 {
				t.Fatalf("size %dx%d", w, h)
			}
			var img []byte
			for f := 0; f < 10; f++ {
				img = p.Frame(float64(f) / 30).Pix
			}

			// Nucleus sits at the view center and is bright
			center := p.Frame(10.0 / 30).RGBAAt(48, 27)
			if center.R < 150 {
				t.Errorf("center pixel = %v, want lit nucleus", center)
			}

			lit := 0
			for i := 0; i < len(img); i += 4 {
				if img[i] > 64 || img[i+2] > 64 {
					lit++
				}
			}
			if lit < 50 {
				t.Errorf("only %d lit pixels", lit)
			}
		})
	}
}

func TestPipelineDeterministic(t *testing.T) {
	a := NewPipeline(smallConfig(parameter.StrategyGlow), 64, 36)
	b := NewPipeline(smallConfig(parameter.StrategyGlow), 64, 36)
	if !bytes.Equal(a.Frame(1.25).Pix, b.Frame(1.25).Pix) {
		t.Error("same config and time produced different frames")
	}
}

func TestPipelineResize(t *testing.T) {
	p := NewPipeline(smallConfig(parameter.StrategyGlow), 32, 18)
	p.Frame(0)
	p.Resize(40, 20)
	img := p.Frame(0.1)
	if img.Rect.Dx() != 40 || img.Rect.Dy() != 20 {
		t.Errorf("image %v after resize", img.Rect)
	}
}

func TestPipelineRequestGlowAxes(t *testing.T) {
	p := NewPipeline(smallConfig(parameter.StrategyGlow), 32, 18)
	p.Frame(0)
	builds := p.Atom.GlowBuilds()

	done := make(chan struct{})
	go func() {
		p.RequestGlowAxes(3, 1)
		p.RequestGlowAxes(4, 1.5)
		close(done)
	}()
	<-done

	p.Frame(0.1)
	if got := p.Atom.GlowBuilds(); got != builds+1 {
		t.Errorf("glow builds = %d, want %d", got, builds+1)
	}
	p.Frame(0.2)
	if got := p.Atom.GlowBuilds(); got != builds+1 {
		t.Errorf("glow rebuilt without a new request: %d builds", got)
	}
}

func TestPipelineRestart(t *testing.T) {
	p := NewPipeline(smallConfig(parameter.StrategyTrail), 32, 18)
	clock := NewStepClock(30)
	for i := 0; i < 30; i++ {
		p.Frame(clock.Elapsed())
		clock.Step()
	}
	if p.Atom.Trail(0).Len() == 0 {
		t.Fatal("trail empty before restart")
	}

	p.Restart(clock)
	if clock.Frame() != 0 || clock.Elapsed() != 0 {
		t.Errorf("clock at frame %d after restart", clock.Frame())
	}
	for i := 0; i < p.Atom.Len(); i++ {
		if n := p.Atom.Trail(i).Len(); n != 0 {
			t.Errorf("trail %d holds %d samples after restart", i, n)
		}
	}
}
