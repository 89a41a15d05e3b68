package window

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/engine"
)

func TestFrameSize(t *testing.T) {
	tests := []struct {
		w, h, scale  int
		wantW, wantH int
	}{
		{960, 540, 2, 480, 270},
		{960, 540, 1, 960, 540},
		{3, 1, 4, 1, 1},
		{1001, 333, 2, 500, 166},
	}
	for _, tt := range tests {
		if w, h := frameSize(tt.w, tt.h, tt.scale); w != tt.wantW || h != tt.wantH {
			t.Errorf("frameSize(%d, %d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.scale, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestShouldQuit(t *testing.T) {
	only := func(k ebiten.Key) func(ebiten.Key) bool {
		return func(q ebiten.Key) bool { return q == k }
	}
	if !shouldQuit(only(ebiten.KeyEscape)) || !shouldQuit(only(ebiten.KeyQ)) {
		t.Error("quit keys not detected")
	}
	if shouldQuit(only(ebiten.KeySpace)) {
		t.Error("space should not quit")
	}
}

func TestLayoutResizesPipeline(t *testing.T) {
	pipeline := engine.NewPipeline(config.Default(), 1, 1)
	g := NewGame(pipeline, engine.NewStepClock(60), 2)

	if w, h := g.Layout(640, 360); w != 640 || h != 360 {
		t.Errorf("layout = %dx%d", w, h)
	}
	if w, h := pipeline.Size(); w != 320 || h != 180 {
		t.Errorf("pipeline = %dx%d, want 320x180", w, h)
	}
}

type pauseRecorder struct {
	paused, resumed int
	state           bool
}

func (p *pauseRecorder) Elapsed() float64 { return 0 }
func (p *pauseRecorder) Pause()           { p.paused++; p.state = true }
func (p *pauseRecorder) Resume()          { p.resumed++; p.state = false }
func (p *pauseRecorder) IsPaused() bool   { return p.state }

func TestFocusPausesClock(t *testing.T) {
	clock := &pauseRecorder{}
	g := NewGame(engine.NewPipeline(config.Default(), 1, 1), clock, 1)

	g.setFocus(true)
	g.setFocus(false)
	g.setFocus(false)
	g.setFocus(true)
	if clock.paused != 1 || clock.resumed != 1 {
		t.Errorf("pause/resume = %d/%d, want 1/1", clock.paused, clock.resumed)
	}
}

func TestFocusFollowsClockState(t *testing.T) {
	clock := engine.NewMonotonicClock(engine.NewMockTimeProvider(time.Unix(0, 0)))
	g := NewGame(engine.NewPipeline(config.Default(), 1, 1), clock, 1)

	// A clock paused elsewhere is resumed once the window has focus
	clock.Pause()
	g.setFocus(true)
	if clock.IsPaused() {
		t.Error("focused window left the clock paused")
	}
	g.setFocus(false)
	if !clock.IsPaused() {
		t.Error("unfocused window did not pause the clock")
	}
}
