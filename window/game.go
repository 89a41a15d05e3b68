// Package window presents rendered frames in a desktop window through ebiten
package window

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/engine"
)

// Pauser is a clock that can freeze while the window is unfocused
type Pauser interface {
	Pause()
	Resume()
	IsPaused() bool
}

// quitKeys end the game loop
var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// Game adapts the frame pipeline to ebiten.Game
// The software framebuffer is a 1/scale downsample of the window, upscaled with linear filtering
type Game struct {
	pipeline *engine.Pipeline
	clock    engine.Clock
	pauser   Pauser
	scale    int

	frame *ebiten.Image
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wires a pipeline and clock to a window
func NewGame(pipeline *engine.Pipeline, clock engine.Clock, scale int) *Game {
	g := &Game{
		pipeline: pipeline,
		clock:    clock,
		scale:    max(scale, 1),
	}
	g.pauser, _ = clock.(Pauser)
	return g
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if shouldQuit(ebiten.IsKeyPressed) {
		return ebiten.Termination
	}
	g.setFocus(ebiten.IsFocused())
	return nil
}

// setFocus pauses the clock on focus loss and resumes it on return
func (g *Game) setFocus(focused bool) {
	if g.pauser == nil || focused != g.pauser.IsPaused() {
		return
	}
	if focused {
		g.pauser.Resume()
		log.Printf("window: focus regained, resumed")
	} else {
		g.pauser.Pause()
		log.Printf("window: focus lost, paused")
	}
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.pipeline.Frame(g.clock.Elapsed())
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(img.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(h))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.frame, op)
}

// Layout implements ebiten.Game, the logical screen follows the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fw, fh := frameSize(outsideWidth, outsideHeight, g.scale)
	if w, h := g.pipeline.Size(); w != fw || h != fh {
		g.pipeline.Resize(fw, fh)
	}
	return outsideWidth, outsideHeight
}

// frameSize is the framebuffer size for a window, at least one pixel per axis
func frameSize(w, h, scale int) (int, int) {
	return max(w/scale, 1), max(h/scale, 1)
}

func shouldQuit(pressed func(ebiten.Key) bool) bool {
	for _, k := range quitKeys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// Run opens the window and blocks until it is closed or a quit key is pressed
func Run(cfg config.WindowConfig, g *Game) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	log.Printf("window: %dx%d, framebuffer 1/%d, %d tps", cfg.Width, cfg.Height, g.scale, cfg.TPS)
	g.pipeline.Restart(g.clock)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}
