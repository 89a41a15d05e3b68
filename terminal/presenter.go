package terminal

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/neon-atom/engine"
	"github.com/lixenwraith/neon-atom/parameter"
)

// halfBlock is the upper half block, foreground paints the top pixel
const halfBlock = '▀'

// errQuit ends the frame loop without reporting failure
var errQuit = errors.New("quit")

// Pauser is a clock that can freeze while the terminal is unfocused
type Pauser interface {
	Pause()
	Resume()
}

// Presenter draws frames onto a tcell screen
type Presenter struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// New wraps an uninitialized screen
func New(screen tcell.Screen) *Presenter {
	return &Presenter{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
}

// Init takes over the terminal
func (p *Presenter) Init() error {
	if err := p.screen.Init(); err != nil {
		return err
	}
	p.screen.HideCursor()
	p.screen.EnableFocus()
	p.screen.Clear()
	return nil
}

// Fini restores the terminal, safe to call more than once
func (p *Presenter) Fini() {
	select {
	case <-p.done:
		return
	default:
		close(p.done)
	}
	p.screen.Fini()
}

// FrameSize returns the pixel dimensions covered by the screen
func (p *Presenter) FrameSize() (w, h int) {
	cols, rows := p.screen.Size()
	return cols, rows * 2
}

// Draw writes img onto the screen cell grid and shows it
// Pixels outside img read as black
func (p *Presenter) Draw(img *image.RGBA) {
	cols, rows := p.screen.Size()
	b := img.Bounds()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := pixel(img, b.Min.X+x, b.Min.Y+2*y)
			bot := pixel(img, b.Min.X+x, b.Min.Y+2*y+1)
			style := tcell.StyleDefault.Foreground(top).Background(bot)
			p.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	p.screen.Show()
}

func pixel(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return tcell.NewRGBColor(0, 0, 0)
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// startEventPump forwards screen events to the presenter channel until Fini
func (p *Presenter) startEventPump() {
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case p.events <- ev:
			case <-p.done:
				return
			}
		}
	}()
}

// handleEvent applies one event, returns false when the user asked to quit
func (p *Presenter) handleEvent(ev tcell.Event, pipeline *engine.Pipeline, pauser Pauser) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		}
	case *tcell.EventResize:
		p.screen.Sync()
		w, h := p.FrameSize()
		pipeline.Resize(w, h)
		log.Printf("terminal: resized to %dx%d pixels", w, h)
	case *tcell.EventFocus:
		if pauser == nil {
			break
		}
		if ev.Focused {
			pauser.Resume()
		} else {
			pauser.Pause()
		}
	}
	return true
}

// Run animates from time zero until the user quits, ctx is cancelled or a frame fails
// pipeline is resized to the screen; clock may implement Pauser
func (p *Presenter) Run(ctx context.Context, pipeline *engine.Pipeline, clock engine.Clock, fps int) error {
	pipeline.Resize(p.FrameSize())
	pipeline.Restart(clock)
	p.startEventPump()

	pauser, _ := clock.(Pauser)
	loop := &engine.Loop{
		Clock:    clock,
		Interval: time.Second / time.Duration(max(fps, 1)),
		MaxDelta: parameter.MaxFrameDelta,
		Frame: func(elapsed float64) error {
			// Drain pending input without blocking the frame
		drain:
			for {
				select {
				case ev := <-p.events:
					if !p.handleEvent(ev, pipeline, pauser) {
						return errQuit
					}
				default:
					break drain
				}
			}
			p.Draw(pipeline.Frame(elapsed))
			return nil
		},
	}

	err := loop.Run(ctx)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
