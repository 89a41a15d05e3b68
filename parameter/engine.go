package parameter

import "time"

// Frame loop timing
const (
	// TerminalFPS is the terminal presenter frame rate, tcell output dominates at higher rates
	TerminalFPS = 30

	// WindowTPS is the ebiten tick rate
	WindowTPS = 60

	// CaptureFPS is the frame rate of offline GIF capture
	CaptureFPS = 25

	// CaptureSeconds is the default capture length
	CaptureSeconds = 4.0

	// MaxFrameDelta caps a single frame step after stalls (resize, suspend)
	MaxFrameDelta = 100 * time.Millisecond
)

// Window presenter
const (
	WindowWidth  = 960
	WindowHeight = 540

	// WindowRenderScale divides the window size for the software framebuffer
	WindowRenderScale = 2
)

// Capture presenter
const (
	CaptureWidth  = 320
	CaptureHeight = 180
)
