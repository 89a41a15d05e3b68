package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/neon-atom/audio"
	"github.com/lixenwraith/neon-atom/capture"
	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/engine"
	"github.com/lixenwraith/neon-atom/terminal"
	"github.com/lixenwraith/neon-atom/window"
)

var (
	configFlag      = flag.String("config", "", "YAML scene file overlaid on the defaults")
	modeFlag        = flag.String("mode", "terminal", "Output: terminal, window, gif")
	outFlag         = flag.String("out", "neon-atom.gif", "GIF path for -mode gif")
	secondsFlag     = flag.Float64("seconds", 0, "GIF length in seconds, 0 keeps the configured value")
	fpsFlag         = flag.Int("fps", 0, "Frame rate override, 0 keeps the configured value")
	strategyFlag    = flag.String("strategy", "", "Electron effect override: glow, trail")
	supersampleFlag = flag.Int("supersample", 2, "GIF supersampling factor")
	ditherFlag      = flag.Bool("dither", true, "Dither GIF frames into the palette")
	debugFlag       = flag.Bool("debug", false, "Write logs to logs/neon-atom.log")
	audioFlag       = flag.Bool("audio", false, "Chime on electron revolutions")
)

func main() {
	flag.Parse()

	var logFile io.Closer
	if f := setupLogging(*debugFlag); f != nil {
		logFile = f
	}
	os.Exit(finish(run(), logFile, os.Stderr))
}

// finish flushes the log file before reporting err, returning the process exit code
func finish(err error, logFile io.Closer, stderr io.Writer) int {
	if err != nil {
		log.Printf("exit: %v", err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(stderr, "neon-atom: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return nil, err
		}
	}
	if *strategyFlag != "" {
		cfg.Scene.Strategy = *strategyFlag
	}
	if *secondsFlag > 0 {
		cfg.Capture.Seconds = *secondsFlag
	}
	if *fpsFlag > 0 {
		cfg.Terminal.FPS = *fpsFlag
		cfg.Window.TPS = *fpsFlag
		cfg.Capture.FPS = *fpsFlag
	}
	if *audioFlag {
		cfg.Audio.Enabled = true
	}
	cfg.Sanitize()
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *modeFlag {
	case "terminal":
		return runTerminal(ctx, cfg)
	case "window":
		return runWindow(ctx, cfg)
	case "gif":
		return runCapture(ctx, cfg)
	default:
		return errors.Errorf("unknown mode %q", *modeFlag)
	}
}

// attachAudio wires revolution chimes when enabled; the returned func releases the device
func attachAudio(cfg *config.Config, pipeline *engine.Pipeline) func() {
	if !cfg.Audio.Enabled {
		return func() {}
	}
	spk, err := audio.OpenSpeaker()
	if err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
		return func() {}
	}
	chimer := audio.NewChimer(spk, spk.SampleRate(), cfg.Audio.Frequencies, cfg.Audio.Volume, nil)
	pipeline.Atom.OnRevolution = chimer.Revolution
	return spk.Close
}

func runTerminal(ctx context.Context, cfg *config.Config) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	p := terminal.New(screen)
	if err := p.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer p.Fini()

	// Restore the terminal before the trace reaches stderr
	defer func() {
		if r := recover(); r != nil {
			p.Fini()
			err = errors.Errorf("crashed: %v\nStack Trace:\n%s", r, debug.Stack())
		}
	}()

	w, h := p.FrameSize()
	pipeline := engine.NewPipeline(cfg, w, h)
	defer attachAudio(cfg, pipeline)()
	watchReload(ctx, *configFlag, pipeline)

	clock := engine.NewMonotonicClock(nil)
	return p.Run(ctx, pipeline, clock, cfg.Terminal.FPS)
}

func runWindow(ctx context.Context, cfg *config.Config) error {
	scale := max(cfg.Window.Scale, 1)
	pipeline := engine.NewPipeline(cfg, cfg.Window.Width/scale, cfg.Window.Height/scale)
	defer attachAudio(cfg, pipeline)()
	watchReload(ctx, *configFlag, pipeline)

	g := window.NewGame(pipeline, engine.NewMonotonicClock(nil), scale)
	return window.Run(cfg.Window, g)
}

func runCapture(ctx context.Context, cfg *config.Config) error {
	c := cfg.Capture
	pipeline := engine.NewPipeline(cfg, c.Width, c.Height)
	opts := capture.Options{
		Width:       c.Width,
		Height:      c.Height,
		FPS:         c.FPS,
		Seconds:     c.Seconds,
		Supersample: *supersampleFlag,
		Dither:      *ditherFlag,
	}
	if err := capture.RecordFile(ctx, pipeline, opts, *outFlag); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", *outFlag, opts.FrameCount())
	return nil
}
