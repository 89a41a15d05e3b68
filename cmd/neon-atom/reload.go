package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/engine"
)

// reloadGlow reads path and queues its glow ring size on pipeline
func reloadGlow(path string, pipeline *engine.Pipeline) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a, b := cfg.Glow.SemiMajor(), cfg.Glow.SemiMinor()
	pipeline.RequestGlowAxes(a, b)
	log.Printf("reload: glow ring %.3f x %.3f from %s", a, b, path)
	return nil
}

// watchReload re-applies the glow ring size from path on every SIGHUP until ctx ends
func watchReload(ctx context.Context, path string, pipeline *engine.Pipeline) {
	if path == "" {
		return
	}
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		defer signal.Stop(hup)
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				if err := reloadGlow(path, pipeline); err != nil {
					log.Printf("reload: %v", err)
				}
			}
		}
	}()
}
