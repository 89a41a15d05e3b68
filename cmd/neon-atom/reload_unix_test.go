//go:build unix

package main

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/engine"
)

func TestWatchReloadOnHangup(t *testing.T) {
	pipeline := engine.NewPipeline(config.Default(), 16, 9)
	pipeline.Frame(0)
	builds := pipeline.Atom.GlowBuilds()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchReload(ctx, writeConfig(t, "glow:\n  radius: 5\n"), pipeline)

	if err := syscall.Kill(os.Getpid(), syscall.SIGHUP); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for pipeline.Atom.GlowBuilds() == builds {
		if time.Now().After(deadline) {
			t.Fatal("hangup did not resize the glow ring")
		}
		time.Sleep(10 * time.Millisecond)
		pipeline.Frame(0.1)
	}
}
