package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/neon-atom/config"
	"github.com/lixenwraith/neon-atom/engine"
)

func TestFinishClosesLogBeforeExit(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"success", nil, 0, ""},
		{"failure", errors.New("create screen: no tty"), 1, "neon-atom: create screen: no tty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := os.Create(filepath.Join(t.TempDir(), "run.log"))
			if err != nil {
				t.Fatal(err)
			}
			var stderr bytes.Buffer
			if code := finish(tt.err, f, &stderr); code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if _, err := f.WriteString("late"); !errors.Is(err, os.ErrClosed) {
				t.Errorf("log file still open: write err %v", err)
			}
			if !strings.Contains(stderr.String(), tt.wantMsg) || (tt.wantMsg == "" && stderr.Len() != 0) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantMsg)
			}
		})
	}

	if code := finish(nil, nil, &bytes.Buffer{}); code != 0 {
		t.Errorf("nil log file code = %d", code)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atom.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReloadGlow(t *testing.T) {
	pipeline := engine.NewPipeline(config.Default(), 16, 9)
	pipeline.Frame(0)
	builds := pipeline.Atom.GlowBuilds()

	path := writeConfig(t, "glow:\n  radius: 4.5\n")
	if err := reloadGlow(path, pipeline); err != nil {
		t.Fatal(err)
	}
	pipeline.Frame(0.1)
	if got := pipeline.Atom.GlowBuilds(); got != builds+1 {
		t.Errorf("glow builds = %d, want %d", got, builds+1)
	}

	if err := reloadGlow(filepath.Join(t.TempDir(), "missing.yaml"), pipeline); err == nil {
		t.Error("missing file should fail")
	}
}
