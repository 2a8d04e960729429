package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifeview/internal/config"
	"lifeview/internal/core"
)

func emptyLife(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.EngineOptions["density"] = "0"
	return cfg
}

func TestNewStampsPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.cells")
	if err := os.WriteFile(path, []byte("OOO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := emptyLife(t)
	cfg.Pattern = path

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b := s.Sim.Bounds(); b != (core.Bounds{XMin: -1, XMax: 1, YMin: 0, YMax: 0}) {
		t.Fatalf("blinker bounds = %+v", b)
	}
	if s.Ctrl.IsPaused() {
		t.Fatal("session should start running by default")
	}
}

func TestAdvanceHonoursPause(t *testing.T) {
	cfg := emptyLife(t)
	cfg.StartPaused = true
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !s.Ctrl.IsPaused() {
		t.Fatal("start_paused should pause the controller")
	}
	if s.Advance(false) {
		t.Fatal("paused session must not step")
	}
	if !s.Advance(true) || s.Sim.Generation() != 1 {
		t.Fatal("forced advance should step once")
	}
	s.Ctrl.KeyPress(s.Ctrl.Options().Bindings.Pause)
	if !s.Advance(false) || s.Sim.Generation() != 2 {
		t.Fatal("unpaused session should step")
	}
}

func TestNewErrors(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Engine = "nope"
	if _, err := New(cfg); !errors.Is(err, core.ErrUnknownEngine) {
		t.Fatalf("expected ErrUnknownEngine, got %v", err)
	}

	cfg = config.NewConfig()
	cfg.TPS = -1
	if _, err := New(cfg); err == nil {
		t.Fatal("expected validation error")
	}

	cfg = config.NewConfig()
	cfg.Pattern = filepath.Join(t.TempDir(), "missing.cells")
	if _, err := New(cfg); err == nil {
		t.Fatal("expected pattern load error")
	}
}

func TestReseed(t *testing.T) {
	s, err := New(config.NewConfig())
	if err != nil {
		t.Fatal(err)
	}
	s.Advance(true)
	s.Reseed(99)
	if s.Seed != 99 || s.Sim.Generation() != 0 {
		t.Fatalf("reseed left seed %d generation %d", s.Seed, s.Sim.Generation())
	}
}
