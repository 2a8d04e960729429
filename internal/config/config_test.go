package config

import (
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifeview/internal/viewport"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	opts, err := cfg.ViewportOptions()
	if err != nil {
		t.Fatalf("ViewportOptions failed: %v", err)
	}
	if opts.Bindings != viewport.DefaultBindings() {
		t.Fatalf("unexpected bindings %+v", opts.Bindings)
	}
	if opts.Alive != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("unexpected alive colour %v", opts.Alive)
	}
	if opts.MinZoom != 0 || opts.ProportionalScroll {
		t.Fatal("zoom extensions should be off by default")
	}
}

func TestLoadFromPathKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lifeview.yaml")
	data := `engine: briansbrain
engine_options:
  w: "32"
min_zoom: 0.2
alive_color: "#0f0"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Engine != "briansbrain" || cfg.EngineOptions["w"] != "32" || cfg.MinZoom != 0.2 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.TPS != NewConfig().TPS || cfg.PauseKey != "space" {
		t.Fatalf("missing keys should keep defaults: %+v", cfg)
	}
	opts, err := cfg.ViewportOptions()
	if err != nil {
		t.Fatalf("ViewportOptions failed: %v", err)
	}
	if opts.Alive != (color.RGBA{G: 0xff, A: 0xff}) {
		t.Fatalf("short hex not parsed: %v", opts.Alive)
	}
}

func TestLoadFromPathErrors(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tps: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := NewConfig()
	cfg.Pattern = "glider.cells"
	cfg.EngineOptions["rule"] = "B36/S23"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Pattern != "glider.cells" || loaded.EngineOptions["rule"] != "B36/S23" {
		t.Fatalf("round trip lost values: %+v", loaded)
	}
}

func TestFindPathPrefersEnv(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/elsewhere.yaml")
	if got := FindPath(); got != "/tmp/elsewhere.yaml" {
		t.Fatalf("FindPath = %q", got)
	}
}

func TestBindOverridesFile(t *testing.T) {
	cfg := NewConfig()
	cfg.Engine = "briansbrain"
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-engine", "life", "-opt", "rule=B36/S23", "-opt", "w=10", "-pause-key", "p", "-proportional-scroll"})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Engine != "life" || cfg.EngineOptions["rule"] != "B36/S23" || cfg.EngineOptions["w"] != "10" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	opts, err := cfg.ViewportOptions()
	if err != nil {
		t.Fatalf("ViewportOptions failed: %v", err)
	}
	if opts.Bindings.Pause != viewport.KeyP || !opts.ProportionalScroll {
		t.Fatalf("unexpected options %+v", opts)
	}

	if err := fs.Parse([]string{"-opt", "novalue"}); err == nil {
		t.Fatal("expected error for malformed -opt")
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.TPS = 0
	cfg.MinZoom = -1
	cfg.PauseKey = "f12"
	cfg.AliveColor = "red"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"tps", "min_zoom", "pause key", "colour"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}
