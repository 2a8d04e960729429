package main

import (
	"os"
	"path/filepath"
	"testing"

	"lifeview/internal/config"
)

func TestLoadConfigDefaultsToSnapshotSize(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 160 || cfg.Height != 120 {
		t.Fatalf("size = %dx%d, want 160x120", cfg.Width, cfg.Height)
	}
}

func TestLoadConfigKeepsFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeview.yaml")
	if err := os.WriteFile(path, []byte("width: 300\nheight: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvPath, path)
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 200 {
		t.Fatalf("size = %dx%d, want 300x200 from the file", cfg.Width, cfg.Height)
	}
}
