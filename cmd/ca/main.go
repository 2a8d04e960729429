//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeview/internal/app"
	"lifeview/internal/config"
	"lifeview/internal/session"
)

func main() {
	cfg, path, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if path != "" {
		log.Printf("using config %s", path)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	s, err := session.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(s, cfg.TPS)

	ebiten.SetWindowTitle("lifeview — " + s.Sim.Name())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
