// Command ca-snapshot runs an automaton headlessly and prints the result as
// text, optionally writing a PNG of the default view.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lifeview/internal/config"
	"lifeview/internal/render"
	"lifeview/internal/session"
)

// loadConfig reads the usual config file. Without one the view shrinks to a
// snapshot-sized 160x120.
func loadConfig() (*config.Config, error) {
	cfg, path, err := config.Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg.Width, cfg.Height = 160, 120
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 0, "generations to run before the snapshot")
	out := flag.String("png", "", "write a PNG of the view to this path")
	scale := flag.Int("scale", 4, "PNG pixel scale")
	text := flag.Bool("text", true, "print the live cells as text")
	saveTo := flag.String("save-config", "", "write the effective config as YAML to this path")
	flag.Parse()

	if *saveTo != "" {
		if err := cfg.Save(*saveTo); err != nil {
			log.Fatalf("save config: %v", err)
		}
	}

	s, err := session.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < *steps; i++ {
		s.Advance(true)
	}

	if *text {
		if err := s.Ctrl.RenderText(s.Sim, os.Stdout); err != nil {
			log.Fatalf("write text: %v", err)
		}
	}
	if *out == "" {
		return
	}

	cv := render.NewImageCanvas(cfg.Width, cfg.Height)
	s.Ctrl.Render(s.Sim, cv, cv)
	cv.Caption(fmt.Sprintf("%s gen %d", s.Sim.Name(), s.Sim.Generation()), s.Ctrl.Options().Alive)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	if err := cv.WritePNG(f, *scale); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)
}
