// Package session builds the automaton and viewport controller every
// frontend starts from.
package session

import (
	"fmt"

	"lifeview/internal/config"
	"lifeview/internal/core"
	"lifeview/internal/pattern"
	_ "lifeview/internal/sims/briansbrain"
	_ "lifeview/internal/sims/life"
	"lifeview/internal/viewport"
)

// Session pairs an automaton with the controller viewing it.
type Session struct {
	Sim  core.Automaton
	Ctrl *viewport.Controller
	Seed int64
}

// New validates cfg, builds and seeds the engine, stamps the optional
// pattern at the origin and prepares the controller.
func New(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	sim, err := core.Lookup(cfg.Engine, cfg.EngineOptions)
	if err != nil {
		return nil, err
	}
	sim.Reset(cfg.Seed)

	if cfg.Pattern != "" {
		p, err := pattern.Load(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		p.Apply(sim, p.Centered())
	}

	opts, err := cfg.ViewportOptions()
	if err != nil {
		return nil, err
	}
	ctrl := viewport.New(opts)
	if cfg.StartPaused {
		ctrl.KeyPress(opts.Bindings.Pause)
	}
	return &Session{Sim: sim, Ctrl: ctrl, Seed: cfg.Seed}, nil
}

// Advance steps the automaton once unless the controller is paused. force
// steps even while paused.
func (s *Session) Advance(force bool) bool {
	if s.Ctrl.IsPaused() && !force {
		return false
	}
	s.Sim.Step()
	return true
}

// Reseed resets the automaton with seed.
func (s *Session) Reseed(seed int64) {
	s.Seed = seed
	s.Sim.Reset(seed)
}
