package core

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownEngine is returned by Lookup when no factory matches the name.
var ErrUnknownEngine = errors.New("unknown engine")

// Lookup builds the named automaton with cfg.
func Lookup(name string, cfg map[string]string) (Automaton, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownEngine, name, Names())
	}
	return f(cfg), nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(engines))
}
