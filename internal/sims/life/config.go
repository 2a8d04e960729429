package life

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule holds birth and survival neighbour counts in B/S notation.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is the classic B3/S23 rule.
var Conway = MustParseRule("B3/S23")

// ParseRule parses rules such as "B3/S23" or "B36/S23". Order of the two
// halves does not matter and either may be empty.
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("rule %q: want B<digits>/S<digits>", s)
	}
	for _, part := range parts {
		if part == "" {
			return r, fmt.Errorf("rule %q: empty half", s)
		}
		var dst *[9]bool
		switch part[0] {
		case 'B':
			dst = &r.Birth
		case 'S':
			dst = &r.Survive
		default:
			return r, fmt.Errorf("rule %q: unexpected prefix %q", s, part[0])
		}
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return r, fmt.Errorf("rule %q: bad neighbour count %q", s, ch)
			}
			dst[ch-'0'] = true
		}
	}
	return r, nil
}

// MustParseRule is like ParseRule but panics on error.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String formats the rule back into B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, on := range r.Birth {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Config controls the seeded region and rule of a Life world.
type Config struct {
	Rule    Rule
	Width   int
	Height  int
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rule: Conway, Width: 64, Height: 48, Density: 0.25, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
