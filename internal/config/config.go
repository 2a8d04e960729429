// Package config loads viewer settings from an optional YAML file and
// command-line flags. Flags bound after loading override file values.
//
// File locations, first match wins:
//  1. $LIFEVIEW_CONFIG
//  2. ./lifeview.yaml
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"lifeview/internal/viewport"
)

// EnvPath names the environment variable that points at a config file.
const EnvPath = "LIFEVIEW_CONFIG"

// DefaultPath is checked when EnvPath is unset.
const DefaultPath = "lifeview.yaml"

// Config represents the settings shared by every frontend.
type Config struct {
	Engine        string            `yaml:"engine"`
	EngineOptions map[string]string `yaml:"engine_options"`
	Seed          int64             `yaml:"seed"`
	TPS           int               `yaml:"tps"`
	Pattern       string            `yaml:"pattern"`
	StartPaused   bool              `yaml:"start_paused"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	AliveColor      string `yaml:"alive_color"`
	BackgroundColor string `yaml:"background_color"`
	PauseKey        string `yaml:"pause_key"`

	MinZoom            float64 `yaml:"min_zoom"`
	ProportionalScroll bool    `yaml:"proportional_scroll"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:          "life",
		EngineOptions:   map[string]string{},
		Seed:            42,
		TPS:             15,
		Width:           960,
		Height:          720,
		AliveColor:      "#ff0000",
		BackgroundColor: "#ffffff",
		PauseKey:        "space",
	}
}

// FindPath returns the config file to load, or "" when none exists.
func FindPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	return ""
}

// Load reads the config file found by FindPath, or returns defaults.
func Load() (*Config, string, error) {
	path := FindPath()
	if path == "" {
		return NewConfig(), "", nil
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

// LoadFromPath reads a YAML config file. Keys missing from the file keep
// their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyDefaults() {
	def := NewConfig()
	if c.Engine == "" {
		c.Engine = def.Engine
	}
	if c.EngineOptions == nil {
		c.EngineOptions = map[string]string{}
	}
	if c.TPS == 0 {
		c.TPS = def.TPS
	}
	if c.AliveColor == "" {
		c.AliveColor = def.AliveColor
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = def.BackgroundColor
	}
	if c.PauseKey == "" {
		c.PauseKey = def.PauseKey
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "automaton engine to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for engine reset")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext .cells pattern to load at the origin")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "start with stepping paused")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.AliveColor, "alive-color", c.AliveColor, "hex colour of live cells")
	fs.StringVar(&c.BackgroundColor, "background-color", c.BackgroundColor, "hex background colour")
	fs.StringVar(&c.PauseKey, "pause-key", c.PauseKey, "key that toggles pause (space or p)")
	fs.Float64Var(&c.MinZoom, "min-zoom", c.MinZoom, "lowest zoom reachable by scrolling, 0 for unbounded")
	fs.BoolVar(&c.ProportionalScroll, "proportional-scroll", c.ProportionalScroll, "scale zoom by fractional wheel deltas")
	fs.Var((*optionsFlag)(&c.EngineOptions), "opt", "engine option in key=value form (repeatable)")
}

// Validate reports settings no frontend can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Engine == "" {
		errs = append(errs, errors.New("engine must be set"))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.MinZoom < 0 {
		errs = append(errs, fmt.Errorf("min_zoom must not be negative, got %g", c.MinZoom))
	}
	if _, err := ParseKey(c.PauseKey); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseColor(c.AliveColor); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseColor(c.BackgroundColor); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ViewportOptions builds controller options from the config.
func (c *Config) ViewportOptions() (viewport.Options, error) {
	opts := viewport.DefaultOptions()
	key, err := ParseKey(c.PauseKey)
	if err != nil {
		return opts, err
	}
	alive, err := ParseColor(c.AliveColor)
	if err != nil {
		return opts, err
	}
	bg, err := ParseColor(c.BackgroundColor)
	if err != nil {
		return opts, err
	}
	opts.Bindings.Pause = key
	opts.Alive = alive
	opts.Background = bg
	opts.MinZoom = c.MinZoom
	opts.ProportionalScroll = c.ProportionalScroll
	return opts, nil
}

// ParseKey maps a key name to a controller key.
func ParseKey(name string) (viewport.Key, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "space", " ":
		return viewport.KeySpace, nil
	case "p":
		return viewport.KeyP, nil
	default:
		return viewport.KeyOther, fmt.Errorf("unsupported pause key %q", name)
	}
}

// ParseColor parses a "#rrggbb" or "#rgb" colour.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// optionsFlag collects repeatable key=value engine options.
type optionsFlag map[string]string

func (o *optionsFlag) String() string {
	if o == nil || *o == nil {
		return ""
	}
	parts := make([]string, 0, len(*o))
	for k, v := range *o {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (o *optionsFlag) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || k == "" {
		return fmt.Errorf("option %q: want key=value", value)
	}
	if *o == nil {
		*o = map[string]string{}
	}
	(*o)[k] = v
	return nil
}
