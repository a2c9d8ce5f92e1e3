// Package config provides configuration loading and access for the wish sky.
package config

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

//go:embed presets/*.yaml
var presetFS embed.FS

// DefaultPreset is applied when no preset is requested.
const DefaultPreset = "aurora"

// Config holds all configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Snow        SnowConfig        `yaml:"snow"`
	Markers     MarkerConfig      `yaml:"markers"`
	Firework    FireworkConfig    `yaml:"firework"`
	Coordinator CoordinatorConfig `yaml:"coordinator"`
	Blessing    BlessingConfig    `yaml:"blessing"`
	UI          UIConfig          `yaml:"ui"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// SnowConfig holds the ambient field tuning.
type SnowConfig struct {
	Count            int     `yaml:"count"`
	RadiusMin        float64 `yaml:"radius_min"`
	RadiusMax        float64 `yaml:"radius_max"`
	SpeedMin         float64 `yaml:"speed_min"`
	SpeedMax         float64 `yaml:"speed_max"`
	Wind             float64 `yaml:"wind"` // Max horizontal drift magnitude (pixels/frame)
	OpacityMin       float64 `yaml:"opacity_min"`
	OpacityMax       float64 `yaml:"opacity_max"`
	Spin             float64 `yaml:"spin"`         // Max spin magnitude (radians/frame)
	SpawnHeight      float64 `yaml:"spawn_height"` // Recycled flakes respawn in [-spawn_height, 0)
	RecycleMargin    float64 `yaml:"recycle_margin"`
	MorphRadius      float64 `yaml:"morph_radius"`
	MorphScale       float64 `yaml:"morph_scale"` // Ornament radius = flake radius * this
	FallingHitRadius float64 `yaml:"falling_hit_radius"`
}

// MarkerConfig holds the settled wish row layout.
type MarkerConfig struct {
	BottomOffset float64 `yaml:"bottom_offset"` // Row y = viewport height - this
	MaxSpacing   float64 `yaml:"max_spacing"`   // 0 = spacing is width/(n+1)
	Radius       float64 `yaml:"radius"`
	LabelOffset  float64 `yaml:"label_offset"`
	LabelSize    int     `yaml:"label_size"`
	HitRadius    float64 `yaml:"hit_radius"`
	RotationRate float64 `yaml:"rotation_rate"` // Radians per wall-clock millisecond
}

// ArchetypeConfig defines the initial distribution of one burst particle kind.
type ArchetypeConfig struct {
	Count           int     `yaml:"count"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	Gravity         float64 `yaml:"gravity"`
	Friction        float64 `yaml:"friction"`
	SizeMin         float64 `yaml:"size_min"`
	SizeMax         float64 `yaml:"size_max"`
	DecayMin        float64 `yaml:"decay_min"`
	DecayMax        float64 `yaml:"decay_max"`
	Alpha           float64 `yaml:"alpha"`             // Starting alpha
	Spread          float64 `yaml:"spread"`            // Origin offset range (full width)
	MainColorChance float64 `yaml:"main_color_chance"` // Probability of the burst's main colour
	Color           string  `yaml:"color"`             // Fixed colour override (empty = palette)
}

// FireworkConfig holds the firework engine tuning.
type FireworkConfig struct {
	SpawnIntervalMS int             `yaml:"spawn_interval_ms"`
	SpawnMinX       float64         `yaml:"spawn_min_x"` // Fractions of viewport width/height
	SpawnMaxX       float64         `yaml:"spawn_max_x"`
	SpawnMinY       float64         `yaml:"spawn_min_y"`
	SpawnMaxY       float64         `yaml:"spawn_max_y"`
	MaxAge          int             `yaml:"max_age"`
	TrailFade       float64         `yaml:"trail_fade"` // Fraction of the previous frame erased per frame
	HistoryLength   int             `yaml:"history_length"`
	RemoveWhenFaded bool            `yaml:"remove_when_faded"`
	Palette         []string        `yaml:"palette"`
	Streak          ArchetypeConfig `yaml:"streak"`
	Spark           ArchetypeConfig `yaml:"spark"`
	Orb             ArchetypeConfig `yaml:"orb"`
}

// CoordinatorConfig holds interaction timing.
type CoordinatorConfig struct {
	FireworkWindowSec float64 `yaml:"firework_window_sec"`
	RevealSec         float64 `yaml:"reveal_sec"`
}

// BlessingConfig holds the text generation settings.
type BlessingConfig struct {
	Model      string   `yaml:"model"`
	APIKeyEnv  string   `yaml:"api_key_env"`
	TimeoutSec float64  `yaml:"timeout_sec"`
	Prompt     string   `yaml:"prompt"` // text/template with .Name and .Content
	Fallbacks  []string `yaml:"fallbacks"`
}

// UIConfig holds on-screen copy.
type UIConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Hint    string `yaml:"hint"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32       float32
	ScreenH32       float32
	SpawnInterval   time.Duration
	FireworkWindow  time.Duration
	BlessingTimeout time.Duration
	Palette         []colorful.Color
	Preset          string
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given preset and path, or uses embedded defaults if both are empty.
// Must be called before Cfg().
func Init(preset, path string) error {
	cfg, err := Load(preset, path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Presets lists the embedded preset names.
func Presets() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load builds a configuration from embedded defaults, then the named preset,
// then the YAML file at path. Later layers only overwrite fields they set.
func Load(preset, path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if preset == "" {
		preset = DefaultPreset
	}
	data, err := presetFS.ReadFile("presets/" + preset + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(Presets(), ", "))
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", preset, err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	cfg.Derived.Preset = preset

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.SpawnInterval = time.Duration(c.Firework.SpawnIntervalMS) * time.Millisecond
	c.Derived.FireworkWindow = time.Duration(c.Coordinator.FireworkWindowSec * float64(time.Second))
	c.Derived.BlessingTimeout = time.Duration(c.Blessing.TimeoutSec * float64(time.Second))

	if len(c.Firework.Palette) == 0 {
		return fmt.Errorf("firework palette is empty")
	}
	c.Derived.Palette = make([]colorful.Color, len(c.Firework.Palette))
	for i, hex := range c.Firework.Palette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return fmt.Errorf("parsing palette colour %q: %w", hex, err)
		}
		c.Derived.Palette[i] = col
	}
	for _, arch := range []ArchetypeConfig{c.Firework.Streak, c.Firework.Spark, c.Firework.Orb} {
		if arch.Color == "" {
			continue
		}
		if _, err := colorful.Hex(arch.Color); err != nil {
			return fmt.Errorf("parsing archetype colour %q: %w", arch.Color, err)
		}
	}

	if len(c.Blessing.Fallbacks) == 0 {
		return fmt.Errorf("blessing fallbacks are empty")
	}
	return nil
}

// Recompute refreshes derived values after fields were edited in place.
func (c *Config) Recompute() error {
	preset := c.Derived.Preset
	if err := c.computeDerived(); err != nil {
		return err
	}
	c.Derived.Preset = preset
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
