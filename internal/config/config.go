// Package config loads salesrace settings from .salesrace/config.yaml with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"salesrace/internal/race"
)

// Config holds all salesrace configuration.
type Config struct {
	Race    RaceConfig    `yaml:"race"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RaceConfig configures the starting race.
type RaceConfig struct {
	Target   float64 `yaml:"target"`
	Currency string  `yaml:"currency"`
	// TrackWidth is the lane length in terminal cells. 0 fits the terminal.
	TrackWidth  int              `yaml:"track_width"`
	Competitors []SeedCompetitor `yaml:"competitors"`
}

// SeedCompetitor is a roster entry present at startup.
type SeedCompetitor struct {
	Name  string  `yaml:"name"`
	Color string  `yaml:"color,omitempty"`
	Value float64 `yaml:"value,omitempty"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the endpoint
}

// Track width bounds, in cells.
const (
	MinTrackWidth = 20
	MaxTrackWidth = 200
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Race: RaceConfig{
			Target:   race.DefaultTarget,
			Currency: "R$",
			Competitors: []SeedCompetitor{
				{Name: "Alfredo"},
			},
		},
		UI: UIConfig{
			Theme: ThemeAuto,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(DefaultDir, "logs", "salesrace.log"),
		},
	}
}

// DefaultDir is the per-workspace settings directory.
const DefaultDir = ".salesrace"

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir, "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies SALESRACE_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SALESRACE_TARGET"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid SALESRACE_TARGET %q: %w", v, err)
		}
		c.Race.Target = t
	}
	if v := os.Getenv("SALESRACE_THEME"); v != "" {
		c.UI.Theme = Theme(strings.ToLower(v))
	}
	if v := os.Getenv("SALESRACE_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("SALESRACE_DEBUG"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SALESRACE_DEBUG %q: %w", v, err)
		}
		c.Logging.DebugMode = on
	}
	return nil
}

// Validate checks ranges that the race itself cannot repair.
func (c *Config) Validate() error {
	if c.Race.Target < race.MinTarget || c.Race.Target > race.MaxTarget {
		return fmt.Errorf("race.target %v out of range [%v, %v]", c.Race.Target, race.MinTarget, race.MaxTarget)
	}
	if n := len(c.Race.Competitors); n > race.MaxCompetitors {
		return fmt.Errorf("race.competitors has %d entries (max %d)", n, race.MaxCompetitors)
	}
	for i, sc := range c.Race.Competitors {
		if sc.Value < 0 {
			return fmt.Errorf("race.competitors[%d].value must not be negative", i)
		}
	}
	if w := c.Race.TrackWidth; w != 0 && (w < MinTrackWidth || w > MaxTrackWidth) {
		return fmt.Errorf("race.track_width %d out of range [%d, %d]", w, MinTrackWidth, MaxTrackWidth)
	}
	if !c.UI.Theme.Valid() {
		return fmt.Errorf("invalid ui.theme %q (valid: %v)", c.UI.Theme, ValidThemes)
	}
	return c.Logging.Validate()
}

// Roster converts the seed list into race competitors. Ids and missing
// colours are assigned by the store.
func (c *Config) Roster() race.Roster {
	r := make(race.Roster, len(c.Race.Competitors))
	for i, sc := range c.Race.Competitors {
		r[i] = race.Competitor{Name: sc.Name, Color: sc.Color, Value: sc.Value}
	}
	return r
}
