package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	File       string          `yaml:"file"`       // log file used when debug_mode is on
	DebugMode  bool            `yaml:"debug_mode"` // master toggle; false = no logging
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false.
// Returns true if debug_mode is true and the category is enabled or not listed.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// Validate checks the level name.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("invalid logging.level %q", c.Level)
	}
}
