// Package config handles Concierge configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/insightlane/concierge/internal/engine"
	"github.com/insightlane/concierge/internal/respond"
)

// Default returns the default configuration: Polish locale, production
// timing, console logging.
func Default() *Config {
	return &Config{
		Widget: WidgetConfig{
			Locale:   "pl",
			TrialURL: "https://insightlane.io/signup",
		},
		Timing: TimingConfig{
			StatusIntervalMs: 820,
			Speedup:          1.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}

	return cfg, nil
}

// Save saves the configuration to the given path.
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	return encoder.Encode(c)
}

// Locale returns the configured locale, defaulting to Polish for anything
// unrecognized.
func (c *Config) Locale() respond.Locale {
	switch c.Widget.Locale {
	case "en":
		return respond.LocaleEN
	default:
		return respond.LocalePL
	}
}

// EngineTiming builds the scheduler timing from the config: the production
// per-intent delays with the configured cadence and speedup applied.
func (c *Config) EngineTiming() engine.Timing {
	timing := engine.DefaultTiming()
	if c.Timing.StatusIntervalMs > 0 {
		timing.StatusInterval = time.Duration(c.Timing.StatusIntervalMs) * time.Millisecond
	}
	if c.Timing.Speedup > 0 && c.Timing.Speedup != 1 {
		timing = timing.Scaled(c.Timing.Speedup)
	}
	return timing
}
