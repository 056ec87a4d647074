package config

// Config represents the main widget configuration.
type Config struct {
	Widget  WidgetConfig  `toml:"widget"`
	Timing  TimingConfig  `toml:"timing"`
	Logging LoggingConfig `toml:"logging"`
}

// WidgetConfig contains widget-level settings.
type WidgetConfig struct {
	// Locale selects vocabulary and response tables: "pl" or "en".
	Locale string `toml:"locale"`

	// TrialURL is opened/shown when the user asks for a trial.
	TrialURL string `toml:"trial_url"`
}

// TimingConfig controls the perceived-effort delays.
type TimingConfig struct {
	// StatusIntervalMs is the status-rotation cadence in milliseconds.
	StatusIntervalMs int `toml:"status_interval_ms"`

	// Speedup divides every delay; >1 makes the demo snappier.
	Speedup float64 `toml:"speedup"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console, json
}
