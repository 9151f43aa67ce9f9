package model

import "time"

// Config holds all runtime configuration
type Config struct {
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Dir     string `yaml:"dir" mapstructure:"dir"` // Output directory for batch reports
	CSV     bool   `yaml:"csv" mapstructure:"csv"` // Also write CSV next to JSON
	ICS     bool   `yaml:"ics" mapstructure:"ics"` // Also write an ICS calendar next to JSON
}

// CacheConfig controls in-memory result memoization
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers      int     `yaml:"workers" mapstructure:"workers"`
	MaxPerSecond float64 `yaml:"max_per_second" mapstructure:"max_per_second"` // 0 disables throttling
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Verbose: false,
			Dir:     "./termtrack-reports",
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 30 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers:      4,
			MaxPerSecond: 0,
		},
	}
}
