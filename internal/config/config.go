package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/liserjrqlxue/dna2aa/pkg/report"
)

// env
const (
	EnvConfig   = "DNA2AA_CONFIG"
	EnvFormat   = "DNA2AA_FORMAT"
	EnvLogLevel = "DNA2AA_LOG_LEVEL"
)

// Config complete dna2aa configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig how translation records are rendered
type OutputConfig struct {
	Format    string `yaml:"format"`
	Separator string `yaml:"separator"`
	// composition plot path, empty for none
	Plot string `yaml:"plot"`
}

// LogConfig slog level and optional rotating log file
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// Load loads defaults, then the YAML file at path (or $DNA2AA_CONFIG),
// then environment overrides. Callers apply their own overrides and Validate last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    "flat",
			Separator: report.DefaultSeparator,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if format := os.Getenv(EnvFormat); format != "" {
		cfg.Output.Format = format
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
}

// Validate checks format, level and rotation limits
func (cfg *Config) Validate() error {
	if _, ok := report.Writers[cfg.Output.Format]; !ok {
		return fmt.Errorf("invalid output format %q, must be one of %s",
			cfg.Output.Format, strings.Join(report.Formats(), ", "))
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q, must be debug, info, warn or error", cfg.Log.Level)
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	return nil
}
