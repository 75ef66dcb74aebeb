package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	var path = filepath.Join(t.TempDir(), "dna2aa.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output.Format != "flat" {
		t.Errorf("Expected default format flat, got %s", cfg.Output.Format)
	}
	if cfg.Output.Separator != " " {
		t.Errorf("Expected default separator space, got %q", cfg.Output.Separator)
	}
	if cfg.Log.Level != "info" || cfg.Log.File != "" {
		t.Errorf("Unexpected log defaults %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "flat" {
		t.Errorf("Expected flat, got %s", cfg.Output.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	var path = writeConfig(t, `
output:
  format: table
  plot: composition.svg
log:
  level: debug
  file: dna2aa.log
  maxBackups: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "table" || cfg.Output.Plot != "composition.svg" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	// untouched keys keep defaults
	if cfg.Output.Separator != " " || cfg.Log.MaxSizeMB != 10 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "dna2aa.log" || cfg.Log.MaxBackups != 5 {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadFromEnvPath(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvConfig, writeConfig(t, "output:\n  format: short\n"))
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "short" {
		t.Errorf("Expected short, got %s", cfg.Output.Format)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvLogLevel, "warn")
	cfg, err := Load(writeConfig(t, "output:\n  format: table\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "json" || cfg.Log.Level != "warn" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	var cases = []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "none.yaml")},
		{"bad yaml", writeConfig(t, "output: [\n")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(c.path)
			if err == nil || !strings.Contains(err.Error(), "failed to load config") {
				t.Errorf("Load err = %v", err)
			}
		})
	}
}

func TestLoadDoesNotValidate(t *testing.T) {
	t.Setenv(EnvFormat, "xml")
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load rejected config before overrides: %v", err)
	}
	if cfg.Output.Format != "xml" {
		t.Errorf("Expected env format xml, got %s", cfg.Output.Format)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected Validate to reject format xml")
	}
	cfg.Output.Format = "table"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate after override: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	var cases = []struct {
		name string
		path string
		want string
	}{
		{"bad format", writeConfig(t, "output:\n  format: xml\n"), "invalid output format"},
		{"bad level", writeConfig(t, "log:\n  level: trace\n"), "invalid log level"},
		{"negative rotation", writeConfig(t, "log:\n  maxAgeDays: -1\n"), "must not be negative"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load(c.path)
			if err != nil {
				t.Fatal(err)
			}
			err = cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("Validate err = %v, want %q", err, c.want)
			}
		})
	}
}
