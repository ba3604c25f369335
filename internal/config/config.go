// Package config loads the surveyspec CLI configuration from defaults, a global
// file, a local file and SURVEYSPEC_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "SURVEYSPEC_"

// DefaultLocalPath is the project config file read when --config is not given.
const DefaultLocalPath = ".surveyspec/config.json"

// Configuration represents the surveyspec CLI configuration
type Configuration struct {
	Preset           string   `koanf:"preset" json:"preset" validate:"oneof=default strict lenient"`
	StopOnFirstError bool     `koanf:"stop_on_first_error" json:"stop_on_first_error"`
	Severities       []string `koanf:"severities" json:"severities" validate:"omitempty,dive,oneof=error warning info"`
	CheckReferences  bool     `koanf:"check_references" json:"check_references"`
	CodePrefix       string   `koanf:"code_prefix" json:"code_prefix" validate:"required,alphanum,max=10"`
	Output           string   `koanf:"output" json:"output" validate:"oneof=text json"`
	Color            string   `koanf:"color" json:"color" validate:"oneof=auto always never"`
}

// GlobalPath returns the user-wide config path, ~/.surveyspec/config.json.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".surveyspec", "config.json"), nil
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if globalPath, err := GlobalPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Configuration) normalize() {
	c.Preset = strings.ToLower(strings.TrimSpace(c.Preset))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	// env values arrive as one comma-separated string
	var sevs []string
	for _, entry := range c.Severities {
		for _, s := range strings.Split(entry, ",") {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				sevs = append(sevs, s)
			}
		}
	}
	c.Severities = sevs
}

// envTransform converts environment variable names to config keys
// Example: SURVEYSPEC_CODE_PREFIX -> code_prefix
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
