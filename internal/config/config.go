// Package config loads app settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds user-tunable application settings.
type Config struct {
	// Audio enables the terminal bell cue on phase transitions.
	Audio bool `mapstructure:"audio"`

	// DBPath overrides the default event log location.
	DBPath string `mapstructure:"db_path"`

	Coach CoachConfig `mapstructure:"coach"`
}

// CoachConfig selects and tunes the optional AI recap provider.
type CoachConfig struct {
	// Enabled turns the mastery recap on. Requires an API key.
	Enabled bool `mapstructure:"enabled"`

	// Provider is "anthropic", "openai", "gemini", "openrouter" or "mock".
	// Empty means auto-discover from standard API key env vars.
	Provider string `mapstructure:"provider"`

	Model string `mapstructure:"model"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Audio: true,
		Coach: CoachConfig{Enabled: true},
	}
}

// DefaultPath returns the config file location, honoring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "explainly", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "explainly", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Environment variables prefixed EXPLAINLY_ override
// file values (EXPLAINLY_AUDIO, EXPLAINLY_COACH_PROVIDER, ...).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("audio", true)
	v.SetDefault("db_path", "")
	v.SetDefault("coach.enabled", true)
	v.SetDefault("coach.provider", "")
	v.SetDefault("coach.model", "")

	v.SetEnvPrefix("EXPLAINLY")
	v.AutomaticEnv()
	v.BindEnv("audio")
	v.BindEnv("db_path", "EXPLAINLY_DB")
	v.BindEnv("coach.enabled", "EXPLAINLY_COACH_ENABLED")
	v.BindEnv("coach.provider", "EXPLAINLY_COACH_PROVIDER")
	v.BindEnv("coach.model", "EXPLAINLY_COACH_MODEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		// Missing file is fine, defaults plus env apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from the default location.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}
