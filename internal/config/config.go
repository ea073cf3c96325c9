// Package config loads langportal settings from defaults, an optional YAML
// file, values persisted by the settings screen, LANGPORTAL_* environment
// variables and command-line overrides, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dr-rompecabezas/langportal/internal/store"
)

const envPrefix = "LANGPORTAL"

type Config struct {
	Env      string         `mapstructure:"env" validate:"oneof=development production"`
	API      APIConfig      `mapstructure:"api"`
	Sessions SessionsConfig `mapstructure:"sessions"`
	Lists    ListsConfig    `mapstructure:"lists"`
	Log      LogConfig      `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=0"`
	Validate bool          `mapstructure:"validate"`
}

type SessionsConfig struct {
	ItemsPerPage int `mapstructure:"items_per_page" validate:"min=1,max=100"`
}

type ListsConfig struct {
	// LastResponseWins disables stale-response fencing in list views.
	LastResponseWins bool `mapstructure:"last_response_wins"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file" validate:"required"`
}

// Options control a Load.
type Options struct {
	// ConfigFile is an explicit YAML path. When empty, langportal.yaml is
	// looked up in ./configs and $XDG_CONFIG_HOME/langportal.
	ConfigFile string

	// Persisted are values saved from the settings screen.
	Persisted store.Settings

	// Overrides hold command-line values keyed like "api.base_url".
	Overrides map[string]any

	// SkipDotEnv disables loading .env from the working directory.
	SkipDotEnv bool
}

// Load builds and validates a Config.
func Load(opts Options) (*Config, error) {
	if !opts.SkipDotEnv {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("langportal")
		v.SetConfigType("yaml")
		v.AddConfigPath("configs")
		if dir, err := configHome(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "langportal"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if layer := persistedLayer(opts.Persisted); len(layer) > 0 {
		if err := v.MergeConfigMap(layer); err != nil {
			return nil, fmt.Errorf("failed to merge persisted settings: %w", err)
		}
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("api.validate", true)
	v.SetDefault("sessions.items_per_page", 10)
	v.SetDefault("lists.last_response_wins", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", DefaultLogPath())
}

// persistedLayer maps settings onto config keys, skipping unset fields.
func persistedLayer(s store.Settings) map[string]any {
	layer := map[string]any{}
	if s.APIBaseURL != "" {
		layer["api"] = map[string]any{"base_url": s.APIBaseURL}
	}
	if s.SessionsPerPage > 0 {
		layer["sessions"] = map[string]any{"items_per_page": s.SessionsPerPage}
	}
	return layer
}

// DefaultLogPath is $XDG_STATE_HOME/langportal/langportal.log, falling back
// to ~/.local/state.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "langportal.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "langportal", "langportal.log")
}

func configHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	return os.UserConfigDir()
}
