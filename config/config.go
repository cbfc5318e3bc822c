// Package config loads the settings of the trv command.
//
// Settings come, by increasing priority, from the embedded defaults, an
// optional config.yaml file and TRAVEL_* environment variables.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/travel"
	"github.com/spf13/viper"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

// Config holds all the settings.
type Config struct {
	DataDir         string       `mapstructure:"data_dir"`
	DisplayCurrency string       `mapstructure:"display_currency"`
	LogLevel        string       `mapstructure:"log_level"`
	Assist          AssistConfig `mapstructure:"assist"`
}

// AssistConfig configures the itinerary assistant.
type AssistConfig struct {
	Model  string `mapstructure:"model"`
	APIKey string `mapstructure:"api_key"`
}

// Load reads the configuration. If configPath is empty, a config.yaml file is
// looked for in the current directory and in $HOME/.travel.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("failed to read embedded defaults: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
		travel.Log.WithField("file", configPath).Debug("config file merged")
	} else {
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("$HOME/.travel")
		err := external.ReadInConfig()
		switch {
		case errors.As(err, &viper.ConfigFileNotFoundError{}):
			travel.Log.Debug("no config file")
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %q: %w", external.ConfigFileUsed(), err)
		default:
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				return nil, fmt.Errorf("failed to merge %q: %w", external.ConfigFileUsed(), err)
			}
			travel.Log.WithField("file", external.ConfigFileUsed()).Debug("config file merged")
		}
	}

	v.SetEnvPrefix("TRAVEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("no data directory configured: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".travel")
	}
	if cfg.Assist.APIKey == "" {
		cfg.Assist.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return &cfg, nil
}

// Currency returns the display currency.
func (c *Config) Currency() (travel.Currency, error) {
	return travel.ParseCurrency(c.DisplayCurrency)
}
