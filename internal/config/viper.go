// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys.
const EnvPrefix = "TXLABEL"

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls transaction file parsing and writing.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// RulesConfig locates the rule database.
type RulesConfig struct {
	File        string `mapstructure:"file" yaml:"file"`
	InitMissing bool   `mapstructure:"init_missing" yaml:"init_missing"`
}

// SimilarityConfig controls description grouping.
type SimilarityConfig struct {
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
}

// OutputConfig controls where labeled files are written.
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`
	Rules      RulesConfig      `mapstructure:"rules" yaml:"rules"`
	Similarity SimilarityConfig `mapstructure:"similarity" yaml:"similarity"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// InitializeConfig loads configuration from defaults, the first config.yaml
// found in $HOME/.txlabel, .txlabel or the working directory, and
// TXLABEL_-prefixed environment variables, in increasing precedence.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFile("")
}

// InitializeConfigFile is InitializeConfig with an explicit config file. An
// empty path searches the standard locations; an explicit file must exist.
func InitializeConfigFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.txlabel")
		v.AddConfigPath(".txlabel")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("rules.file", "category_db.json")
	v.SetDefault("rules.init_missing", true)

	v.SetDefault("similarity.threshold", 0.6)

	v.SetDefault("output.directory", "output")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}

	if strings.TrimSpace(config.Rules.File) == "" {
		return fmt.Errorf("rules.file must not be empty")
	}

	if config.Similarity.Threshold < 0.0 || config.Similarity.Threshold > 1.0 {
		return fmt.Errorf("similarity.threshold must be between 0.0 and 1.0, got: %f", config.Similarity.Threshold)
	}

	return nil
}

// Validate checks the configuration, e.g. after command-line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}
