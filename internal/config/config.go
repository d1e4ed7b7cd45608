// Package config loads the analyzer configuration file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mouse-blink/cooplint/internal/classify"
	"github.com/mouse-blink/cooplint/internal/rules"
)

// FileName is the configuration file searched for in the working
// directory, without extension. Any format viper understands works;
// .cooplint.yaml is the documented one.
const FileName = ".cooplint"

// Config is the full configuration surface.
type Config struct {
	// DisabledRules lists rule ids or names to skip.
	DisabledRules []string `mapstructure:"disabledRules" json:"disabledRules"`
	// Extensions widens the built-in name registry.
	Extensions classify.Extensions `mapstructure:"extensions" json:"extensions"`
	// Threads caps per-file parallelism; 0 means a single worker.
	Threads int `mapstructure:"threads" json:"threads"`
	// Format selects the report renderer: table, json or tui.
	Format string `mapstructure:"format" json:"format"`
	// LogLevel sets diagnostic verbosity.
	LogLevel string `mapstructure:"logLevel" json:"logLevel"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Format:   "table",
		LogLevel: "info",
	}
}

// Load reads the configuration from path, or searches dir for
// .cooplint.* when path is empty. A missing file yields the defaults.
func Load(dir, path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the rest of the program cannot honor.
func (c *Config) Validate() error {
	switch c.Format {
	case "table", "json", "tui":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	if c.Threads < 0 {
		return fmt.Errorf("threads must not be negative, got %d", c.Threads)
	}

	for _, id := range c.DisabledRules {
		if !knownRule(id) {
			return fmt.Errorf("unknown rule %q in disabledRules", id)
		}
	}

	return nil
}

func knownRule(id string) bool {
	if _, ok := rules.ByID(id); ok {
		return true
	}

	for _, r := range rules.All() {
		if r.Name == id {
			return true
		}
	}

	return false
}
