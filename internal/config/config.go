// Package config loads calculator settings from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zephyrtronium/calculator"
)

// Themes that the keypad can display.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds application configuration.
type Config struct {
	// Strict rejects tokens that are neither numbers nor operators.
	Strict bool
	// Format is a printf verb for results on the command line. Empty means
	// calculator display style, e.g. 14.0.
	Format string
	// Theme is ThemeLight or ThemeDark.
	Theme string
}

// Load reads configuration from file and env. The file is $CALCULATOR_CONFIG
// if set, otherwise config.yaml in the calculator directory under the user's
// config directory; a missing default file is not an error. Env var overrides
// use prefix CALCULATOR_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("strict", false)
	v.SetDefault("format", "")
	v.SetDefault("theme", ThemeLight)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("CALCULATOR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "calculator"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CALCULATOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that settings have values the calculator understands.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return fmt.Errorf("unknown theme %q (want %q or %q)", c.Theme, ThemeLight, ThemeDark)
	}
}

// Options returns the parsing options the configuration implies.
func (c Config) Options() []calculator.Option {
	if c.Strict {
		return []calculator.Option{calculator.Strict()}
	}
	return []calculator.Option{calculator.Permissive()}
}

// Dark reports whether the dark theme is selected.
func (c Config) Dark() bool {
	return c.Theme == ThemeDark
}
