// Package config manages application configuration.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roboco-io/mdsite/internal/site"
)

// Config represents the application configuration.
type Config struct {
	StaticDir  string        `yaml:"static_dir"`
	ContentDir string        `yaml:"content_dir"`
	Template   string        `yaml:"template"`
	OutputDir  string        `yaml:"output_dir"`
	BasePath   string        `yaml:"base_path"`
	Clean      bool          `yaml:"clean"`
	Logging    LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls console logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // none, normal or debug
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		StaticDir:  "static",
		ContentDir: "content",
		Template:   "template.html",
		OutputDir:  "docs",
		BasePath:   "/",
		Clean:      true,
		Logging: LoggingConfig{
			Level: LevelNormal,
		},
	}
}

// SiteOptions returns the build options described by the configuration.
func (c *Config) SiteOptions() site.Options {
	return site.Options{
		StaticDir:  c.StaticDir,
		ContentDir: c.ContentDir,
		Template:   c.Template,
		OutputDir:  c.OutputDir,
		BasePath:   c.BasePath,
		Clean:      c.Clean,
	}
}

// Keys lists the settings accepted by Set.
var Keys = []string{"static_dir", "content_dir", "template", "output_dir", "base_path", "clean", "logging.level"}

// Set updates a single setting by its YAML key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "static_dir":
		c.StaticDir = value
	case "content_dir":
		c.ContentDir = value
	case "template":
		c.Template = value
	case "output_dir":
		c.OutputDir = value
	case "base_path":
		c.BasePath = value
	case "clean":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		c.Clean = b
	case "logging.level":
		switch value {
		case LevelNone, LevelNormal, LevelDebug:
			c.Logging.Level = value
		default:
			return fmt.Errorf("invalid logging level: %s (supported: %s, %s, %s)", value, LevelNone, LevelNormal, LevelDebug)
		}
	default:
		return fmt.Errorf("unknown config key: %s (supported: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}
