package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls ambient behavior of a session. None of it touches roster semantics.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	JournalPath  string `yaml:"journal_path"`
	Color        string `yaml:"color"`
	StyleVariant string `yaml:"style_variant"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:     "warn",
		Color:        string(ColorAuto),
		StyleVariant: "modern_arcade",
	}
}

// LoadConfigFile overlays the YAML file at path on top of DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	case "":
		c.LogLevel = "warn"
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	mode, ok := normalizeColorMode(c.Color)
	if !ok {
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	c.Color = string(mode)

	switch c.StyleVariant {
	case "", "modern_arcade", "cozy_clean", "retro_terminal":
	default:
		return fmt.Errorf("invalid style variant %q", c.StyleVariant)
	}
	if c.StyleVariant == "" {
		c.StyleVariant = "modern_arcade"
	}

	c.JournalPath = strings.TrimSpace(c.JournalPath)
	return nil
}
