// Package config loads settings for the parsemaths command from TOML or YAML
// files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of an interactive or batch session.
type Config struct {
	// Prompt is printed before reading each line in interactive mode.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// Format is the fmt verb used to print results, e.g. "%g" or "%.3f".
	Format string `toml:"format" yaml:"format"`
	// Echo prints the parsed tree of each expression before its value.
	Echo bool `toml:"echo" yaml:"echo"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose" yaml:"verbose"`
	// Color styles results and errors for a terminal.
	Color bool `toml:"color" yaml:"color"`
	// Banner prints the welcome text when an interactive session starts.
	Banner bool `toml:"banner" yaml:"banner"`
	// Workers bounds how many lines a batch evaluates at once.
	Workers int `toml:"workers" yaml:"workers"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:  "",
		Format:  "%g",
		Color:   true,
		Banner:  true,
		Workers: 4,
	}
}

// Load reads a config file, choosing the decoder by extension: .toml, or
// .yaml/.yml. Settings missing from the file keep their defaults. An empty
// path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q for %s", ext, path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	// fmt reports bad or missing verbs inline as %!.
	if out := fmt.Sprintf(c.Format, 1.0); strings.Contains(out, "%!") {
		return fmt.Errorf("format %q does not print one number: %s", c.Format, out)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, not %d", c.Workers)
	}
	return nil
}
