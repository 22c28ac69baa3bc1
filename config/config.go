package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/isaacev/tpas/frontend"
)

// DefaultFilename is looked up in the working directory when no --config
// flag is given
const DefaultFilename = "tpas.toml"

// Config holds the complete tool configuration
type Config struct {
	Parser      ParserConfig      `toml:"parser"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

// ParserConfig holds settings handed to the front-end
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// DiagnosticsConfig controls how messages are printed
type DiagnosticsConfig struct {
	Color    bool `toml:"color"`
	Pretty   bool `toml:"pretty"`
	Warnings bool `toml:"warnings"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth: frontend.DefaultMaxDepth,
		},
		Diagnostics: DiagnosticsConfig{
			Color:    true,
			Pretty:   false,
			Warnings: true,
		},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error
// and yields the defaults unchanged
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the front-end cannot use
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 1 {
		return fmt.Errorf("parser.max_depth must be at least 1, got %d", c.Parser.MaxDepth)
	}

	return nil
}

// ParserOptions converts the parser section into front-end options
func (c *Config) ParserOptions() frontend.Options {
	return frontend.Options{MaxDepth: c.Parser.MaxDepth}
}
