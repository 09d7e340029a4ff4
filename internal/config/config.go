// Package config loads optional REPL/CLI cosmetics from a YAML file.
// Config is entirely ambient: its absence is not an error, and no
// field here can change scanning, parsing, or evaluation semantics —
// only REPL banner/prompt/version text and whether diagnostics are
// colored.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the optional settings a `.lox.yaml` file may set.
type Config struct {
	Prompt  string `yaml:"prompt"`
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Color   *bool  `yaml:"color"`
}

// Default returns the built-in settings used when no config file is
// present or a field is left unset.
func Default() *Config {
	return &Config{
		Prompt:  "lox> ",
		Banner:  "Lox",
		Version: "v1.0.0",
	}
}

// Load reads and parses the YAML config file at path, returning the
// defaults unchanged if the file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "lox> "
	}
	if cfg.Banner == "" {
		cfg.Banner = "Lox"
	}
	if cfg.Version == "" {
		cfg.Version = "v1.0.0"
	}
	return cfg, nil
}

// ColorEnabled reports whether diagnostics should be colored, given
// the config's Color field and a `--no-color`/NO_COLOR override.
func (c *Config) ColorEnabled(forceOff bool) bool {
	if forceOff {
		return false
	}
	if c.Color != nil {
		return *c.Color
	}
	return true
}
