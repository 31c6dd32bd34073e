// Package config loads the optional demo-selection file. Without a file the
// sampler runs every demo in canonical order; a file may narrow or reorder
// the selection.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stefanomuraro/design-patterns/internal/demo"
)

// Config selects which demos run and in what order.
type Config struct {
	Demos []string `yaml:"demos"`
}

// Default returns the canonical selection: all demos, sampler order.
func Default() Config {
	return Config{Demos: demo.Names()}
}

// Load reads a selection from a YAML file and validates it. An empty demos
// list falls back to the default selection.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if len(cfg.Demos) == 0 {
		return Default(), nil
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown demo names.
func (c Config) Validate() error {
	for _, name := range c.Demos {
		if _, ok := demo.Get(name); !ok {
			return fmt.Errorf("unknown demo %q", name)
		}
	}
	return nil
}

// Selection resolves the configured names into runnable demos.
func (c Config) Selection() ([]demo.Demo, error) {
	demos := make([]demo.Demo, 0, len(c.Demos))
	for _, name := range c.Demos {
		d, ok := demo.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown demo %q", name)
		}
		demos = append(demos, d)
	}
	return demos, nil
}
