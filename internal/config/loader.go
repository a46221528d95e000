package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig decodes presets as raw nodes so a file can override single
// fields of a builtin preset instead of replacing it wholesale.
type fileConfig struct {
	*Config `yaml:",inline"`
	Presets map[string]yaml.Node `yaml:"presets"`
}

// Load reads and validates a YAML config file on top of Default()
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes on top of Default() and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	fc := fileConfig{Config: cfg}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	for name, node := range fc.Presets {
		p, ok := cfg.Presets[name]
		if !ok {
			p = Preset{}
		}
		if err := node.Decode(&p); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		p.Name = name
		cfg.Presets[name] = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
