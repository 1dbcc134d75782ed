package spellconfig

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a configuration from YAML bytes. Fields absent from the
// document keep their defaults; an unrecognized character class normalizes
// to "none" rather than failing.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := ApplyYAML(cfg, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyYAML unmarshals a document over an existing configuration. Fields
// absent from the document keep their current values, which is what layered
// config loading relies on.
func ApplyYAML(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	cfg.IgnoredCharacterClass = cfg.IgnoredCharacterClass.Normalize()
	if cfg.Mnemonic != "&" && cfg.Mnemonic != "_" {
		cfg.Mnemonic = "&"
	}

	return nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return FromYAML(data)
}

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
