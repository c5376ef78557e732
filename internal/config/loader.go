package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML settings file from the given path.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into Settings.
func Parse(data []byte) (*Settings, error) {
	var s Settings

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Settings) {
	if s.Version == "" {
		s.Version = "1"
	}

	if s.Scrap.LossFactor == nil {
		lf := DefaultLossFactor
		s.Scrap.LossFactor = &lf
	}

	if s.Scrap.RoundMode == "" {
		s.Scrap.RoundMode = DefaultRoundMode
	}
}

// Marshal serializes Settings to YAML.
func Marshal(s *Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes Settings to the given path.
func WriteFile(s *Settings, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return nil
}
