// Package profile loads, validates and binds YAML mapping profiles. A
// profile is the declarative half of a registry; Bind supplies the Go
// types and resolver functions it refers to.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse parses YAML data into a Profile.
func Parse(raw []byte) (*Profile, error) {
	var p Profile

	err := yaml.Unmarshal(raw, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = "1"
	}
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}

// WriteFile writes a Profile to the given path.
func WriteFile(p *Profile, path string) error {
	raw, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}

	return nil
}
