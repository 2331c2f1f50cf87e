package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadShape marks overrides that do not match the configuration
	// shape: unknown keys, wrong value types, out-of-range values.
	ErrBadShape = errors.New("overrides do not match config shape")
)

// LoadOverrides reads user overrides from a YAML file. Decoding is strict:
// keys that do not exist in Overrides are an ErrBadShape failure, not a
// silent merge. An empty file yields empty overrides.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var o Overrides
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return &Overrides{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

// WriteDefault writes the built-in configuration to path as a starting
// point for user edits, creating parent directories as needed.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
