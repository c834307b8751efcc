package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads an Input from a YAML or JSON file. Fields missing from the
// file keep their DefaultInput values.
func LoadFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	in, err := Parse(data)
	if err != nil {
		return Input{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return in, nil
}

// Parse decodes YAML (and therefore JSON) input on top of DefaultInput.
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
func Parse(data []byte) (Input, error) {
	in := DefaultInput()
	if len(bytes.TrimSpace(data)) == 0 {
		return in, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		return Input{}, fmt.Errorf("parsing: %w", err)
	}
	return in, nil
}
