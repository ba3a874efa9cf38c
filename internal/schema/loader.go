package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadNative loads and parses a native header schema from a YAML file.
func LoadNative(path string) (*Native, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read native schema %s: %w", path, err)
	}

	return ParseNative(data)
}

// ParseNative parses YAML data into a Native schema.
func ParseNative(data []byte) (*Native, error) {
	var n Native

	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to parse native schema YAML: %w", err)
	}

	if n.Functions == nil {
		n.Functions = map[string]string{}
	}

	if n.Structs == nil {
		n.Structs = map[string]*Fields{}
	}

	if n.Enums == nil {
		n.Enums = map[string]*Members{}
	}

	if n.Flags == nil {
		n.Flags = map[string]*Members{}
	}

	return &n, nil
}

// LoadInterface loads and parses an interface-description schema from a
// YAML file.
func LoadInterface(path string) (*Interface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface schema %s: %w", path, err)
	}

	return ParseInterface(data)
}

// ParseInterface parses YAML data into an Interface schema.
func ParseInterface(data []byte) (*Interface, error) {
	var f Interface

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse interface schema YAML: %w", err)
	}

	if f.Enums == nil {
		f.Enums = map[string]*SymbolicMembers{}
	}

	if f.Flags == nil {
		f.Flags = map[string]*Members{}
	}

	return &f, nil
}
