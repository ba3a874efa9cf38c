package mapping

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NameMap is a small curated override table translating interface names to
// native names where the two naming conventions diverge. Plain keys map a
// type name; dotted "Type.member" keys override a single member.
type NameMap struct {
	entries map[string]string
	reverse map[string]string
}

// NewNameMap builds a NameMap from explicit entries.
func NewNameMap(entries map[string]string) *NameMap {
	m := &NameMap{
		entries: make(map[string]string, len(entries)),
		reverse: make(map[string]string, len(entries)),
	}

	for k, v := range entries {
		m.entries[k] = v
		// Member overrides do not participate in reverse type lookup.
		if !strings.Contains(k, ".") {
			m.reverse[v] = k
		}
	}

	return m
}

// DefaultNameMap returns the curated overrides for the wgpu binding.
func DefaultNameMap() *NameMap {
	return NewNameMap(map[string]string{
		"ColorWrite": "ColorWriteMask",
	})
}

// LoadNameMap reads a flat YAML mapping of overrides from path.
func LoadNameMap(path string) (*NameMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read name map %s: %w", path, err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse name map YAML: %w", err)
	}

	return NewNameMap(entries), nil
}

// Resolve translates an interface type name to its native counterpart,
// defaulting to identity.
func (m *NameMap) Resolve(name string) string {
	if v, ok := m.entries[name]; ok {
		return v
	}

	return name
}

// Member translates a member key within the given scope, defaulting to
// identity. The override key is "<scope>.<key>".
func (m *NameMap) Member(scope, key string) string {
	if v, ok := m.entries[scope+"."+key]; ok {
		return v
	}

	return key
}

// Reverse translates a native type name back to the interface name that
// maps to it, defaulting to identity.
func (m *NameMap) Reverse(native string) string {
	if v, ok := m.reverse[native]; ok {
		return v
	}

	return native
}
