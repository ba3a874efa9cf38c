package schema

import (
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Native is the structural inventory extracted from the native C header.
// Immutable after parsing; built once per run.
type Native struct {
	// Functions maps a symbol name to its declared signature text,
	// e.g. "wgpuDeviceCreateBuffer" -> "WGPUBuffer wgpuDeviceCreateBuffer(...);".
	Functions map[string]string `yaml:"functions"`
	// Structs maps a struct name to its ordered field name -> type mapping.
	Structs map[string]*Fields `yaml:"structs"`
	// Enums maps an enum name to its ordered member name -> integer mapping.
	Enums map[string]*Members `yaml:"enums"`
	// Flags maps a flag-set name to its ordered member name -> bit mapping.
	Flags map[string]*Members `yaml:"flags"`
}

// Interface is the structural inventory extracted from the
// platform-neutral interface description.
type Interface struct {
	// Enums maps an enum name to its ordered member key -> symbolic string
	// mapping (kebab/lower form, e.g. "bgra8unorm-srgb").
	Enums map[string]*SymbolicMembers `yaml:"enums"`
	// Flags maps a flag-set name to its ordered member key -> integer mapping.
	Flags map[string]*Members `yaml:"flags"`
}

// Fields is an ordered field name -> declared type mapping.
type Fields = OrderedMap[string]

// Members is an ordered member name -> integer value mapping.
type Members = OrderedMap[int]

// SymbolicMembers is an ordered member key -> symbolic string mapping.
type SymbolicMembers = OrderedMap[string]

// OrderedMap is a string-keyed map that preserves insertion order.
// YAML mapping nodes decode into it with document order intact.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Set inserts or overwrites a key. New keys append to the order.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]

	return v, ok
}

// Has returns whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]

	return ok
}

// Keys returns the keys in insertion order. The caller must not mutate it.
func (m *OrderedMap[V]) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// All iterates entries in insertion order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// UnmarshalYAML decodes a YAML mapping node, preserving document order.
func (m *OrderedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping node, got %v", node.Kind)
	}

	m.keys = nil
	m.values = make(map[string]V, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("decoding value for %q: %w", key, err)
		}

		m.Set(key, value)
	}

	return nil
}

// MarshalYAML re-encodes the map in insertion order.
func (m *OrderedMap[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, k := range m.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(k)

		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[k]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valNode)
	}

	return node, nil
}
