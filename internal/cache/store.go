// Package cache persists generated artifacts under logical, slash-separated
// names.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store writes one artifact per logical name. Names use forward slashes and
// may carry directory components ("backends/wgpu_native/_mappings.py").
type Store interface {
	Write(name, text string) error
}

// Dir stores artifacts as files under Root, creating parent directories as
// needed.
type Dir struct {
	Root string
}

// Write implements Store.
func (d *Dir) Write(name, text string) error {
	path := filepath.Join(d.Root, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory for %s: %w", name, err)
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", name, err)
	}

	return nil
}

// Memory keeps artifacts in a map. Test double.
type Memory struct {
	Files map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{Files: map[string]string{}}
}

// Write implements Store.
func (m *Memory) Write(name, text string) error {
	m.Files[name] = text

	return nil
}
