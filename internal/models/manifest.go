package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is a single package selection of a manifest
type Entry struct {
	Package string
	Version Version
}

// Manifest maps package names to the selected version. Entries keep the
// order they had in the source document.
type Manifest struct {
	entries []Entry
	index   map[string]int
}

// NewManifest creates a manifest from entries, in order
func NewManifest(entries ...Entry) (*Manifest, error) {
	m := &Manifest{}
	for _, e := range entries {
		if err := m.add(e.Package, e.Version); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Manifest) add(pkg string, ver Version) error {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if _, ok := m.index[pkg]; ok {
		return fmt.Errorf("package %s selected more than once", pkg)
	}
	m.index[pkg] = len(m.entries)
	m.entries = append(m.entries, Entry{Package: pkg, Version: ver})
	return nil
}

// Entries returns the manifest entries in document order
func (m *Manifest) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Lookup returns the version selected for pkg
func (m *Manifest) Lookup(pkg string) (Version, bool) {
	if m == nil {
		return Version{}, false
	}
	i, ok := m.index[pkg]
	if !ok {
		return Version{}, false
	}
	return m.entries[i].Version, true
}

// Has reports whether pkg is selected
func (m *Manifest) Has(pkg string) bool {
	_, ok := m.Lookup(pkg)
	return ok
}

// Len returns the number of selected packages
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// UnmarshalYAML decodes a mapping node, preserving key order
func (m *Manifest) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: manifest must be a mapping of package to version", node.Line)
	}

	*m = Manifest{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var ver Version
		if err := value.Decode(&ver); err != nil {
			return fmt.Errorf("package %s: %w", key.Value, err)
		}

		if err := m.add(key.Value, ver); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
	}
	return nil
}
