package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Release is the metadata of one version of a package. Presence of a key is
// tracked apart from its value: an empty maintainer is still a maintainer.
type Release struct {
	Maintainer    string
	HasMaintainer bool
	Depends       []string
	HasDepends    bool
}

// UnmarshalYAML decodes a release mapping. Keys other than maintainer and
// depends (source, make, ...) are ignored.
func (r *Release) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: release metadata must be a mapping", node.Line)
	}

	*r = Release{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		switch key.Value {
		case "maintainer":
			r.HasMaintainer = true
			if err := value.Decode(&r.Maintainer); err != nil {
				return fmt.Errorf("line %d: maintainer: %w", value.Line, err)
			}
		case "depends":
			r.HasDepends = true
			if err := value.Decode(&r.Depends); err != nil {
				return fmt.Errorf("line %d: depends: %w", value.Line, err)
			}
		}
	}
	return nil
}

// Repository is the catalog of known packages: package -> version -> release
type Repository map[string]map[string]Release

// HasPackage reports whether pkg is known
func (r Repository) HasPackage(pkg string) bool {
	_, ok := r[pkg]
	return ok
}

// Release returns the metadata of pkg at version
func (r Repository) Release(pkg string, version Version) (Release, bool) {
	versions, ok := r[pkg]
	if !ok || version.IsZero() {
		return Release{}, false
	}
	rel, ok := versions[version.Raw]
	return rel, ok
}
