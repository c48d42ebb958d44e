package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// VersionKind tells how a manifest version was written in the source document
type VersionKind int

const (
	// VersionString is a version given as a YAML string (quoted or plain text)
	VersionString VersionKind = iota
	// VersionNumeric is a version a YAML loader resolves to an int or a float,
	// e.g. an unquoted 1.10
	VersionNumeric
)

// String returns the string representation of VersionKind
func (k VersionKind) String() string {
	switch k {
	case VersionString:
		return "string"
	case VersionNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Version is a version selected in a manifest. Raw always holds the literal
// text of the document, so the numeric 1.10 keeps its trailing zero.
type Version struct {
	Kind VersionKind
	Raw  string
}

// StringVersion returns a string version
func StringVersion(raw string) Version {
	return Version{Kind: VersionString, Raw: raw}
}

// NumericVersion returns a version that was written as a bare number
func NumericVersion(raw string) Version {
	return Version{Kind: VersionNumeric, Raw: raw}
}

// String returns the literal version text
func (v Version) String() string {
	return v.Raw
}

// IsZero reports whether the version is absent
func (v Version) IsZero() bool {
	return v == Version{}
}

// IsNumeric reports whether the version was not written as a string
func (v Version) IsNumeric() bool {
	return v.Kind == VersionNumeric
}

// UnmarshalYAML decodes a scalar node, keeping the resolved tag
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: version must be a scalar", node.Line)
	}

	switch node.ShortTag() {
	case "!!int", "!!float":
		*v = NumericVersion(node.Value)
	default:
		*v = StringVersion(node.Value)
	}
	return nil
}
