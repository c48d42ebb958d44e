package models

// ErrorKind is the finding reported by a lint rule
type ErrorKind int

const (
	// ErrNone marks a record that carries no finding
	ErrNone ErrorKind = iota
	MissingPackage
	MissingVersion
	MissingDependency
	MissingMaintainer
	MalformedVersion
	FloatVersion
)

// String returns the message printed for the kind
func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return ""
	case MissingPackage:
		return "missing package"
	case MissingVersion:
		return "missing version"
	case MissingDependency:
		return "missing dependency"
	case MissingMaintainer:
		return "missing maintainer"
	case MalformedVersion:
		return "malformed version"
	case FloatVersion:
		return "dangerous version (float interpretable)"
	default:
		return "unknown error"
	}
}

// Record is the outcome of one rule for one manifest entry.
//
// Package is always set. Version is zero when the package itself is unknown.
// Maintainer may be filled on failures as an annotation. Depends is only set
// on MissingDependency and lists the dependencies absent from the manifest.
type Record struct {
	Package    string
	Version    Version
	Maintainer string
	Depends    []string
	Err        ErrorKind
}

// Failed reports whether the record carries a finding
func (r Record) Failed() bool {
	return r.Err != ErrNone
}

// Passed returns a success record
func Passed(pkg string, ver Version, maintainer string) Record {
	return Record{Package: pkg, Version: ver, Maintainer: maintainer}
}

// PackageMissing returns a MissingPackage record
func PackageMissing(pkg string) Record {
	return Record{Package: pkg, Err: MissingPackage}
}

// VersionMissing returns a MissingVersion record
func VersionMissing(pkg string, ver Version) Record {
	return Record{Package: pkg, Version: ver, Err: MissingVersion}
}

// MaintainerMissing returns a MissingMaintainer record
func MaintainerMissing(pkg string, ver Version) Record {
	return Record{Package: pkg, Version: ver, Err: MissingMaintainer}
}

// DependenciesMissing returns a MissingDependency record listing missing
func DependenciesMissing(pkg string, ver Version, maintainer string, missing []string) Record {
	return Record{Package: pkg, Version: ver, Maintainer: maintainer, Depends: missing, Err: MissingDependency}
}

// VersionFinding returns a FloatVersion or MalformedVersion record
func VersionFinding(pkg string, ver Version, maintainer string, kind ErrorKind) Record {
	return Record{Package: pkg, Version: ver, Maintainer: maintainer, Err: kind}
}
