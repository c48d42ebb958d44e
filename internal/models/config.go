package models

// LintConfig contains configuration for a lint run
type LintConfig struct {
	// Input files, optionally gzip, zstd or xz compressed
	ManifestPath   string
	RepositoryPath string

	// Signature verification of the repository file
	KeyringPath   string
	SignaturePath string // defaults to RepositoryPath + ".asc"

	Quiet bool
}
