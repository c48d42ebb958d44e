package lint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ralt/komodo-lint/internal/models"
)

// ErrNotString is returned by ParseStrict for versions written as numbers
var ErrNotString = errors.New("version is not a string")

// ParseStrict checks that ver is MAJOR.MINOR.PATCH with digits only. A
// leading v is allowed when a digit follows it. Components may have leading
// zeros (2020.01.0) and any length. It returns the version as it should be
// logged.
func ParseStrict(ver models.Version) (string, error) {
	if ver.IsNumeric() {
		return "", ErrNotString
	}

	raw := ver.Raw
	if len(raw) > 1 && raw[0] == 'v' && isDigit(raw[1]) {
		raw = raw[1:]
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid version %q: expected MAJOR.MINOR.PATCH", ver.Raw)
	}
	for _, part := range parts {
		if !allDigits(part) {
			return "", fmt.Errorf("invalid version %q: components must be digits", ver.Raw)
		}
	}

	// Components too large for semver are still valid, just not normalized
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw, nil
	}
	return v.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// ValidateVersion checks the version number selected for pkg. Both a
// FloatVersion and a MalformedVersion record may be returned for one entry.
func (l *Linter) ValidateVersion(pkg string, ver models.Version, repo models.Repository) []models.Record {
	var records []models.Record
	maintainer := maintainerOf(pkg, ver, repo)

	if ver.IsNumeric() {
		records = append(records, models.VersionFinding(pkg, ver, maintainer, models.FloatVersion))
	}

	v, err := ParseStrict(ver)
	if err != nil {
		l.log.WithField("package", pkg).Debugf("Rejected version: %v", err)
		return append(records, models.VersionFinding(pkg, ver, maintainer, models.MalformedVersion))
	}

	l.log.Debugf("Using %s %s", pkg, v)
	return records
}

// LintVersions validates the version number of every manifest entry
func (l *Linter) LintVersions(manifest *models.Manifest, repo models.Repository) []models.Record {
	var records []models.Record
	for _, e := range manifest.Entries() {
		records = append(records, l.ValidateVersion(e.Package, e.Version, repo)...)
	}
	return records
}
