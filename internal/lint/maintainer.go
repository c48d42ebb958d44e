package lint

import "github.com/ralt/komodo-lint/internal/models"

// Validate checks that pkg exists in repo at ver with a maintainer. Only the
// first failing check is reported.
func Validate(pkg string, ver models.Version, repo models.Repository) models.Record {
	if !repo.HasPackage(pkg) {
		return models.PackageMissing(pkg)
	}

	rel, ok := repo.Release(pkg, ver)
	if !ok {
		return models.VersionMissing(pkg, ver)
	}

	if !rel.HasMaintainer {
		return models.MaintainerMissing(pkg, ver)
	}

	return models.Passed(pkg, ver, rel.Maintainer)
}

// LintMaintainers validates every manifest entry, returning one record each
func LintMaintainers(manifest *models.Manifest, repo models.Repository) []models.Record {
	entries := manifest.Entries()
	records := make([]models.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, Validate(e.Package, e.Version, repo))
	}
	return records
}
