package lint

import "github.com/ralt/komodo-lint/internal/models"

// ValidateDeps checks that every dependency of pkg at ver is selected in
// manifest. It returns false when there is nothing to report, including when
// the release declares no dependencies at all.
func ValidateDeps(pkg string, ver models.Version, repo models.Repository, manifest *models.Manifest) (models.Record, bool) {
	rel, ok := repo.Release(pkg, ver)
	if !ok || !rel.HasDepends {
		return models.Record{}, false
	}

	var missing []string
	for _, dep := range rel.Depends {
		if !manifest.Has(dep) {
			missing = append(missing, dep)
		}
	}
	if len(missing) == 0 {
		return models.Record{}, false
	}

	return models.DependenciesMissing(pkg, ver, maintainerOf(pkg, ver, repo), missing), true
}

// LintDependencies returns a record for each manifest entry with unselected
// dependencies
func LintDependencies(manifest *models.Manifest, repo models.Repository) []models.Record {
	var records []models.Record
	for _, e := range manifest.Entries() {
		if rec, ok := ValidateDeps(e.Package, e.Version, repo, manifest); ok {
			records = append(records, rec)
		}
	}
	return records
}
