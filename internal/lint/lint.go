// Package lint checks a komodo manifest against a komodo repository.
//
// Three rules run over the same manifest and repository, each independent of
// the others: maintainers, dependencies and version numbers. Rules never
// fail; everything they find is reported as a models.Record.
package lint

import (
	"io"

	"github.com/ralt/komodo-lint/internal/models"
	"github.com/sirupsen/logrus"
)

// Report holds the records of the three rules, each in manifest order
type Report struct {
	// Maintainers has one record per manifest entry, failed or not
	Maintainers []models.Record
	// Dependencies only has failing records
	Dependencies []models.Record
	// Versions only has failing records, up to two per entry
	Versions []models.Record
}

// Packages returns the number of linted manifest entries
func (r *Report) Packages() int {
	return len(r.Maintainers)
}

// Failures returns every failing record: maintainers, then dependencies,
// then versions
func (r *Report) Failures() []models.Record {
	var failed []models.Record
	for _, records := range [][]models.Record{r.Maintainers, r.Dependencies, r.Versions} {
		for _, rec := range records {
			if rec.Failed() {
				failed = append(failed, rec)
			}
		}
	}
	return failed
}

// OK reports whether no record carries a finding
func (r *Report) OK() bool {
	return len(r.Failures()) == 0
}

// Linter runs the lint rules
type Linter struct {
	log logrus.FieldLogger
}

// Option configures a Linter
type Option func(*Linter)

// WithLogger makes the linter report parsed versions to log at debug level
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Linter) {
		if log != nil {
			l.log = log
		}
	}
}

// New creates a new linter. Without options nothing is logged.
func New(opts ...Option) *Linter {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	l := &Linter{log: discard}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lint runs every rule over manifest and repo
func (l *Linter) Lint(manifest *models.Manifest, repo models.Repository) *Report {
	return &Report{
		Maintainers:  LintMaintainers(manifest, repo),
		Dependencies: LintDependencies(manifest, repo),
		Versions:     l.LintVersions(manifest, repo),
	}
}

// Lint runs every rule with a linter that logs nothing
func Lint(manifest *models.Manifest, repo models.Repository) *Report {
	return New().Lint(manifest, repo)
}

// maintainerOf returns the maintainer of pkg at ver, or the missing
// maintainer message when there is none
func maintainerOf(pkg string, ver models.Version, repo models.Repository) string {
	rel, ok := repo.Release(pkg, ver)
	if !ok || !rel.HasMaintainer {
		return models.MissingMaintainer.String()
	}
	return rel.Maintainer
}
