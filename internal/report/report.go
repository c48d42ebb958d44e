// Package report renders lint results for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ralt/komodo-lint/internal/lint"
	"github.com/ralt/komodo-lint/internal/models"
)

// FormatRecord renders a failing record as
// "<err> for <pkg> <version>[: dep1, dep2]"
func FormatRecord(rec models.Record) string {
	line := fmt.Sprintf("%s for %s %s", rec.Err, rec.Package, rec.Version)
	if len(rec.Depends) > 0 {
		line += ": " + strings.Join(rec.Depends, ", ")
	}
	return line
}

// Write prints the package count and every failing record of r. It returns
// true when at least one record failed.
func Write(w io.Writer, r *lint.Report) (bool, error) {
	if _, err := fmt.Fprintf(w, "%d packages\n", r.Packages()); err != nil {
		return false, err
	}

	failures := r.Failures()
	if len(failures) == 0 {
		_, err := fmt.Fprintln(w, "No errors found")
		return false, err
	}

	for _, rec := range failures {
		if _, err := fmt.Fprintln(w, FormatRecord(rec)); err != nil {
			return true, err
		}
	}
	return true, nil
}
