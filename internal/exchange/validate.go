package exchange

import (
	"fmt"

	"github.com/alexanderramin/reimagine/internal/domain"
)

// ValidateProjects checks the presence rules an imported collection must
// meet: every project has an id, and project ids are unique. Returns every
// problem found.
func ValidateProjects(projects []domain.Project) []error {
	var errs []error
	seen := make(map[string]bool, len(projects))
	for i, p := range projects {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("projects[%d].id is required", i))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("projects[%d].id %q is duplicated", i, p.ID))
		}
		seen[p.ID] = true
		if p.Status != "" && !p.Status.Valid() {
			errs = append(errs, fmt.Errorf("projects[%d].status %q is not a phase", i, p.Status))
		}
	}
	return errs
}
