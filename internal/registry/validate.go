package registry

import (
	"fmt"
	"strings"
)

// validate performs an integrity check over the whole table. Any failure
// here is a configuration defect, not a runtime condition: the table either
// shipped with the binary or came from a manifest the operator wrote, and
// both must be fixed at the source.
//
// Cycles are not checked here; the closure algorithms detect them on the
// exact traversal that would need a valid order, and report the offending id.
func (r *Registry) validate() error {
	var errs []string

	for _, id := range r.order {
		c := r.components[id]
		if id == "" {
			errs = append(errs, "component with empty id")
			continue
		}
		if c.Kind == "" {
			errs = append(errs, fmt.Sprintf("component %q: missing kind", id))
		}

		seen := make(map[string]struct{}, len(c.DependsOn))
		for _, dep := range c.DependsOn {
			if dep == id {
				errs = append(errs, fmt.Sprintf("component %q: depends on itself", id))
				continue
			}
			if _, ok := r.components[dep]; !ok {
				errs = append(errs, fmt.Sprintf("component %q: unknown dependency %q", id, dep))
			}
			if _, dup := seen[dep]; dup {
				errs = append(errs, fmt.Sprintf("component %q: duplicate dependency %q", id, dep))
			}
			seen[dep] = struct{}{}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
