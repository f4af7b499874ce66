package registry

import (
	"fmt"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
)

// Registry is the immutable table of every known component. It is built once
// per process, validated, and only ever read after that.
type Registry struct {
	// order preserves declaration order; it anchors every deterministic
	// tie-break in closure output.
	order      []string
	components map[string]component.Component
}

// New builds a Registry from component definitions, filling in default
// artifact sets where a definition declares none, and validates the result.
// Declaration order of defs is preserved.
func New(defs []component.Component) (*Registry, error) {
	r := &Registry{
		order:      make([]string, 0, len(defs)),
		components: make(map[string]component.Component, len(defs)),
	}
	for _, c := range defs {
		if _, dup := r.components[c.ID]; dup {
			return nil, fmt.Errorf("duplicate component id: %q", c.ID)
		}
		if c.Artifacts == nil {
			c.Artifacts = component.DefaultArtifacts(c.ID, c.Kind)
		}
		r.order = append(r.order, c.ID)
		r.components[c.ID] = c
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Lookup returns the component for a canonical id and whether it exists.
func (r *Registry) Lookup(id string) (component.Component, bool) {
	c, ok := r.components[id]
	return c, ok
}

// IDs returns all component ids in declaration order. The slice is a copy.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	return len(r.order)
}
