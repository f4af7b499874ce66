package dag

import "fmt"

// UnknownComponentError reports a requested id that is absent from the
// registry. It aborts only the operation that asked.
type UnknownComponentError struct {
	ID string
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component: %q", e.ID)
}

// CycleError reports a dependency cycle in the registry. A cycle is a
// configuration defect: no valid build or teardown order exists, so the
// operation must abort rather than loop.
type CycleError struct {
	// ID is the first component found on the active traversal stack twice.
	ID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected involving %q", e.ID)
}
