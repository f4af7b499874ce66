// Package dag computes transitive closures over the component registry in
// both directions: AllDeps yields the ordered set of components that must be
// built before a target (build order), AllDependents the ordered set of
// components that would be invalidated by rebuilding it (teardown order).
// Both walks are cycle-safe; a cycle in the registry is reported as a
// CycleError, never tolerated.
package dag
