package dag

// Graph is the dependency graph over a registry snapshot. It is built once
// and never mutated, so all methods are safe for concurrent use without
// locking.
type Graph struct {
	// order holds every node id in registry declaration order. It anchors
	// the deterministic tie-break for equal-rank dependents.
	order []string
	// nodes stores all nodes in the graph, keyed by component id.
	nodes map[string]*node
}

// node is a single vertex. Adjacency is kept as ordered slices, not sets:
// dependency order is the registry's declared build order and must survive
// into closure output.
type node struct {
	// id is the canonical component id.
	id string
	// deps lists direct dependencies in declared order.
	deps []string
	// dependents lists direct dependents in registry declaration order.
	dependents []string
}

// traversal colors for depth-first search. A gray node is on the active
// recursion stack; revisiting one means the registry has a cycle.
const (
	white = iota
	gray
	black
)
