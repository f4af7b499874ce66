package dag

import (
	"sort"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/registry"
)

// New builds the graph from a registry snapshot. Forward edges come straight
// from each component's declared dependency list; the reverse-edge index is
// built in the same pass, so both closure directions share one adjacency
// representation.
func New(reg *registry.Registry) *Graph {
	order := reg.IDs()
	g := &Graph{
		order: order,
		nodes: make(map[string]*node, len(order)),
	}

	for _, id := range order {
		c, _ := reg.Lookup(id)
		g.nodes[id] = &node{id: id, deps: c.DependsOn}
	}

	// Iterating in declaration order gives every dependents slice the same
	// order, which keeps reverse-closure output deterministic.
	for _, id := range order {
		for _, dep := range g.nodes[id].deps {
			d := g.nodes[dep]
			d.dependents = append(d.dependents, id)
		}
	}

	return g
}

// Deps returns the direct dependencies of a component in declared order.
func (g *Graph) Deps(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, &UnknownComponentError{ID: id}
	}
	deps := make([]string, len(n.deps))
	copy(deps, n.deps)
	return deps, nil
}

// Dependents returns the direct dependents of a component in registry
// declaration order.
func (g *Graph) Dependents(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, &UnknownComponentError{ID: id}
	}
	dependents := make([]string, len(n.dependents))
	copy(dependents, n.dependents)
	return dependents, nil
}

// AllDeps returns every component that must exist before id, id itself
// included as the last element, each exactly once. For every edge in the
// registry the dependency appears strictly before its dependent: the
// sequence is a valid build order.
//
// The walk is a depth-first post-order over declared dependency edges, so
// sibling order follows the registry and the output is deterministic.
func (g *Graph) AllDeps(id string) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, &UnknownComponentError{ID: id}
	}

	state := make(map[string]int, len(g.nodes))
	var out []string

	var visit func(string) error
	visit = func(cur string) error {
		switch state[cur] {
		case black:
			return nil
		case gray:
			return &CycleError{ID: cur}
		}
		state[cur] = gray
		for _, dep := range g.nodes[cur].deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[cur] = black
		out = append(out, cur)
		return nil
	}

	if err := visit(id); err != nil {
		return nil, err
	}
	return out, nil
}

// AllDependents returns every component that depends on id, directly or
// transitively, excluding id itself, each exactly once. Output is top-down:
// the furthest dependents first, so callers clearing or rebuilding process a
// dependent before anything it depends on.
//
// Ordering is by descending rank, where a node's rank is the longest
// dependency-chain distance from id. Equal ranks fall back to registry
// declaration order.
func (g *Graph) AllDependents(id string) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, &UnknownComponentError{ID: id}
	}

	// Collect everything reachable over reverse edges, cycle-safe.
	state := make(map[string]int, len(g.nodes))
	reach := make(map[string]struct{})

	var visit func(string) error
	visit = func(cur string) error {
		switch state[cur] {
		case black:
			return nil
		case gray:
			return &CycleError{ID: cur}
		}
		state[cur] = gray
		for _, dep := range g.nodes[cur].dependents {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[cur] = black
		if cur != id {
			reach[cur] = struct{}{}
		}
		return nil
	}

	if err := visit(id); err != nil {
		return nil, err
	}

	// rank[n] is the longest chain from id to n, memoized over forward
	// edges restricted to the reachable set. The reachable set is already
	// known acyclic, so the recursion terminates.
	rank := make(map[string]int, len(reach)+1)
	rank[id] = 0

	var dist func(string) int
	dist = func(cur string) int {
		if r, ok := rank[cur]; ok {
			return r
		}
		best := 0
		for _, dep := range g.nodes[cur].deps {
			if _, ok := reach[dep]; !ok && dep != id {
				continue
			}
			if v := dist(dep) + 1; v > best {
				best = v
			}
		}
		rank[cur] = best
		return best
	}

	out := make([]string, 0, len(reach))
	for _, n := range g.order {
		if _, ok := reach[n]; ok {
			out = append(out, n)
			dist(n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i]] > rank[out[j]]
	})
	return out, nil
}
