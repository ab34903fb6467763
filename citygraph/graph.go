// SPDX-License-Identifier: MIT
// Package: hypertransit/citygraph
//
// graph.go — arena accessors, invariant-enforcing mutation, and queries.

package citygraph

import "fmt"

// NumNodes returns the number of nodes in the arena.
// Complexity: O(1).
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges in the arena.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.edges) }

// HasNode reports whether i names a node of this graph.
// Complexity: O(1).
func (g *Graph) HasNode(i int) bool { return i >= 0 && i < len(g.nodes) }

// Node returns the node with index i by value.
// Returns ErrNodeNotFound (wrapped with the index) for unknown indices.
// Complexity: O(1).
func (g *Graph) Node(i int) (Node, error) {
	if !g.HasNode(i) {
		return Node{}, fmt.Errorf("%w: index %d", ErrNodeNotFound, i)
	}

	return g.nodes[i], nil
}

// Edge returns the edge with arena ID id by value.
// Returns ErrEdgeNotFound (wrapped with the ID) for unknown IDs.
// Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns a copy of the edge arena in creation order.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgesOf returns the IDs of edges incident to node i, ascending.
// Returns nil for unknown indices and for isolated nodes.
// The result is a copy; callers may retain or reorder it freely.
// Complexity: O(deg(i)) time and space.
func (g *Graph) EdgesOf(i int) []int {
	if !g.HasNode(i) {
		return nil
	}
	out := make([]int, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out
}

// Degree returns the number of edges incident to node i, or 0 for unknown
// indices.
// Complexity: O(1).
func (g *Graph) Degree(i int) int {
	if !g.HasNode(i) {
		return 0
	}

	return len(g.adjacency[i])
}

// HasEdgeBetween reports whether an edge joins the unordered pair (u, v).
// Complexity: O(1).
func (g *Graph) HasEdgeBetween(u, v int) bool {
	_, ok := g.pairs[normalizePair(u, v)]

	return ok
}

// EdgeBetween returns the edge joining the unordered pair (u, v).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v int) (Edge, error) {
	id, ok := g.pairs[normalizePair(u, v)]
	if !ok {
		return Edge{}, fmt.Errorf("%w: between %d and %d", ErrEdgeNotFound, u, v)
	}

	return g.edges[id], nil
}

// AddEdge creates an undirected edge between distinct existing nodes u and
// v with the given hyperbolic base distance and initial capability set,
// and returns its arena ID. Congestion starts at DefaultCongestion.
//
// Invariants enforced, in validation order:
//  1. both endpoints exist          (ErrNodeNotFound)
//  2. endpoints are distinct        (ErrSelfLoop)
//  3. distance is non-negative      (ErrBadDistance)
//  4. the pair is not yet connected (ErrDuplicateEdge)
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, baseDistance float64, modes ModeSet) (int, error) {
	if !g.HasNode(u) {
		return 0, fmt.Errorf("%w: index %d", ErrNodeNotFound, u)
	}
	if !g.HasNode(v) {
		return 0, fmt.Errorf("%w: index %d", ErrNodeNotFound, v)
	}
	if u == v {
		return 0, fmt.Errorf("%w: node %d", ErrSelfLoop, u)
	}
	if baseDistance < 0 {
		return 0, fmt.Errorf("%w: got %g", ErrBadDistance, baseDistance)
	}
	pair := normalizePair(u, v)
	if _, dup := g.pairs[pair]; dup {
		return 0, fmt.Errorf("%w: between %d and %d", ErrDuplicateEdge, u, v)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{
		ID:           id,
		U:            pair[0],
		V:            pair[1],
		BaseDistance: baseDistance,
		Modes:        modes,
		Congestion:   DefaultCongestion,
	})
	g.pairs[pair] = id
	g.adjacency[pair[0]] = append(g.adjacency[pair[0]], id)
	g.adjacency[pair[1]] = append(g.adjacency[pair[1]], id)

	return id, nil
}

// MarkStop flags node i as a public-transport stop. Idempotent.
// Complexity: O(1).
func (g *Graph) MarkStop(i int) error {
	if !g.HasNode(i) {
		return fmt.Errorf("%w: index %d", ErrNodeNotFound, i)
	}
	g.nodes[i].IsStop = true

	return nil
}

// GrantMode adds m to the capability set of edge id. Idempotent; granting
// a mode the edge already supports is a no-op.
// Complexity: O(1).
func (g *Graph) GrantMode(id int, m Mode) error {
	if id < 0 || id >= len(g.edges) {
		return fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}
	if !m.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownMode, m)
	}
	g.edges[id].Modes = g.edges[id].Modes.With(m)

	return nil
}

// MarkPublicRoute flags edge id as part of a public-transport line.
// Idempotent.
// Complexity: O(1).
func (g *Graph) MarkPublicRoute(id int) error {
	if id < 0 || id >= len(g.edges) {
		return fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}
	g.edges[id].IsPublicRoute = true

	return nil
}

// SetCongestion sets the congestion multiplier of edge id. The multiplier
// must be ≥ 1; ErrBadCongestion otherwise.
// Complexity: O(1).
func (g *Graph) SetCongestion(id int, multiplier float64) error {
	if id < 0 || id >= len(g.edges) {
		return fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}
	if multiplier < DefaultCongestion {
		return fmt.Errorf("%w: got %g", ErrBadCongestion, multiplier)
	}
	g.edges[id].Congestion = multiplier

	return nil
}

// normalizePair orders an endpoint pair ascending for arena keys.
func normalizePair(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
