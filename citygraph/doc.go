// Package citygraph defines the central Graph, Node, and Edge types for the
// hyperbolic transport network: a single arena of nodes and undirected
// edges indexed by stable integers, with per-edge transport-mode
// capabilities and congestion state.
//
// What:
//
//   - Mode / ModeSet: the closed walk/car/public enumeration and its bitset.
//   - Node: a stable integer index owning one immutable disk Point and a
//     mutable transit-stop flag.
//   - Edge: an undirected connection between two distinct node indices with
//     a hyperbolic base distance, mode capabilities, a public-route flag and
//     a congestion multiplier (always ≥ 1).
//   - Graph: the arena. Adjacency is derived from the edge arena, never
//     stored twice; no self-loops, no duplicate unordered pairs.
//   - Components / LargestComponent: BFS sweep over the derived adjacency,
//     used by consumers to restrict route queries to a connected region.
//
// Overlay construction and traffic simulation mutate flags, capabilities
// and multipliers in place through the dedicated mutators; endpoints and
// positions are immutable after creation. There are no parallel graph
// copies to keep in sync.
//
// Concurrency:
//
//   - Generation (AddEdge, MarkStop, GrantMode, MarkPublicRoute,
//     SetCongestion) is single-threaded by contract.
//   - Once generation finishes the Graph is read-only; any number of
//     concurrent route queries may read it without locking.
//
// Errors:
//
//	ErrNodeNotFound  - an index does not name a node of this graph.
//	ErrEdgeNotFound  - an edge ID does not name an arena edge.
//	ErrSelfLoop      - edge endpoints are equal.
//	ErrDuplicateEdge - the unordered endpoint pair already has an edge.
//	ErrBadDistance   - negative base distance.
//	ErrBadCongestion - congestion multiplier below 1.
//	ErrUnknownMode   - mode outside the closed walk/car/public set.
package citygraph
