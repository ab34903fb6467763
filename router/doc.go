// Package router computes minimum-cost multi-modal routes over a citygraph
// and owns the travel-cost model shared by every consumer (including the
// transit overlay builder, which threads its lines along car-mode routes).
//
// Cost model:
//
//	cost(edge, mode) = edge.BaseDistance / speed[mode]
//	                   × (edge.Congestion if mode == car, else 1)
//
// with a fixed positive speed per mode (public fastest per unit distance,
// reflecting vehicle right-of-way). Costs are therefore non-negative, which
// is exactly the precondition Dijkstra needs.
//
// Routing:
//
//	Route restricts the search to edges whose capability set contains the
//	requested mode, runs Dijkstra with a lazy-decrease-key min-heap, and
//	reconstructs the optimal path from the predecessor slice. Ties between
//	equal-cost frontier entries break on the lower node index, so results
//	are deterministic for a fixed graph.
//
// Result semantics:
//
//	Absence of a path is not an error: Route returns Result{Found: false}.
//	Errors are reserved for invalid input (nil graph, unknown mode, node
//	index outside the graph). source == target yields the trivial
//	single-node route with zero cost.
//
// Concurrency:
//
//	Route never mutates the graph; each call allocates its own distance,
//	predecessor and heap state, so concurrent queries against one generated
//	graph are safe.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per query.
//   - Space: O(V + E) per query.
//
// Errors (sentinel):
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrNodeNotFound   if source or target is not a graph node
//     (source is checked first).
//   - ErrModeNotAllowed if Cost is asked for a mode the edge does not carry.
//   - citygraph.ErrUnknownMode for modes outside the closed enumeration.
package router
