// Package hypertransit models an urban transportation network laid out in
// hyperbolic (Poincaré-disk) geometry and answers multi-modal shortest-route
// queries over it — walking, driving, and public transit, with rush-hour
// congestion effects.
//
// 🚇 What is hypertransit?
//
//	An in-process, deterministic network-generation and routing engine:
//		• geometry  – Poincaré-disk metric + hyperbolic-area-uniform sampling
//		• citygraph – single-arena graph: nodes, mode-capable edges, components
//		• netbuild  – proximity-graph construction with R-tree pruning,
//		              walk/car capability assignment
//		• transit   – public-transport lines threaded along car routes
//		• traffic   – degree-correlated rush-hour congestion multipliers
//		• router    – mode-filtered Dijkstra with an explicit Found/NotFound
//		              result and a shared travel-cost model
//		• engine    – validated one-shot pipeline, per-stage RNG substreams
//
// ✨ Guarantees
//
//   - Reproducible: one seed, one network — byte-identical points, edges,
//     and weights on every run.
//   - Honest errors: sentinel errors for invalid input, a Result state for
//     the ordinary "no path under this mode" answer.
//   - Read-only routing: generated graphs are never mutated by queries, so
//     concurrent route calls need no locks.
//
// Typical use:
//
//	g, points, err := engine.Generate(engine.DefaultConfig())
//	if err != nil { ... }
//	res, err := router.Route(g, 0, 41, citygraph.Public)
//	if err != nil { ... }
//	if res.Found { fmt.Println(res.Path, res.Cost) }
//
// Rendering, interactive controls, and persistence live outside this
// module; the engine exposes positions, stop flags, public-route flags and
// per-mode costs for any consumer that wants to draw them.
package hypertransit
