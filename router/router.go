// SPDX-License-Identifier: MIT
// Package: hypertransit/router
//
// router.go — mode-filtered Dijkstra over the citygraph arena.
//
// Implementation notes:
//   • Lazy decrease-key: improved distances push duplicate heap entries;
//     stale entries are skipped via the visited slice when popped.
//   • Heap ties break on the lower node index so equal-cost frontiers pop
//     in a fixed order and path reconstruction is deterministic.
//   • Dense int node indices let dist/prev/visited be slices, not maps.

package router

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hypertransit/citygraph"
)

// Route computes the minimum-cost path from source to target restricted to
// edges whose capability set contains mode, using the cost model of this
// package as the edge-weight function.
//
// Returns:
//
//   - Result{Found: true, Path, Cost} for an existing path; Path starts at
//     source and ends at target. source == target yields the trivial
//     single-node route at zero cost.
//   - Result{Found: false} when the mode-restricted subgraph offers no
//     path. This is not an error.
//   - err for invalid input only, in validation order: ErrNilGraph,
//     citygraph.ErrUnknownMode, ErrNodeNotFound for source, then target.
//
// The graph is never mutated; every query allocates its own state, so
// concurrent calls against one graph are safe.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Route(g *citygraph.Graph, source, target int, mode citygraph.Mode, opts ...Option) (Result, error) {
	// 1) Resolve options.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !mode.Valid() {
		return Result{}, fmt.Errorf("%w: %v", citygraph.ErrUnknownMode, mode)
	}
	if !g.HasNode(source) {
		return Result{}, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return Result{}, fmt.Errorf("%w: target %d", ErrNodeNotFound, target)
	}

	// 3) Trivial route: the single-node path is valid with zero length.
	if source == target {
		return Result{Found: true, Path: []int{source}, Cost: 0}, nil
	}

	// 4) Run the search.
	r := newRun(g, mode, cfg.Speeds)
	r.search(source, target)

	// 5) Reconstruct, or report the honest absence of a path.
	if !r.reached(target) {
		return Result{Found: false}, nil
	}

	return Result{
		Found: true,
		Path:  r.rebuild(target),
		Cost:  r.dist[target],
	}, nil
}

// run holds the per-query mutable state of one Dijkstra execution.
type run struct {
	g      *citygraph.Graph
	mode   citygraph.Mode
	speeds SpeedTable

	dist    []float64 // node index → best known cost from source
	prev    []int     // node index → predecessor on the best path, -1 if none
	visited []bool    // node index → cost finalized
	pq      costPQ    // lazy min-heap frontier
}

// newRun allocates search state sized to the graph.
func newRun(g *citygraph.Graph, mode citygraph.Mode, speeds SpeedTable) *run {
	n := g.NumNodes()
	r := &run{
		g:       g,
		mode:    mode,
		speeds:  speeds,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(costPQ, 0, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}

	return r
}

// search runs the main loop from source, stopping early once target is
// finalized (its popped cost is already minimal at that point).
func (r *run) search(source, target int) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, costItem{node: source, cost: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(costItem)
		u := item.node

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == target {
			return
		}

		r.relax(u)
	}
}

// relax attempts to improve the cost of every mode-capable neighbor of u.
func (r *run) relax(u int) {
	for _, id := range r.g.EdgesOf(u) {
		e, err := r.g.Edge(id)
		if err != nil {
			continue // adjacency and arena are in sync by construction
		}
		// The capability filter defines the mode-specific subgraph.
		if !e.Modes.Has(r.mode) {
			continue
		}

		w, err := costWith(e, r.mode, r.speeds)
		if err != nil {
			continue // unreachable: filter above satisfies the precondition
		}

		v := e.Other(u)
		if next := r.dist[u] + w; next < r.dist[v] {
			r.dist[v] = next
			r.prev[v] = u
			heap.Push(&r.pq, costItem{node: v, cost: next})
		}
	}
}

// reached reports whether the search finalized a finite cost for node i.
func (r *run) reached(i int) bool {
	return !math.IsInf(r.dist[i], 1)
}

// rebuild walks the predecessor chain back from target (the chain
// necessarily terminates at the source, whose prev is -1) and reverses it.
func (r *run) rebuild(target int) []int {
	var path []int
	for at := target; at != -1; at = r.prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// costItem is a frontier entry: a node and its tentative cost.
type costItem struct {
	node int
	cost float64
}

// costPQ is a min-heap of costItem ordered by (cost, node index); the
// secondary key pins equal-cost pop order for deterministic tie-breaking.
type costPQ []costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].node < pq[j].node
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a frontier entry; called by heap.Push.
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(costItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
