// Package router_test provides runnable examples for the multi-modal
// router, showing both code and expected output via "go test -run Example".
package router_test

import (
	"fmt"

	"github.com/katalvlaran/hypertransit/citygraph"
	"github.com/katalvlaran/hypertransit/geometry"
	"github.com/katalvlaran/hypertransit/router"
)

// ExampleRoute_triangle routes across a hand-built three-intersection
// network where the direct street is longer than the two-hop detour.
func ExampleRoute_triangle() {
	// 1) Three intersections; positions are illustrative, the router reads
	//    costs from edge base distances.
	g := citygraph.NewGraph([]geometry.Point{{0, 0}, {0.2, 0}, {0.4, 0}})

	// 2) Streets usable on foot: 0—1 (1.0), 1—2 (2.0), 0—2 (5.0).
	walk := citygraph.NewModeSet(citygraph.Walk)
	g.AddEdge(0, 1, 1, walk)
	g.AddEdge(1, 2, 2, walk)
	g.AddEdge(0, 2, 5, walk)

	// 3) The cheapest walk from 0 to 2 takes the detour through 1.
	res, err := router.Route(g, 0, 2, citygraph.Walk)
	if err != nil {
		fmt.Println("route failed:", err)

		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("path:", res.Path)
	fmt.Printf("cost: %.0f\n", res.Cost)

	// Output:
	// found: true
	// path: [0 1 2]
	// cost: 3
}

// ExampleRoute_noPath shows the honest answer for a mode with no usable
// edges: NotFound, not an error.
func ExampleRoute_noPath() {
	g := citygraph.NewGraph([]geometry.Point{{0, 0}, {0.2, 0}})
	g.AddEdge(0, 1, 1, citygraph.NewModeSet(citygraph.Walk))

	// No transit line was ever threaded, so public mode has no subgraph.
	res, err := router.Route(g, 0, 1, citygraph.Public)
	fmt.Println("err:", err)
	fmt.Println("found:", res.Found)

	// Output:
	// err: <nil>
	// found: false
}
