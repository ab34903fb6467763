// SPDX-License-Identifier: MIT
// Package: hypertransit/citygraph
//
// types.go — arena storage types, sentinel errors, and the Graph constructor.
//
// Design:
//   • One arena for nodes, one for edges; stable dense integer IDs.
//   • Adjacency is derived (node index → ascending edge IDs), never a
//     second source of truth.
//   • Mutation after construction is limited to flag/capability/multiplier
//     setters; endpoints and positions are frozen.

package citygraph

import (
	"errors"

	"github.com/katalvlaran/hypertransit/geometry"
)

// Sentinel errors for arena operations.
var (
	// ErrNodeNotFound indicates an index that does not name a node of this graph.
	ErrNodeNotFound = errors.New("citygraph: node not found")

	// ErrEdgeNotFound indicates an edge ID that does not name an arena edge.
	ErrEdgeNotFound = errors.New("citygraph: edge not found")

	// ErrSelfLoop indicates an edge whose endpoints are equal.
	ErrSelfLoop = errors.New("citygraph: self-loop not allowed")

	// ErrDuplicateEdge indicates the unordered endpoint pair already has an edge.
	ErrDuplicateEdge = errors.New("citygraph: duplicate edge not allowed")

	// ErrBadDistance indicates a negative base distance.
	ErrBadDistance = errors.New("citygraph: base distance must be non-negative")

	// ErrBadCongestion indicates a congestion multiplier below 1.
	ErrBadCongestion = errors.New("citygraph: congestion multiplier must be >= 1.0")
)

// DefaultCongestion is the congestion multiplier of every edge outside rush
// hour: no inflation.
const DefaultCongestion = 1.0

// Node is an intersection of the network.
//
// Index is the stable identity within the owning Graph. Pos is immutable
// once sampled. IsStop is flipped only by the transit overlay builder.
type Node struct {
	// Index is the dense arena index of this node.
	Index int

	// Pos is the node's position in the Poincaré disk.
	Pos geometry.Point

	// IsStop marks the node as a public-transport stop.
	IsStop bool
}

// Edge is an undirected road segment between two distinct nodes.
//
// Endpoints are normalized U < V at creation and never change. The edge is
// usable in both directions with identical weight per mode.
type Edge struct {
	// ID is the dense arena index of this edge.
	ID int

	// U and V are the endpoint node indices, U < V.
	U, V int

	// BaseDistance is the hyperbolic length of the segment; equal to
	// geometry.Distance of the endpoint positions by construction.
	BaseDistance float64

	// Modes is the capability set: which transport modes may use the edge.
	Modes ModeSet

	// IsPublicRoute marks the edge as part of a public-transport line.
	IsPublicRoute bool

	// Congestion is the rush-hour multiplier applied to car travel cost.
	// Always ≥ 1; DefaultCongestion outside rush hour.
	Congestion float64
}

// Other returns the endpoint of e opposite to node n.
// Behavior is undefined if n is not an endpoint of e.
func (e Edge) Other(n int) int {
	if n == e.U {
		return e.V
	}

	return e.U
}

// Graph is the in-memory arena of nodes and edges.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	nodes []Node
	edges []Edge

	// adjacency[node] lists incident edge IDs in ascending order (edges are
	// appended with increasing IDs, so insertion order is already sorted).
	adjacency [][]int

	// pairs guards the no-duplicate-edge invariant: normalized endpoint
	// pair → edge ID.
	pairs map[[2]int]int
}

// NewGraph creates a Graph owning one node per point, in slice order, with
// no edges. Positions are copied by value; the caller's slice is not
// retained.
//
// Complexity: O(n) time and space.
func NewGraph(points []geometry.Point) *Graph {
	g := &Graph{
		nodes:     make([]Node, len(points)),
		adjacency: make([][]int, len(points)),
		pairs:     make(map[[2]int]int),
	}
	for i, p := range points {
		g.nodes[i] = Node{Index: i, Pos: p}
	}

	return g
}
