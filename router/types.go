// SPDX-License-Identifier: MIT
// Package: hypertransit/router
//
// types.go — sentinel errors, the Result type, and functional options.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Absence of a path is a Result state, never an error: a caller cannot
//     accidentally treat "not found" as a crash.
//   • Option constructors panic on meaningless values; Route itself never
//     panics.

package router

import "errors"

// Sentinel errors returned by Route for invalid input.
var (
	// ErrNilGraph indicates a nil *citygraph.Graph was passed to Route.
	ErrNilGraph = errors.New("router: graph is nil")

	// ErrNodeNotFound indicates source or target is not a node of the graph.
	ErrNodeNotFound = errors.New("router: node not found in graph")
)

// Result is the outcome of a route query.
//
// Found distinguishes a real path (or the trivial single-node route when
// source == target) from the valid-but-absent case: mode-restricted
// subgraphs are often disconnected and "no path" is an ordinary answer.
type Result struct {
	// Found reports whether a path exists under the requested mode.
	Found bool

	// Path is the ordered node-index sequence from source to target;
	// consecutive entries are joined by an edge carrying the mode.
	// nil when Found is false; [source] when source == target.
	Path []int

	// Cost is the total travel time of Path; 0 for the trivial route and
	// when Found is false.
	Cost float64
}

// Options configures a route query.
type Options struct {
	// Speeds is the per-mode speed table used by the weight calculator.
	Speeds SpeedTable
}

// Option is a functional option for Route.
type Option func(*Options)

// WithSpeeds overrides the default speed table for one query.
// Panics on non-positive speeds; an invalid table is a programming error,
// not a runtime condition.
func WithSpeeds(t SpeedTable) Option {
	if err := t.validate(); err != nil {
		panic(err.Error())
	}

	return func(o *Options) { o.Speeds = t }
}

// defaultOptions returns the Options Route starts from before applying
// functional overrides.
func defaultOptions() Options {
	return Options{Speeds: DefaultSpeeds()}
}
