// SPDX-License-Identifier: MIT
// Package: hypertransit/engine
//
// config.go — generation configuration, bounds, and validation.

package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every configuration
// validation failure; branch with errors.Is and read the wrapped context
// for the offending field.
var ErrInvalidConfig = errors.New("engine: invalid configuration")

// Recognized configuration bounds.
const (
	MinIntersections = 50
	MaxIntersections = 500

	MinDistanceThreshold = 1.0
	MaxDistanceThreshold = 5.0

	MinTransportLines = 1
	MaxTransportLines = 10
)

// Defaults mirror the reference front-end's initial slider positions.
const (
	DefaultIntersections     = 200
	DefaultDistanceThreshold = 3.0
	DefaultTransportLines    = 3
	DefaultSeed              = 42
)

// Config holds the recognized generation options.
type Config struct {
	// NumIntersections is the point/node count, in [50, 500].
	NumIntersections int

	// DistanceThreshold is the maximum hyperbolic distance the road
	// network builder connects, in [1.0, 5.0].
	DistanceThreshold float64

	// RushHour enables the traffic simulator's congestion pass.
	RushHour bool

	// NumTransportLines is the number of transit lines threaded by the
	// overlay builder, in [1, 10].
	NumTransportLines int

	// Seed is the deterministic RNG seed for the sampler, the transit
	// overlay, and the traffic simulator (each via its own substream).
	Seed int64
}

// DefaultConfig returns the standard configuration: 200 intersections,
// threshold 3.0, rush hour on, 3 transit lines, seed 42.
func DefaultConfig() Config {
	return Config{
		NumIntersections:  DefaultIntersections,
		DistanceThreshold: DefaultDistanceThreshold,
		RushHour:          true,
		NumTransportLines: DefaultTransportLines,
		Seed:              DefaultSeed,
	}
}

// Validate checks every knob against its documented range and returns the
// first violation wrapped over ErrInvalidConfig. Field order: node count,
// threshold, line count. Any seed is valid.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.NumIntersections < MinIntersections || c.NumIntersections > MaxIntersections {
		return fmt.Errorf("%w: num_intersections must be in [%d,%d], got %d",
			ErrInvalidConfig, MinIntersections, MaxIntersections, c.NumIntersections)
	}
	if c.DistanceThreshold < MinDistanceThreshold || c.DistanceThreshold > MaxDistanceThreshold {
		return fmt.Errorf("%w: distance_threshold must be in [%.1f,%.1f], got %g",
			ErrInvalidConfig, MinDistanceThreshold, MaxDistanceThreshold, c.DistanceThreshold)
	}
	if c.NumTransportLines < MinTransportLines || c.NumTransportLines > MaxTransportLines {
		return fmt.Errorf("%w: num_transport_lines must be in [%d,%d], got %d",
			ErrInvalidConfig, MinTransportLines, MaxTransportLines, c.NumTransportLines)
	}

	return nil
}
