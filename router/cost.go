// SPDX-License-Identifier: MIT
// Package: hypertransit/router
//
// cost.go — the per-mode travel-cost model (speed table + weight calculator).

package router

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hypertransit/citygraph"
)

// Sentinel errors of the cost model.
var (
	// ErrModeNotAllowed indicates a cost query for a mode absent from the
	// edge's capability set. Route filters such edges out before costing,
	// so seeing this error from Route would indicate a programming bug.
	ErrModeNotAllowed = errors.New("router: mode not allowed on edge")

	// ErrBadSpeed indicates a non-positive speed in a caller-supplied table.
	ErrBadSpeed = errors.New("router: speed must be positive")
)

// Default travel speeds per unit of hyperbolic distance. Public transit is
// fastest to represent vehicle right-of-way; the exact constants are
// tunable via WithSpeeds, the ordering walk < car < public is the contract.
const (
	DefaultWalkSpeed   = 1.0
	DefaultCarSpeed    = 8.0
	DefaultPublicSpeed = 12.0
)

// SpeedTable maps each mode of the closed enumeration to a positive travel
// speed. Index by citygraph.Mode.
type SpeedTable [citygraph.NumModes]float64

// DefaultSpeeds returns the standard speed table.
func DefaultSpeeds() SpeedTable {
	return SpeedTable{
		citygraph.Walk:   DefaultWalkSpeed,
		citygraph.Car:    DefaultCarSpeed,
		citygraph.Public: DefaultPublicSpeed,
	}
}

// validate rejects tables containing non-positive speeds.
func (t SpeedTable) validate() error {
	for m, speed := range t {
		if speed <= 0 {
			return fmt.Errorf("%w: %s=%g", ErrBadSpeed, citygraph.Mode(m), speed)
		}
	}

	return nil
}

// Cost returns the travel time for traversing e under mode m with the
// default speed table: BaseDistance divided by the mode's speed, inflated
// by the congestion multiplier for car travel only (walking and transit
// timing are congestion-independent in this model).
//
// Fails with citygraph.ErrUnknownMode for modes outside the enumeration
// and ErrModeNotAllowed when e does not carry m.
//
// Complexity: O(1).
func Cost(e citygraph.Edge, m citygraph.Mode) (float64, error) {
	return costWith(e, m, DefaultSpeeds())
}

// costWith is Cost against an explicit speed table; the router's hot loop
// uses it after validating the table once per query.
func costWith(e citygraph.Edge, m citygraph.Mode, speeds SpeedTable) (float64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %v", citygraph.ErrUnknownMode, m)
	}
	if !e.Modes.Has(m) {
		return 0, fmt.Errorf("%w: edge %d lacks %s", ErrModeNotAllowed, e.ID, m)
	}

	cost := e.BaseDistance / speeds[m]
	if m == citygraph.Car {
		cost *= e.Congestion
	}

	return cost, nil
}
