// SPDX-License-Identifier: MIT
// Package: hypertransit/citygraph
//
// mode.go — the closed transport-mode enumeration and its capability bitset.

package citygraph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode indicates a mode outside the closed {walk, car, public} set.
var ErrUnknownMode = errors.New("citygraph: unknown transport mode")

// Mode is a closed tagged enumeration of the transport modes a traveller
// may use. The zero value is Walk.
type Mode uint8

const (
	// Walk is pedestrian travel; every edge supports it unconditionally.
	Walk Mode = iota

	// Car is private driving; granted per edge by the network builder and
	// the only mode affected by congestion multipliers.
	Car

	// Public is public transit; granted exclusively by the transit overlay.
	Public

	// NumModes is the cardinality of the enumeration, for per-mode tables.
	NumModes = int(Public) + 1
)

// modeNames maps Mode constants to their canonical lowercase names.
var modeNames = [NumModes]string{"walk", "car", "public"}

// Valid reports whether m is a member of the closed enumeration.
func (m Mode) Valid() bool { return int(m) < NumModes }

// String returns the canonical lowercase name, or "mode(<n>)" for values
// outside the enumeration.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}

	return modeNames[m]
}

// ParseMode resolves a canonical mode name ("walk", "car", "public"),
// case-insensitively, into its Mode value.
// Returns ErrUnknownMode (wrapped with the offending name) otherwise.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, known := range modeNames {
		if name == known {
			return Mode(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ModeSet is a small bitset of Mode values: the capability set of an edge.
// The zero value is the empty set.
type ModeSet uint8

// NewModeSet builds a set from the given modes. Invalid modes are ignored;
// validation belongs to the call sites that accept external input.
func NewModeSet(modes ...Mode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s = s.With(m)
	}

	return s
}

// Has reports whether the set contains m.
func (s ModeSet) Has(m Mode) bool {
	if !m.Valid() {
		return false
	}

	return s&(1<<m) != 0
}

// With returns the set extended by m. Adding a present mode is a no-op.
func (s ModeSet) With(m Mode) ModeSet {
	if !m.Valid() {
		return s
	}

	return s | 1<<m
}

// String renders the set as a stable comma-joined list, e.g. "walk,car".
func (s ModeSet) String() string {
	parts := make([]string, 0, NumModes)
	for i := 0; i < NumModes; i++ {
		if s.Has(Mode(i)) {
			parts = append(parts, modeNames[i])
		}
	}

	return strings.Join(parts, ",")
}
