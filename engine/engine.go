// SPDX-License-Identifier: MIT
// Package: hypertransit/engine
//
// engine.go — the one-shot generation pipeline.

package engine

import (
	"fmt"

	"github.com/katalvlaran/hypertransit/citygraph"
	"github.com/katalvlaran/hypertransit/geometry"
	"github.com/katalvlaran/hypertransit/netbuild"
	"github.com/katalvlaran/hypertransit/traffic"
	"github.com/katalvlaran/hypertransit/transit"
)

// Generate runs the full pipeline for cfg and returns the finished graph
// together with the sampled points (index-aligned with graph nodes, kept
// separately for renderers that only need positions).
//
// Stage order: validate → sample → build roads (modes assigned inline) →
// thread transit lines → apply traffic. The first stage error aborts the
// run; no partial graph is exposed.
//
// Deterministic: a fixed (cfg.Seed, cfg) pair reproduces byte-identical
// points, edge arenas, and congestion multipliers.
//
// Complexity: dominated by road construction, O(n²) worst case for n
// intersections.
func Generate(cfg Config) (*citygraph.Graph, []geometry.Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	points, err := geometry.SamplePoints(
		cfg.NumIntersections,
		geometry.DefaultDiskRadius,
		stageRNG(cfg.Seed, streamSampler),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("engine: sampling: %w", err)
	}

	g, err := netbuild.Build(points, cfg.DistanceThreshold)
	if err != nil {
		return nil, nil, fmt.Errorf("engine: road network: %w", err)
	}

	if err = transit.Overlay(g, cfg.NumTransportLines, stageRNG(cfg.Seed, streamTransit)); err != nil {
		return nil, nil, fmt.Errorf("engine: transit overlay: %w", err)
	}

	if err = traffic.Apply(g, cfg.RushHour, stageRNG(cfg.Seed, streamTraffic)); err != nil {
		return nil, nil, fmt.Errorf("engine: traffic: %w", err)
	}

	return g, points, nil
}
