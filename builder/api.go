// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// api.go - strategy-agnostic entry point.
//
// Design contract:
//   - One orchestrator: Generate(p, opts...). Callers holding parameters
//     from a CLI or an HTTP query pick the strategy by name.
//   - Strategy implementations live in impl_*.go; this file only dispatches.
//   - Determinism: same Params + same seed option ⇒ identical topology.

package builder

import (
	"fmt"

	"github.com/katalvlaran/peertopo/topology"
)

// Strategy names a generation strategy.
type Strategy string

const (
	// StrategyRandomSymmetric selects RandomSymmetric.
	StrategyRandomSymmetric Strategy = "symmetric"
	// StrategySmallWorld selects SmallWorld.
	StrategySmallWorld Strategy = "smallworld"
)

// Params carries the union of all strategy parameters. Fields that do not
// apply to the selected strategy are ignored.
type Params struct {
	Strategy Strategy

	Nodes int

	// RandomSymmetric bounds. For SmallWorld they are optional bound
	// constants for serialization; MaxPeers > 0 also acts as a ceiling.
	MinPeers int
	MaxPeers int

	// SmallWorld model.
	Density     float64
	Propagation float64
	MaxDistance float64
	Trial       TrialMode
}

// Generate dispatches p to the selected strategy.
//
// Errors:
//   - ErrInvalidParameters for an unknown strategy, for small-world bounds
//     with min > max or max ≥ n−1, plus every error of the selected generator.
func Generate(p Params, opts ...Option) (*topology.Topology, error) {
	switch p.Strategy {
	case StrategyRandomSymmetric:
		return RandomSymmetric(p.Nodes, p.MinPeers, p.MaxPeers, opts...)
	case StrategySmallWorld:
		if p.MinPeers > 0 && p.MaxPeers > 0 && p.MinPeers > p.MaxPeers {
			return nil, fmt.Errorf("Generate: min_peers=%d > max_peers=%d: %w", p.MinPeers, p.MaxPeers, ErrInvalidParameters)
		}
		swOpts := append([]Option{WithTrialMode(p.Trial)}, opts...)
		if p.MaxPeers > 0 {
			swOpts = append(swOpts, WithMaxPeers(p.MaxPeers))
		}
		return SmallWorld(p.Nodes, p.Density, p.Propagation, p.MaxDistance, swOpts...)
	default:
		return nil, fmt.Errorf("Generate: unknown strategy %q: %w", p.Strategy, ErrInvalidParameters)
	}
}

// Bounds returns the (min, max) peer constants to serialize t with.
// Explicit positive bounds win; otherwise the observed degree range is used,
// with max lifted to at least 1 so the peer array keeps a usable width.
func (p Params) Bounds(t *topology.Topology) (minPeers, maxPeers int) {
	minPeers, maxPeers = p.MinPeers, p.MaxPeers
	if minPeers <= 0 {
		minPeers = t.MinDegree()
	}
	if maxPeers <= 0 {
		maxPeers = t.MaxDegree()
	}
	if maxPeers < 1 {
		maxPeers = 1
	}
	return minPeers, maxPeers
}
