// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// impl_random_symmetric.go - implementation of RandomSymmetric(n, min, max).
//
// Canonical model:
//   • For each node i in ascending order, draw a target T ~ U[min, ⌊0.9·max⌋].
//   • While deg(i) < T, draw a candidate c ~ U[0, n) and accept it iff
//     c ≠ i, c ∉ N(i) and deg(c) < max. Acceptance inserts {i,c} in both rows.
//   • Edges added into i by earlier nodes count toward T; edges added into i by
//     later nodes may push deg(i) above T. Only max is a hard ceiling.
//
// Contract:
//   • Parameters validated first (ErrInvalidParameters), see validatePeerBounds.
//   • Starvation guard: at most attemptFactor·n draws per node, else
//     ErrGenerationStarvation (no partial topology is returned).
//   • Deterministic for a fixed seed: fixed node order, fixed draw order.
//   • WithContext is checked before each node; cancellation returns ctx.Err().
//
// Complexity:
//   • Expected O(n·max) draws when max ≪ n; worst case attemptFactor·n² draws.
//   • Space: O(n + E) for the arena plus an O(n) membership set.

package builder

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/peertopo/topology"
)

// RandomSymmetric generates a degree-bounded symmetric random topology over
// n nodes where every node ends with at least its drawn target (≥ minPeers)
// peers and no node exceeds maxPeers.
//
// Errors:
//   - ErrInvalidParameters on any bound violation (see validatePeerBounds).
//   - ErrGenerationStarvation when a node cannot find enough eligible peers.
func RandomSymmetric(n, minPeers, maxPeers int, opts ...Option) (*topology.Topology, error) {
	// 1) Validate (fail fast, zero side effects).
	if err := validateNodes(MethodRandomSymmetric, n); err != nil {
		return nil, err
	}
	if err := validatePeerBounds(MethodRandomSymmetric, n, minPeers, maxPeers); err != nil {
		return nil, err
	}

	// 2) Resolve the call's RNG stream and guard budget.
	cfg := newConfig(opts...)
	rng := cfg.stream()
	budget := int64(cfg.attemptFactor) * int64(n)
	upper := maxPeers * TargetRatioNum / TargetRatioDen // ⌊0.9·max⌋, ≥ min by validation

	t := topology.New(n)
	member := sparsesets.New(n) // N(i) of the node being filled
	var draws int64

	// 3) Fill nodes in ascending id order.
	for i := 0; i < n; i++ {
		if err := cfg.ctx.Err(); err != nil {
			cfg.observe(MethodRandomSymmetric, draws)
			return nil, fmt.Errorf("%s: stopped at node %d: %w", MethodRandomSymmetric, i, err)
		}
		member.Clear()
		for _, p := range t.Neighbors(i) {
			member.Insert(p)
		}

		target := minPeers + rng.Intn(upper-minPeers+1)

		var attempts int64
		for t.Degree(i) < target {
			if attempts == budget {
				cfg.observe(MethodRandomSymmetric, draws)
				return nil, fmt.Errorf("%s: node %d reached %d of %d peers after %d draws: %w",
					MethodRandomSymmetric, i, t.Degree(i), target, attempts, ErrGenerationStarvation)
			}
			attempts++
			draws++

			c := rng.Intn(n)
			if c == i || member.Contains(c) || t.Degree(c) >= maxPeers {
				continue
			}
			member.Insert(c)
			if err := t.Connect(i, c); err != nil {
				// Unreachable while member mirrors N(i); kept as a contract check.
				return nil, fmt.Errorf("%s: %w", MethodRandomSymmetric, err)
			}
		}
	}

	cfg.observe(MethodRandomSymmetric, draws)
	return t, nil
}
