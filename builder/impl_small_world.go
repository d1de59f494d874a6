// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// impl_small_world.go - implementation of SmallWorld(n, density, propagation, maxDistance).
//
// Canonical model:
//   • Row i draws one uniform u_ij for every j ≠ i from its own stream
//     rowRNG(base, i) and accepts j iff u_ij < ConnectionProbability(i, j).
//   • TrialDouble: {i,j} is connected iff row i accepts j OR row j accepts i.
//     A pair failing its first trial is redrawn from the other endpoint,
//     so the effective edge probability is 1−(1−p)².
//   • TrialSingle: {i,j}, i<j, is connected iff row i accepts j (one trial).
//
// Contract:
//   • Validation first (ErrInvalidParameters).
//   • No degree target; WithMaxPeers(m) rejects results with max degree > m
//     (ErrDegreeBound). m itself must satisfy m < n−1 like any peer bound.
//   • WithContext is checked before each row; cancellation returns ctx.Err().
//   • Rows are independent, so they are evaluated by cfg.workers goroutines;
//     merge order is fixed (row asc, column asc) and the output does not
//     depend on the worker count.
//
// Complexity:
//   • Time: O(n²) probability evaluations and draws, split across workers.
//   • Space: O(n + E) arena plus O(accepted) per-row lists.

package builder

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/peertopo/topology"
)

// TrialMode selects the number of Bernoulli trials an unordered pair receives.
type TrialMode int

const (
	// TrialDouble gives one trial per endpoint row (the default).
	TrialDouble TrialMode = iota
	// TrialSingle gives each unordered pair exactly one trial.
	TrialSingle
)

// String implements fmt.Stringer.
func (m TrialMode) String() string {
	switch m {
	case TrialDouble:
		return "double"
	case TrialSingle:
		return "single"
	default:
		return fmt.Sprintf("TrialMode(%d)", int(m))
	}
}

// ParseTrialMode maps "double"/"single" (and "" → TrialDouble) to a mode.
func ParseTrialMode(s string) (TrialMode, error) {
	switch s {
	case "", "double":
		return TrialDouble, nil
	case "single":
		return TrialSingle, nil
	default:
		return 0, fmt.Errorf("unknown trial mode %q: %w", s, ErrInvalidParameters)
	}
}

// SmallWorld generates a ring-lattice-biased random topology over n nodes.
//
// Errors:
//   - ErrInvalidParameters for n ≤ 0, density or propagation outside [0,1],
//     or maxDistance ≤ 0.
//   - ErrDegreeBound when WithMaxPeers is set and exceeded.
func SmallWorld(n int, density, propagation, maxDistance float64, opts ...Option) (*topology.Topology, error) {
	// 1) Validate (fail fast, zero side effects).
	if err := validateNodes(MethodSmallWorld, n); err != nil {
		return nil, err
	}
	if err := validateUnit(MethodSmallWorld, "density", density); err != nil {
		return nil, err
	}
	if err := validateUnit(MethodSmallWorld, "propagation", propagation); err != nil {
		return nil, err
	}
	if err := validatePositive(MethodSmallWorld, "max_distance", maxDistance); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	if cfg.maxPeers != NoPeerCeiling {
		if err := validateCeiling(MethodSmallWorld, n, cfg.maxPeers); err != nil {
			return nil, err
		}
	}
	base := cfg.baseSeed()

	// 2) Evaluate rows (possibly in parallel).
	accepted := make([][]int, n)
	evalRow := func(i int) {
		rng := rowRNG(base, i)
		var row []int
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if rng.Float64() < ConnectionProbability(n, density, propagation, maxDistance, i, j) {
				row = append(row, j)
			}
		}
		accepted[i] = row
	}
	if err := runRows(cfg.ctx, n, cfg.workers, evalRow); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSmallWorld, err)
	}
	cfg.observe(MethodSmallWorld, int64(n)*int64(n-1))

	// 3) Merge in fixed order.
	t := topology.New(n)
	switch cfg.trial {
	case TrialSingle:
		for i, row := range accepted {
			for _, j := range row {
				if j > i {
					if err := t.Connect(i, j); err != nil {
						return nil, fmt.Errorf("%s: %w", MethodSmallWorld, err)
					}
				}
			}
		}
	default:
		member := sparsesets.New(n)
		for i, row := range accepted {
			member.Clear()
			for _, p := range t.Neighbors(i) {
				member.Insert(p)
			}
			for _, j := range row {
				if member.Contains(j) {
					continue
				}
				member.Insert(j)
				if err := t.Connect(i, j); err != nil {
					return nil, fmt.Errorf("%s: %w", MethodSmallWorld, err)
				}
			}
		}
	}

	// 4) Optional ceiling.
	if cfg.maxPeers != NoPeerCeiling {
		if d := t.MaxDegree(); d > cfg.maxPeers {
			return nil, fmt.Errorf("%s: max degree %d > %d: %w", MethodSmallWorld, d, cfg.maxPeers, ErrDegreeBound)
		}
	}
	return t, nil
}

// runRows calls fn(i) for every i in [0,n) using up to workers goroutines.
// Each index is processed at most once; fn must only write state owned by i.
// Workers stop picking rows once ctx is done, and runRows returns ctx.Err().
func runRows(ctx context.Context, n, workers int, fn func(i int)) error {
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}
	if workers > n {
		workers = n
	}

	var (
		next atomic.Int64
		done atomic.Int64
		wg   sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				fn(i)
				done.Add(1)
			}
		}()
	}
	wg.Wait()
	if done.Load() < int64(n) {
		return ctx.Err()
	}
	return nil
}
