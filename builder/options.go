// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// options.go - functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand. No hidden globals.

package builder

import (
	"context"
	"fmt"
	"math/rand"
)

// Option customizes a generator call by mutating its config.
type Option func(*config)

// Observer receives the number of random draws consumed by a generation.
// Implementations must be safe for concurrent use when shared between calls.
type Observer interface {
	ObserveDraws(method string, draws int64)
}

// WithSeed seeds the call's RNG deterministically.
// Same parameters and seed ⇒ identical topology.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
		c.rng = nil
	}
}

// WithRand provides an explicit RNG. RandomSymmetric draws from it directly;
// SmallWorld consumes one Int63 from it to root its per-row streams.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMaxAttemptsFactor sets the RandomSymmetric starvation guard: a node
// gives up after factor·n candidate draws. Panics if factor < 1.
func WithMaxAttemptsFactor(factor int) Option {
	if factor < 1 {
		panic(fmt.Sprintf("builder: WithMaxAttemptsFactor(%d)", factor))
	}
	return func(c *config) {
		c.attemptFactor = factor
	}
}

// WithWorkers sets the number of goroutines evaluating SmallWorld rows.
// The result does not depend on k. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithWorkers(%d)", k))
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithTrialMode selects how many Bernoulli trials a SmallWorld pair receives.
// Panics on an unknown mode.
func WithTrialMode(m TrialMode) Option {
	if m != TrialDouble && m != TrialSingle {
		panic(fmt.Sprintf("builder: WithTrialMode(%d)", int(m)))
	}
	return func(c *config) {
		c.trial = m
	}
}

// WithMaxPeers makes SmallWorld reject results whose maximum degree exceeds
// m with ErrDegreeBound. NoPeerCeiling disables the check. Panics if m < -1.
func WithMaxPeers(m int) Option {
	if m < NoPeerCeiling {
		panic(fmt.Sprintf("builder: WithMaxPeers(%d)", m))
	}
	return func(c *config) {
		c.maxPeers = m
	}
}

// WithObserver attaches a draw-count sink (e.g. Prometheus collectors).
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("builder: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = o
	}
}

// WithContext lets the caller abandon a long generation. The context is
// checked once per node (RandomSymmetric) or row (SmallWorld); on
// cancellation the generator returns ctx.Err() wrapped with its method name
// and no topology. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *config) {
		c.ctx = ctx
	}
}
