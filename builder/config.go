// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • Defaults are documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng / seed    = unset      (resolved per call from the wall clock)
//   • attemptFactor = DefaultAttemptFactor
//   • workers       = DefaultWorkers
//   • trial         = TrialDouble
//   • maxPeers      = NoPeerCeiling
//   • observer      = nil
//   • ctx           = context.Background()

package builder

import (
	"context"
	"math/rand"
	"time"
)

// config aggregates all knobs used by generators.
// It is passed by VALUE (immutable to callers).
type config struct {
	// Explicit RNG for stochastic choices. Takes precedence over seed.
	rng *rand.Rand
	// Seed used when rng is nil; seeded reports whether it was set.
	seed   int64
	seeded bool

	// RandomSymmetric: per-node draw budget is attemptFactor·n.
	attemptFactor int

	// SmallWorld knobs.
	workers  int
	trial    TrialMode
	maxPeers int

	// Optional sink for draw counts.
	observer Observer

	// Checked between nodes / rows; generation stops with ctx.Err().
	ctx context.Context
}

// newConfig constructs a config with defaults and applies all options in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		attemptFactor: DefaultAttemptFactor,
		workers:       DefaultWorkers,
		trial:         TrialDouble,
		maxPeers:      NoPeerCeiling,
		ctx:           context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// baseSeed returns the root seed of the call: the explicit seed, one Int63
// from an explicit RNG, or the wall clock for unseeded calls.
func (c config) baseSeed() int64 {
	switch {
	case c.rng != nil:
		return c.rng.Int63()
	case c.seeded:
		return c.seed
	default:
		return time.Now().UnixNano()
	}
}

// stream returns the sequential RNG used by RandomSymmetric.
// An explicit RNG is used as-is so callers can chain several generations on
// one stream; otherwise a fresh source is created per call.
func (c config) stream() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rand.New(rand.NewSource(c.baseSeed()))
}

// observe forwards a draw count to the observer, if any.
func (c config) observe(method string, draws int64) {
	if c.observer != nil {
		c.observer.ObserveDraws(method, draws)
	}
}
