// Package builder generates peer-to-peer overlay topologies for blockchain
// network simulators.
//
// Two strategies share one output contract (*topology.Topology):
//
//   - RandomSymmetric: degree-bounded random graph built by greedy randomized
//     edge insertion per node (rejection sampling under a dynamic eligibility
//     predicate, guarded against starvation).
//   - SmallWorld: ring-lattice-biased random graph; every node pair is tried
//     against ConnectionProbability, which favors short ring hops and keeps
//     long hops rare.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:              a function that mutates config before use.
//     – config:              holds RNG/seed, attempt factor, workers, trial mode.
//   - RNG policy (rng.go):
//     – WithSeed / WithRand: explicit per-call streams, never a process-wide RNG.
//     – deriveSeed:          SplitMix64 mixing for independent per-row streams.
//   - Validation helpers (validators.go), all wrapping ErrInvalidParameters.
//   - Sentinel errors (errors.go): ErrInvalidParameters, ErrGenerationStarvation,
//     ErrDegreeBound. Cancellation via WithContext surfaces ctx.Err().
//
// Guarantees:
//
//   - Fast-fail: parameters are validated before any work; nothing is returned
//     on error.
//   - Determinism: same parameters + same seed ⇒ identical topology, including
//     the insertion order of every peer row. SmallWorld output does not depend
//     on the worker count.
//   - Panics are confined to option constructors (WithX) receiving meaningless
//     values; generators themselves return errors.
package builder
