// SPDX-License-Identifier: MIT
// Package: peertopo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Generators never retry internally; retrying with a new seed or new
//     bounds is the caller's decision.

package builder

import "errors"

// ErrInvalidParameters indicates a parameter outside its documented domain
// (n, peer bounds, density, propagation, distance). Reported before any
// generation work; not retryable with the same inputs.
var ErrInvalidParameters = errors.New("builder: invalid parameters")

// ErrGenerationStarvation indicates that RandomSymmetric exhausted its
// per-node candidate budget before reaching the node's target degree.
// Recoverable by reconfiguration: a smaller degree bound, a larger network,
// a larger attempt factor or another seed.
var ErrGenerationStarvation = errors.New("builder: generation starved")

// ErrDegreeBound indicates a SmallWorld result whose maximum degree is above
// the ceiling requested with WithMaxPeers.
var ErrDegreeBound = errors.New("builder: degree bound exceeded")
