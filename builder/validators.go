// Package builder provides validation helpers enforcing generator parameter
// contracts. Each returns an error wrapping ErrInvalidParameters with the
// method prefix, or nil.
package builder

import "fmt"

// validateNodes ensures n ≥ MinNodes.
//
// Complexity: O(1).
func validateNodes(method string, n int) error {
	if n < MinNodes {
		return fmt.Errorf("%s: n=%d must be > 0: %w", method, n, ErrInvalidParameters)
	}
	return nil
}

// validatePeerBounds enforces, in order:
// min ≥ 1; max ≥ min; max < n−1; 10·min ≤ 9·max.
// The last check is non-strict, so min = 0.9·max exactly is accepted.
//
// Complexity: O(1).
func validatePeerBounds(method string, n, minPeers, maxPeers int) error {
	if minPeers < MinPeers {
		return fmt.Errorf("%s: min_peers=%d must be ≥ %d: %w", method, minPeers, MinPeers, ErrInvalidParameters)
	}
	if maxPeers < minPeers {
		return fmt.Errorf("%s: max_peers=%d < min_peers=%d: %w", method, maxPeers, minPeers, ErrInvalidParameters)
	}
	if maxPeers >= n-1 {
		return fmt.Errorf("%s: max_peers=%d must be < n-1=%d: %w", method, maxPeers, n-1, ErrInvalidParameters)
	}
	if TargetRatioDen*minPeers > TargetRatioNum*maxPeers {
		return fmt.Errorf("%s: min_peers=%d exceeds 90%% of max_peers=%d: %w", method, minPeers, maxPeers, ErrInvalidParameters)
	}
	return nil
}

// validateCeiling enforces 0 ≤ max < n−1 for an optional degree ceiling.
//
// Complexity: O(1).
func validateCeiling(method string, n, maxPeers int) error {
	if maxPeers < 0 || maxPeers >= n-1 {
		return fmt.Errorf("%s: max_peers=%d must be in [0, n-1=%d): %w", method, maxPeers, n-1, ErrInvalidParameters)
	}
	return nil
}

// validateUnit ensures v ∈ [MinProbability, MaxProbability]; NaN is rejected.
//
// Complexity: O(1).
func validateUnit(method, name string, v float64) error {
	if !(v >= MinProbability && v <= MaxProbability) {
		return fmt.Errorf("%s: %s=%g not in [%.1f,%.1f]: %w", method, name, v, MinProbability, MaxProbability, ErrInvalidParameters)
	}
	return nil
}

// validatePositive ensures v > 0; NaN is rejected.
//
// Complexity: O(1).
func validatePositive(method, name string, v float64) error {
	if !(v > 0) {
		return fmt.Errorf("%s: %s=%g must be > 0: %w", method, name, v, ErrInvalidParameters)
	}
	return nil
}
