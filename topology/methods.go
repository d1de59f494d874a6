// SPDX-License-Identifier: MIT
// Package: peertopo/topology
//
// methods.go - edge insertion, neighborhood queries and invariant checks.
//
// Determinism:
//   - Neighbors(i) preserves insertion order (generation order).
//   - SortedNeighbors(i) and Edges() are ascending.

package topology

import (
	"fmt"
	"slices"
)

// Connect inserts the undirected edge {i,j}, updating both rows.
//
// Errors:
//   - ErrNodeOutOfRange if either id is outside [0, n).
//   - ErrSelfLoop if i == j.
//   - ErrDuplicateEdge if the edge already exists.
//
// Complexity: O(min(deg(i), deg(j))) for the duplicate probe.
func (t *Topology) Connect(i, j int) error {
	if !t.inRange(i) || !t.inRange(j) {
		return fmt.Errorf("Connect(%d,%d): n=%d: %w", i, j, len(t.peers), ErrNodeOutOfRange)
	}
	if i == j {
		return fmt.Errorf("Connect(%d,%d): %w", i, j, ErrSelfLoop)
	}
	if t.HasEdge(i, j) {
		return fmt.Errorf("Connect(%d,%d): %w", i, j, ErrDuplicateEdge)
	}
	t.link(i, j)
	return nil
}

// link appends both directions without checks.
func (t *Topology) link(i, j int) {
	t.peers[i] = append(t.peers[i], j)
	t.peers[j] = append(t.peers[j], i)
	t.edges++
}

// HasEdge reports whether {i,j} is present. Out-of-range ids yield false.
//
// Complexity: O(min(deg(i), deg(j))).
func (t *Topology) HasEdge(i, j int) bool {
	if !t.inRange(i) || !t.inRange(j) {
		return false
	}
	a, b := t.peers[i], j
	if len(t.peers[j]) < len(a) {
		a, b = t.peers[j], i
	}
	return slices.Contains(a, b)
}

// Neighbors returns a copy of the peers of i in insertion order,
// or nil for an out-of-range id.
func (t *Topology) Neighbors(i int) []int {
	if !t.inRange(i) {
		return nil
	}
	return slices.Clone(t.peers[i])
}

// SortedNeighbors returns a copy of the peers of i in ascending order.
func (t *Topology) SortedNeighbors(i int) []int {
	out := t.Neighbors(i)
	slices.Sort(out)
	return out
}

// Edges returns every unordered edge once, with U < V, sorted by (U,V).
//
// Complexity: O(E log E).
func (t *Topology) Edges() []Edge {
	out := make([]Edge, 0, t.edges)
	for u, row := range t.peers {
		for _, v := range row {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})
	return out
}

// Equal reports whether both topologies have the same node count and the
// same edge set, ignoring the order of peers inside a row.
func (t *Topology) Equal(other *Topology) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Len() != other.Len() || t.edges != other.edges {
		return false
	}
	return slices.Equal(t.Edges(), other.Edges())
}

// Validate checks every structural invariant. A negative maxPeers disables
// the degree ceiling (small-world output is not degree-bounded).
//
// The first violation found in ascending node order is returned, wrapped
// around one of ErrNodeOutOfRange, ErrSelfLoop, ErrDuplicateEdge,
// ErrAsymmetric or ErrDegreeExceeded.
//
// Complexity: O(Σdeg·log deg) for the sort plus O(Σdeg²) worst case for
// the reverse-membership scan.
func (t *Topology) Validate(maxPeers int) error {
	for i, row := range t.peers {
		if maxPeers >= 0 && len(row) > maxPeers {
			return fmt.Errorf("Validate: node %d has degree %d > %d: %w", i, len(row), maxPeers, ErrDegreeExceeded)
		}
		sorted := slices.Clone(row)
		slices.Sort(sorted)
		for k, j := range sorted {
			if !t.inRange(j) {
				return fmt.Errorf("Validate: node %d lists peer %d: %w", i, j, ErrNodeOutOfRange)
			}
			if j == i {
				return fmt.Errorf("Validate: node %d: %w", i, ErrSelfLoop)
			}
			if k > 0 && sorted[k-1] == j {
				return fmt.Errorf("Validate: node %d lists peer %d twice: %w", i, j, ErrDuplicateEdge)
			}
			if !slices.Contains(t.peers[j], i) {
				return fmt.Errorf("Validate: %d lists %d but not vice versa: %w", i, j, ErrAsymmetric)
			}
		}
	}
	return nil
}
