// SPDX-License-Identifier: MIT
// Package: peertopo/serial
//
// serial.go - Serialize and the SerializedTopology round trip.

package serial

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/peertopo/topology"
)

var (
	// ErrCapacityExceeded indicates a node whose degree is above maxPeers.
	// It means a generator/serializer contract violation and is never
	// expected in normal operation.
	ErrCapacityExceeded = errors.New("serial: capacity exceeded")

	// ErrShapeMismatch indicates a nil topology, a node count different from
	// the declared n, negative bounds, or malformed arrays.
	ErrShapeMismatch = errors.New("serial: shape mismatch")
)

// SerializedTopology is the fixed-capacity array form of a topology.
// Peers has NNodes rows of exactly MaxPeers entries; entries at index
// ≥ Degree[i] are zero.
type SerializedTopology struct {
	NNodes   int     `json:"n_nodes"`
	MinPeers int     `json:"min_peers"`
	MaxPeers int     `json:"max_peers"`
	Degree   []int   `json:"degree"`
	Peers    [][]int `json:"peers"`
}

// Serialize lays t out into fixed-capacity arrays.
//
// Errors:
//   - ErrShapeMismatch if t is nil, t.Len() != n, or a bound is negative.
//   - Any topology invariant violation (self-loop, asymmetry, duplicate).
//   - ErrCapacityExceeded if some degree is above maxPeers.
//
// Complexity: O(n·maxPeers + Σdeg·log deg).
func Serialize(t *topology.Topology, n, minPeers, maxPeers int) (*SerializedTopology, error) {
	if t == nil {
		return nil, fmt.Errorf("Serialize: nil topology: %w", ErrShapeMismatch)
	}
	if t.Len() != n {
		return nil, fmt.Errorf("Serialize: topology has %d nodes, declared %d: %w", t.Len(), n, ErrShapeMismatch)
	}
	if minPeers < 0 || maxPeers < 0 {
		return nil, fmt.Errorf("Serialize: bounds (%d,%d) must be ≥ 0: %w", minPeers, maxPeers, ErrShapeMismatch)
	}
	for i := 0; i < n; i++ {
		if d := t.Degree(i); d > maxPeers {
			return nil, fmt.Errorf("Serialize: node %d has degree %d > max_peers %d: %w", i, d, maxPeers, ErrCapacityExceeded)
		}
	}
	if err := t.Validate(-1); err != nil {
		return nil, fmt.Errorf("Serialize: %w", err)
	}

	s := &SerializedTopology{
		NNodes:   n,
		MinPeers: minPeers,
		MaxPeers: maxPeers,
		Degree:   make([]int, n),
		Peers:    make([][]int, n),
	}
	// One backing block keeps the rows contiguous like the C array.
	block := make([]int, n*maxPeers)
	for i := 0; i < n; i++ {
		row := block[i*maxPeers : (i+1)*maxPeers : (i+1)*maxPeers]
		copy(row, t.SortedNeighbors(i))
		s.Degree[i] = t.Degree(i)
		s.Peers[i] = row
	}
	return s, nil
}

// Row returns the meaningful prefix of node i's peer row.
func (s *SerializedTopology) Row(i int) []int {
	return s.Peers[i][:s.Degree[i]]
}

// Check verifies the array shape: len(Degree) = len(Peers) = NNodes,
// every row has MaxPeers slots, and 0 ≤ Degree[i] ≤ MaxPeers.
func (s *SerializedTopology) Check() error {
	if len(s.Degree) != s.NNodes || len(s.Peers) != s.NNodes {
		return fmt.Errorf("Check: %d degrees, %d rows, n=%d: %w", len(s.Degree), len(s.Peers), s.NNodes, ErrShapeMismatch)
	}
	for i := 0; i < s.NNodes; i++ {
		if len(s.Peers[i]) != s.MaxPeers {
			return fmt.Errorf("Check: row %d has %d slots, want %d: %w", i, len(s.Peers[i]), s.MaxPeers, ErrShapeMismatch)
		}
		if s.Degree[i] < 0 || s.Degree[i] > s.MaxPeers {
			return fmt.Errorf("Check: node %d degree %d outside [0,%d]: %w", i, s.Degree[i], s.MaxPeers, ErrCapacityExceeded)
		}
	}
	return nil
}

// Topology rebuilds the in-memory graph from the arrays, validating shape
// and graph invariants. The result has sorted rows.
func (s *SerializedTopology) Topology() (*topology.Topology, error) {
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("Topology: %w", err)
	}
	rows := make([][]int, s.NNodes)
	for i := range rows {
		rows[i] = s.Row(i)
	}
	t, err := topology.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Topology: %w", err)
	}
	return t, nil
}
