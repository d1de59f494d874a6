// SPDX-License-Identifier: MIT
// Package: peertopo/topology
//
// types.go - Topology arena, Edge and sentinel errors.

package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology operations and invariant checks.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, n).
	ErrNodeOutOfRange = errors.New("topology: node id out of range")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("topology: self-loop not allowed")

	// ErrDuplicateEdge indicates a second insertion of an existing edge,
	// or a repeated peer inside one row.
	ErrDuplicateEdge = errors.New("topology: duplicate edge")

	// ErrAsymmetric indicates j ∈ N(i) while i ∉ N(j).
	ErrAsymmetric = errors.New("topology: asymmetric adjacency")

	// ErrDegreeExceeded indicates a node whose degree is above the ceiling.
	ErrDegreeExceeded = errors.New("topology: degree exceeds ceiling")
)

// Edge is an unordered peer link {U,V}, normalized so that U < V.
type Edge struct {
	U, V int
}

// Topology maps every node id in [0, n) to its set of peers.
//
// The zero value is an empty topology with no nodes; use New to size it.
type Topology struct {
	peers [][]int
	edges int
}

// New returns a topology of n isolated nodes. A negative n is treated as 0.
//
// Complexity: O(n) time and space.
func New(n int) *Topology {
	if n < 0 {
		n = 0
	}
	return &Topology{peers: make([][]int, n)}
}

// FromRows builds a topology from raw peer rows without inserting mirrors.
// It is meant for decoding foreign data; the result is validated so that a
// malformed row set never escapes as a Topology.
//
// Complexity: O(n + Σdeg) time.
func FromRows(rows [][]int) (*Topology, error) {
	t := &Topology{peers: make([][]int, len(rows))}
	total := 0
	for i, row := range rows {
		t.peers[i] = append([]int(nil), row...)
		total += len(row)
	}
	if total%2 != 0 {
		return nil, fmt.Errorf("FromRows: odd endpoint count %d: %w", total, ErrAsymmetric)
	}
	t.edges = total / 2
	if err := t.Validate(-1); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	return t, nil
}

// Len returns the number of nodes.
func (t *Topology) Len() int { return len(t.peers) }

// EdgeCount returns the number of unordered edges.
func (t *Topology) EdgeCount() int { return t.edges }

// Degree returns the number of peers of node i, or 0 for an out-of-range id.
func (t *Topology) Degree(i int) int {
	if !t.inRange(i) {
		return 0
	}
	return len(t.peers[i])
}

// Degrees returns a fresh slice holding the degree of every node.
func (t *Topology) Degrees() []int {
	out := make([]int, len(t.peers))
	for i, row := range t.peers {
		out[i] = len(row)
	}
	return out
}

// MaxDegree returns the largest degree, or 0 for an empty topology.
func (t *Topology) MaxDegree() int {
	maxDeg := 0
	for _, row := range t.peers {
		if len(row) > maxDeg {
			maxDeg = len(row)
		}
	}
	return maxDeg
}

// MinDegree returns the smallest degree, or 0 for an empty topology.
func (t *Topology) MinDegree() int {
	if len(t.peers) == 0 {
		return 0
	}
	minDeg := len(t.peers[0])
	for _, row := range t.peers[1:] {
		if len(row) < minDeg {
			minDeg = len(row)
		}
	}
	return minDeg
}

func (t *Topology) inRange(i int) bool {
	return i >= 0 && i < len(t.peers)
}
