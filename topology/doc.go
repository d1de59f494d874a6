// Package topology defines the in-memory peer graph produced by the generators
// in package builder and consumed by package serial.
//
// A Topology is an arena of per-node peer slices indexed by a dense integer id
// in [0, n). There is no pointer graph: an edge {i,j} is stored once in row i
// and once in row j, and Connect is the only mutation, updating both rows in
// a single call.
//
// Invariants (checked by Validate):
//
//   - No self-loops:     i ∉ N(i).
//   - Symmetry:          j ∈ N(i) ⇔ i ∈ N(j).
//   - No duplicate edges: N(i) is a set, not a multiset.
//   - Degree ceiling:    |N(i)| ≤ maxPeers (when a ceiling is supplied).
//
// Determinism:
//
//   - Neighbors(i) returns peers in insertion order; SortedNeighbors(i) and
//     Edges() are sorted ascending and are the only orders used by serializers.
//
// Concurrency:
//
//   - A Topology is not safe for concurrent mutation. Generators own it until
//     they return; afterwards it is treated as read-only and may be shared by
//     concurrent readers.
package topology
