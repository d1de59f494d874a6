// Package serial turns a generated topology into the fixed-capacity layout
// read by the simulator build: two parallel arrays indexed by node id,
//
//	degree[n]            number of peers of each node
//	peers[n][maxPeers]   peer ids; only the first degree[i] slots are meaningful
//
// plus the bound constants n, minPeers and maxPeers the consumer compiles
// against.
//
// Serialize re-checks the degree ceiling independently of the generator that
// produced the topology and sorts every peer row ascending, so the emitted
// arrays are diff-stable across runs with the same seed.
//
// WriteHeader and WriteSource emit the C declarations (Topology.h/Topology.c);
// WriteFiles writes both into a directory. Placing them in the simulator
// source tree is the caller's job.
package serial
