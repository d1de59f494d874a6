// Package peertopo builds the static peer topologies a discrete-event
// block-propagation simulator runs on, and hands them to the simulator as
// fixed-size C arrays.
//
// 🚀 What is in here?
//
//	topology/ - undirected simple graph with per-node peer lists, validation, stats
//	builder/  - generators: RandomSymmetric (bounded degree), SmallWorld (ring distance)
//	serial/   - fixed-capacity array form plus Topology.h / Topology.c emission
//	metrics/  - Prometheus collectors for generation runs
//	server/   - HTTP front end (chi) serving topologies and /metrics
//	cmd/topogen - CLI writing the C files or running the server
//
// Quick start:
//
//	t, err := builder.RandomSymmetric(1000, 4, 12, builder.WithSeed(42))
//	if err != nil { ... }
//	s, err := serial.Serialize(t, 1000, 4, 12)
//	if err != nil { ... }
//	_, _, err = serial.WriteFiles("out", s)
//
// or from the shell:
//
//	topogen symmetric --nodes 1000 --min-peers 4 --max-peers 12 --seed 42 --out out
//
// Same parameters and same seed always give the same topology, bit for bit,
// including the order of every peer list.
package peertopo
