// Package: peertopo/topology
//
// bfs.go - breadth-first connectivity over the arena.
//
// A generated overlay may come out partitioned (small density, unlucky seed)
// and nothing in the serialized arrays shows it. Components and Stats make
// that visible to callers before the arrays are handed to the simulator.

package topology

// walker holds the mutable BFS state shared across component sweeps.
type walker struct {
	t       *Topology
	queue   []int
	visited []bool
}

// Components returns the connected components, each listed in BFS visit
// order from its smallest id. Components are ordered by their smallest id.
//
// Complexity: O(n + E) time, O(n) space.
func (t *Topology) Components() [][]int {
	n := t.Len()
	w := &walker{
		t:       t,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
	}

	var comps [][]int
	for start := 0; start < n; start++ {
		if w.visited[start] {
			continue
		}
		comps = append(comps, w.sweep(start))
	}
	return comps
}

// Connected reports whether every node is reachable from node 0.
// An empty topology is considered connected.
func (t *Topology) Connected() bool {
	return len(t.Components()) <= 1
}

// sweep visits everything reachable from start and returns the visit order.
func (w *walker) sweep(start int) []int {
	w.queue = w.queue[:0]
	w.visited[start] = true
	w.queue = append(w.queue, start)

	// The queue slice doubles as the visit order: head walks forward,
	// new nodes are appended at the tail.
	for head := 0; head < len(w.queue); head++ {
		for _, nbr := range w.t.peers[w.queue[head]] {
			if w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			w.queue = append(w.queue, nbr)
		}
	}
	return append([]int(nil), w.queue...)
}
