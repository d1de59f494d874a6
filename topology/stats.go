package topology

// Stats summarizes a topology for logs and API responses.
type Stats struct {
	Nodes      int     `json:"nodes"`
	Edges      int     `json:"edges"`
	MinDegree  int     `json:"min_degree"`
	MaxDegree  int     `json:"max_degree"`
	MeanDegree float64 `json:"mean_degree"`
	Isolated   int     `json:"isolated"`
	Components int     `json:"components"`
}

// Stats computes the summary in one pass plus one BFS.
//
// Complexity: O(n + E).
func (t *Topology) Stats() Stats {
	s := Stats{
		Nodes:      t.Len(),
		Edges:      t.edges,
		MinDegree:  t.MinDegree(),
		MaxDegree:  t.MaxDegree(),
		Components: len(t.Components()),
	}
	for _, row := range t.peers {
		if len(row) == 0 {
			s.Isolated++
		}
	}
	if s.Nodes > 0 {
		s.MeanDegree = float64(2*s.Edges) / float64(s.Nodes)
	}
	return s
}
