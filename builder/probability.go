package builder

// RingDistance returns the circular distance between nodes i and j on a
// cycle of n nodes: min(|i−j|, n−|i−j|).
//
// Complexity: O(1).
func RingDistance(n, i, j int) int {
	d := i - j
	if d < 0 {
		d = -d
	}
	if 2*d > n {
		d = n - d
	}
	return d
}

// ConnectionProbability is the small-world connection model for the pair (i, j).
//
//	p = propagation·density                       (long-range shortcut)
//	p += 1 − propagation  if density·maxDistance ≥ RingDistance(n,i,j)  (local)
//
// Local pairs therefore get propagation·density + (1−propagation), which tends
// to 1 as propagation → 0; distant pairs keep only propagation·density.
//
// Complexity: O(1).
func ConnectionProbability(n int, density, propagation, maxDistance float64, i, j int) float64 {
	p := propagation * density
	if density*maxDistance >= float64(RingDistance(n, i, j)) {
		p += 1 - propagation
	}
	return p
}
