// File: methods_clone.go
// Role: Deep copy. Clones share nothing with the original, so separate
//       goroutines may own separate copies safely.
package core

// Clone returns a deep copy of g: labels, adjacency, and counters are all
// independent of the original.
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	labels := make([]int, len(g.labels))
	copy(labels, g.labels)

	adj := make([]map[int]struct{}, len(g.adj))
	for v, set := range g.adj {
		adj[v] = make(map[int]struct{}, len(set))
		for u := range set {
			adj[v][u] = struct{}{}
		}
	}

	return &Graph{labels: labels, adj: adj, l: g.l, m: g.m}
}
