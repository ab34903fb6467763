package citygraph

// Components finds all connected components of the graph over the derived
// adjacency (any edge connects, regardless of mode: walking is always
// permitted, so edge-connectivity and walk-reachability coincide).
// Returns one slice of node indices per component; components are ordered
// by their smallest member, and members appear in deterministic BFS
// discovery order. Isolated nodes form singleton components.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the queue.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for start := range g.nodes {
		if seen[start] {
			continue
		}
		// BFS to collect the component of start.
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, id := range g.adjacency[u] {
				v := g.edges[id].Other(u)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// LargestComponent returns the node indices of the largest connected
// component, ties broken by smallest member. Returns nil for an empty
// graph. Consumers use this to restrict route endpoints to nodes that can
// actually reach one another.
//
// Time: O(V + E).
func (g *Graph) LargestComponent() []int {
	var best []int
	for _, comp := range g.Components() {
		if len(comp) > len(best) {
			best = comp
		}
	}

	return best
}
