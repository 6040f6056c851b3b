package aoc

// Graph is an undirected weighted graph over comparable node keys.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// Collapse contracts every corridor node, one with exactly two
// neighbors, into a single weighted edge between its endpoints.
func (g *Graph[K]) Collapse() {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) == 2 {
				trimmed = true
				var k2, k3 K
				var d2, d3 int
				first := true
				for k, v := range e {
					if first {
						k2 = k
						d2 = v
						first = false
					} else {
						k3 = k
						d3 = v
						break
					}
				}

				delete(g.Edges, k1)
				delete(g.Nodes, k1)
				g.RemoveEdge(k2, k1)
				g.RemoveEdge(k3, k1)
				g.AddEdge(k2, k3, d2+d3)
			}
		}
		if !trimmed {
			break
		}
	}
}

// LongestPath returns the length of the longest simple path between
// start and end, and whether any path exists.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	return g.longestPathHelper(start, end, make(map[K]bool))
}

func (g Graph[K]) longestPathHelper(start, end K, visited map[K]bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	max := -1
	for k, v := range g.Edges[start] {
		if visited[k] {
			continue
		}
		got, ok := g.longestPathHelper(k, end, visited)
		got += v
		if ok && (max == -1 || got > max) {
			max = got
		}
	}
	if max != -1 {
		return max, true
	}
	return 0, false
}
