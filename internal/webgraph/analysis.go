package webgraph

// Distances runs a standard level-order BFS from source, returning the
// hop-count distance to every vertex. Vertices unreached from source get
// the sentinel V+1.
func Distances(source Vertex, g *Webgraph) []int {
	v := g.Vertices()
	distances := make([]int, v)
	sentinel := v + 1
	for i := range distances {
		distances[i] = sentinel
	}
	distances[source] = 0

	queue := []Vertex{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		links, _ := g.GetLinks(current)
		for _, next := range links {
			if distances[current]+1 < distances[next] {
				distances[next] = distances[current] + 1
				queue = append(queue, next)
			}
		}
	}
	return distances
}

const (
	pageRankDamping    = 0.85
	pageRankIterations = 30
)

// PageRanks computes the PageRank of every vertex in g: 30 iterations,
// damping 0.85, initial rank 1/V. Dangling vertices (no outgoing edges)
// contribute nothing to the next iteration, an accepted loss of mass.
func PageRanks(g *Webgraph) []float64 {
	v := g.Vertices()
	if v == 0 {
		return nil
	}

	ranks := make([]float64, v)
	initial := 1.0 / float64(v)
	for i := range ranks {
		ranks[i] = initial
	}

	base := (1 - pageRankDamping) / float64(v)
	for iter := 0; iter < pageRankIterations; iter++ {
		next := make([]float64, v)
		for i := range next {
			next[i] = base
		}
		for source := Vertex(0); int(source) < v; source++ {
			links, _ := g.GetLinks(source)
			if len(links) == 0 {
				continue
			}
			share := pageRankDamping * ranks[source] / float64(len(links))
			for _, dest := range links {
				next[dest] += share
			}
		}
		ranks = next
	}
	return ranks
}
