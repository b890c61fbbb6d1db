// Package webgraph models the link structure of a crawled domain and
// computes per-page signals over it (BFS distance, PageRank). It is
// ported directly from the original implementation's Webgraph class.
package webgraph

import "fmt"

// Vertex is a dense zero-based vertex id.
type Vertex int

// Webgraph is a directed multigraph over URLs: each vertex is a page,
// each edge a discovered link. Duplicate edges are retained, matching the
// original's append-only adjacency list.
type Webgraph struct {
	urlToVertex map[string]Vertex
	vertexToURL map[Vertex]string
	adjacency   [][]Vertex
	edgesCount  int
}

// New creates an empty Webgraph.
func New() *Webgraph {
	return &Webgraph{
		urlToVertex: make(map[string]Vertex),
		vertexToURL: make(map[Vertex]string),
	}
}

// Vertices returns the number of vertices in the graph.
func (g *Webgraph) Vertices() int {
	return len(g.adjacency)
}

// Edges returns the total number of edges added, counting duplicates.
func (g *Webgraph) Edges() int {
	return g.edgesCount
}

// ContainsURL reports whether url already has a vertex.
func (g *Webgraph) ContainsURL(url string) bool {
	_, ok := g.urlToVertex[url]
	return ok
}

// AddURL returns the vertex for url, assigning the next dense id the first
// time url is seen.
func (g *Webgraph) AddURL(url string) Vertex {
	if v, ok := g.urlToVertex[url]; ok {
		return v
	}
	v := Vertex(len(g.adjacency))
	g.urlToVertex[url] = v
	g.vertexToURL[v] = url
	g.adjacency = append(g.adjacency, nil)
	return v
}

// URLOf returns the URL backing vertex v.
func (g *Webgraph) URLOf(v Vertex) (string, error) {
	if int(v) >= g.Vertices() || v < 0 {
		return "", fmt.Errorf("webgraph: no such vertex: %d", v)
	}
	return g.vertexToURL[v], nil
}

// VertexOf returns the vertex backing url.
func (g *Webgraph) VertexOf(url string) (Vertex, error) {
	v, ok := g.urlToVertex[url]
	if !ok {
		return 0, fmt.Errorf("webgraph: no such url: %s", url)
	}
	return v, nil
}

// AddLink appends an edge source→destination. Duplicate edges between the
// same pair are retained.
func (g *Webgraph) AddLink(source, destination Vertex) error {
	if int(source) >= g.Vertices() || source < 0 {
		return fmt.Errorf("webgraph: no such vertex, source: %d", source)
	}
	if int(destination) >= g.Vertices() || destination < 0 {
		return fmt.Errorf("webgraph: no such vertex, destination: %d", destination)
	}
	g.adjacency[source] = append(g.adjacency[source], destination)
	g.edgesCount++
	return nil
}

// GetLinks returns the outgoing edges of v.
func (g *Webgraph) GetLinks(v Vertex) ([]Vertex, error) {
	if int(v) >= g.Vertices() || v < 0 {
		return nil, fmt.Errorf("webgraph: no such vertex: %d", v)
	}
	return g.adjacency[v], nil
}
