package webgraph

import "testing"

func buildChain(t *testing.T) (*Webgraph, []Vertex) {
	t.Helper()
	g := New()
	a := g.AddURL("a")
	b := g.AddURL("b")
	c := g.AddURL("c")
	d := g.AddURL("d")
	if err := g.AddLink(a, b); err != nil {
		t.Fatal(err)
	}
	if err := g.AddLink(b, c); err != nil {
		t.Fatal(err)
	}
	return g, []Vertex{a, b, c, d}
}

func TestDistancesBFS(t *testing.T) {
	g, v := buildChain(t)
	distances := Distances(v[0], g)
	want := []int{0, 1, 2, g.Vertices() + 1}
	for i, d := range distances {
		if d != want[i] {
			t.Errorf("Distances()[%d] = %d, want %d", i, d, want[i])
		}
	}
}

func TestPageRanksConservesApproximateMass(t *testing.T) {
	g := New()
	a := g.AddURL("a")
	b := g.AddURL("b")
	_ = g.AddLink(a, b)
	_ = g.AddLink(b, a)

	ranks := PageRanks(g)
	if len(ranks) != 2 {
		t.Fatalf("PageRanks() returned %d ranks, want 2", len(ranks))
	}
	for i, r := range ranks {
		if r <= 0 {
			t.Errorf("PageRanks()[%d] = %f, want a positive rank", i, r)
		}
	}
}

func TestPageRanksEmptyGraph(t *testing.T) {
	g := New()
	if ranks := PageRanks(g); ranks != nil {
		t.Errorf("PageRanks() on empty graph = %v, want nil", ranks)
	}
}
