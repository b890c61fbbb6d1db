package webgraph

import "testing"

func TestAddURLIsIdempotent(t *testing.T) {
	g := New()
	a := g.AddURL("example.com/a")
	b := g.AddURL("example.com/a")
	if a != b {
		t.Errorf("AddURL() returned different vertices for the same url: %d != %d", a, b)
	}
	if g.Vertices() != 1 {
		t.Errorf("Vertices() = %d, want 1", g.Vertices())
	}
}

func TestAddLinkRejectsUnknownVertex(t *testing.T) {
	g := New()
	a := g.AddURL("example.com/a")
	if err := g.AddLink(a, 99); err == nil {
		t.Error("AddLink() err = nil, want an error for an out-of-range destination")
	}
}

func TestAddLinkRetainsDuplicates(t *testing.T) {
	g := New()
	a := g.AddURL("example.com/a")
	b := g.AddURL("example.com/b")
	_ = g.AddLink(a, b)
	_ = g.AddLink(a, b)
	links, _ := g.GetLinks(a)
	if len(links) != 2 {
		t.Errorf("GetLinks() = %v, want 2 duplicate edges", links)
	}
	if g.Edges() != 2 {
		t.Errorf("Edges() = %d, want 2", g.Edges())
	}
}

func TestURLOfAndVertexOfRoundTrip(t *testing.T) {
	g := New()
	v := g.AddURL("example.com/a")
	url, err := g.URLOf(v)
	if err != nil || url != "example.com/a" {
		t.Errorf("URLOf(%d) = (%q, %v), want (\"example.com/a\", nil)", v, url, err)
	}
	back, err := g.VertexOf("example.com/a")
	if err != nil || back != v {
		t.Errorf("VertexOf() = (%d, %v), want (%d, nil)", back, err, v)
	}
	if _, err := g.VertexOf("example.com/missing"); err == nil {
		t.Error("VertexOf() err = nil, want an error for an unknown url")
	}
}
