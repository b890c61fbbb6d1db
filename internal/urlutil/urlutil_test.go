package urlutil

import "testing"

func TestDomain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare host", "example.com/foo/bar", "example.com"},
		{"http scheme", "http://example.com/foo", "example.com"},
		{"https scheme", "https://example.com/foo", "example.com"},
		{"no path", "example.com", "example.com"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Domain(c.in); got != c.want {
				t.Errorf("Domain(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestAddHTMLExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com/foo", "example.com/foo.html"},
		{"example.com/foo.html", "example.com/foo.html"},
		{"example.com/foo.HTML", "example.com/foo.HTML"},
	}
	for _, c := range cases {
		if got := AddHTMLExtension(c.in); got != c.want {
			t.Errorf("AddHTMLExtension(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPreprocess(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"http://example.com/foo/", "example.com/foo"},
		{"https://example.com/foo/bar/", "example.com/foo/bar"},
		{"/example.com/foo/", "example.com/foo"},
	}
	for _, c := range cases {
		if got := Preprocess(c.in); got != c.want {
			t.Errorf("Preprocess(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsAllowed(t *testing.T) {
	seed := "http://example.com/"
	cases := []struct {
		name string
		u    string
		want bool
	}{
		{"same domain html", "http://example.com/foo", true},
		{"other domain", "http://other.com/foo", false},
		{"bad extension png", "http://example.com/foo.png", false},
		{"bad extension php", "http://example.com/foo.php", false},
		{"fragment", "http://example.com/foo#section", false},
		{"query string", "http://example.com/foo?x=1", false},
		{"wiki special namespace", "http://example.com/Special:Export", false},
		{"wiki talk namespace", "http://example.com/User_talk:Someone", false},
		{"wiki file namespace", "http://example.com/File:Picture", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsAllowed(seed, c.u); got != c.want {
				t.Errorf("IsAllowed(%q, %q) = %v, want %v", seed, c.u, got, c.want)
			}
		})
	}
}
