package urlutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bits-and-blooms/bloom/v3"
)

// ExtractLinks parses html and returns every link found in an <a href="…">
// element, with relative URLs resolved against base in the priority order
// the crawler relies on: mailto: links are dropped, scheme-relative links
// gain an http scheme, root-relative links are anchored at base's domain,
// and anything else is joined onto base's directory. Absolute URLs are
// returned unchanged. This is the Go equivalent of the teacher's
// GoqueryParser.extractLinks, rewritten around the exact resolution rules
// above rather than net/url.ResolveReference, since those rules are what
// the rest of the pipeline's invariants depend on.
func ExtractLinks(base, html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	anchors := doc.Find("a[href]")
	seen := NewSeenFilter(uint(anchors.Length()) + 1)

	var links []string
	anchors.Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		resolved, ok := resolve(base, href)
		if !ok || seen.Add(resolved) {
			return
		}
		links = append(links, resolved)
	})
	return links
}

// resolve applies the spec's priority-ordered relative-URL resolution
// rules. The bool result is false when the link must be dropped.
func resolve(base, link string) (string, bool) {
	switch {
	case strings.HasPrefix(link, "mailto:"):
		return "", false
	case strings.HasPrefix(link, "//"):
		return "http:" + link, true
	case isAbsolute(link):
		return link, true
	case strings.HasPrefix(link, "/"):
		d := Domain(base)
		if d == "" {
			return "", false
		}
		return d + link, true
	default:
		return strings.TrimRight(base, "/") + "/" + link, true
	}
}

func isAbsolute(u string) bool {
	return schemeRegexp.MatchString(u)
}

// SeenFilter is a probabilistic per-page cache of already-extracted links,
// used to avoid re-queuing the same link from repeated anchors on one page.
// It sits alongside, and is strictly weaker than, the crawler's exact
// concurrent.Set dedup: a false positive here only costs a missed link within
// a single page, never a correctness violation of the crawl-wide
// fetch-once invariant.
type SeenFilter struct {
	filter *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for expectedLinks entries at a 1%
// false-positive rate.
func NewSeenFilter(expectedLinks uint) *SeenFilter {
	return &SeenFilter{filter: bloom.NewWithEstimates(expectedLinks, 0.01)}
}

// Add reports whether link was already (probably) seen, and records it
// either way.
func (f *SeenFilter) Add(link string) (alreadySeen bool) {
	if f.filter.TestString(link) {
		return true
	}
	f.filter.AddString(link)
	return false
}
