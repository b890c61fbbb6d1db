package extract

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// TrafilaturaExtractor wraps go-trafilatura as an alternate TextExtractor,
// useful for pages where go-readability's content boundary heuristics pick
// the wrong main node (e.g. heavily templated wiki pages).
type TrafilaturaExtractor struct{}

// NewTrafilaturaExtractor creates a TrafilaturaExtractor.
func NewTrafilaturaExtractor() *TrafilaturaExtractor {
	return &TrafilaturaExtractor{}
}

// Extract parses rawHTML with go-trafilatura and returns the plain text of
// the extracted content node.
func (e *TrafilaturaExtractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", ErrEmptyHTML
	}
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return "", err
	}
	if result.ContentNode == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return "", err
	}
	node, err := html.Parse(&buf)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	collectText(node, &sb)
	return sb.String(), nil
}
