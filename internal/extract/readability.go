package extract

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// ReadabilityExtractor wraps go-readability, the default TextExtractor used
// by the simhash and index builders.
type ReadabilityExtractor struct{}

// NewReadabilityExtractor creates a ReadabilityExtractor.
func NewReadabilityExtractor() *ReadabilityExtractor {
	return &ReadabilityExtractor{}
}

// Extract parses rawHTML with go-readability and returns the plain text of
// the extracted article content.
func (e *ReadabilityExtractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", ErrEmptyHTML
	}
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}
	node, err := html.Parse(strings.NewReader(article.Content))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	collectText(node, &sb)
	return sb.String(), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
