package index

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// Tokenize splits text on whitespace or non-printable bytes and drops any
// token of length 1 or less, matching the SimHash tokenizer's rule so both
// pipelines agree on what counts as a word.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Stem reduces word to its English word stem. It is applied identically
// at index-build time and query time so postings and queries share a
// normal form.
func Stem(word string) string {
	stemmed, err := snowball.Stem(strings.ToLower(word), "english", true)
	if err != nil {
		return strings.ToLower(word)
	}
	return stemmed
}
