// Package simhash computes 64-bit content fingerprints over token
// shingles, ported from the original implementation's SimhashCalculator.
package simhash

import (
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Simhash is a 64-bit content fingerprint.
type Simhash uint64

// DocumentSimilarityInfo pairs a document's path and size with its
// fingerprint, the unit the near-duplicate clustering pipeline consumes.
type DocumentSimilarityInfo struct {
	Path    string
	Simhash Simhash
	Size    int
}

// DocumentInfo attaches a stable integer id to a DocumentSimilarityInfo,
// flattened for simplicity like the original's DocumentInfo struct.
type DocumentInfo struct {
	ID      int
	Path    string
	Simhash Simhash
	Size    int
}

// Calculator accumulates a SimHash over the bigram shingles of lines of
// text, one accumulator slot per output bit.
type Calculator struct {
	acc [64]int
}

// Calculate returns the SimHash of text: text is split on whitespace or
// non-printable bytes, tokens of length 1 or less are dropped, and each
// adjacent bigram shingle is hashed and folded into the per-bit
// accumulators. A text yielding fewer than two tokens leaves every
// accumulator at zero, which resolves to an all-ones hash.
func (c *Calculator) Calculate(text string) Simhash {
	c.acc = [64]int{}
	c.accumulate(tokenize(text))

	var hash Simhash
	for bit := 0; bit < 64; bit++ {
		hash <<= 1
		if c.acc[bit] >= 0 {
			hash |= 1
		}
	}
	return hash
}

// tokenize splits text the way the spec's shared tokenizer does: on
// whitespace or non-printable bytes, dropping single-character tokens.
func tokenize(text string) []string {
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

func (c *Calculator) accumulate(words []string) {
	for i := 0; i+1 < len(words); i++ {
		shingle := words[i] + " " + words[i+1]
		h := xxhash.Sum64String(shingle)
		for bit := 0; bit < 64; bit++ {
			if h&(1<<uint(bit)) != 0 {
				c.acc[bit]++
			} else {
				c.acc[bit]--
			}
		}
	}
}

// HammingDistance returns the number of differing bits between a and b.
func HammingDistance(a, b Simhash) int {
	x := uint64(a ^ b)
	count := 0
	for x != 0 {
		count++
		x &= x - 1
	}
	return count
}
