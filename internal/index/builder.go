package index

import (
	"os"
	"regexp"

	"github.com/sitecrawl/sitecrawl/internal/extract"
	"github.com/sitecrawl/sitecrawl/internal/fileproc"
)

// docFrequency is a worker's local per-document stemmed-word counts,
// mirroring the original FileIndexer's localWordsFrequencyTable but keyed
// per document rather than globally, since the index needs per-document
// postings rather than a single corpus-wide frequency table.
type docFrequency struct {
	path   string
	text   string
	counts map[string]int
}

// Build walks every file under path matching fileFilterRegexp, tokenizes
// and stems its extracted text, and assembles a Dictionary and
// InvertedIndex over the result. Document ids are assigned in the order
// files are merged into the shared aggregate. onText, when non-nil, is
// invoked once per file, under the pool's merge mutex, with the file's
// path and its extracted text — letting a caller piggyback side effects
// (writing the text out, accumulating a raw token/frequency table) onto
// this single concurrent walk instead of re-reading every file again.
func Build(path string, fileFilterRegexp *regexp.Regexp, workers int, extractor extract.TextExtractor, onText func(path, text string)) (*Dictionary, *InvertedIndex) {
	dict := NewDictionary()
	idx := NewInvertedIndex()
	nextDocID := 0

	pool := fileproc.NewPool(
		[]string{path},
		fileFilterRegexp,
		workers,
		func() []docFrequency { return nil },
		func(p string, local *[]docFrequency) bool {
			data, err := os.ReadFile(p)
			if err != nil {
				return false
			}
			text, err := extractor.Extract(string(data))
			if err != nil {
				text = string(data)
			}

			counts := make(map[string]int)
			for _, tok := range Tokenize(text) {
				counts[Stem(tok)]++
			}
			*local = append(*local, docFrequency{path: p, text: text, counts: counts})
			return true
		},
		func(local []docFrequency) {
			for _, doc := range local {
				docID := nextDocID
				nextDocID++
				for word, tf := range doc.counts {
					wordIndex := dict.Intern(word)
					idx.AddPosting(wordIndex, docID, tf)
				}
				if onText != nil {
					onText(doc.path, doc.text)
				}
			}
		},
	)
	pool.Run()

	idx.Finalize()
	return dict, idx
}
