// Package search answers ranked phrase queries over an InvertedIndex,
// ported from the original implementation's SearchEngine.
package search

import (
	"sort"
	"strings"

	"github.com/sitecrawl/sitecrawl/internal/index"
)

// delimiters are the characters a query phrase is split on.
const delimiters = " ,\n\t"

// DocumentScore pairs a document id with its score for a query.
type DocumentScore struct {
	Score      float64
	DocumentID int
}

// Evaluator scores a single document against a resolved set of query
// word records.
type Evaluator interface {
	Name() string
	Evaluate(idx *index.InvertedIndex, documentID int, records []index.WordRecord) float64
}

// Engine answers phrase queries against a Dictionary and InvertedIndex.
type Engine struct {
	dict *index.Dictionary
	idx  *index.InvertedIndex
}

// New creates an Engine.
func New(dict *index.Dictionary, idx *index.InvertedIndex) *Engine {
	return &Engine{dict: dict, idx: idx}
}

// tokenize splits phrase on the query delimiter set. Unlike the indexing
// tokenizer it keeps single-character tokens, since a query is not
// required to share the index's minimum token length.
func tokenize(phrase string) []string {
	return strings.FieldsFunc(phrase, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
}

// resolve maps phrase's tokens to dictionary records, stemming each token
// the same way the index builder stemmed its postings. It returns nil if
// any token is absent from the dictionary.
func (e *Engine) resolve(phrase string) []index.WordRecord {
	tokens := tokenize(phrase)
	if len(tokens) == 0 {
		return nil
	}
	records := make([]index.WordRecord, 0, len(tokens))
	for _, tok := range tokens {
		record, ok := e.dict.RecordOfWord(index.Stem(tok))
		if !ok {
			return nil
		}
		records = append(records, record)
	}
	return records
}

// candidates returns the intersection of posting-list document sets
// across records, preserving the first record's document order as the
// base set.
func (e *Engine) candidates(records []index.WordRecord) []int {
	if len(records) == 0 {
		return nil
	}
	result := e.idx.WordDocuments(records[0].Index)
	for _, record := range records[1:] {
		docSet := make(map[int]struct{})
		for _, d := range e.idx.WordDocuments(record.Index) {
			docSet[d] = struct{}{}
		}
		filtered := result[:0]
		for _, d := range result {
			if _, ok := docSet[d]; ok {
				filtered = append(filtered, d)
			}
		}
		result = filtered
	}
	return result
}

// Search tokenizes phrase, resolves it against the dictionary and scores
// every candidate document with evaluator, returning results sorted by
// score descending (document id ascending breaks ties).
func (e *Engine) Search(phrase string, evaluator Evaluator) []DocumentScore {
	records := e.resolve(phrase)
	if records == nil {
		return nil
	}

	docs := e.candidates(records)
	scores := make([]DocumentScore, len(docs))
	for i, d := range docs {
		scores[i] = DocumentScore{Score: evaluator.Evaluate(e.idx, d, records), DocumentID: d}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].DocumentID < scores[j].DocumentID
	})
	return scores
}
