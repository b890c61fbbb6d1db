package search

import (
	"testing"

	"github.com/sitecrawl/sitecrawl/internal/index"
)

func buildFixture() (*index.Dictionary, *index.InvertedIndex) {
	dict := index.NewDictionary()
	idx := index.NewInvertedIndex()

	// doc0: "fox fox dog", doc1: "fox cat", doc2: "dog dog dog"
	foxIdx := dict.Intern("fox")
	dict.Intern("fox")
	dogIdx := dict.Intern("dog")
	dict.Intern("fox")
	catIdx := dict.Intern("cat")
	dict.Intern("dog")
	dict.Intern("dog")

	idx.AddPosting(foxIdx, 0, 2)
	idx.AddPosting(dogIdx, 0, 1)
	idx.AddPosting(foxIdx, 1, 1)
	idx.AddPosting(catIdx, 1, 1)
	idx.AddPosting(dogIdx, 2, 3)
	idx.Finalize()

	return dict, idx
}

func TestSearchReturnsEmptyForUnknownToken(t *testing.T) {
	dict, idx := buildFixture()
	engine := New(dict, idx)

	if got := engine.Search("elephant", TFIDFEvaluator{}); got != nil {
		t.Errorf("Search() = %v, want nil for an unknown token", got)
	}
}

func TestSearchIntersectsCandidates(t *testing.T) {
	dict, idx := buildFixture()
	engine := New(dict, idx)

	results := engine.Search("fox", TFIDFEvaluator{})
	if len(results) != 2 {
		t.Fatalf("Search(\"fox\") = %v, want 2 candidates", results)
	}

	// fox is in docs 0 and 1, dog in docs 0 and 2: only doc 0 holds both.
	results = engine.Search("fox dog", TFIDFEvaluator{})
	if len(results) != 1 || results[0].DocumentID != 0 {
		t.Errorf("Search(\"fox dog\") = %v, want only doc 0", results)
	}
}

func TestSearchOrdersByScoreThenDocID(t *testing.T) {
	dict, idx := buildFixture()
	engine := New(dict, idx)

	results := engine.Search("dog", BM25Evaluator{})
	if len(results) != 2 {
		t.Fatalf("Search(\"dog\") = %v, want 2 candidates", results)
	}
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		if cur.Score > prev.Score || (cur.Score == prev.Score && cur.DocumentID < prev.DocumentID) {
			t.Errorf("results not sorted by score descending, then document id ascending: %v", results)
		}
	}
}

func TestSearchTieBreaksByAscendingDocumentID(t *testing.T) {
	dict := index.NewDictionary()
	idx := index.NewInvertedIndex()
	w := dict.Intern("word")
	idx.AddPosting(w, 5, 1)
	idx.AddPosting(w, 2, 1)
	idx.Finalize()

	engine := New(dict, idx)
	results := engine.Search("word", TFIDFEvaluator{})
	if len(results) != 2 || results[0].DocumentID != 2 || results[1].DocumentID != 5 {
		t.Errorf("Search() = %v, want doc 2 before doc 5 on a score tie", results)
	}
}
