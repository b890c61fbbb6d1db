package search

import (
	"math"

	"github.com/sitecrawl/sitecrawl/internal/index"
)

func idf(idx *index.InvertedIndex, wordIndex int) float64 {
	n := float64(idx.DocumentsNumber())
	df := float64(idx.WordDocumentsNumber(wordIndex))
	return math.Log((n - df + 0.5) / (df + 0.5))
}

// TFIDFEvaluator scores with the probabilistic-IDF, augmented-frequency
// TF-IDF formula.
type TFIDFEvaluator struct{}

func (TFIDFEvaluator) Name() string { return "TFIDF" }

func (TFIDFEvaluator) Evaluate(idx *index.InvertedIndex, documentID int, records []index.WordRecord) float64 {
	var score float64
	maxTF := float64(idx.MaxDocumentFrequency(documentID))
	for _, record := range records {
		tf := 0.5 + 0.5*float64(idx.WordDocumentFrequency(record.Index, documentID))/maxTF
		score += idf(idx, record.Index) * tf
	}
	return score
}

// BM25Evaluator scores with the Okapi BM25 formula, k=1.5, b=0.75.
type BM25Evaluator struct{}

const (
	bm25K = 1.5
	bm25B = 0.75
)

func (BM25Evaluator) Name() string { return "BM25" }

func (BM25Evaluator) Evaluate(idx *index.InvertedIndex, documentID int, records []index.WordRecord) float64 {
	var score float64
	maxTF := float64(idx.MaxDocumentFrequency(documentID))
	n := float64(idx.DocumentsNumber())
	avgdl := idx.AverageDocumentLength
	for _, record := range records {
		tf := float64(idx.WordDocumentFrequency(record.Index, documentID)) / maxTF
		numerator := tf * (bm25K + 1)
		denominator := tf + bm25K*(1-bm25B+bm25B*n/avgdl)
		score += idf(idx, record.Index) * (numerator / denominator)
	}
	return score
}
