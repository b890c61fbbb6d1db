package index

import (
	"bytes"
	"strings"
	"testing"
)

func TestInvertedIndexFinalizeComputesCorrectMean(t *testing.T) {
	idx := NewInvertedIndex()
	idx.AddPosting(0, 0, 3)
	idx.AddPosting(1, 0, 2)
	idx.AddPosting(0, 1, 10)
	idx.Finalize()

	// doc 0 length = 3+2 = 5, doc 1 length = 10, average = 15/2 = 7.5
	if idx.AverageDocumentLength != 7.5 {
		t.Errorf("AverageDocumentLength = %f, want 7.5", idx.AverageDocumentLength)
	}
}

func TestInvertedIndexMaxDocumentFrequency(t *testing.T) {
	idx := NewInvertedIndex()
	idx.AddPosting(0, 0, 3)
	idx.AddPosting(1, 0, 7)
	if got := idx.MaxDocumentFrequency(0); got != 7 {
		t.Errorf("MaxDocumentFrequency(0) = %d, want 7", got)
	}
}

func TestInvertedIndexWriteReadRoundTrip(t *testing.T) {
	idx := NewInvertedIndex()
	idx.AddPosting(0, 0, 3)
	idx.AddPosting(0, 1, 1)
	idx.AddPosting(1, 0, 2)
	idx.Finalize()

	var buf bytes.Buffer
	if err := idx.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	loaded, err := ReadInvertedIndex(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadInvertedIndex() error = %v", err)
	}
	if loaded.DocumentsNumber() != 2 {
		t.Errorf("DocumentsNumber() = %d, want 2", loaded.DocumentsNumber())
	}
	if loaded.WordDocumentFrequency(0, 0) != 3 {
		t.Errorf("WordDocumentFrequency(0,0) = %d, want 3", loaded.WordDocumentFrequency(0, 0))
	}
	if loaded.AverageDocumentLength != idx.AverageDocumentLength {
		t.Errorf("AverageDocumentLength = %f, want %f", loaded.AverageDocumentLength, idx.AverageDocumentLength)
	}
}
