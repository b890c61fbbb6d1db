package index

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// InvertedIndex maps dictionary word indices to the documents containing
// them and each document's raw term frequency, plus the aggregate
// statistics (max term frequency per document, average document length)
// the scoring evaluators need.
type InvertedIndex struct {
	postings map[int]map[int]int // wordIndex -> docID -> tf
	docSet   map[int]struct{}
	maxTF    map[int]int // docID -> max tf across any word in that doc
	docLen   map[int]int // docID -> sum of tf across every word (document length)

	AverageDocumentLength float64
}

// NewInvertedIndex creates an empty InvertedIndex.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		postings: make(map[int]map[int]int),
		docSet:   make(map[int]struct{}),
		maxTF:    make(map[int]int),
		docLen:   make(map[int]int),
	}
}

// AddPosting records that wordIndex occurs tf times in docID.
func (idx *InvertedIndex) AddPosting(wordIndex, docID, tf int) {
	if idx.postings[wordIndex] == nil {
		idx.postings[wordIndex] = make(map[int]int)
	}
	idx.postings[wordIndex][docID] = tf
	idx.docSet[docID] = struct{}{}
	if tf > idx.maxTF[docID] {
		idx.maxTF[docID] = tf
	}
	idx.docLen[docID] += tf
}

// Finalize recomputes AverageDocumentLength as the correct mean document
// length (total token count across all documents divided by document
// count), rather than the naive running-average that dividing after every
// line would produce.
func (idx *InvertedIndex) Finalize() {
	if len(idx.docSet) == 0 {
		idx.AverageDocumentLength = 0
		return
	}
	var total int
	for _, length := range idx.docLen {
		total += length
	}
	idx.AverageDocumentLength = float64(total) / float64(len(idx.docSet))
}

// DocumentsNumber returns the total number of distinct documents indexed.
func (idx *InvertedIndex) DocumentsNumber() int {
	return len(idx.docSet)
}

// WordDocumentsNumber returns the document frequency of wordIndex.
func (idx *InvertedIndex) WordDocumentsNumber(wordIndex int) int {
	return len(idx.postings[wordIndex])
}

// WordDocuments returns the document ids containing wordIndex.
func (idx *InvertedIndex) WordDocuments(wordIndex int) []int {
	docs := make([]int, 0, len(idx.postings[wordIndex]))
	for d := range idx.postings[wordIndex] {
		docs = append(docs, d)
	}
	return docs
}

// WordDocumentFrequency returns the raw term frequency of wordIndex in
// docID.
func (idx *InvertedIndex) WordDocumentFrequency(wordIndex, docID int) int {
	return idx.postings[wordIndex][docID]
}

// MaxDocumentFrequency returns the highest raw term frequency of any word
// in docID.
func (idx *InvertedIndex) MaxDocumentFrequency(docID int) int {
	return idx.maxTF[docID]
}

// WriteTo serializes the index: each word index on its own line, followed
// by its postings as space-separated "docId:tf" pairs.
func (idx *InvertedIndex) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	indices := make([]int, 0, len(idx.postings))
	for wordIndex := range idx.postings {
		indices = append(indices, wordIndex)
	}
	sort.Ints(indices)

	for _, wordIndex := range indices {
		if _, err := fmt.Fprintf(bw, "%d", wordIndex); err != nil {
			return err
		}
		docs := idx.WordDocuments(wordIndex)
		sort.Ints(docs)
		for _, docID := range docs {
			if _, err := fmt.Fprintf(bw, " %d:%d", docID, idx.postings[wordIndex][docID]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadInvertedIndex parses an index file written by WriteTo.
func ReadInvertedIndex(r io.Reader) (*InvertedIndex, error) {
	idx := NewInvertedIndex()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		wordIndex, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("index: parsing word index in %q: %w", line, err)
		}
		for _, posting := range fields[1:] {
			docID, tf, err := parsePosting(posting)
			if err != nil {
				return nil, fmt.Errorf("index: parsing posting %q: %w", posting, err)
			}
			idx.AddPosting(wordIndex, docID, tf)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("index: reading index: %w", err)
	}
	idx.Finalize()
	return idx, nil
}

func parsePosting(posting string) (docID, tf int, err error) {
	sep := strings.IndexByte(posting, ':')
	if sep < 0 {
		return 0, 0, fmt.Errorf("missing ':' separator")
	}
	docID, err = strconv.Atoi(posting[:sep])
	if err != nil {
		return 0, 0, err
	}
	tf, err = strconv.Atoi(posting[sep+1:])
	if err != nil {
		return 0, 0, err
	}
	return docID, tf, nil
}
