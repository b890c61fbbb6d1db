package index

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/sitecrawl/sitecrawl/internal/extract"
)

type identityExtractor struct{}

func (identityExtractor) Extract(raw string) (string, error) { return raw, nil }

func TestBuildAssemblesDictionaryAndIndex(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"1.html": "fox fox dog",
		"2.html": "fox cat",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var extracted []string
	dict, idx := Build(dir, regexp.MustCompile(`\.html$`), 2, identityExtractor{}, func(path, text string) {
		extracted = append(extracted, text)
	})

	if dict.Size() != 3 {
		t.Errorf("dict.Size() = %d, want 3 (fox, dog, cat)", dict.Size())
	}
	if idx.DocumentsNumber() != 2 {
		t.Errorf("idx.DocumentsNumber() = %d, want 2", idx.DocumentsNumber())
	}
	if len(extracted) != 2 {
		t.Errorf("onText called %d times, want 2", len(extracted))
	}

	foxRecord, ok := dict.RecordOfWord(Stem("fox"))
	if !ok {
		t.Fatal("expected \"fox\" to be interned")
	}
	if got := idx.WordDocumentsNumber(foxRecord.Index); got != 2 {
		t.Errorf("WordDocumentsNumber(fox) = %d, want 2", got)
	}
}
