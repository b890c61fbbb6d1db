package index

import (
	"bytes"
	"strings"
	"testing"
)

func TestDictionaryInternAssignsDenseIndices(t *testing.T) {
	d := NewDictionary()
	a := d.Intern("apple")
	b := d.Intern("banana")
	aAgain := d.Intern("apple")

	if a != aAgain {
		t.Errorf("Intern(\"apple\") second call = %d, want %d", aAgain, a)
	}
	if a == b {
		t.Errorf("Intern() assigned the same index to different words: %d", a)
	}
	record, ok := d.RecordOfWord("apple")
	if !ok || record.Frequency != 2 {
		t.Errorf("RecordOfWord(\"apple\") frequency = %d, want 2", record.Frequency)
	}
}

func TestDictionaryWriteReadRoundTrip(t *testing.T) {
	d := NewDictionary()
	d.Intern("apple")
	d.Intern("banana")
	d.Intern("apple")

	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	loaded, err := ReadDictionary(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadDictionary() error = %v", err)
	}
	if loaded.Size() != d.Size() {
		t.Errorf("loaded.Size() = %d, want %d", loaded.Size(), d.Size())
	}
	record, ok := loaded.RecordOfWord("apple")
	if !ok || record.Frequency != 2 {
		t.Errorf("loaded RecordOfWord(\"apple\") = %+v, want frequency 2", record)
	}
}

func TestDictionaryAddWordOverwritesDuplicates(t *testing.T) {
	d := NewDictionary()
	d.AddWord("apple", 0, 1)
	d.AddWord("apple", 0, 5)

	record, ok := d.RecordOfWord("apple")
	if !ok || record.Frequency != 5 {
		t.Errorf("RecordOfWord(\"apple\") = %+v, want frequency 5", record)
	}
}
