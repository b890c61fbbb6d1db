package simhash

import "testing"

func TestCalculateIsStable(t *testing.T) {
	var c Calculator
	text := "the quick brown fox\njumps over the lazy dog\n"
	first := c.Calculate(text)
	second := c.Calculate(text)
	if first != second {
		t.Errorf("Calculate() is not deterministic: %d != %d", first, second)
	}
}

func TestCalculateSimilarTextsAreClose(t *testing.T) {
	var c Calculator
	a := c.Calculate("the quick brown fox jumps over the lazy dog\n")
	b := c.Calculate("the quick brown fox jumps over a lazy dog\n")
	unrelated := c.Calculate("completely different content about something else entirely\n")

	distAB := HammingDistance(a, b)
	distAU := HammingDistance(a, unrelated)
	if distAB >= distAU {
		t.Errorf("HammingDistance(a,b)=%d should be smaller than HammingDistance(a,unrelated)=%d", distAB, distAU)
	}
}

func TestHammingDistanceIdentical(t *testing.T) {
	if d := HammingDistance(0xFF00, 0xFF00); d != 0 {
		t.Errorf("HammingDistance() of identical hashes = %d, want 0", d)
	}
}

func TestHammingDistanceAllBitsDiffer(t *testing.T) {
	if d := HammingDistance(0, ^Simhash(0)); d != 64 {
		t.Errorf("HammingDistance() = %d, want 64", d)
	}
}

func TestCalculateFewerThanTwoTokensIsAllOnes(t *testing.T) {
	var c Calculator
	if got := c.Calculate("a b"); got != ^Simhash(0) {
		t.Errorf("Calculate() of single-char tokens = %x, want all-ones", got)
	}
	if got := c.Calculate(""); got != ^Simhash(0) {
		t.Errorf("Calculate() of empty text = %x, want all-ones", got)
	}
}
