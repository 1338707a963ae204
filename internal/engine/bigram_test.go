package engine

import "testing"

func TestBigramLegalKnownPairs(t *testing.T) {
	legal := []struct{ c1, c2 rune }{
		{'n', 'g'}, // ng final / ngh initial
		{'t', 'r'}, // tr initial
		{'i', 'a'}, // ia nucleus
		{'u', 'y'}, // uy nucleus
		{'a', 'n'}, // vowel -> final n
		{'b', 'a'}, // consonant -> vowel
	}
	for _, tt := range legal {
		if !BigramLegal(tt.c1, tt.c2) {
			t.Errorf("BigramLegal(%q, %q) = false, want true", tt.c1, tt.c2)
		}
	}
}

func TestBigramLegalRejectsOutOfRange(t *testing.T) {
	if BigramLegal(200, 'a') {
		t.Error("BigramLegal should reject a codepoint > 127")
	}
}

func TestBigramLegalRejectsImpossiblePair(t *testing.T) {
	// "bl" never opens a native Vietnamese syllable and is not itself a
	// legal final or nucleus cluster, so the pair should be absent.
	if BigramLegal('b', 'l') {
		t.Error("BigramLegal('b', 'l') = true, want false")
	}
}
