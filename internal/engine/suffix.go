package engine

import "strings"

// englishSuffixes pairs a trailing pattern with the minimum stem
// length required before it counts as evidence, and the confidence it
// contributes (spec.md §4.8 step 4). Grounded in spirit on the
// suffix-stripping approach of the Porter stemmer (other_examples,
// porter.Stem) — here used only to score evidence, not to strip.
var englishSuffixes = []struct {
	suffix   string
	minStem  int
	evidence float64
}{
	{"tion", 3, 0.55},
	{"ness", 3, 0.5},
	{"ment", 3, 0.5},
	{"ing", 2, 0.45},
	{"ed", 2, 0.35},
	{"ly", 2, 0.35},
	{"er", 2, 0.3},
	{"s", 2, 0.15},
}

// suffixEvidence returns the strongest single suffix match's
// confidence contribution, or 0 if none apply. Matches are tried
// longest-first so "-ness" wins over the weaker trailing "-s".
func suffixEvidence(word string) float64 {
	for _, s := range englishSuffixes {
		if strings.HasSuffix(word, s.suffix) && len(word)-len(s.suffix) >= s.minStem {
			return s.evidence
		}
	}
	return 0
}
