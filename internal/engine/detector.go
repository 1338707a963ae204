package engine

import (
	"strings"
	"unicode"

	"github.com/vietkey/goviet-core/internal/dict"
)

// DetectionResult is the detector's verdict: a confidence in [0, 1]
// plus a short tag explaining which layer produced it (spec.md §4.8,
// "returns a score plus a rationale tag"). The detector never mutates
// engine state.
type DetectionResult struct {
	Confidence float64
	Rationale  string
}

// vietnameseStrictThreshold and vietnameseLooseThreshold implement the
// two-threshold rule from spec.md §4.8: sequences that also parse as a
// valid Vietnamese syllable need much stronger evidence before the
// engine rips them back to English (this guards transient states like
// "phast" on the way to "phạt").
const (
	vietnameseStrictThreshold = 0.95
	vietnameseLooseThreshold  = 0.70
)

// Detector scores whether the current word is more likely English than
// Vietnamese, reading only the raw input log (spec.md §4.8).
type Detector struct {
	dictionary *dict.Dictionary
}

// NewDetector builds a Detector backed by d. d may be nil, in which
// case the dictionary layer (step 1) never fires and the detector
// falls back to the structural layers.
func NewDetector(d *dict.Dictionary) *Detector {
	return &Detector{dictionary: d}
}

// Score runs the detector's layered pipeline over the literal keys in
// raw, short-circuiting on a dictionary hit (spec.md §4.8 step 1).
func (det *Detector) Score(raw []RawEntry) DetectionResult {
	word := rawWord(raw)
	if word == "" {
		return DetectionResult{}
	}

	if det.dictionary != nil && det.dictionary.Contains(word) {
		return DetectionResult{Confidence: 1.0, Rationale: "dictionary_exact"}
	}

	if hasEnglishOnlyInitial(word) {
		return DetectionResult{
			Confidence: clamp01(0.9 + suffixEvidence(word)),
			Rationale:  "english_initial_cluster",
		}
	}

	if hasImpossibleBigram(word) {
		return DetectionResult{
			Confidence: clamp01(0.85 + suffixEvidence(word)),
			Rationale:  "impossible_bigram",
		}
	}

	score := suffixEvidence(word) + phonotacticScore(word)
	rationale := "phonotactic"
	if score == 0 {
		rationale = "none"
	}
	return DetectionResult{Confidence: clamp01(score), Rationale: rationale}
}

// Threshold picks the acceptance bar for a Score result, widening it
// when the same raw sequence also composes to a valid Vietnamese
// syllable (spec.md §4.8).
func Threshold(alsoValidVietnamese bool) float64 {
	if alsoValidVietnamese {
		return vietnameseStrictThreshold
	}
	return vietnameseLooseThreshold
}

// rawWord renders the literal (lowercase) keys of a raw log entry set,
// skipping non-letter keys.
func rawWord(raw []RawEntry) string {
	var b strings.Builder
	for _, e := range raw {
		r := unicode.ToLower(e.Key)
		if r < 'a' || r > 'z' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasEnglishOnlyInitial(word string) bool {
	for l := 3; l >= 2; l-- {
		if len(word) >= l && englishOnlyInitials[word[:l]] {
			return true
		}
	}
	return false
}

func hasImpossibleBigram(word string) bool {
	for i := 0; i+1 < len(word); i++ {
		if !BigramLegal(rune(word[i]), rune(word[i+1])) {
			return true
		}
	}
	return false
}

// phonotacticScore folds in vowel/consonant ratio and the longest
// consonant run (spec.md §4.8 step 5): Vietnamese syllables never
// stack more than three consonants (ngh) or go long with few vowels.
func phonotacticScore(word string) float64 {
	vowels, longestRun, run := 0, 0, 0
	for _, r := range word {
		if IsVietnameseVowel(r) {
			vowels++
			run = 0
			continue
		}
		run++
		if run > longestRun {
			longestRun = run
		}
	}

	var score float64
	if longestRun > 3 {
		score += 0.4
	}
	if len(word) >= 8 && vowels*3 < len(word) {
		score += 0.25
	}
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
