package engine

// SyllableView is a non-owning, derived structure: indices into a
// buffer for the initial consonant span, optional glide, vowel nucleus
// span, and optional final consonant span (spec.md §3, §4.4). It is
// rebuilt on demand and allocates no heap structures of its own.
type SyllableView struct {
	InitialStart, InitialEnd int
	GlideIdx                 int // buffer index of the glide, or -1
	NucleusStart, NucleusEnd int
	CodaStart, CodaEnd       int
}

// HasGlide reports whether the parse identified a pre-nuclear
// semivowel (the 'u' in quan, the 'o' in hoa).
func (s SyllableView) HasGlide() bool { return s.GlideIdx >= 0 }

// HasCoda reports whether the syllable has a final consonant span.
func (s SyllableView) HasCoda() bool { return s.CodaEnd > s.CodaStart }

// HasInitial reports whether the syllable has an initial consonant span.
func (s SyllableView) HasInitial() bool { return s.InitialEnd > s.InitialStart }

// NucleusLen returns the number of vowels in the nucleus span.
func (s SyllableView) NucleusLen() int { return s.NucleusEnd - s.NucleusStart }

// isConsonantKey and isVowelKey classify a raw key press, which is
// always a plain ASCII base letter (stroke and tone modifiers live in
// separate CompChar fields, never in Key itself) — so the general
// IsVietnameseConsonant/IsVietnameseVowel predicates apply directly.
func isConsonantKey(k rune) bool {
	return IsVietnameseConsonant(k)
}

func isVowelKey(k rune) bool {
	return IsVietnameseVowel(k)
}

// ParseSyllable decomposes buf into initial/glide/nucleus/coda spans,
// longest-match-first (spec.md §4.4). Two openings get special
// handling: "qu" parses as a single initial unit with the 'u' bound to
// it as a glide; "gi" before another vowel is an initial consonant
// (so "già" parses as gi|à), but "gi" in isolation or followed by a
// non-vowel re-parses as g+i (g initial, i starts the nucleus).
func ParseSyllable(buf []CompChar) SyllableView {
	n := len(buf)
	view := SyllableView{GlideIdx: -1}

	i := 0
	switch {
	case n >= 2 && buf[0].Key == 'q' && buf[1].Key == 'u':
		view.InitialStart, view.InitialEnd = 0, 1
		view.GlideIdx = 1
		i = 2
	case n >= 3 && buf[0].Key == 'g' && buf[1].Key == 'i' && isVowelKey(buf[2].Key):
		// "gi" before another vowel is the initial consonant in full
		// (già, giá, giống): the nucleus starts after it.
		view.InitialStart, view.InitialEnd = 0, 2
		i = 2
	case n >= 2 && buf[0].Key == 'g' && buf[1].Key == 'i' && (n < 3 || !isVowelKey(buf[2].Key)):
		// "gi" with nothing vowel-like after: re-parse as g + i, i
		// becomes the first nucleus vowel.
		view.InitialStart, view.InitialEnd = 0, 1
		i = 1
	default:
		for i < n && isConsonantKey(buf[i].Key) {
			i++
		}
		view.InitialStart, view.InitialEnd = 0, i
	}

	nucleusStart := i
	for i < n && isVowelKey(buf[i].Key) {
		i++
	}
	view.NucleusStart, view.NucleusEnd = nucleusStart, i

	// "o" or "u" opening a 2+ vowel nucleus right after a consonant
	// initial acts as a glide (the 'o' in hoa, 'u' in tuan) — a
	// bookkeeping distinction only; the tone positioner still scans the
	// whole nucleus span.
	if !view.HasGlide() && view.HasInitial() && view.NucleusLen() >= 2 {
		first := buf[nucleusStart].Key
		if first == 'o' || first == 'u' {
			view.GlideIdx = nucleusStart
		}
	}

	codaStart := i
	for i < n && isConsonantKey(buf[i].Key) {
		i++
	}
	view.CodaStart, view.CodaEnd = codaStart, i

	return view
}
