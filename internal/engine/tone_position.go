package engine

// PositionTone selects the buffer index that should carry a tone mark,
// in the priority order of spec.md §4.5. It returns -1 if the syllable
// has no nucleus to carry a tone.
//
// Rule 2's open-diphthong exception is resolved against the worked
// scenario in spec.md §8 ("h o a f" -> "hòa" traditional, "hoà"
// modern): for the oa/oe/uy group specifically, traditional places the
// mark on the first vowel and modern on the second. Diphthongs like
// ia/ua/ưa are not part of that old/new dispute — the opening vowel is
// unambiguously the syllable nucleus in both conventions (múa, mía,
// lửa always carry the mark on the first letter) — so they always
// resolve to the first vowel regardless of modernTone. The teacher's
// findTonePosition (internal/engine/unicode.go) special-cases ia/ua
// too, but its ua/ưa branch returns the second vowel while its own
// comment cites "mùa, lừa" as examples — words whose tone sits on the
// first vowel — so that branch is not carried forward.
func PositionTone(buf []CompChar, view SyllableView, modernTone bool) int {
	n := view.NucleusLen()
	if n == 0 {
		return -1
	}
	nucleus := buf[view.NucleusStart:view.NucleusEnd]

	if n == 1 {
		return view.NucleusStart
	}

	// Rule 1: a vowel that already carries a circumflex/horn/breve
	// always wins, deepest match first in case more than one do.
	for idx := n - 1; idx >= 0; idx-- {
		if nucleus[idx].ToneMod != ToneModNone {
			return view.NucleusStart + idx
		}
	}

	if view.HasCoda() {
		// Rule 3: with a coda, the mark goes on the final vowel of the
		// nucleus (toán, uyến — though uyến is normally already caught
		// by Rule 1 via its marked ê).
		return view.NucleusEnd - 1
	}

	// Rule 2: open nucleus (no coda), 2+ vowels.
	first := nucleus[0].Key
	second := nucleus[1].Key

	isOpenGlideGroup := (first == 'o' && (second == 'a' || second == 'e' || second == 'ă')) ||
		(first == 'u' && second == 'y')

	if isOpenGlideGroup {
		if modernTone {
			return view.NucleusStart + 1
		}
		return view.NucleusStart
	}

	if n == 2 {
		return view.NucleusStart
	}

	// Rule 4 tie-break for 3+ open vowels: middle position.
	return view.NucleusStart + 1
}
