package engine

import "testing"

func TestPositionTone(t *testing.T) {
	// single-vowel nucleus always carries the tone.
	if pos := PositionTone(keys("ba"), ParseSyllable(keys("ba")), false); pos != 1 {
		t.Errorf("single vowel: pos = %d, want 1", pos)
	}

	// a nucleus vowel already carrying a circumflex/horn/breve wins
	// regardless of position (rule 1): "ngươi" stress falls on ơ.
	buf := keys("nguoi")
	buf[3].ToneMod = ModHorn // the 'o' -> ơ
	view := ParseSyllable(buf)
	if pos := PositionTone(buf, view, false); pos != 3 {
		t.Errorf("marked vowel priority: pos = %d, want 3 (the ơ)", pos)
	}

	// with a coda and no marked vowel, the tone goes on the final nucleus
	// vowel: "toan" -> tone lands on 'a' at index 2.
	if pos := PositionTone(keys("toan"), ParseSyllable(keys("toan")), false); pos != 2 {
		t.Errorf("coda rule: pos = %d, want 2", pos)
	}

	// open oa/oe/uy diphthong: traditional puts the mark on the first
	// vowel, modern on the second (spec.md worked scenario, hoa -> hòa/hoà).
	if pos := PositionTone(keys("hoa"), ParseSyllable(keys("hoa")), false); pos != 1 {
		t.Errorf("traditional oa: pos = %d, want 1 (first vowel of nucleus)", pos)
	}
	if pos := PositionTone(keys("hoa"), ParseSyllable(keys("hoa")), true); pos != 2 {
		t.Errorf("modern oa: pos = %d, want 2 (second vowel of nucleus)", pos)
	}

	// open 2-vowel nucleus outside the oa/oe/uy/uy group always resolves
	// to the first vowel: "mua" -> tone on 'u'.
	if pos := PositionTone(keys("mua"), ParseSyllable(keys("mua")), false); pos != 1 {
		t.Errorf("open pair default: pos = %d, want 1", pos)
	}

	// no nucleus at all.
	if pos := PositionTone(nil, SyllableView{GlideIdx: -1}, false); pos != -1 {
		t.Errorf("empty nucleus: pos = %d, want -1", pos)
	}
}
