package engine

import "testing"

func TestApplyToneSetsAndToggles(t *testing.T) {
	var buf Buffer
	buf.Push(CompChar{Key: 'b'})
	buf.Push(CompChar{Key: 'a'})

	if !ApplyTone(&buf, ToneSac, false) {
		t.Fatal("ApplyTone should succeed on a single-vowel nucleus")
	}
	if buf.At(1).ToneMark != ToneSac {
		t.Errorf("tone carrier = %+v, want ToneSac", buf.At(1))
	}

	// pressing the same tone key again removes it (toggle law).
	if !ApplyTone(&buf, ToneSac, false) {
		t.Fatal("ApplyTone toggle-off should still report success")
	}
	if buf.At(1).ToneMark != ToneNone {
		t.Errorf("tone after toggle = %v, want ToneNone", buf.At(1).ToneMark)
	}
}

func TestApplyToneEmptyBuffer(t *testing.T) {
	var buf Buffer
	if ApplyTone(&buf, ToneSac, false) {
		t.Error("ApplyTone on an empty buffer should fail")
	}
}

func TestApplyMarkDoubleLetterCircumflex(t *testing.T) {
	tx := NewTelex()
	var buf Buffer
	buf.Push(CompChar{Key: 'a'})

	if !ApplyMark(&buf, tx, 'a') {
		t.Fatal("second 'a' should trigger circumflex")
	}
	if buf.At(0).ToneMod != ModCircumflex {
		t.Errorf("ToneMod = %v, want ModCircumflex", buf.At(0).ToneMod)
	}
}

func TestApplyMarkRejectsNonAdjacentDuplicate(t *testing.T) {
	tx := NewTelex()
	var buf Buffer
	buf.Push(CompChar{Key: 'a'})
	buf.Push(CompChar{Key: 'o'})

	// the nucleus is "ao"; pressing 'a' again only matches the first
	// vowel, not the immediately preceding one ('o'), so the duplication
	// rule must reject it.
	if ApplyMark(&buf, tx, 'a') {
		t.Error("ApplyMark should only trigger on the immediately preceding identical vowel")
	}
}

func TestApplyMarkRejectsDuplicateAcrossCoda(t *testing.T) {
	tx := NewTelex()
	var buf Buffer
	buf.Push(CompChar{Key: 'c'})
	buf.Push(CompChar{Key: 'o'})
	buf.Push(CompChar{Key: 'n'})

	// "con" already closed its nucleus with the 'n' coda; a later 'o'
	// is the start of new content, not a retroactive circumflex on the
	// vowel that coda already followed.
	if ApplyMark(&buf, tx, 'o') {
		t.Error("ApplyMark should not double a vowel once a coda has been typed after it")
	}
}

func TestApplyMarkPairedHorn(t *testing.T) {
	tx := NewTelex()
	var buf Buffer
	buf.Push(CompChar{Key: 'u'})
	buf.Push(CompChar{Key: 'o'})

	if !ApplyMark(&buf, tx, 'w') {
		t.Fatal("'w' after uo should apply paired horn")
	}
	if buf.At(0).ToneMod != ModHorn || buf.At(1).ToneMod != ModHorn {
		t.Errorf("got %+v / %+v, want both ModHorn", buf.At(0), buf.At(1))
	}

	// pressing 'w' again toggles both off.
	if !ApplyMark(&buf, tx, 'w') {
		t.Fatal("second 'w' should still report success (toggle off)")
	}
	if buf.At(0).ToneMod != ToneModNone || buf.At(1).ToneMod != ToneModNone {
		t.Errorf("got %+v / %+v, want both cleared", buf.At(0), buf.At(1))
	}
}

func TestApplyWShortcut(t *testing.T) {
	var buf Buffer
	if !ApplyWShortcut(&buf) {
		t.Fatal("ApplyWShortcut should succeed on an empty buffer")
	}
	if buf.Len() != 1 || Compose(buf.At(0)) != 'ư' {
		t.Errorf("buffer = %q, want 'ư'", string(buf.Snapshot()))
	}
}

func TestApplyStrokeToggles(t *testing.T) {
	var buf Buffer
	buf.Push(CompChar{Key: 'd'})

	if !ApplyStroke(&buf) {
		t.Fatal("ApplyStroke should succeed")
	}
	if !buf.At(0).Stroke {
		t.Error("Stroke not set")
	}
	if !ApplyStroke(&buf) {
		t.Fatal("second ApplyStroke should still succeed")
	}
	if buf.At(0).Stroke {
		t.Error("Stroke should have toggled off")
	}
}

func TestApplyStrokeNoD(t *testing.T) {
	var buf Buffer
	buf.Push(CompChar{Key: 'b'})
	if ApplyStroke(&buf) {
		t.Error("ApplyStroke should fail when there is no 'd' in the initial span")
	}
}

func TestApplyRemoveClearsNucleusOnly(t *testing.T) {
	var buf Buffer
	buf.Push(CompChar{Key: 't'})
	buf.Push(CompChar{Key: 'a', ToneMod: ModCircumflex, ToneMark: ToneSac})
	buf.Push(CompChar{Key: 'n'})

	if !ApplyRemove(&buf) {
		t.Fatal("ApplyRemove should report a change")
	}
	if buf.At(1).ToneMod != ToneModNone || buf.At(1).ToneMark != ToneNone {
		t.Errorf("nucleus char = %+v, want cleared", buf.At(1))
	}
	if buf.At(0).Key != 't' || buf.At(2).Key != 'n' {
		t.Error("ApplyRemove should not touch initial/coda")
	}
}

func TestApplyRemoveLeavesStrokeAlone(t *testing.T) {
	var buf Buffer
	buf.Push(CompChar{Key: 'd', Stroke: true})
	buf.Push(CompChar{Key: 'a', ToneMark: ToneSac})
	ApplyRemove(&buf)
	if !buf.At(0).Stroke {
		t.Error("ApplyRemove must not revert đ -> d")
	}
}
