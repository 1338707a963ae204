package engine

import "testing"

func TestTelexMark(t *testing.T) {
	tx := NewTelex()
	tests := []struct {
		key      rune
		wantTone ToneMark
		wantOK   bool
	}{
		{'s', ToneSac, true},
		{'f', ToneHuyen, true},
		{'r', ToneHoi, true},
		{'x', ToneNga, true},
		{'j', ToneNang, true},
		{'S', ToneSac, true},
		{'q', ToneNone, false},
	}
	for _, tt := range tests {
		tone, ok := tx.Mark(tt.key)
		if tone != tt.wantTone || ok != tt.wantOK {
			t.Errorf("Mark(%q) = %v, %v; want %v, %v", tt.key, tone, ok, tt.wantTone, tt.wantOK)
		}
	}
}

func TestTelexToneModifierFor(t *testing.T) {
	tx := NewTelex()
	tests := []struct {
		key, target rune
		wantMod     ToneMod
		wantOK      bool
	}{
		{'w', 'a', ModBreve, true},
		{'w', 'o', ModHorn, true},
		{'w', 'u', ModHorn, true},
		{'w', 'e', ToneModNone, false},
		{'a', 'a', ModCircumflex, true},
		{'e', 'e', ModCircumflex, true},
		{'o', 'o', ModCircumflex, true},
		{'a', 'e', ToneModNone, false}, // key must match target to double-trigger
	}
	for _, tt := range tests {
		mod, ok := tx.ToneModifierFor(tt.key, tt.target)
		if mod != tt.wantMod || ok != tt.wantOK {
			t.Errorf("ToneModifierFor(%q, %q) = %v, %v; want %v, %v",
				tt.key, tt.target, mod, ok, tt.wantMod, tt.wantOK)
		}
	}
}

func TestTelexStrokeAndRemove(t *testing.T) {
	tx := NewTelex()
	if !tx.IsStroke('d') || !tx.IsStroke('D') {
		t.Error("IsStroke should accept 'd'/'D'")
	}
	if tx.IsStroke('t') {
		t.Error("IsStroke should reject 't'")
	}
	if !tx.IsRemove('z') {
		t.Error("IsRemove should accept 'z'")
	}
	if tx.IsRemove('d') {
		t.Error("IsRemove should reject 'd'")
	}
}

func TestTelexIsDoubleLetterTrigger(t *testing.T) {
	tx := NewTelex()
	for _, k := range []rune{'a', 'e', 'o'} {
		if !tx.IsDoubleLetterTrigger(k) {
			t.Errorf("IsDoubleLetterTrigger(%q) = false, want true", k)
		}
	}
	if tx.IsDoubleLetterTrigger('w') {
		t.Error("'w' should not be duplication-gated")
	}
}

func TestTelexIsWordBreaker(t *testing.T) {
	tx := NewTelex()
	for _, r := range []rune{' ', '.', ',', '\n'} {
		if !tx.IsWordBreaker(r, false) {
			t.Errorf("IsWordBreaker(%q) = false, want true", r)
		}
	}
	if tx.IsWordBreaker('a', false) {
		t.Error("IsWordBreaker('a') should be false")
	}
}
