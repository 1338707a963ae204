package engine

import "testing"

func TestVNIMark(t *testing.T) {
	v := NewVNI()
	tests := []struct {
		key      rune
		wantTone ToneMark
		wantOK   bool
	}{
		{'1', ToneSac, true},
		{'2', ToneHuyen, true},
		{'3', ToneHoi, true},
		{'4', ToneNga, true},
		{'5', ToneNang, true},
		{'9', ToneNone, false},
	}
	for _, tt := range tests {
		tone, ok := v.Mark(tt.key)
		if tone != tt.wantTone || ok != tt.wantOK {
			t.Errorf("Mark(%q) = %v, %v; want %v, %v", tt.key, tone, ok, tt.wantTone, tt.wantOK)
		}
	}
}

func TestVNIToneModifierFor(t *testing.T) {
	v := NewVNI()
	tests := []struct {
		key, target rune
		wantMod     ToneMod
		wantOK      bool
	}{
		{'6', 'a', ModCircumflex, true},
		{'6', 'e', ModCircumflex, true},
		{'6', 'o', ModCircumflex, true},
		{'6', 'u', ToneModNone, false},
		{'7', 'o', ModHorn, true},
		{'7', 'u', ModHorn, true},
		{'8', 'a', ModBreve, true},
		{'8', 'o', ToneModNone, false},
	}
	for _, tt := range tests {
		mod, ok := v.ToneModifierFor(tt.key, tt.target)
		if mod != tt.wantMod || ok != tt.wantOK {
			t.Errorf("ToneModifierFor(%q, %q) = %v, %v; want %v, %v",
				tt.key, tt.target, mod, ok, tt.wantMod, tt.wantOK)
		}
	}
}

func TestVNIStrokeRemoveNoDoubleGating(t *testing.T) {
	v := NewVNI()
	if !v.IsStroke('9') {
		t.Error("IsStroke('9') should be true")
	}
	if !v.IsRemove('0') {
		t.Error("IsRemove('0') should be true")
	}
	if v.IsDoubleLetterTrigger('6') {
		t.Error("VNI never gates on duplication")
	}
}

func TestIsVNIDigit(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		if !IsVNIDigit(r) {
			t.Errorf("IsVNIDigit(%q) = false, want true", r)
		}
	}
	if IsVNIDigit('a') {
		t.Error("IsVNIDigit('a') should be false")
	}
}
