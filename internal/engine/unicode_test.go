package engine

import "testing"

func TestIsVietnameseVowel(t *testing.T) {
	tests := []struct {
		char rune
		want bool
	}{
		{'a', true}, {'ă', true}, {'â', true}, {'e', true}, {'ê', true},
		{'i', true}, {'o', true}, {'ô', true}, {'ơ', true}, {'u', true},
		{'ư', true}, {'y', true}, {'A', true}, {'Ơ', true},
		{'b', false}, {'đ', false}, {'z', false},
	}
	for _, tt := range tests {
		if got := IsVietnameseVowel(tt.char); got != tt.want {
			t.Errorf("IsVietnameseVowel(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}
}

func TestIsVietnameseConsonant(t *testing.T) {
	tests := []struct {
		char rune
		want bool
	}{
		{'b', true}, {'d', true}, {'đ', true}, {'Đ', true}, {'x', true},
		{'a', false}, {'ê', false}, {'w', false}, {'j', false},
	}
	for _, tt := range tests {
		if got := IsVietnameseConsonant(tt.char); got != tt.want {
			t.Errorf("IsVietnameseConsonant(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}
}
