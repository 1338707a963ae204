package engine

import "unicode"

// IsVietnameseVowel reports whether r (composed or base, any case) is one
// of the twelve Vietnamese vowel letters. Used by the English detector's
// vowel/consonant ratio layer (spec.md §4.8 step 5) and by the parser's
// isVowelKey to classify a raw keystroke.
func IsVietnameseVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'ă', 'â', 'e', 'ê', 'i', 'o', 'ô', 'ơ', 'u', 'ư', 'y':
		return true
	}
	return false
}

// IsVietnameseConsonant reports whether r is one of the Vietnamese
// consonant letters, including đ. Used by the parser's isConsonantKey
// to classify a raw keystroke.
func IsVietnameseConsonant(r rune) bool {
	switch unicode.ToLower(r) {
	case 'b', 'c', 'd', 'đ', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}
