package engine

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// composedIndex is the inverse of toneModTable/toneMarkTable
// (buffer.go): every fully-composed Vietnamese letter maps back to the
// base key, tone modifier and tone mark that produced it.
var composedIndex = buildComposedIndex()

type composedEntry struct {
	base rune
	mod  ToneMod
	mark ToneMark
}

func buildComposedIndex() map[rune]composedEntry {
	idx := map[rune]composedEntry{'d': {'d', ToneModNone, ToneNone}, 'đ': {'d', ToneModNone, ToneNone}}
	for base, mods := range toneModTable {
		idx[base] = composedEntry{base, ToneModNone, ToneNone}
		for mod, r := range mods {
			idx[r] = composedEntry{base, mod, ToneNone}
		}
	}
	for vowel, tones := range toneMarkTable {
		entry, ok := idx[vowel]
		if !ok {
			entry = composedEntry{vowel, ToneModNone, ToneNone}
		}
		for tone, r := range tones {
			e := entry
			e.mark = tone
			idx[r] = e
		}
	}
	for _, base := range []rune{'a', 'e', 'i', 'o', 'u', 'y'} {
		if _, ok := idx[base]; !ok {
			idx[base] = composedEntry{base, ToneModNone, ToneNone}
		}
	}
	for _, c := range []rune("bcghklmnpqrstvx") {
		idx[c] = composedEntry{c, ToneModNone, ToneNone}
	}
	return idx
}

// decomposeRune resolves a single displayed Vietnamese letter back to
// the CompChar that composes to it.
func decomposeRune(r rune) CompChar {
	caps := unicode.IsUpper(r)
	lower := unicode.ToLower(r)

	if lower == 'đ' {
		return CompChar{Key: 'd', Stroke: true, Caps: caps}
	}
	if entry, ok := composedIndex[lower]; ok {
		return CompChar{Key: entry.base, ToneMod: entry.mod, ToneMark: entry.mark, Caps: caps}
	}
	return CompChar{Key: lower, Caps: caps}
}

// RestoreWord seeds the engine from a host-supplied Vietnamese word so
// that further edits (backspace, modifier keys) behave as if
// composition had produced it (spec.md §6, command `restore_word`).
// The raw log is seeded with the word's base letters; this is an
// approximation of the user's literal keystrokes (the original key
// sequence is not recoverable from the composed form alone), good
// enough for ESC restore to reproduce a legible typo-free fallback.
func (e *Engine) RestoreWord(word string) bool {
	if word == "" {
		return false
	}
	// Hosts (especially on macOS) may deliver decomposed Unicode; the
	// composedIndex lookup table only recognizes precomposed
	// letters, so normalize first.
	word = norm.NFC.String(word)
	e.buf.Clear()
	e.raw.Clear()
	for _, r := range word {
		c := decomposeRune(r)
		if !e.buf.Push(c) {
			break
		}
		e.raw.Push(RawEntry{Key: c.Key, Caps: c.Caps})
	}
	return true
}
