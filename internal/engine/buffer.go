package engine

import "unicode"

// toneModTable holds the base vowels that accept a circumflex/horn/breve
// modifier. Grounded on the teacher's unicodeVowelMarks table
// (internal/engine/unicode.go), narrowed to lowercase keys only because
// Compose applies caps last (spec.md §4.1).
var toneModTable = map[rune]map[ToneMod]rune{
	'a': {ModBreve: 'ă', ModCircumflex: 'â'},
	'e': {ModCircumflex: 'ê'},
	'o': {ModCircumflex: 'ô', ModHorn: 'ơ'},
	'u': {ModHorn: 'ư'},
}

// toneMarkTable holds every vowel (base or already vowel-mod'd) and its
// five tone-mark variants. Grounded on the teacher's unicodeVowelTones
// table, narrowed to lowercase.
var toneMarkTable = map[rune]map[ToneMark]rune{
	'a': {ToneSac: 'á', ToneHuyen: 'à', ToneHoi: 'ả', ToneNga: 'ã', ToneNang: 'ạ'},
	'ă': {ToneSac: 'ắ', ToneHuyen: 'ằ', ToneHoi: 'ẳ', ToneNga: 'ẵ', ToneNang: 'ặ'},
	'â': {ToneSac: 'ấ', ToneHuyen: 'ầ', ToneHoi: 'ẩ', ToneNga: 'ẫ', ToneNang: 'ậ'},
	'e': {ToneSac: 'é', ToneHuyen: 'è', ToneHoi: 'ẻ', ToneNga: 'ẽ', ToneNang: 'ẹ'},
	'ê': {ToneSac: 'ế', ToneHuyen: 'ề', ToneHoi: 'ể', ToneNga: 'ễ', ToneNang: 'ệ'},
	'i': {ToneSac: 'í', ToneHuyen: 'ì', ToneHoi: 'ỉ', ToneNga: 'ĩ', ToneNang: 'ị'},
	'o': {ToneSac: 'ó', ToneHuyen: 'ò', ToneHoi: 'ỏ', ToneNga: 'õ', ToneNang: 'ọ'},
	'ô': {ToneSac: 'ố', ToneHuyen: 'ồ', ToneHoi: 'ổ', ToneNga: 'ỗ', ToneNang: 'ộ'},
	'ơ': {ToneSac: 'ớ', ToneHuyen: 'ờ', ToneHoi: 'ở', ToneNga: 'ỡ', ToneNang: 'ợ'},
	'u': {ToneSac: 'ú', ToneHuyen: 'ù', ToneHoi: 'ủ', ToneNga: 'ũ', ToneNang: 'ụ'},
	'ư': {ToneSac: 'ứ', ToneHuyen: 'ừ', ToneHoi: 'ử', ToneNga: 'ữ', ToneNang: 'ự'},
	'y': {ToneSac: 'ý', ToneHuyen: 'ỳ', ToneHoi: 'ỷ', ToneNga: 'ỹ', ToneNang: 'ỵ'},
}

// Compose renders one CompChar to its final Unicode code point: base
// letter -> apply stroke -> apply tone modifier -> apply tone mark ->
// apply caps (spec.md §4.1). It never concatenates strings; every step
// is a dense table lookup.
func Compose(c CompChar) rune {
	base := c.Key

	if c.Stroke && base == 'd' {
		base = 'đ'
	}

	if mods, ok := toneModTable[base]; ok {
		if r, ok := mods[c.ToneMod]; ok {
			base = r
		}
	}

	if tones, ok := toneMarkTable[base]; ok {
		if r, ok := tones[c.ToneMark]; ok {
			base = r
		}
	}

	if c.Caps {
		base = unicode.ToUpper(base)
	}
	return base
}

// Buffer is the fixed-capacity composition buffer: the ordered sequence
// of CompChars representing exactly what is currently displayed for the
// in-progress word (spec.md §3). Owned exclusively by the engine.
type Buffer struct {
	chars [MaxBufferLen]CompChar
	n     int
}

// Len returns the number of CompChars currently held.
func (b *Buffer) Len() int { return b.n }

// At returns the CompChar at index i.
func (b *Buffer) At(i int) CompChar { return b.chars[i] }

// Push appends a CompChar. Silently ignored once the buffer is at
// capacity (spec.md §7, "capacity exceeded").
func (b *Buffer) Push(c CompChar) bool {
	if b.n >= MaxBufferLen {
		return false
	}
	b.chars[b.n] = c
	b.n++
	return true
}

// Pop removes the last CompChar, if any.
func (b *Buffer) Pop() (CompChar, bool) {
	if b.n == 0 {
		return CompChar{}, false
	}
	b.n--
	return b.chars[b.n], true
}

// ReplaceAt overwrites the CompChar at index i.
func (b *Buffer) ReplaceAt(i int, c CompChar) bool {
	if i < 0 || i >= b.n {
		return false
	}
	b.chars[i] = c
	return true
}

// Clear empties the buffer.
func (b *Buffer) Clear() { b.n = 0 }

// Slice returns the live CompChars as a slice view (not owned past the
// next mutation).
func (b *Buffer) Slice() []CompChar { return b.chars[:b.n] }

// Snapshot composes every CompChar into the displayed code-point
// sequence (spec.md §4.1).
func (b *Buffer) Snapshot() []rune {
	out := make([]rune, b.n)
	for i := 0; i < b.n; i++ {
		out[i] = Compose(b.chars[i])
	}
	return out
}

// Diff computes the minimal edit from a previous snapshot to a current
// one: the longest common prefix is kept, everything after it in prev
// is deleted and everything after it in cur is inserted (spec.md §4.1).
// backspace and chars are clamped to the Result contract's limits
// (spec.md §7, capacity exceeded is a silent clamp, not an error).
func Diff(prev, cur []rune) (backspace uint8, chars []rune) {
	l := 0
	for l < len(prev) && l < len(cur) && prev[l] == cur[l] {
		l++
	}
	del := len(prev) - l
	if del > 255 {
		del = 255
	}
	ins := cur[l:]
	if len(ins) > MaxResultChars {
		ins = ins[:MaxResultChars]
	}
	return uint8(del), ins
}
