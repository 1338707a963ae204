package engine

import "unicode"

// Transformer applies tone/mark/stroke/remove operations to a Buffer
// (spec.md §4.6). Every function here mutates buf directly; callers
// that must honor validator rejection (spec.md §4.6, "a proposal that
// would produce an invalid syllable is rejected") snapshot *buf before
// calling and restore it if Validate rejects the result.

// ApplyTone scans the buffer for the tone carrier (via PositionTone)
// and writes mark there. Pressing the same tone key a second time at
// the same position removes it (spec.md §4.6, §8 "tone toggle" law).
func ApplyTone(buf *Buffer, mark ToneMark, modernTone bool) bool {
	view := ParseSyllable(buf.Slice())
	pos := PositionTone(buf.Slice(), view, modernTone)
	if pos < 0 {
		return false
	}
	c := buf.At(pos)
	if c.ToneMark == mark {
		c.ToneMark = ToneNone
	} else {
		c.ToneMark = mark
	}
	buf.ReplaceAt(pos, c)
	return true
}

// ApplyMark applies a vowel modifier (circumflex/horn/breve) selected
// by key. For Telex's 'w' the scan may target two adjacent nucleus
// vowels at once to produce ươ (spec.md §4.6).
func ApplyMark(buf *Buffer, method Method, key rune) bool {
	view := ParseSyllable(buf.Slice())
	nucleus := buf.Slice()[view.NucleusStart:view.NucleusEnd]
	n := len(nucleus)
	if n == 0 {
		return false
	}

	if n >= 2 {
		last := nucleus[n-1]
		second := nucleus[n-2]
		if mod, ok := method.ToneModifierFor(key, last.Key); ok && mod == ModHorn &&
			second.Key == 'u' && last.Key == 'o' {
			i1 := view.NucleusStart + n - 2
			i2 := view.NucleusStart + n - 1
			c1, c2 := buf.At(i1), buf.At(i2)
			if c1.ToneMod == ModHorn && c2.ToneMod == ModHorn {
				c1.ToneMod, c2.ToneMod = ToneModNone, ToneModNone
			} else {
				c1.ToneMod, c2.ToneMod = ModHorn, ModHorn
			}
			buf.ReplaceAt(i1, c1)
			buf.ReplaceAt(i2, c2)
			return true
		}
	}

	lowerKey := unicode.ToLower(key)
	for idx := n - 1; idx >= 0; idx-- {
		cIdx := view.NucleusStart + idx
		c := buf.At(cIdx)

		mod, ok := method.ToneModifierFor(key, c.Key)
		if !ok {
			continue
		}
		if method.IsDoubleLetterTrigger(key) && (idx != n-1 || c.Key != lowerKey || view.NucleusEnd != buf.Len()) {
			// Only the immediately preceding identical vowel triggers
			// the duplication rule (spec.md §4.5), and only while it is
			// still the live edge of the buffer: once a coda consonant
			// has been typed after it, a later same-letter keystroke is
			// new content, not a retroactive modifier (a coda already
			// closed that syllable's nucleus).
			continue
		}

		if c.ToneMod == mod {
			c.ToneMod = ToneModNone
		} else {
			c.ToneMod = mod
		}
		buf.ReplaceAt(cIdx, c)
		return true
	}
	return false
}

// ApplyWShortcut handles Telex's standalone 'w' producing a lone 'ư'
// when there is no preceding vowel to modify (spec.md §4.3, "w ...
// or standalone ư"; §4.9 step 6 names this as its own pipeline stage).
func ApplyWShortcut(buf *Buffer) bool {
	if buf.Len() >= MaxBufferLen {
		return false
	}
	buf.Push(CompChar{Key: 'u', ToneMod: ModHorn})
	return true
}

// ApplyStroke converts the first applicable 'd' in the initial span to
// đ, or back (spec.md §4.6).
func ApplyStroke(buf *Buffer) bool {
	view := ParseSyllable(buf.Slice())
	for idx := view.InitialStart; idx < view.InitialEnd; idx++ {
		c := buf.At(idx)
		if c.Key == 'd' {
			c.Stroke = !c.Stroke
			buf.ReplaceAt(idx, c)
			return true
		}
	}
	return false
}

// ApplyRemove strips all tone marks and vowel modifiers from the
// nucleus while preserving base letters (spec.md §4.6). The stroke on
// đ is a distinct field from tone marks/modifiers and is left alone —
// neither Telex 'z' nor VNI '0' is documented as reverting đ back to d.
func ApplyRemove(buf *Buffer) bool {
	view := ParseSyllable(buf.Slice())
	changed := false
	for idx := view.NucleusStart; idx < view.NucleusEnd; idx++ {
		c := buf.At(idx)
		if c.ToneMod != ToneModNone || c.ToneMark != ToneNone {
			c.ToneMod = ToneModNone
			c.ToneMark = ToneNone
			buf.ReplaceAt(idx, c)
			changed = true
		}
	}
	return changed
}
