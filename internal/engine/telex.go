package engine

import "unicode"

// Telex implements the Telex input method as a static predicate table
// (spec.md §4.3). Grounded on the teacher's TelexMethod
// (internal/engine/telex.go) and telexHornPatterns/telexDoublePatterns
// tables, restructured from the teacher's ProcessChar-does-everything
// shape into the Mark/ToneModifierFor/IsStroke/IsRemove contract the
// Transformer (4.6) drives.
type Telex struct{}

// NewTelex creates the Telex method table.
func NewTelex() *Telex { return &Telex{} }

func (t *Telex) Name() string { return "Telex" }

var telexToneKeys = map[rune]ToneMark{
	's': ToneSac,
	'f': ToneHuyen,
	'r': ToneHoi,
	'x': ToneNga,
	'j': ToneNang,
}

func (t *Telex) Mark(key rune) (ToneMark, bool) {
	tone, ok := telexToneKeys[unicode.ToLower(key)]
	return tone, ok
}

// telexDoubleTrigger is the same-letter-duplication rule (aa/ee/oo ->
// circumflex): spec.md §4.3 and §4.5.
var telexDoubleTrigger = map[rune]ToneMod{
	'a': ModCircumflex,
	'e': ModCircumflex,
	'o': ModCircumflex,
}

// telexWTarget resolves the overloaded 'w' key: breve on a, horn on
// o/u (spec.md §4.3, "w -> horn on {o,u}, breve on {a}").
var telexWTarget = map[rune]ToneMod{
	'a': ModBreve,
	'o': ModHorn,
	'u': ModHorn,
}

// ToneModifierFor resolves the modifier key would apply to
// targetVowel, or ok=false if key does not modify that vowel.
func (t *Telex) ToneModifierFor(key rune, targetVowel rune) (ToneMod, bool) {
	k := unicode.ToLower(key)
	v := unicode.ToLower(targetVowel)

	if k == 'w' {
		mod, ok := telexWTarget[v]
		return mod, ok
	}
	if k == v {
		if mod, ok := telexDoubleTrigger[k]; ok {
			return mod, true
		}
	}
	return ToneModNone, false
}

func (t *Telex) IsStroke(key rune) bool {
	return unicode.ToLower(key) == 'd'
}

func (t *Telex) IsRemove(key rune) bool {
	return unicode.ToLower(key) == 'z'
}

// IsDoubleLetterTrigger reports that a, e and o only act as modifiers
// when duplicating the preceding identical vowel; 'w' is never
// duplication-gated (it targets the preceding vowel directly, or
// stands alone as a lone 'ư').
func (t *Telex) IsDoubleLetterTrigger(key rune) bool {
	_, ok := telexDoubleTrigger[unicode.ToLower(key)]
	return ok
}

func (t *Telex) IsWordBreaker(key rune, caps bool) bool {
	switch key {
	case ' ', '.', ',', '!', '?', ';', ':', '\n', '\t':
		return true
	}
	return false
}
