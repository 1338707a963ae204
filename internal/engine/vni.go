package engine

// VNI implements the VNI input method, where digit keys select tone
// marks and vowel modifiers (spec.md §4.3). Grounded on the teacher's
// VNIMethod (internal/engine/vni.go), restructured to the
// Mark/ToneModifierFor/IsStroke/IsRemove contract.
type VNI struct{}

// NewVNI creates the VNI method table.
func NewVNI() *VNI { return &VNI{} }

func (v *VNI) Name() string { return "VNI" }

var vniToneKeys = map[rune]ToneMark{
	'1': ToneSac,
	'2': ToneHuyen,
	'3': ToneHoi,
	'4': ToneNga,
	'5': ToneNang,
}

func (v *VNI) Mark(key rune) (ToneMark, bool) {
	tone, ok := vniToneKeys[key]
	return tone, ok
}

// vniModTargets: 6 circumflex (a,e,o); 7 horn (o,u); 8 breve (a).
var vniModTargets = map[rune]map[rune]ToneMod{
	'6': {'a': ModCircumflex, 'e': ModCircumflex, 'o': ModCircumflex},
	'7': {'o': ModHorn, 'u': ModHorn},
	'8': {'a': ModBreve},
}

// ToneModifierFor resolves the modifier key would apply to
// targetVowel, or ok=false if key does not modify that vowel.
func (v *VNI) ToneModifierFor(key rune, targetVowel rune) (ToneMod, bool) {
	targets, ok := vniModTargets[key]
	if !ok {
		return ToneModNone, false
	}
	mod, ok := targets[targetVowel]
	return mod, ok
}

func (v *VNI) IsStroke(key rune) bool { return key == '9' }

func (v *VNI) IsRemove(key rune) bool { return key == '0' }

// IsDoubleLetterTrigger is always false for VNI: every modifier is a
// dedicated digit key, so there is no duplication gating to apply.
func (v *VNI) IsDoubleLetterTrigger(key rune) bool { return false }

func (v *VNI) IsWordBreaker(key rune, caps bool) bool {
	switch key {
	case ' ', '.', ',', '!', '?', ';', ':', '\n', '\t':
		return true
	}
	return false
}

// IsVNIDigit reports whether r is one of the VNI modifier digits.
func IsVNIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
