package engine

import "unicode"

// validInitials are the legal Vietnamese initial consonants (phụ âm đầu).
var validInitials = map[string]bool{
	// Single consonants.
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,
	// Double consonants.
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
	// Triple consonant.
	"ngh": true,
}

// englishOnlyInitials are consonant clusters that occur in loanwords
// but never open a native Vietnamese syllable (spec.md §4.7, §4.8 step 3).
var englishOnlyInitials = map[string]bool{
	"bl": true, "br": true, "cr": true, "dr": true, "fl": true, "fr": true,
	"gl": true, "gr": true, "pl": true, "pr": true, "sk": true, "sl": true,
	"sm": true, "sn": true, "sp": true, "st": true, "sw": true, "tw": true,
}

// validFinals are the legal Vietnamese final consonants (phụ âm cuối)
// plus the semivowel codas.
var validFinals = map[string]bool{
	"c": true, "m": true, "n": true, "p": true, "t": true,
	"ch": true, "ng": true, "nh": true,
	"i": true, "y": true, "o": true, "u": true,
}

// frontCodas are the final consonants that require a fronted nucleus
// vowel (spec.md §4.7, "-ch/-nh require a fronted vowel").
var frontCodas = map[string]bool{"ch": true, "nh": true}

// frontVowels are nucleus-final base letters compatible with frontCodas
// (anh, sách, kênh, huỳnh all end -ch/-nh on one of these).
var frontVowels = map[rune]bool{'a': true, 'i': true, 'e': true, 'y': true}

// legalNuclei2 are fully legal two-letter nucleus base sequences — no
// particular diacritic is required for legality.
var legalNuclei2 = map[string]bool{
	"ai": true, "ao": true, "au": true, "ay": true,
	"eo": true, "ia": true, "iu": true,
	"oa": true, "oe": true, "oi": true,
	"ua": true, "ue": true, "ui": true, "uy": true,
	"yu": true,
}

// legalNuclei3 are fully legal three-letter nucleus base sequences.
var legalNuclei3 = map[string]bool{
	"ieu": true, "oai": true, "oay": true, "oeo": true,
	"uoi": true, "uou": true, "uya": true, "uye": true, "yeu": true,
}

// almostLegalNuclei2 lists base pairs that are Vietnamese only with a
// specific diacritic present; without it the validator reports
// Rescuable rather than Invalid (spec.md §4.7, "ư+horn valid only in
// specific contexts"; "eu is invalid (must be êu)").
var almostLegalNuclei2 = map[string]bool{
	"eu": true, // legal only as êu (circumflex on e)
	"uo": true, // legal only as uô (circumflex on o) or ươ (horn on both)
	"ie": true, // legal only as iê (circumflex on e): biết, việt, tiếng
	"ye": true, // legal only as yê (circumflex on e): yêu, yên, chuyên
}

// spellingRules maps an invalid onset+vowel combination to the
// spelling Vietnamese actually uses (k/c/q and g/gh, ng/ngh
// complementary distribution, spec.md §4.7).
var spellingRules = map[string]string{
	"ce": "ke", "ci": "ki", "cy": "ky",
	"ka": "ca", "ko": "co", "ku": "cu",
	"ge": "ghe",
	"nge": "nghe", "ngi": "nghi",
	"gha": "ga", "gho": "go", "ghu": "gu",
	"ngha": "nga", "ngho": "ngo", "nghu": "ngu",
}

// Verdict is the three-way answer the syllable validator gives
// (spec.md §4.7).
type Verdict int

const (
	// Invalid: the buffer cannot be a Vietnamese syllable as written.
	Invalid Verdict = iota
	// Valid: the buffer is a legal Vietnamese syllable.
	Valid
	// Rescuable: invalid as written, but exactly one more diacritic on
	// an existing vowel would make it legal (spec.md §4.7's third
	// class, used to resolve English/Vietnamese conflicts).
	Rescuable
)

// baseString renders the base (lowercased, unmarked) keys of a CompChar
// span as a plain string for table lookups.
func baseString(buf []CompChar, start, end int) string {
	out := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, byte(unicode.ToLower(buf[i].Key)))
	}
	return string(out)
}

// Validate checks whether buf, decomposed per view, is a legal
// Vietnamese syllable (spec.md §4.7). It is the gate the Transformer
// (4.6) consults before committing any tone/mark/stroke proposal,
// unless free_tone_enabled bypasses it.
func Validate(buf []CompChar, view SyllableView) Verdict {
	if view.NucleusLen() == 0 {
		return Invalid
	}

	onset := baseString(buf, view.InitialStart, view.InitialEnd)
	if onset != "" {
		onsetCheck := onset
		if onsetCheck == "đ" {
			onsetCheck = "d"
		}
		if englishOnlyInitials[onsetCheck] {
			return Invalid
		}
		if !isValidInitial(onsetCheck) {
			return Invalid
		}
	}

	coda := baseString(buf, view.CodaStart, view.CodaEnd)
	if coda != "" && !validFinals[coda] {
		return Invalid
	}

	nucleus := baseString(buf, view.NucleusStart, view.NucleusEnd)
	nucleusVerdict := validateNucleus(buf, view, nucleus)
	if nucleusVerdict != Valid {
		return nucleusVerdict
	}

	if coda != "" && frontCodas[coda] {
		lastVowel := []rune(nucleus)[len([]rune(nucleus))-1]
		if !frontVowels[lastVowel] {
			return Invalid
		}
	}

	if onset == "q" {
		// ParseSyllable binds the glide 'u' to the initial, so by the
		// time onset == "q" the nucleus never starts with 'u' itself.
		// The glide check is what enforces q always pairing with u.
		if !(view.HasGlide() && view.GlideIdx == view.InitialEnd) {
			return Invalid
		}
	} else if onset != "" && nucleus != "" {
		if invalid := spellingRules[onset+string([]rune(nucleus)[0])]; invalid != "" {
			return Invalid
		}
		if distributionVerdict := checkDistribution(onset, []rune(nucleus)[0]); distributionVerdict != Valid {
			return distributionVerdict
		}
	}

	for i := view.InitialStart; i+1 < view.CodaEnd; i++ {
		c1 := byte(unicode.ToLower(buf[i].Key))
		c2 := byte(unicode.ToLower(buf[i+1].Key))
		if !BigramLegal(rune(c1), rune(c2)) {
			return Invalid
		}
	}

	return Valid
}

// checkDistribution enforces k/c and g/gh, ng/ngh complementary
// distribution (spec.md §4.7). q/qu pairing is enforced in Validate via
// the parser's glide span, not here.
func checkDistribution(onset string, firstNucleus rune) Verdict {
	front := firstNucleus == 'i' || firstNucleus == 'e' || firstNucleus == 'y'
	switch onset {
	case "k":
		if !front {
			return Invalid
		}
	case "c":
		if front {
			return Invalid
		}
	case "g":
		if front {
			return Invalid
		}
	case "gh":
		if !front {
			return Invalid
		}
	case "ng":
		if front {
			return Invalid
		}
	case "ngh":
		if !front {
			return Invalid
		}
	}
	return Valid
}

// validateNucleus checks the nucleus vowel cluster against the legal
// diphthong/triphthong tables and the tone+mod integration rules
// (spec.md §4.7).
func validateNucleus(buf []CompChar, view SyllableView, nucleus string) Verdict {
	n := len([]rune(nucleus))
	switch n {
	case 0:
		return Invalid
	case 1:
		return validateSingleNucleus(buf, view)
	case 2:
		if legalNuclei2[nucleus] {
			return Valid
		}
		if almostLegalNuclei2[nucleus] {
			return validateAlmostLegalPair(buf, view, nucleus)
		}
		return Invalid
	case 3:
		if legalNuclei3[nucleus] {
			return Valid
		}
		return Invalid
	default:
		return Invalid
	}
}

// validateSingleNucleus enforces that ă and â never appear in an open
// syllable (spec.md §4.7, "ă forbids certain codas" — more precisely,
// ă/â require one).
func validateSingleNucleus(buf []CompChar, view SyllableView) Verdict {
	c := buf[view.NucleusStart]
	needsCoda := (c.Key == 'a' && c.ToneMod == ModBreve) || (c.Key == 'a' && c.ToneMod == ModCircumflex)
	if needsCoda && !view.HasCoda() {
		return Invalid
	}
	return Valid
}

// validateAlmostLegalPair resolves "eu", "uo", "ie" and "ye", which are
// only legal with a specific diacritic present.
func validateAlmostLegalPair(buf []CompChar, view SyllableView, nucleus string) Verdict {
	first := buf[view.NucleusStart]
	second := buf[view.NucleusStart+1]

	switch nucleus {
	case "eu":
		if first.ToneMod == ModCircumflex {
			return Valid
		}
		return Rescuable
	case "uo":
		if second.ToneMod == ModCircumflex {
			return Valid
		}
		if first.ToneMod == ModHorn && second.ToneMod == ModHorn {
			return Valid
		}
		return Rescuable
	case "ie", "ye":
		if second.ToneMod == ModCircumflex {
			return Valid
		}
		return Rescuable
	}
	return Invalid
}

// isValidInitial checks if a string is a valid Vietnamese initial.
func isValidInitial(s string) bool {
	if s == "" {
		return true
	}
	if validInitials[s] {
		return true
	}
	if len([]rune(s)) == 1 {
		switch []rune(s)[0] {
		case 'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
			return true
		}
	}
	return false
}
