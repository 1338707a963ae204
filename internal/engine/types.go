// Package engine provides the core input method engine for Vietnamese typing.
//
// It is a single-threaded, command/response state machine: every call
// mutates engine state and returns a Result describing the minimum edit
// the host must apply to the focused text field. See Engine.ProcessKey
// (orchestrator.go) for the keystroke pipeline and Config for the
// mutable settings record.
package engine

// KeyEvent represents one logical keystroke delivered by the host.
// KeySym follows the X11 keysym convention the teacher daemon already
// speaks on the wire; Modifiers carries the Shift/Ctrl/Alt/Lock state.
type KeyEvent struct {
	KeySym    uint32
	Modifiers uint32
}

// Modifier flags for keyboard state.
const (
	ModNone    uint32 = 0
	ModShift   uint32 = 1 << 0
	ModLock    uint32 = 1 << 1 // Caps Lock
	ModControl uint32 = 1 << 2
	ModMod1    uint32 = 1 << 3 // Alt
	ModMod4    uint32 = 1 << 6 // Super/Windows key
)

// Common keysym values for Vietnamese input.
const (
	KeyBackspace uint32 = 0xff08
	KeyReturn    uint32 = 0xff0d
	KeyEscape    uint32 = 0xff1b
	KeySpace     uint32 = 0x0020
	KeyTab       uint32 = 0xff09
	KeyDelete    uint32 = 0xffff

	KeyA uint32 = 0x0061
	KeyZ uint32 = 0x007a

	KeyShiftA uint32 = 0x0041
	KeyShiftZ uint32 = 0x005a

	Key0 uint32 = 0x0030
	Key9 uint32 = 0x0039
)

// ToneMod is a diacritic vowel modifier (not a tone mark).
type ToneMod int

const (
	ToneModNone ToneMod = iota
	ModCircumflex       // â, ê, ô
	ModHorn             // ơ, ư
	ModBreve            // ă
)

// ToneMark is one of the five Vietnamese tone marks, or "no tone".
type ToneMark int

const (
	ToneNone  ToneMark = iota // thanh ngang
	ToneSac                   // sắc (á)
	ToneHuyen                 // huyền (à)
	ToneHoi                   // hỏi (ả)
	ToneNga                   // ngã (ã)
	ToneNang                  // nặng (ạ)
)

// CompChar is one visible Vietnamese grapheme pre-composition
// (spec.md §3). Invariants: ToneMod != ToneModNone implies Key is one
// of a/e/o/u; Stroke implies Key == 'd'.
type CompChar struct {
	Key      rune
	Caps     bool
	ToneMod  ToneMod
	Stroke   bool
	ToneMark ToneMark
}

// Base returns the lowercase key.
func (c CompChar) Base() rune { return c.Key }

// RawEntry is one physical keystroke recorded in the raw input log,
// including absorbed modifier keys (spec.md §4.2).
type RawEntry struct {
	Key  rune
	Caps bool
}

// Method is the Telex/VNI key-to-modifier table contract (spec.md §4.3).
// Implementations are static predicate tables: queried, never mutated.
type Method interface {
	Name() string

	// Mark returns the tone mark a key selects, if any.
	Mark(key rune) (ToneMark, bool)

	// ToneModifierFor resolves the vowel modifier key would select when
	// applied to targetVowel. Telex's 'w' is overloaded: on 'a' it
	// yields breve (ă), on 'o'/'u' it yields horn (ơ/ư) — so the result
	// depends on the candidate target, not the key alone.
	ToneModifierFor(key rune, targetVowel rune) (ToneMod, bool)

	// IsStroke reports whether key triggers d -> đ.
	IsStroke(key rune) bool

	// IsRemove reports whether key strips tone marks/modifiers.
	IsRemove(key rune) bool

	// IsDoubleLetterTrigger reports whether key only acts as a
	// modifier when it duplicates the immediately preceding identical
	// vowel (the Telex double-vowel rule, spec.md §4.5): a lone a/e/o
	// never triggers circumflex. VNI has no such gating.
	IsDoubleLetterTrigger(key rune) bool

	// IsWordBreaker reports whether key ends the current word.
	IsWordBreaker(key rune, caps bool) bool
}

// InputMethodKind selects which Method table the engine consults.
type InputMethodKind uint8

const (
	MethodTelex InputMethodKind = iota
	MethodVNI
)

// Action is the kind of edit a Result asks the host to perform.
type Action uint8

const (
	// ActionNone: pass the event through unchanged.
	ActionNone Action = iota
	// ActionSend: delete Backspace trailing code points, insert Chars.
	ActionSend
	// ActionRestore: delete Backspace trailing code points, insert
	// Chars; afterwards the displayed word reads as the raw keystrokes.
	// The prefix the composed word shares with the raw text is kept, so
	// Chars holds only the differing tail.
	ActionRestore
)

// Config is the engine's flat, explicitly-mutated configuration record
// (spec.md §3). It is never read from env vars or files; the embedder
// owns persistence.
type Config struct {
	Enabled               bool
	Method                InputMethodKind
	RawMode               bool
	SkipWShortcut         bool
	EscRestoreEnabled     bool
	FreeToneEnabled       bool
	ModernTone            bool
	InstantRestoreEnabled bool
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:               true,
		Method:                MethodTelex,
		RawMode:               false,
		SkipWShortcut:         false,
		EscRestoreEnabled:     true,
		FreeToneEnabled:       false,
		ModernTone:            false,
		InstantRestoreEnabled: true,
	}
}

// Capacity limits from spec.md §3/§5. The buffer, raw log and shortcut
// table are fixed-size arrays and never grow. A keystroke still
// allocates short-lived slices and strings (buffer snapshots, the diff
// result, the detector's rendering of the raw log).
const (
	MaxBufferLen   = 256
	MaxRawLogLen   = 64
	MaxResultChars = 64
	MaxShortcuts   = 200
	MaxShortcutLen = 20
	MinHistoryLen  = 3
	DefaultHistory = 8
	MaxReplacement = 64
)
