package engine

import "unicode"

// Engine is one live composition session: the buffer, raw log, word
// history, shortcut table, configuration and detector it takes to run
// the keystroke pipeline (spec.md §3, §4.9). It holds no network or
// file handles; instance.go is what wraps it in the
// process-wide mutex the FFI surface talks to.
type Engine struct {
	buf       Buffer
	raw       RawLog
	hist      *History
	shortcuts *ShortcutTable
	cfg       Config
	det       *Detector

	telex *Telex
	vni   *VNI
}

// NewEngine builds a fresh session using det for English detection
// (det may be nil in tests that don't exercise that layer).
func NewEngine(det *Detector) *Engine {
	return &Engine{
		hist:      NewHistory(DefaultHistory),
		shortcuts: NewShortcutTable(),
		cfg:       DefaultConfig(),
		det:       det,
		telex:     NewTelex(),
		vni:       NewVNI(),
	}
}

func (e *Engine) activeMethod() Method {
	if e.cfg.Method == MethodVNI {
		return e.vni
	}
	return e.telex
}

// navigationKeysyms are the keys the orchestrator's gate step treats as
// "leaving the field" (spec.md §4.9 step 1): arrows, paging, and
// explicit focus-movement keys, plus Enter/Tab which commit rather
// than transform.
var navigationKeysyms = map[uint32]bool{
	KeyReturn: true, KeyTab: true, KeyDelete: true,
	0xff51: true, 0xff52: true, 0xff53: true, 0xff54: true, // arrows
	0xff50: true, 0xff57: true, 0xff55: true, 0xff56: true, // home/end/pgup/pgdn
}

// keysymToRune converts an X11 keysym to the character it types, or 0
// if the keysym has none (spec.md §6, the daemon already speaks this
// convention on the wire).
func keysymToRune(keysym uint32) rune {
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym)
	}
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym)
	}
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}
	return 0
}

// ProcessKey runs one logical keystroke through the full pipeline
// (spec.md §4.9) and returns the diff the host should apply.
func (e *Engine) ProcessKey(ev KeyEvent) Result {
	if !e.cfg.Enabled {
		return Result{Action: ActionNone}
	}

	switch ev.KeySym {
	case KeyBackspace:
		return e.backspace()
	case KeyEscape:
		return e.escRestore()
	}

	if ev.Modifiers&(ModControl|ModMod1|ModMod4) != 0 || navigationKeysyms[ev.KeySym] {
		e.flushToHistory()
		return Result{Action: ActionNone}
	}

	char := keysymToRune(ev.KeySym)
	if char == 0 {
		return Result{Action: ActionNone}
	}
	caps := ev.Modifiers&(ModShift|ModLock) != 0
	return e.processChar(char, caps)
}

func (e *Engine) processChar(char rune, caps bool) Result {
	prevSnapshot := e.buf.Snapshot()
	e.raw.Push(RawEntry{Key: unicode.ToLower(char), Caps: caps})

	if e.activeMethod().IsWordBreaker(char, caps) {
		return e.commitBoundary(char, prevSnapshot)
	}

	if e.shortcuts.Len() > 0 {
		if sc, ok := e.shortcuts.MatchSuffix(rawWord(e.raw.Slice()), TriggerImmediate, e.cfg.Method); ok {
			return e.applyShortcut(sc, prevSnapshot)
		}
	}

	var pendingRestore *Result
	if e.cfg.InstantRestoreEnabled && e.det != nil {
		if prop, ok := e.restoreProposal(prevSnapshot, false); ok {
			pendingRestore = &prop
		}
	}

	var transformed bool
	if !e.cfg.RawMode {
		transformed = e.tryTransforms(char)
	}
	if transformed {
		pendingRestore = nil // step 7: speculative-modifier override
	} else {
		e.buf.Push(CompChar{Key: unicode.ToLower(char), Caps: caps})
	}

	if !transformed && pendingRestore == nil && e.cfg.InstantRestoreEnabled && e.det != nil {
		if prop, ok := e.restoreProposal(prevSnapshot, true); ok {
			pendingRestore = &prop
		}
	}
	if pendingRestore != nil {
		return *pendingRestore
	}

	cur := e.buf.Snapshot()
	back, chars := Diff(prevSnapshot, cur)
	return Result{Action: ActionSend, Backspace: back, Chars: chars}
}

// tryTransforms attempts stroke -> tone -> mark -> remove -> Telex
// w-shortcut, in that fixed order (spec.md §4.9 step 6). Each attempt
// is validated and rolled back if rejected, unless free_tone_enabled.
func (e *Engine) tryTransforms(char rune) bool {
	m := e.activeMethod()

	attempt := func(apply func() bool) bool {
		saved := e.buf
		if !apply() {
			e.buf = saved
			return false
		}
		view := ParseSyllable(e.buf.Slice())
		// No vowel typed yet: only the stroke transform can succeed here
		// (tone/mark/remove all require a nucleus to target), and a bare
		// initial consonant isn't judged against full-syllable legality
		// until a nucleus exists to validate against — otherwise d -> đ
		// could never apply before the vowel that normally follows it.
		if e.cfg.FreeToneEnabled || view.NucleusLen() == 0 || Validate(e.buf.Slice(), view) != Invalid {
			return true
		}
		e.buf = saved
		return false
	}

	if m.IsStroke(char) && attempt(func() bool { return ApplyStroke(&e.buf) }) {
		return true
	}
	if mark, ok := m.Mark(char); ok && attempt(func() bool { return ApplyTone(&e.buf, mark, e.cfg.ModernTone) }) {
		return true
	}
	if attempt(func() bool { return ApplyMark(&e.buf, m, char) }) {
		return true
	}
	if m.IsRemove(char) && attempt(func() bool { return ApplyRemove(&e.buf) }) {
		return true
	}
	if _, isTelex := m.(*Telex); isTelex && !e.cfg.SkipWShortcut && unicode.ToLower(char) == 'w' {
		if attempt(func() bool { return ApplyWShortcut(&e.buf) }) {
			return true
		}
	}
	return false
}

// restoreProposal builds an English-restore Result if the detector's
// confidence clears the threshold for the current buffer's Vietnamese
// validity (spec.md §4.8, §4.9 steps 5/9, §4.10 auto/instant restore).
func (e *Engine) restoreProposal(prevSnapshot []rune, trailingSpace bool) (Result, bool) {
	raw := e.raw.Slice()
	if len(raw) == 0 {
		return Result{}, false
	}

	view := ParseSyllable(e.buf.Slice())
	validVN := e.buf.Len() > 0 && Validate(e.buf.Slice(), view) == Valid
	score := e.det.Score(raw)
	if score.Confidence < Threshold(validVN) {
		return Result{}, false
	}

	text := rawWord(raw)
	if trailingSpace {
		text += " "
	}
	cur := []rune(text)
	back, chars := Diff(prevSnapshot, cur)
	return Result{Action: ActionRestore, Backspace: back, Chars: chars}, true
}

// applyShortcut replaces the matched raw tail and the composed buffer
// with the shortcut's replacement (spec.md §4.9 step 4, §4.12).
func (e *Engine) applyShortcut(sc Shortcut, prevSnapshot []rune) Result {
	e.buf.Clear()
	replacement := ApplyCase(sc.Replacement, sc.Trigger, sc.CasePolicy)
	for _, r := range replacement {
		e.buf.Push(CompChar{Key: unicode.ToLower(r), Caps: unicode.IsUpper(r)})
	}
	cur := e.buf.Snapshot()
	back, chars := Diff(prevSnapshot, cur)
	return Result{Action: ActionSend, Backspace: back, Chars: chars}
}

// commitBoundary handles a word-boundary keystroke (space or common
// punctuation): on-boundary shortcuts fire here (spec.md §4.12), the
// finished word is pushed to history, and the buffer/raw log reset
// (spec.md §4.9 step 10, §4.11).
func (e *Engine) commitBoundary(boundaryChar rune, prevSnapshot []rune) Result {
	full := e.raw.Slice()
	wordRaw := append([]RawEntry(nil), full[:len(full)-1]...)

	finalWord := string(e.buf.Snapshot())
	if e.shortcuts.Len() > 0 {
		if sc, ok := e.shortcuts.MatchSuffix(rawWord(wordRaw), TriggerOnBoundary, e.cfg.Method); ok {
			finalWord = ApplyCase(sc.Replacement, sc.Trigger, sc.CasePolicy)
		}
	}

	e.hist.Push(HistoryEntry{
		Chars: append([]CompChar(nil), e.buf.Slice()...),
		Raw:   wordRaw,
	})
	e.buf.Clear()
	e.raw.Clear()

	cur := []rune(finalWord + string(boundaryChar))
	back, chars := Diff(prevSnapshot, cur)
	return Result{Action: ActionSend, Backspace: back, Chars: chars}
}

// backspace pops the last CompChar and the most recent raw entry (which
// may be an absorbed modifier key rather than that letter), re-diffing
// against the previous snapshot. This is ordinary mid-word editing,
// distinct from the cross-boundary Resurrect command (spec.md §4.11).
func (e *Engine) backspace() Result {
	prevSnapshot := e.buf.Snapshot()
	if e.buf.Len() == 0 {
		return Result{Action: ActionNone}
	}
	e.buf.Pop()
	e.raw.Pop()
	cur := e.buf.Snapshot()
	back, chars := Diff(prevSnapshot, cur)
	return Result{Action: ActionSend, Backspace: back, Chars: chars}
}

// escRestore replaces the composed word with the user's literal
// keystrokes and clears the buffer (spec.md §4.10).
func (e *Engine) escRestore() Result {
	if !e.cfg.EscRestoreEnabled || e.buf.Len() == 0 {
		return Result{Action: ActionNone}
	}
	prevSnapshot := e.buf.Snapshot()
	cur := e.raw.Text()
	back, chars := Diff(prevSnapshot, cur)
	e.buf.Clear()
	e.raw.Clear()
	return Result{Action: ActionRestore, Backspace: back, Chars: chars}
}

// Resurrect pops the most recent history entry and restores it as the
// live buffer and raw log. It emits no diff: the boundary character
// the user backspaced across is already being deleted by the host
// (spec.md §4.11).
func (e *Engine) Resurrect() bool {
	entry, ok := e.hist.Pop()
	if !ok {
		return false
	}
	e.buf.Clear()
	for _, c := range entry.Chars {
		e.buf.Push(c)
	}
	e.raw.Set(entry.Raw)
	return true
}

// flushToHistory archives the in-progress word without emitting a
// diff, used by the gate step for navigation keys that move focus away
// from the composition (spec.md §4.9 step 1).
func (e *Engine) flushToHistory() {
	if e.buf.Len() == 0 {
		return
	}
	e.hist.Push(HistoryEntry{
		Chars: append([]CompChar(nil), e.buf.Slice()...),
		Raw:   append([]RawEntry(nil), e.raw.Slice()...),
	})
	e.buf.Clear()
	e.raw.Clear()
}

// Clear flushes the current word only (spec.md §6, command `clear`).
func (e *Engine) Clear() {
	e.buf.Clear()
	e.raw.Clear()
}

// ClearAll flushes the current word and the entire history (spec.md
// §6, command `clear_all`).
func (e *Engine) ClearAll() {
	e.Clear()
	e.hist.Clear()
}

// GetBuffer returns a newly built UTF-8 rendering of the live buffer
// (spec.md §6, command `get_buffer`).
func (e *Engine) GetBuffer() string {
	return string(e.buf.Snapshot())
}
