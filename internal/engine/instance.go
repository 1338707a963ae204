package engine

import (
	"sync"

	"github.com/vietkey/goviet-core/internal/dict"
)

// instanceMu guards the single process-wide Engine (spec.md §5, "a
// single engine instance is held in process-wide state behind a
// mutual-exclusion primitive; every command acquires it, runs to
// completion, releases").
var (
	instanceMu sync.Mutex
	instance   *Engine
	dictionary *dict.Dictionary
)

func newInstanceLocked() *Engine {
	return NewEngine(NewDetector(dictionary))
}

// Init loads the embedded dictionaries and allocates the global engine
// (spec.md §6, "init() — one-time"). Safe to call more than once; a
// later call replaces the current session.
func Init() error {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	d, err := dict.Load()
	if err != nil {
		return err
	}
	dictionary = d
	instance = newInstanceLocked()
	return nil
}

// Shutdown releases the global engine (spec.md §6, optional shutdown).
func Shutdown() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
	dictionary = nil
}

// withInstance runs fn against the live engine under the process-wide
// mutex. If fn panics, the instance is discarded so the next command
// gets a fresh engine instead of one left in a half-updated state
// (spec.md §5, "if the mutex is poisoned by a prior panic, the next
// command reconstructs a fresh engine").
func withInstance(fn func(e *Engine)) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	defer func() {
		if recover() != nil {
			instance = nil
		}
	}()

	if instance == nil {
		instance = newInstanceLocked()
	}
	fn(instance)
}

// Key delivers one logical keystroke to the engine (spec.md §6,
// command `key`).
func Key(ev KeyEvent) Result {
	var out Result
	withInstance(func(e *Engine) { out = e.ProcessKey(ev) })
	return out
}

// Resurrect restores the most recently committed word after the host
// reports the user backspaced across a word boundary (spec.md §4.11).
func Resurrect() bool {
	var ok bool
	withInstance(func(e *Engine) { ok = e.Resurrect() })
	return ok
}

// Clear flushes the current word only (spec.md §6).
func Clear() {
	withInstance(func(e *Engine) { e.Clear() })
}

// ClearAll flushes the current word and history (spec.md §6).
func ClearAll() {
	withInstance(func(e *Engine) { e.ClearAll() })
}

// GetBuffer returns a UTF-8 rendering of the live composition buffer
// (spec.md §6).
func GetBuffer() string {
	var out string
	withInstance(func(e *Engine) { out = e.GetBuffer() })
	return out
}

// RestoreWord seeds the engine from a host-supplied word (spec.md §6).
func RestoreWord(word string) bool {
	var ok bool
	withInstance(func(e *Engine) { ok = e.RestoreWord(word) })
	return ok
}

// SetMethod selects Telex or VNI (spec.md §6, command `set_method`).
func SetMethod(kind InputMethodKind) {
	withInstance(func(e *Engine) { e.cfg.Method = kind })
}

// SetEnabled toggles whether keystrokes are transformed at all.
func SetEnabled(enabled bool) {
	withInstance(func(e *Engine) { e.cfg.Enabled = enabled })
}

// SetRawMode toggles whether keystrokes bypass transformation entirely
// (spec.md §3 `raw_mode`; see SPEC_FULL.md §12 for the ESC-restore
// interaction decision).
func SetRawMode(raw bool) {
	withInstance(func(e *Engine) { e.cfg.RawMode = raw })
}

// SetSkipWShortcut toggles Telex's standalone w -> ư shortcut.
func SetSkipWShortcut(skip bool) {
	withInstance(func(e *Engine) { e.cfg.SkipWShortcut = skip })
}

// SetEscRestore toggles whether ESC restores literal keystrokes.
func SetEscRestore(enabled bool) {
	withInstance(func(e *Engine) { e.cfg.EscRestoreEnabled = enabled })
}

// SetFreeTone toggles bypassing the syllable validator before
// committing a transform.
func SetFreeTone(enabled bool) {
	withInstance(func(e *Engine) { e.cfg.FreeToneEnabled = enabled })
}

// SetModernTone toggles traditional vs modern tone placement for open
// oa/oe/uy nuclei (spec.md §4.5).
func SetModernTone(modern bool) {
	withInstance(func(e *Engine) { e.cfg.ModernTone = modern })
}

// SetInstantRestore toggles mid-word English auto-restore.
func SetInstantRestore(enabled bool) {
	withInstance(func(e *Engine) { e.cfg.InstantRestoreEnabled = enabled })
}

// AddShortcut inserts or replaces a shortcut (spec.md §6, §4.12).
func AddShortcut(trigger, replacement string, kind TriggerKind, scope Scope, casePolicy CasePolicy) bool {
	var ok bool
	withInstance(func(e *Engine) { ok = e.shortcuts.Add(trigger, replacement, kind, scope, casePolicy) })
	return ok
}

// RemoveShortcut deletes a shortcut by trigger.
func RemoveShortcut(trigger string) bool {
	var ok bool
	withInstance(func(e *Engine) { ok = e.shortcuts.Remove(trigger) })
	return ok
}

// ClearShortcuts empties the shortcut table.
func ClearShortcuts() {
	withInstance(func(e *Engine) { e.shortcuts.Clear() })
}

// ShortcutsCount returns the number of shortcuts stored.
func ShortcutsCount() int {
	var n int
	withInstance(func(e *Engine) { n = e.shortcuts.Len() })
	return n
}

// ShortcutsCapacity returns the shortcut table's fixed capacity.
func ShortcutsCapacity() int { return MaxShortcuts }

// ShortcutsFull reports whether the shortcut table is at capacity.
func ShortcutsFull() bool {
	var full bool
	withInstance(func(e *Engine) { full = e.shortcuts.Full() })
	return full
}
