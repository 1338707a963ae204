package engine

import "sort"

// TriggerKind selects when a shortcut fires (spec.md §4.9 step 4,
// §4.12).
type TriggerKind uint8

const (
	// TriggerImmediate fires as soon as the raw log ends with the
	// trigger, before the word boundary.
	TriggerImmediate TriggerKind = iota
	// TriggerOnBoundary fires only when the orchestrator processes a
	// word-boundary key (space, punctuation).
	TriggerOnBoundary
)

// Scope restricts a shortcut to firing only under one input method
// (spec.md §3, "scope ∈ {all, telex, vni}").
type Scope uint8

const (
	// ScopeAll fires regardless of the active input method.
	ScopeAll Scope = iota
	// ScopeTelex fires only while Telex is the active method.
	ScopeTelex
	// ScopeVNI fires only while VNI is the active method.
	ScopeVNI
)

// matches reports whether scope permits firing under method.
func (s Scope) matches(method InputMethodKind) bool {
	switch s {
	case ScopeTelex:
		return method == MethodTelex
	case ScopeVNI:
		return method == MethodVNI
	default:
		return true
	}
}

// CasePolicy controls how a shortcut replacement's case is adapted to
// match how the trigger was typed.
type CasePolicy uint8

const (
	// CaseMatchTrigger upper-cases the replacement's first letter when
	// the trigger's first letter was capitalized. This is the teacher's
	// default behavior, so it is the zero value.
	CaseMatchTrigger CasePolicy = iota
	// CaseAsStored uses Replacement verbatim.
	CaseAsStored
)

// Shortcut is one trigger/replacement pair (spec.md §4.12).
type Shortcut struct {
	Trigger     string
	Replacement string
	Kind        TriggerKind
	Scope       Scope
	CasePolicy  CasePolicy
}

// ShortcutTable is the fixed-capacity trigger/replacement table
// (spec.md §4.12). Entries are kept sorted by descending trigger
// length so lookup finds the longest matching suffix first.
type ShortcutTable struct {
	entries [MaxShortcuts]Shortcut
	n       int
}

// NewShortcutTable creates an empty shortcut table.
func NewShortcutTable() *ShortcutTable { return &ShortcutTable{} }

// Len returns the number of shortcuts currently stored.
func (t *ShortcutTable) Len() int { return t.n }

// Capacity returns the table's fixed capacity.
func (t *ShortcutTable) Capacity() int { return MaxShortcuts }

// Full reports whether the table is at capacity.
func (t *ShortcutTable) Full() bool { return t.n >= MaxShortcuts }

// Add inserts or replaces a shortcut and re-sorts the trigger list.
// Returns false if the table is full, the trigger is empty, or either
// string exceeds its capacity (spec.md §7, "configuration misuse").
func (t *ShortcutTable) Add(trigger, replacement string, kind TriggerKind, scope Scope, casePolicy CasePolicy) bool {
	if trigger == "" || len(trigger) > MaxShortcutLen || len(replacement) > MaxReplacement {
		return false
	}
	for i := 0; i < t.n; i++ {
		if t.entries[i].Trigger == trigger {
			t.entries[i].Replacement = replacement
			t.entries[i].Kind = kind
			t.entries[i].Scope = scope
			t.entries[i].CasePolicy = casePolicy
			t.resort()
			return true
		}
	}
	if t.Full() {
		return false
	}
	t.entries[t.n] = Shortcut{Trigger: trigger, Replacement: replacement, Kind: kind, Scope: scope, CasePolicy: casePolicy}
	t.n++
	t.resort()
	return true
}

// Remove deletes the shortcut with the given trigger, if present.
func (t *ShortcutTable) Remove(trigger string) bool {
	for i := 0; i < t.n; i++ {
		if t.entries[i].Trigger == trigger {
			copy(t.entries[i:t.n-1], t.entries[i+1:t.n])
			t.n--
			return true
		}
	}
	return false
}

// Clear empties the table.
func (t *ShortcutTable) Clear() { t.n = 0 }

func (t *ShortcutTable) resort() {
	sort.Slice(t.entries[:t.n], func(i, j int) bool {
		return len(t.entries[i].Trigger) > len(t.entries[j].Trigger)
	})
}

// MatchSuffix scans the sorted trigger list and returns the first
// (longest) trigger that is a suffix of raw, restricted to kind and to
// shortcuts whose scope permits the active method (spec.md §3, §4.12,
// "scans the sorted list and returns the first (longest) trigger that
// is a suffix of the raw log").
func (t *ShortcutTable) MatchSuffix(raw string, kind TriggerKind, method InputMethodKind) (Shortcut, bool) {
	for i := 0; i < t.n; i++ {
		sc := t.entries[i]
		if sc.Kind != kind {
			continue
		}
		if !sc.Scope.matches(method) {
			continue
		}
		if len(sc.Trigger) > len(raw) {
			continue
		}
		if raw[len(raw)-len(sc.Trigger):] == sc.Trigger {
			return sc, true
		}
	}
	return Shortcut{}, false
}

// ApplyCase renders replacement under policy, matching trigger's case
// at the first letter (spec.md §4.9 step 4, "under its case policy").
func ApplyCase(replacement, trigger string, policy CasePolicy) string {
	if policy != CaseMatchTrigger || replacement == "" || trigger == "" {
		return replacement
	}
	triggerFirst := []rune(trigger)[0]
	if triggerFirst < 'A' || triggerFirst > 'Z' {
		return replacement
	}
	r := []rune(replacement)
	r[0] = upperRune(r[0])
	return string(r)
}

func upperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
