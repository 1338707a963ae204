package engine

// RawLog is the fixed-capacity, append-only record of every logical
// keystroke that contributed to the current word, including absorbed
// modifier keys (spec.md §4.2). It is the authoritative source for
// "what the user physically typed" and is what ESC/auto/instant restore
// replay back to the host.
type RawLog struct {
	entries [MaxRawLogLen]RawEntry
	n       int
}

// Len returns the number of entries currently held.
func (r *RawLog) Len() int { return r.n }

// Push appends a raw keystroke. Once full, the oldest entry is
// dropped to make room — the log models a ring buffer, but in practice
// a word never grows past MaxRawLogLen keystrokes before a boundary
// resets it, so eviction is the graceful-degradation path rather than
// the common case.
func (r *RawLog) Push(e RawEntry) {
	if r.n < MaxRawLogLen {
		r.entries[r.n] = e
		r.n++
		return
	}
	copy(r.entries[:], r.entries[1:])
	r.entries[MaxRawLogLen-1] = e
}

// Pop removes the most recently pushed entry.
func (r *RawLog) Pop() (RawEntry, bool) {
	if r.n == 0 {
		return RawEntry{}, false
	}
	r.n--
	return r.entries[r.n], true
}

// Clear empties the log.
func (r *RawLog) Clear() { r.n = 0 }

// Slice returns the live entries as a view.
func (r *RawLog) Slice() []RawEntry { return r.entries[:r.n] }

// Text renders the raw log back to the literal characters the user
// typed, case folded per entry. This is what ESC/auto/instant restore
// send to the host in place of the transformed word.
func (r *RawLog) Text() []rune {
	out := make([]rune, r.n)
	for i, e := range r.entries[:r.n] {
		k := e.Key
		if e.Caps {
			k = toUpperASCII(k)
		}
		out[i] = k
	}
	return out
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Set replaces the log's contents with entries (used by history
// resurrect, spec.md §4.11).
func (r *RawLog) Set(entries []RawEntry) {
	n := len(entries)
	if n > MaxRawLogLen {
		entries = entries[n-MaxRawLogLen:]
		n = MaxRawLogLen
	}
	copy(r.entries[:], entries)
	r.n = n
}
