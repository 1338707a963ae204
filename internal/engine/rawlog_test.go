package engine

import "testing"

func TestRawLogPushPop(t *testing.T) {
	var r RawLog
	r.Push(RawEntry{Key: 'v'})
	r.Push(RawEntry{Key: 'i'})
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	e, ok := r.Pop()
	if !ok || e.Key != 'i' {
		t.Fatalf("Pop() = %+v, %v", e, ok)
	}
	if _, ok := (&RawLog{}).Pop(); ok {
		t.Error("Pop() on empty log should return false")
	}
}

func TestRawLogEvictsOldestAtCapacity(t *testing.T) {
	var r RawLog
	for i := 0; i < MaxRawLogLen; i++ {
		r.Push(RawEntry{Key: 'a'})
	}
	r.Push(RawEntry{Key: 'z'})
	if r.Len() != MaxRawLogLen {
		t.Fatalf("Len() = %d, want %d", r.Len(), MaxRawLogLen)
	}
	slice := r.Slice()
	if slice[len(slice)-1].Key != 'z' {
		t.Errorf("last entry = %q, want 'z'", slice[len(slice)-1].Key)
	}
}

func TestRawLogText(t *testing.T) {
	var r RawLog
	r.Push(RawEntry{Key: 'h'})
	r.Push(RawEntry{Key: 'i', Caps: true})
	if got := string(r.Text()); got != "hI" {
		t.Errorf("Text() = %q, want %q", got, "hI")
	}
}

func TestRawLogSetTruncatesToCapacity(t *testing.T) {
	entries := make([]RawEntry, MaxRawLogLen+5)
	for i := range entries {
		entries[i] = RawEntry{Key: rune('a' + i%26)}
	}
	var r RawLog
	r.Set(entries)
	if r.Len() != MaxRawLogLen {
		t.Fatalf("Len() after Set = %d, want %d", r.Len(), MaxRawLogLen)
	}
	if r.Slice()[0] != entries[5] {
		t.Errorf("Set should keep the trailing window; got %+v, want %+v", r.Slice()[0], entries[5])
	}
}
