package engine

import "testing"

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		c    CompChar
		want rune
	}{
		{"bare", CompChar{Key: 'a'}, 'a'},
		{"stroke", CompChar{Key: 'd', Stroke: true}, 'đ'},
		{"circumflex", CompChar{Key: 'a', ToneMod: ModCircumflex}, 'â'},
		{"horn", CompChar{Key: 'o', ToneMod: ModHorn}, 'ơ'},
		{"breve", CompChar{Key: 'a', ToneMod: ModBreve}, 'ă'},
		{"tone only", CompChar{Key: 'a', ToneMark: ToneSac}, 'á'},
		{"mod plus tone", CompChar{Key: 'a', ToneMod: ModCircumflex, ToneMark: ToneNang}, 'ậ'},
		{"caps", CompChar{Key: 'a', ToneMark: ToneSac, Caps: true}, 'Á'},
		{"stroke caps", CompChar{Key: 'd', Stroke: true, Caps: true}, 'Đ'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.c); got != tt.want {
				t.Errorf("Compose(%+v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestBufferPushPop(t *testing.T) {
	var b Buffer
	b.Push(CompChar{Key: 'v'})
	b.Push(CompChar{Key: 'i'})
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	c, ok := b.Pop()
	if !ok || c.Key != 'i' {
		t.Fatalf("Pop() = %+v, %v, want 'i', true", c, ok)
	}
	if b.Len() != 1 {
		t.Fatalf("Len() after pop = %d, want 1", b.Len())
	}
	if _, ok := (&Buffer{}).Pop(); ok {
		t.Error("Pop() on empty buffer should return false")
	}
}

func TestBufferCapacity(t *testing.T) {
	var b Buffer
	for i := 0; i < MaxBufferLen; i++ {
		if !b.Push(CompChar{Key: 'a'}) {
			t.Fatalf("Push() failed before reaching capacity at i=%d", i)
		}
	}
	if b.Push(CompChar{Key: 'a'}) {
		t.Error("Push() at capacity should return false")
	}
	if b.Len() != MaxBufferLen {
		t.Errorf("Len() = %d, want %d", b.Len(), MaxBufferLen)
	}
}

func TestBufferSnapshot(t *testing.T) {
	var b Buffer
	b.Push(CompChar{Key: 'v'})
	b.Push(CompChar{Key: 'i'})
	b.Push(CompChar{Key: 'e', ToneMod: ModCircumflex, ToneMark: ToneNang})
	b.Push(CompChar{Key: 't'})
	got := string(b.Snapshot())
	if got != "việt" {
		t.Errorf("Snapshot() = %q, want %q", got, "việt")
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name          string
		prev, cur     string
		wantBack      uint8
		wantInsertion string
	}{
		{"append", "vie", "viet", 0, "t"},
		{"no change", "viet", "viet", 0, ""},
		{"tone retype", "viet", "việt", 2, "ệt"},
		{"full replace", "hoa", "ngu", 3, "ngu"},
		{"shrink", "viet", "vi", 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back, chars := Diff([]rune(tt.prev), []rune(tt.cur))
			if back != tt.wantBack || string(chars) != tt.wantInsertion {
				t.Errorf("Diff(%q, %q) = %d, %q; want %d, %q",
					tt.prev, tt.cur, back, string(chars), tt.wantBack, tt.wantInsertion)
			}
		})
	}
}

func TestDiffClampsToResultLimits(t *testing.T) {
	prev := make([]rune, 300)
	for i := range prev {
		prev[i] = 'a'
	}
	cur := make([]rune, 0, 300)
	for i := 0; i < 300; i++ {
		cur = append(cur, 'b')
	}
	back, chars := Diff(prev, cur)
	if back != 255 {
		t.Errorf("backspace = %d, want clamped to 255", back)
	}
	if len(chars) != MaxResultChars {
		t.Errorf("len(chars) = %d, want clamped to %d", len(chars), MaxResultChars)
	}
}
