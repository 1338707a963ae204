package engine

import "testing"

func keys(s string) []CompChar {
	out := make([]CompChar, len(s))
	for i, c := range s {
		out[i] = CompChar{Key: c}
	}
	return out
}

func TestParseSyllable(t *testing.T) {
	tests := []struct {
		name                         string
		word                         string
		initialStart, initialEnd     int
		nucleusStart, nucleusEnd     int
		codaStart, codaEnd           int
		glide                        bool
	}{
		{"simple CVC", "hoc", 0, 1, 1, 2, 2, 3, false},
		{"qu glide", "quan", 0, 1, 2, 3, 3, 4, true},
		{"gi isolation", "gi", 0, 1, 1, 2, 2, 2, false},
		{"gi before vowel", "gia", 0, 2, 2, 3, 3, 3, false},
		{"triple initial", "nghi", 0, 3, 3, 4, 4, 4, false},
		{"hoa glide o", "hoa", 0, 1, 1, 3, 3, 3, true},
		{"no initial", "an", 0, 0, 0, 1, 1, 2, false},
		{"no coda", "ba", 0, 1, 1, 2, 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ParseSyllable(keys(tt.word))
			if view.InitialStart != tt.initialStart || view.InitialEnd != tt.initialEnd {
				t.Errorf("initial = [%d,%d), want [%d,%d)", view.InitialStart, view.InitialEnd, tt.initialStart, tt.initialEnd)
			}
			if view.NucleusStart != tt.nucleusStart || view.NucleusEnd != tt.nucleusEnd {
				t.Errorf("nucleus = [%d,%d), want [%d,%d)", view.NucleusStart, view.NucleusEnd, tt.nucleusStart, tt.nucleusEnd)
			}
			if view.CodaStart != tt.codaStart || view.CodaEnd != tt.codaEnd {
				t.Errorf("coda = [%d,%d), want [%d,%d)", view.CodaStart, view.CodaEnd, tt.codaStart, tt.codaEnd)
			}
			if view.HasGlide() != tt.glide {
				t.Errorf("HasGlide() = %v, want %v", view.HasGlide(), tt.glide)
			}
		})
	}
}
