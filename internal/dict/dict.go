// Package dict provides allocation-free lookup against the embedded
// English word lists the detector (internal/engine) consults as the
// first, highest-confidence layer of its scoring pipeline.
package dict

import (
	"embed"
	"fmt"
)

//go:embed data/*.bin
var dataFS embed.FS

// MinWordLen and MaxWordLen bound the length-partitioned files on
// disk: one file per length, data/lenL.bin.
const (
	MinWordLen = 2
	MaxWordLen = 16
)

// keyCode is the 26-letter alphabet map records are encoded with:
// a=0, s=1, d=2, ..., m=46, with gaps. The exact table in the source
// this was distilled from is not recoverable from the surviving
// documentation, which only gives four anchor points (a, s, d, m).
// This reconstruction honors all four by laying the codes out in
// QWERTY row-scan order with padding between rows (home row 0-8, top
// row 10-19, bottom row 40-46) — a plausible explanation for "with
// gaps" that happens to satisfy every given anchor exactly.
var keyCode = buildKeyCode()

func buildKeyCode() [26]uint16 {
	var table [26]uint16
	rows := []string{"asdfghjkl", "qwertyuiop", "zxcvbnm"}
	starts := []uint16{0, 10, 40}
	for ri, row := range rows {
		for i, c := range row {
			table[c-'a'] = starts[ri] + uint16(i)
		}
	}
	return table
}

// EncodeKey returns the alphabet code for a lowercase ASCII letter.
func EncodeKey(r rune) (uint16, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return keyCode[r-'a'], true
}

// recordBytes returns the raw little-endian record for a word — each
// code is one byte since every code in keyCode fits under 256, so the
// high byte of every u16 is always zero.
func recordBytes(word string) ([]byte, bool) {
	out := make([]byte, len(word)*2)
	for i, r := range word {
		code, ok := EncodeKey(r)
		if !ok {
			return nil, false
		}
		out[i*2] = byte(code)
		out[i*2+1] = byte(code >> 8)
	}
	return out, true
}

// Dictionary is the set of loaded length-partitioned word lists.
type Dictionary struct {
	files [MaxWordLen + 1][]byte // files[L] is the raw data/lenL.bin content
}

// Load reads every embedded length file once (spec.md §6, "loaded once
// at init from embedded bytes; lookup is read-only and allocation-free").
func Load() (*Dictionary, error) {
	d := &Dictionary{}
	for l := MinWordLen; l <= MaxWordLen; l++ {
		name := fmt.Sprintf("data/len%d.bin", l)
		data, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("dict: reading %s: %w", name, err)
		}
		d.files[l] = data
	}
	return d, nil
}

// Contains reports whether word is an exact entry in the length-L
// list, via binary search on the sorted, fixed-width record array
// (spec.md §4.8 step 1, §6 dictionary format).
func (d *Dictionary) Contains(word string) bool {
	l := len(word)
	if l < MinWordLen || l > MaxWordLen {
		return false
	}
	rec, ok := recordBytes(word)
	if !ok {
		return false
	}
	data := d.files[l]
	recLen := l * 2
	if recLen == 0 || len(data)%recLen != 0 {
		return false
	}
	count := len(data) / recLen

	lo, hi := 0, count
	for lo < hi {
		mid := (lo + hi) / 2
		start := mid * recLen
		switch compareBytes(data[start:start+recLen], rec) {
		case 0:
			return true
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

func compareBytes(a, b []byte) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
