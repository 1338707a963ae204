package engine

import "unsafe"

// Result is the engine's per-keystroke answer: the minimum edit the
// host must apply to the focused text field (spec.md §4.1, §6).
type Result struct {
	Action    Action
	Backspace uint8
	Chars     []rune
}

// CAPIResult is the fixed C-ABI layout Result crosses the FFI boundary
// as (spec.md §6). Field order and widths are pinned exactly; the two
// var _ declarations below are the "statically assert this layout"
// the spec requires — a mismatch fails the build instead of corrupting
// memory silently at runtime.
type CAPIResult struct {
	Chars     [MaxResultChars]uint32
	Action    uint8
	Backspace uint8
	Count     uint8
	_pad      uint8
}

var _ [unsafe.Sizeof(CAPIResult{})]byte = [260]byte{}
var _ [unsafe.Offsetof(CAPIResult{}.Action)]byte = [256]byte{}

// ToCAPI renders r into the fixed-layout struct the host reads,
// clamping Chars to MaxResultChars (spec.md §7, capacity exceeded is a
// silent clamp).
func (r Result) ToCAPI() CAPIResult {
	var out CAPIResult
	out.Action = uint8(r.Action)
	out.Backspace = r.Backspace

	n := len(r.Chars)
	if n > MaxResultChars {
		n = MaxResultChars
	}
	for i := 0; i < n; i++ {
		out.Chars[i] = uint32(r.Chars[i])
	}
	out.Count = uint8(n)
	return out
}
