// Command ffi builds the C-ABI shared library host platforms embed
// (spec.md §6). It holds no logic of its own: every exported function
// is a thin marshal/unmarshal wrapper around internal/engine's
// process-wide instance API.
package main

/*
#include <stdint.h>
#include <stdlib.h>

struct GovietResult {
	uint32_t chars[64];
	uint8_t  action;
	uint8_t  backspace;
	uint8_t  count;
	uint8_t  _pad;
};
*/
import "C"

import (
	"unsafe"

	"github.com/vietkey/goviet-core/internal/engine"
)

func main() {} // required by cgo's c-shared buildmode; unused.

func resultToC(r engine.Result) *C.struct_GovietResult {
	capi := r.ToCAPI()
	out := (*C.struct_GovietResult)(C.malloc(C.size_t(unsafe.Sizeof(C.struct_GovietResult{}))))
	for i, c := range capi.Chars {
		out.chars[i] = C.uint32_t(c)
	}
	out.action = C.uint8_t(capi.Action)
	out.backspace = C.uint8_t(capi.Backspace)
	out.count = C.uint8_t(capi.Count)
	out._pad = 0
	return out
}

//export goviet_init
func goviet_init() C.int {
	if err := engine.Init(); err != nil {
		return -1
	}
	return 0
}

//export goviet_shutdown
func goviet_shutdown() {
	engine.Shutdown()
}

//export goviet_key
func goviet_key(keySym C.uint32_t, caps C.int, ctrlLike C.int) *C.struct_GovietResult {
	mods := uint32(0)
	if caps != 0 {
		mods |= engine.ModShift
	}
	if ctrlLike != 0 {
		mods |= engine.ModControl
	}
	ev := engine.KeyEvent{KeySym: uint32(keySym), Modifiers: mods}
	return resultToC(engine.Key(ev))
}

//export goviet_free
func goviet_free(ptr *C.struct_GovietResult) {
	C.free(unsafe.Pointer(ptr))
}

//export goviet_resurrect
func goviet_resurrect() C.int {
	if engine.Resurrect() {
		return 1
	}
	return 0
}

//export goviet_clear
func goviet_clear() {
	engine.Clear()
}

//export goviet_clear_all
func goviet_clear_all() {
	engine.ClearAll()
}

//export goviet_get_buffer
func goviet_get_buffer() *C.char {
	return C.CString(engine.GetBuffer())
}

//export goviet_restore_word
func goviet_restore_word(word *C.char) C.int {
	if engine.RestoreWord(C.GoString(word)) {
		return 1
	}
	return 0
}

//export goviet_set_method
func goviet_set_method(method C.uint8_t) {
	kind := engine.MethodTelex
	if method == 1 {
		kind = engine.MethodVNI
	}
	engine.SetMethod(kind)
}

//export goviet_set_enabled
func goviet_set_enabled(enabled C.int) { engine.SetEnabled(enabled != 0) }

//export goviet_set_raw_mode
func goviet_set_raw_mode(raw C.int) { engine.SetRawMode(raw != 0) }

//export goviet_set_skip_w_shortcut
func goviet_set_skip_w_shortcut(skip C.int) { engine.SetSkipWShortcut(skip != 0) }

//export goviet_set_esc_restore
func goviet_set_esc_restore(enabled C.int) { engine.SetEscRestore(enabled != 0) }

//export goviet_set_free_tone
func goviet_set_free_tone(enabled C.int) { engine.SetFreeTone(enabled != 0) }

//export goviet_set_modern
func goviet_set_modern(enabled C.int) { engine.SetModernTone(enabled != 0) }

//export goviet_set_instant_restore
func goviet_set_instant_restore(enabled C.int) { engine.SetInstantRestore(enabled != 0) }

//export goviet_add_shortcut
func goviet_add_shortcut(trigger, replacement *C.char) C.int {
	ok := engine.AddShortcut(C.GoString(trigger), C.GoString(replacement), engine.TriggerImmediate, engine.ScopeAll, engine.CaseMatchTrigger)
	if ok {
		return 1
	}
	return 0
}

//export goviet_remove_shortcut
func goviet_remove_shortcut(trigger *C.char) {
	engine.RemoveShortcut(C.GoString(trigger))
}

//export goviet_clear_shortcuts
func goviet_clear_shortcuts() { engine.ClearShortcuts() }

//export goviet_shortcuts_count
func goviet_shortcuts_count() C.size_t { return C.size_t(engine.ShortcutsCount()) }

//export goviet_shortcuts_capacity
func goviet_shortcuts_capacity() C.size_t { return C.size_t(engine.ShortcutsCapacity()) }

//export goviet_shortcuts_full
func goviet_shortcuts_full() C.int {
	if engine.ShortcutsFull() {
		return 1
	}
	return 0
}
