package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/vietkey/goviet-core/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object Fcitx5 (or any other frontend) talks
// to. It holds no composition state itself — that lives in the
// process-wide instance inside the engine package — only the logger
// and the bus plumbing.
type InputEngine struct {
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine with default settings.
func NewInputEngine(logger *log.Logger) *InputEngine {
	return &InputEngine{logger: logger}
}

// ProcessKey handles one key event from the frontend. Reply fields
// mirror engine.Result directly: action (0=none, 1=send, 2=restore),
// the number of trailing code points to delete, and the UTF-8 text to
// insert.
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (uint8, uint8, string, *dbus.Error) {
	event := engine.KeyEvent{KeySym: keysym, Modifiers: modifiers}
	result := engine.Key(event)

	if e.logger != nil {
		e.logger.Printf("Type: %-12s | Action: %d | Backspace: %d | Chars: %q",
			keyLabel(keysym, modifiers), result.Action, result.Backspace, string(result.Chars))
	}

	return uint8(result.Action), result.Backspace, string(result.Chars), nil
}

func keyLabel(keysym uint32, modifiers uint32) string {
	keyStr := fmt.Sprintf("0x%x", keysym)
	switch keysym {
	case engine.KeyBackspace:
		keyStr = "Backspace"
	case engine.KeySpace:
		keyStr = "Space"
	case engine.KeyReturn:
		keyStr = "Enter"
	case engine.KeyTab:
		keyStr = "Tab"
	case engine.KeyEscape:
		keyStr = "Esc"
	case engine.KeyDelete:
		keyStr = "Delete"
	case 0xff51:
		keyStr = "Left"
	case 0xff52:
		keyStr = "Up"
	case 0xff53:
		keyStr = "Right"
	case 0xff54:
		keyStr = "Down"
	case 0xff50:
		keyStr = "Home"
	case 0xff57:
		keyStr = "End"
	case 0xff55:
		keyStr = "PgUp"
	case 0xff56:
		keyStr = "PgDn"
	default:
		if r := rune(keysym); keysym >= 0x0020 && keysym <= 0x007e {
			keyStr = fmt.Sprintf("%q", r)
		}
	}

	modsStr := ""
	if modifiers&engine.ModShift != 0 {
		modsStr += "Shift+"
	}
	if modifiers&engine.ModControl != 0 {
		modsStr += "Ctrl+"
	}
	if modifiers&engine.ModMod1 != 0 {
		modsStr += "Alt+"
	}
	return modsStr + keyStr
}

// Resurrect restores the most recently committed word after the
// frontend reports a backspace across a word boundary.
func (e *InputEngine) Resurrect() (bool, *dbus.Error) {
	return engine.Resurrect(), nil
}

// Clear flushes the in-progress word only.
func (e *InputEngine) Clear() *dbus.Error {
	engine.Clear()
	return nil
}

// ClearAll flushes the in-progress word and the word history.
func (e *InputEngine) ClearAll() *dbus.Error {
	engine.ClearAll()
	fmt.Println(">>> [GoViet] Engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	engine.SetEnabled(enabled)
	fmt.Printf(">>> [GoViet] Engine enabled: %v\n", enabled)
	return nil
}

// SetMethod selects Telex (0) or VNI (1).
func (e *InputEngine) SetMethod(method uint8) *dbus.Error {
	kind := engine.MethodTelex
	if method == 1 {
		kind = engine.MethodVNI
	}
	engine.SetMethod(kind)
	fmt.Printf(">>> [GoViet] Input method: %d\n", method)
	return nil
}

// SetFreeTone toggles bypassing the syllable validator.
func (e *InputEngine) SetFreeTone(enabled bool) *dbus.Error {
	engine.SetFreeTone(enabled)
	return nil
}

// SetModernTone toggles traditional vs modern tone placement.
func (e *InputEngine) SetModernTone(enabled bool) *dbus.Error {
	engine.SetModernTone(enabled)
	return nil
}

// SetInstantRestore toggles mid-word English auto-restore.
func (e *InputEngine) SetInstantRestore(enabled bool) *dbus.Error {
	engine.SetInstantRestore(enabled)
	return nil
}

// SetRawMode toggles whether keystrokes bypass Vietnamese transformation
// entirely, passing through verbatim while the raw log keeps recording.
func (e *InputEngine) SetRawMode(raw bool) *dbus.Error {
	engine.SetRawMode(raw)
	return nil
}

// SetSkipWShortcut toggles Telex's standalone w -> ư shortcut.
func (e *InputEngine) SetSkipWShortcut(skip bool) *dbus.Error {
	engine.SetSkipWShortcut(skip)
	return nil
}

// SetEscRestore toggles whether ESC restores literal keystrokes.
func (e *InputEngine) SetEscRestore(enabled bool) *dbus.Error {
	engine.SetEscRestore(enabled)
	return nil
}

// GetBuffer returns the live composition buffer.
func (e *InputEngine) GetBuffer() (string, *dbus.Error) {
	return engine.GetBuffer(), nil
}

// RestoreWord seeds the engine from a host-supplied word, e.g. after
// the user moved the caret into an existing word to edit it.
func (e *InputEngine) RestoreWord(word string) (bool, *dbus.Error) {
	return engine.RestoreWord(word), nil
}

// AddShortcut inserts or replaces a shortcut. kind: 0 = immediate,
// 1 = on word boundary. scope: 0 = all, 1 = telex, 2 = vni. casePolicy:
// 0 = match trigger's case, 1 = use the replacement as stored.
func (e *InputEngine) AddShortcut(trigger, replacement string, kind, scope, casePolicy uint8) (bool, *dbus.Error) {
	tk := engine.TriggerImmediate
	if kind == 1 {
		tk = engine.TriggerOnBoundary
	}
	sc := engine.ScopeAll
	switch scope {
	case 1:
		sc = engine.ScopeTelex
	case 2:
		sc = engine.ScopeVNI
	}
	cp := engine.CaseMatchTrigger
	if casePolicy == 1 {
		cp = engine.CaseAsStored
	}
	return engine.AddShortcut(trigger, replacement, tk, sc, cp), nil
}

// RemoveShortcut deletes a shortcut by trigger.
func (e *InputEngine) RemoveShortcut(trigger string) (bool, *dbus.Error) {
	return engine.RemoveShortcut(trigger), nil
}

// ClearShortcuts empties the shortcut table.
func (e *InputEngine) ClearShortcuts() *dbus.Error {
	engine.ClearShortcuts()
	return nil
}

func main() {
	if err := engine.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load dictionary:", err)
		os.Exit(1)
	}
	defer engine.Shutdown()

	// 1. Connect to Session Bus
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	// 2. Register Service Name
	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}

	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	// 3. Setup Logging
	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [GoViet] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [GoViet] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	// 4. Create and export the engine
	inputEngine := NewInputEngine(logger)

	err = conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	// 5. Print startup banner
	fmt.Println("================================================")
	fmt.Println("GoViet-IME Backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Printf("  Input Method: Telex\n")
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	// 6. Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [GoViet] Shutting down...")
}
