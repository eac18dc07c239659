package key

import (
	"fmt"
	"unicode"
)

// Event is a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates an event for a typed character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool { return e.Key == KeyRune && e.Rune != 0 }

// IsChar returns true if this is a printable character. Only events for
// which IsChar is true can fire automatic ("any character") snippets.
func (e Event) IsChar() bool { return e.IsRune() && unicode.IsPrint(e.Rune) }

// IsModified returns true if Ctrl, Alt, or Meta is held. Shift alone does
// not count for character events since it changes the character itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsTab returns true if this is Tab with no modifiers.
func (e Event) IsTab() bool { return e.Key == KeyTab && e.Modifiers == ModNone }

// IsShiftTab returns true if this is Tab with only Shift held.
func (e Event) IsShiftTab() bool { return e.Key == KeyTab && e.Modifiers == ModShift }

// IsEnter returns true if this is Enter with no modifiers.
func (e Event) IsEnter() bool { return e.Key == KeyEnter && e.Modifiers == ModNone }

// IsShiftEnter returns true if this is Enter with only Shift held.
func (e Event) IsShiftEnter() bool { return e.Key == KeyEnter && e.Modifiers == ModShift }

// String returns a canonical representation such as "a", "C-s", or "Tab".
func (e Event) String() string {
	var prefix string
	if e.Modifiers.HasCtrl() {
		prefix += "C-"
	}
	if e.Modifiers.HasAlt() {
		prefix += "A-"
	}
	if e.Modifiers.HasMeta() {
		prefix += "M-"
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		prefix += "S-"
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			return prefix + "Space"
		}
		return prefix + string(e.Rune)
	}
	return prefix + e.Key.String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}", e.Key, e.Rune, e.Modifiers)
}
