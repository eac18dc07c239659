package key

import "strings"

// Modifier is a bit set of modifier keys held during an event.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl returns true if Ctrl is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasMeta returns true if Meta/Command is held.
func (m Modifier) HasMeta() bool { return m&ModMeta != 0 }

// With returns the modifier set with mod added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
