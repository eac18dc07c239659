package key

import "testing"

func TestRuneEvent(t *testing.T) {
	e := NewRuneEvent('x', ModNone)
	if !e.IsRune() || !e.IsChar() {
		t.Error("expected rune/char event")
	}
	if e.IsModified() {
		t.Error("unmodified event reported modified")
	}
	if e.String() != "x" {
		t.Errorf("unexpected string %q", e.String())
	}
}

func TestShiftDoesNotModifyRunes(t *testing.T) {
	e := NewRuneEvent('X', ModShift)
	if e.IsModified() {
		t.Error("shift alone should not count as modified for characters")
	}
	if !NewSpecialEvent(KeyTab, ModShift).IsModified() {
		t.Error("shift should count as modified for special keys")
	}
}

func TestTabPredicates(t *testing.T) {
	if !NewSpecialEvent(KeyTab, ModNone).IsTab() {
		t.Error("expected IsTab")
	}
	if NewSpecialEvent(KeyTab, ModShift).IsTab() {
		t.Error("shift-tab should not be IsTab")
	}
	if !NewSpecialEvent(KeyTab, ModShift).IsShiftTab() {
		t.Error("expected IsShiftTab")
	}
	if !NewSpecialEvent(KeyEnter, ModShift).IsShiftEnter() {
		t.Error("expected IsShiftEnter")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('s', ModCtrl), "C-s"},
		{NewSpecialEvent(KeyTab, ModShift), "S-Tab"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
