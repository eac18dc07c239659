package key

import "github.com/gdamore/tcell/v2"

// FromTcell converts a tcell key event into an engine Event. Keys the
// engine has no use for map to KeyNone; the host should treat those as
// unhandled without consulting the dispatcher.
func FromTcell(ev *tcell.EventKey) Event {
	mods := ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods |= ModMeta
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEscape:
		return NewSpecialEvent(KeyEscape, mods)
	case tcell.KeyEnter:
		return NewSpecialEvent(KeyEnter, mods)
	case tcell.KeyTab:
		return NewSpecialEvent(KeyTab, mods)
	case tcell.KeyBacktab:
		return NewSpecialEvent(KeyTab, mods|ModShift)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NewSpecialEvent(KeyBackspace, mods)
	case tcell.KeyDelete:
		return NewSpecialEvent(KeyDelete, mods)
	case tcell.KeyHome:
		return NewSpecialEvent(KeyHome, mods)
	case tcell.KeyEnd:
		return NewSpecialEvent(KeyEnd, mods)
	case tcell.KeyUp:
		return NewSpecialEvent(KeyUp, mods)
	case tcell.KeyDown:
		return NewSpecialEvent(KeyDown, mods)
	case tcell.KeyLeft:
		return NewSpecialEvent(KeyLeft, mods)
	case tcell.KeyRight:
		return NewSpecialEvent(KeyRight, mods)
	default:
		return NewSpecialEvent(KeyNone, mods)
	}
}
