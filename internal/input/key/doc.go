// Package key defines the key event model the dispatcher consumes. The host
// hands the engine one Event per keystroke; FromTcell adapts terminal
// events for hosts built on tcell.
package key
