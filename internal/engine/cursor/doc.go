// Package cursor models selections and multi-cursor sets, and provides the
// offset transformation rules that keep positions anchored to the same
// logical text as the buffer mutates. The tabstop manager and the selection
// set both remap through every applied edit with these rules.
package cursor
