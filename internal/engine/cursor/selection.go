package cursor

import (
	"fmt"

	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection is a range of selected text. Anchor is where the selection
// started; Head is where typing occurs. Anchor == Head is a bare cursor.
// Selection is an immutable value type.
type Selection struct {
	Anchor ByteOffset
	Head   ByteOffset
}

// New creates a selection from anchor to head.
func New(anchor, head ByteOffset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// At creates a collapsed selection (a cursor) at offset.
func At(offset ByteOffset) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// FromRange creates a forward selection covering r.
func FromRange(r Range) Selection {
	return Selection{Anchor: r.Start, Head: r.End}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool { return s.Anchor == s.Head }

// Start returns the lower bound of the selection.
func (s Selection) Start() ByteOffset {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() ByteOffset {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// Len returns the selection length in bytes.
func (s Selection) Len() ByteOffset { return s.End() - s.Start() }

// Range returns the selection as a forward range.
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// Collapse returns a cursor at the head.
func (s Selection) Collapse() Selection { return At(s.Head) }

// CollapseToEnd returns a cursor at the selection's upper bound.
func (s Selection) CollapseToEnd() Selection { return At(s.End()) }

// MoveTo returns a cursor at offset.
func (s Selection) MoveTo(offset ByteOffset) Selection { return At(offset) }

// Contains returns true if offset lies in [start, end). Always false for
// bare cursors.
func (s Selection) Contains(offset ByteOffset) bool {
	return offset >= s.Start() && offset < s.End()
}

// ContainsInclusive returns true if offset lies in [start, end].
func (s Selection) ContainsInclusive(offset ByteOffset) bool {
	return offset >= s.Start() && offset <= s.End()
}

// Equals returns true if both anchor and head match.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}

// SameRange returns true if the selections cover the same text, ignoring
// direction.
func (s Selection) SameRange(other Selection) bool {
	return s.Start() == other.Start() && s.End() == other.End()
}

// Clamp limits both ends to [0, maxOffset].
func (s Selection) Clamp(maxOffset ByteOffset) Selection {
	clamp := func(o ByteOffset) ByteOffset {
		if o < 0 {
			return 0
		}
		if o > maxOffset {
			return maxOffset
		}
		return o
	}
	return Selection{Anchor: clamp(s.Anchor), Head: clamp(s.Head)}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d..%d)", s.Anchor, s.Head)
}
