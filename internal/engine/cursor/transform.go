package cursor

import "github.com/HerrChaos/obsidian-latex-suite/internal/engine/buffer"

// Edit is an alias for buffer.Edit for convenience.
type Edit = buffer.Edit

// TransformOffset maps an offset through an edit so it stays anchored to
// the same logical text.
//
// Rules:
//   - edit entirely before the offset: shift by the edit's length delta
//   - edit at or after the offset: unchanged
//   - edit spanning the offset: collapse to the end of the inserted text
func TransformOffset(offset ByteOffset, edit Edit) ByteOffset {
	if edit.Range.End <= offset {
		return offset + edit.Delta()
	}
	if edit.Range.Start >= offset {
		return offset
	}
	return edit.Range.Start + ByteOffset(len(edit.NewText))
}

// TransformOffsetSticky is TransformOffset with explicit behavior for an
// insertion landing exactly on the offset: sticky keeps the offset at the
// insertion start, non-sticky pushes it past the inserted text. Tabstop
// starts are sticky and tabstop ends are not, so text typed inside a
// tabstop grows it.
func TransformOffsetSticky(offset ByteOffset, edit Edit, sticky bool) ByteOffset {
	if edit.Range.Start == offset && edit.Range.IsEmpty() {
		if sticky {
			return offset
		}
		return offset + ByteOffset(len(edit.NewText))
	}
	return TransformOffset(offset, edit)
}

// TransformSelection maps both ends of a selection through an edit.
func TransformSelection(sel Selection, edit Edit) Selection {
	return Selection{
		Anchor: TransformOffset(sel.Anchor, edit),
		Head:   TransformOffset(sel.Head, edit),
	}
}

// TransformRange maps a range through an edit. The start is sticky and the
// end is not, so an insertion at either boundary extends the range.
func TransformRange(r Range, edit Edit) Range {
	start := TransformOffsetSticky(r.Start, edit, true)
	end := TransformOffsetSticky(r.End, edit, false)
	if start > end {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// TransformSet maps every selection in the set through an edit.
func TransformSet(s *Set, edit Edit) {
	for i := range s.selections {
		s.selections[i] = TransformSelection(s.selections[i], edit)
	}
	s.normalize()
}

// TransformSetMulti maps the set through a sequence of edits, given in the
// order they were applied.
func TransformSetMulti(s *Set, edits []Edit) {
	for _, edit := range edits {
		TransformSet(s, edit)
	}
}
