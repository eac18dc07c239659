package buffer

import "fmt"

// Edit replaces a range of text with new text. Ranges always refer to the
// buffer state before the edit (or, inside a transaction, before the whole
// transaction) is applied.
type Edit struct {
	Range   Range
	NewText string
}

// NewEdit creates an Edit replacing r with newText.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit inserting text at offset.
func NewInsert(offset ByteOffset, text string) Edit {
	return Edit{Range: Range{Start: offset, End: offset}, NewText: text}
}

// NewDelete creates an Edit removing the range [start, end).
func NewDelete(start, end ByteOffset) Edit {
	return Edit{Range: Range{Start: start, End: end}}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range)
	}
	return fmt.Sprintf("Replace%s with %q", e.Range, e.NewText)
}

// IsInsert returns true if this is a pure insertion.
func (e Edit) IsInsert() bool { return e.Range.IsEmpty() && e.NewText != "" }

// IsDelete returns true if this is a pure deletion.
func (e Edit) IsDelete() bool { return !e.Range.IsEmpty() && e.NewText == "" }

// IsNoOp returns true if the edit changes nothing.
func (e Edit) IsNoOp() bool { return e.Range.IsEmpty() && e.NewText == "" }

// Delta returns the change in buffer length caused by this edit.
func (e Edit) Delta() ByteOffset {
	return ByteOffset(len(e.NewText)) - e.Range.Len()
}

// EditResult describes an applied edit.
type EditResult struct {
	OldRange Range  // range that was replaced
	NewRange Range  // range the new text occupies
	OldText  string // text that was replaced
	Delta    int64  // change in buffer length
}
