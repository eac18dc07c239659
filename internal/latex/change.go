package latex

// Change is a text replacement produced by a cursor behavior, expressed in
// plain int offsets against the scanned text. The dispatcher converts
// changes to buffer edits.
type Change struct {
	From   int
	To     int
	Insert string
}

// InsertAt creates a point insertion.
func InsertAt(pos int, text string) Change {
	return Change{From: pos, To: pos, Insert: text}
}

// DeleteSpan creates a deletion.
func DeleteSpan(from, to int) Change {
	return Change{From: from, To: to}
}

// Delta returns the length change the edit causes.
func (c Change) Delta() int {
	return len(c.Insert) - (c.To - c.From)
}
