package buffer

import "fmt"

// Range is a byte range in the buffer. Start is inclusive, End exclusive.
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange creates a Range from start and end offsets.
func NewRange(start, end ByteOffset) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset { return r.End - r.Start }

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// IsValid returns true if Start <= End.
func (r Range) IsValid() bool { return r.Start <= r.End }

// Contains returns true if the offset lies within [Start, End).
func (r Range) Contains(offset ByteOffset) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsInclusive returns true if the offset lies within [Start, End].
func (r Range) ContainsInclusive(offset ByteOffset) bool {
	return offset >= r.Start && offset <= r.End
}

// Overlaps returns true if the two ranges share at least one byte.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Shift returns the range moved by delta bytes.
func (r Range) Shift(delta ByteOffset) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}
