package buffer

import (
	"fmt"
	"sync/atomic"
)

// ByteOffset is a byte position in the buffer. It is the fundamental
// position type; all engine components address text with it.
type ByteOffset = int64

// Point is a 0-indexed line and column position. Column is measured in
// bytes from the start of the line.
type Point struct {
	Line   uint32
	Column uint32
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool { return p.Compare(other) < 0 }

// After returns true if p comes after other.
func (p Point) After(other Point) bool { return p.Compare(other) > 0 }

// RevisionID identifies a buffer revision. Every mutation produces a new
// revision, letting callers detect that cached offsets have gone stale.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID returns a process-unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
