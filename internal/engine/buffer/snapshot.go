package buffer

import "strings"

// Snapshot is an immutable view of a buffer at a single revision. The
// matcher runs against snapshots so that multi-cursor matching never
// observes a partially applied keystroke.
type Snapshot struct {
	text       string
	revisionID RevisionID
}

// NewSnapshot creates a snapshot directly from text. Used by tests and by
// components that scan transient strings with the buffer primitives.
func NewSnapshot(text string) *Snapshot {
	return &Snapshot{text: text, revisionID: NewRevisionID()}
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string { return s.text }

// TextRange returns the text in [start, end), clamped to the bounds.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	return sliceClamped(s.text, start, end)
}

// Len returns the snapshot length in bytes.
func (s *Snapshot) Len() ByteOffset { return ByteOffset(len(s.text)) }

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID { return s.revisionID }

// ByteAt returns the byte at offset, or false if out of range.
func (s *Snapshot) ByteAt(offset ByteOffset) (byte, bool) {
	if offset < 0 || offset >= ByteOffset(len(s.text)) {
		return 0, false
	}
	return s.text[offset], true
}

// LineAround returns the bounds of the line containing offset, excluding
// the trailing newline. Offsets out of range clamp to the buffer bounds.
func (s *Snapshot) LineAround(offset ByteOffset) Range {
	if offset < 0 {
		offset = 0
	}
	if offset > ByteOffset(len(s.text)) {
		offset = ByteOffset(len(s.text))
	}
	start := ByteOffset(strings.LastIndexByte(s.text[:offset], '\n') + 1)
	rel := strings.IndexByte(s.text[offset:], '\n')
	end := ByteOffset(len(s.text))
	if rel >= 0 {
		end = offset + ByteOffset(rel)
	}
	return Range{Start: start, End: end}
}

// LineUpTo returns the text from the start of the containing line up to
// offset. This is the "effective line" input to trigger matching.
func (s *Snapshot) LineUpTo(offset ByteOffset) string {
	line := s.LineAround(offset)
	return s.TextRange(line.Start, offset)
}
