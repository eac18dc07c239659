package buffer

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrEditsOverlap     = errors.New("edits overlap")
)

// Buffer holds the document text and provides offset addressing, coordinate
// conversion, and atomic multi-edit transactions. All methods are safe for
// concurrent use.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lineStarts []ByteOffset // offset of the first byte of each line; nil when stale
	revisionID RevisionID
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{revisionID: NewRevisionID()}
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string) *Buffer {
	return &Buffer{text: s, revisionID: NewRevisionID()}
}

// Read Operations

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// TextRange returns the text in [start, end), clamped to the buffer bounds.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return sliceClamped(b.text, start, end)
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text) == 0
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint32(len(b.lineIndex()))
}

// LineText returns the text of a line without its trailing newline.
func (b *Buffer) LineText(line uint32) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	start, end := b.lineBounds(line)
	return b.text[start:end]
}

// LineStartOffset returns the byte offset of the first byte of a line.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	start, _ := b.lineBounds(line)
	return start
}

// LineEndOffset returns the byte offset just past the last byte of a line,
// excluding the newline.
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, end := b.lineBounds(line)
	return end
}

// ByteAt returns the byte at offset, or false if out of range.
func (b *Buffer) ByteAt(offset ByteOffset) (byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset >= ByteOffset(len(b.text)) {
		return 0, false
	}
	return b.text[offset], true
}

// RuneAt returns the rune starting at the given byte offset.
// Returns utf8.RuneError and size 0 if offset is out of range.
func (b *Buffer) RuneAt(offset ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset >= ByteOffset(len(b.text)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(b.text[offset:])
}

// Coordinate Conversion

// OffsetToPoint converts a byte offset to a line/column point.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	if offset < 0 {
		offset = 0
	}
	if offset > ByteOffset(len(b.text)) {
		offset = ByteOffset(len(b.text))
	}
	starts := b.lineIndex()
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	return Point{Line: uint32(line), Column: uint32(offset - starts[line])}
}

// PointToOffset converts a line/column point to a byte offset. Points past
// the end of a line clamp to the line end; lines past the last line clamp
// to the buffer end.
func (b *Buffer) PointToOffset(point Point) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	starts := b.lineIndex()
	if int(point.Line) >= len(starts) {
		return ByteOffset(len(b.text))
	}
	start, end := b.lineBounds(point.Line)
	offset := start + ByteOffset(point.Column)
	if offset > end {
		offset = end
	}
	return offset
}

// Write Operations

// Insert inserts text at offset and returns the end of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	res, err := b.ApplyEdit(NewInsert(offset, text))
	if err != nil {
		return 0, err
	}
	return res.NewRange.End, nil
}

// Delete removes the text in [start, end).
func (b *Buffer) Delete(start, end ByteOffset) error {
	_, err := b.ApplyEdit(NewDelete(start, end))
	return err
}

// Replace replaces [start, end) with text and returns the end of the
// replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	res, err := b.ApplyEdit(NewEdit(NewRange(start, end), text))
	if err != nil {
		return 0, err
	}
	return res.NewRange.End, nil
}

// ApplyEdit applies a single edit.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !edit.Range.IsValid() || edit.Range.Start < 0 ||
		edit.Range.End > ByteOffset(len(b.text)) {
		return EditResult{}, ErrRangeInvalid
	}

	oldText := b.text[edit.Range.Start:edit.Range.End]
	b.text = b.text[:edit.Range.Start] + edit.NewText + b.text[edit.Range.End:]
	b.lineStarts = nil
	b.revisionID = NewRevisionID()

	newEnd := edit.Range.Start + ByteOffset(len(edit.NewText))
	return EditResult{
		OldRange: edit.Range,
		NewRange: Range{Start: edit.Range.Start, End: newEnd},
		OldText:  oldText,
		Delta:    int64(len(edit.NewText)) - int64(len(oldText)),
	}, nil
}

// ApplyEdits applies multiple edits as one transaction. Every edit's range
// refers to the buffer state before the transaction; edits may be given in
// any order but must not overlap. Either all edits apply or none do.
func (b *Buffer) ApplyEdits(edits []Edit) error {
	if len(edits) == 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Range.Start > sorted[j].Range.Start
	})

	bufLen := ByteOffset(len(b.text))
	for i, edit := range sorted {
		if !edit.Range.IsValid() || edit.Range.Start < 0 || edit.Range.End > bufLen {
			return ErrRangeInvalid
		}
		// sorted descending: the previous entry starts at or after this one ends
		if i > 0 && edit.Range.End > sorted[i-1].Range.Start {
			return ErrEditsOverlap
		}
	}

	var sb strings.Builder
	text := b.text
	// Apply highest offset first so earlier ranges stay valid.
	for _, edit := range sorted {
		sb.Reset()
		sb.Grow(len(text) + len(edit.NewText))
		sb.WriteString(text[:edit.Range.Start])
		sb.WriteString(edit.NewText)
		sb.WriteString(text[edit.Range.End:])
		text = sb.String()
	}

	b.text = text
	b.lineStarts = nil
	b.revisionID = NewRevisionID()
	return nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// Snapshot returns an immutable snapshot of the current buffer state.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{text: b.text, revisionID: b.revisionID}
}

// internal helpers; callers hold b.mu.

// lineIndex returns the offsets of line starts, rebuilding the cache if a
// mutation invalidated it. Line 0 always starts at offset 0.
func (b *Buffer) lineIndex() []ByteOffset {
	if b.lineStarts != nil {
		return b.lineStarts
	}
	starts := []ByteOffset{0}
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	b.lineStarts = starts
	return starts
}

func (b *Buffer) lineBounds(line uint32) (start, end ByteOffset) {
	starts := b.lineIndex()
	if int(line) >= len(starts) {
		l := ByteOffset(len(b.text))
		return l, l
	}
	start = starts[int(line)]
	if int(line)+1 < len(starts) {
		end = starts[int(line)+1] - 1 // exclude the newline
	} else {
		end = ByteOffset(len(b.text))
	}
	return start, end
}

func sliceClamped(s string, start, end ByteOffset) string {
	if start < 0 {
		start = 0
	}
	if end > ByteOffset(len(s)) {
		end = ByteOffset(len(s))
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}
