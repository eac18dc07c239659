package cursor

import "sort"

// Set manages multiple selections. Selections are kept sorted by position
// and non-overlapping; the first selection is the primary one.
type Set struct {
	selections []Selection
}

// NewSet creates a set with a single selection.
func NewSet(initial Selection) *Set {
	return &Set{selections: []Selection{initial}}
}

// NewSetAt creates a set with a single cursor at offset.
func NewSetAt(offset ByteOffset) *Set {
	return NewSet(At(offset))
}

// NewSetFrom creates a set from selections, normalizing them.
func NewSetFrom(selections []Selection) *Set {
	if len(selections) == 0 {
		return NewSetAt(0)
	}
	s := &Set{selections: make([]Selection, len(selections))}
	copy(s.selections, selections)
	s.normalize()
	return s
}

// Primary returns the primary (first) selection.
func (s *Set) Primary() Selection {
	if len(s.selections) == 0 {
		return Selection{}
	}
	return s.selections[0]
}

// All returns a copy of all selections.
func (s *Set) All() []Selection {
	out := make([]Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// Count returns the number of selections.
func (s *Set) Count() int { return len(s.selections) }

// HasSelection returns true if any selection is non-empty.
func (s *Set) HasSelection() bool {
	for _, sel := range s.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// Set replaces all selections with a single one.
func (s *Set) Set(sel Selection) {
	s.selections = []Selection{sel}
}

// SetAll replaces all selections.
func (s *Set) SetAll(sels []Selection) {
	if len(sels) == 0 {
		s.selections = []Selection{At(0)}
		return
	}
	s.selections = make([]Selection, len(sels))
	copy(s.selections, sels)
	s.normalize()
}

// Add adds a selection, merging overlaps.
func (s *Set) Add(sel Selection) {
	s.selections = append(s.selections, sel)
	s.normalize()
}

// CollapseAll collapses every selection to a cursor at its head.
func (s *Set) CollapseAll() {
	for i, sel := range s.selections {
		s.selections[i] = sel.Collapse()
	}
	s.normalize()
}

// DescendingByPosition returns the selections ordered last-to-first in the
// document. The matcher visits cursors in this order so queued edits keep
// referring to pre-keystroke offsets.
func (s *Set) DescendingByPosition() []Selection {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start() > out[j].Start()
	})
	return out
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{selections: make([]Selection, len(s.selections))}
	copy(c.selections, s.selections)
	return c
}

// normalize sorts selections and merges overlapping ones.
func (s *Set) normalize() {
	if len(s.selections) <= 1 {
		return
	}
	sort.SliceStable(s.selections, func(i, j int) bool {
		si, sj := s.selections[i].Start(), s.selections[j].Start()
		if si != sj {
			return si < sj
		}
		return s.selections[i].End() > s.selections[j].End()
	})
	merged := s.selections[:1]
	for _, sel := range s.selections[1:] {
		last := &merged[len(merged)-1]
		if sel.Start() < last.End() || (sel.Start() == last.End() && !sel.IsEmpty() && !last.IsEmpty()) {
			*last = New(minOffset(last.Start(), sel.Start()), maxOffset(last.End(), sel.End()))
		} else if sel.Equals(*last) {
			continue
		} else {
			merged = append(merged, sel)
		}
	}
	s.selections = merged
}

func minOffset(a, b ByteOffset) ByteOffset {
	if a < b {
		return a
	}
	return b
}

func maxOffset(a, b ByteOffset) ByteOffset {
	if a > b {
		return a
	}
	return b
}
