// Package tabstop tracks the live tabstop batch created by an expansion:
// the placeholder positions the cursor hops between, kept anchored to the
// same logical text as the buffer keeps changing.
package tabstop

import (
	"sort"

	"github.com/google/uuid"

	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/buffer"
	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/cursor"
	"github.com/HerrChaos/obsidian-latex-suite/internal/expansion"
)

// Tabstop is one live placeholder. Stops sharing an Index are mirrors and
// are always selected together.
type Tabstop struct {
	Index int
	Range buffer.Range
}

// IsEnd reports whether this is the terminal placeholder of its batch.
func (t Tabstop) IsEnd() bool { return t.Index == 0 }

// visitOrder maps placeholder indices to navigation order: 1 through 9
// ascending, with 0 visited last.
func visitOrder(index int) int {
	if index == 0 {
		return 10
	}
	return index
}

// Manager owns the current batch. At most one batch is live at a time; a
// new expansion supersedes the previous batch wholesale. All stops of a
// batch live and die together.
type Manager struct {
	batch   uuid.UUID
	stops   []Tabstop
	current int // visit order of the occupied group, 0 when no batch
}

// NewManager creates a Manager with no live batch.
func NewManager() *Manager { return &Manager{} }

// Begin replaces any live batch with the markers of a fresh expansion and
// returns the selections for the first group: every mirror of the lowest
// visit-order index, leftmost first. Returns nil if markers is empty.
func (m *Manager) Begin(markers []expansion.Marker) []cursor.Selection {
	m.ClearAll()
	if len(markers) == 0 {
		return nil
	}

	stops := make([]Tabstop, 0, len(markers))
	for _, mk := range markers {
		stops = append(stops, Tabstop{
			Index: mk.Index,
			Range: buffer.NewRange(mk.Pos, mk.Pos),
		})
	}
	sort.SliceStable(stops, func(i, j int) bool {
		a, b := visitOrder(stops[i].Index), visitOrder(stops[j].Index)
		if a != b {
			return a < b
		}
		return stops[i].Range.Start < stops[j].Range.Start
	})

	m.batch = uuid.New()
	m.stops = stops
	m.current = visitOrder(stops[0].Index)
	return m.group(m.current)
}

// Active reports whether a batch is live.
func (m *Manager) Active() bool { return len(m.stops) > 0 }

// Batch identifies the live batch. Zero when none is live.
func (m *Manager) Batch() uuid.UUID { return m.batch }

// IsInsideATabstop reports whether pos lies within any live stop,
// boundaries included.
func (m *Manager) IsInsideATabstop(pos buffer.ByteOffset) bool {
	for _, s := range m.stops {
		if s.Range.ContainsInclusive(pos) {
			return true
		}
	}
	return false
}

// IsInsideLastTabstop reports whether sel covers the terminal stop's span.
func (m *Manager) IsInsideLastTabstop(sel cursor.Selection) bool {
	if !m.Active() {
		return false
	}
	last := m.stops[len(m.stops)-1]
	return sel.Start() == last.Range.Start && sel.End() == last.Range.End
}

// ConsumeAndGotoNext advances to the group after the occupied one and
// returns its selections. Consuming the final group clears the batch and
// returns false so the key falls through to other handlers; no batch also
// returns false.
func (m *Manager) ConsumeAndGotoNext() ([]cursor.Selection, bool) {
	if !m.Active() {
		return nil, false
	}
	next := 0
	for _, s := range m.stops {
		order := visitOrder(s.Index)
		if order > m.current && (next == 0 || order < next) {
			next = order
		}
	}
	if next == 0 {
		m.ClearAll()
		return nil, false
	}
	m.current = next
	return m.group(next), true
}

// GotoPrevious steps back to the group before the occupied one. Returns
// false (and stays put) at the first group or with no batch.
func (m *Manager) GotoPrevious() ([]cursor.Selection, bool) {
	if !m.Active() {
		return nil, false
	}
	prev := 0
	for _, s := range m.stops {
		order := visitOrder(s.Index)
		if order < m.current && order > prev {
			prev = order
		}
	}
	if prev == 0 {
		return nil, false
	}
	m.current = prev
	return m.group(prev), true
}

// RemapThroughEdit translates every live stop through one buffer edit,
// whatever produced it. Start offsets are sticky and end offsets are not,
// so typing at a zero-width stop grows it around the typed text.
func (m *Manager) RemapThroughEdit(edit buffer.Edit) {
	for i := range m.stops {
		m.stops[i].Range = cursor.TransformRange(m.stops[i].Range, edit)
	}
}

// RemapThroughEdits translates every stop through a transaction of
// non-overlapping edits whose offsets all address the pre-transaction
// buffer. Processing highest-first keeps each remaining edit's offsets
// valid as the stops move.
func (m *Manager) RemapThroughEdits(edits []buffer.Edit) {
	sorted := make([]buffer.Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Range.Start > sorted[j].Range.Start
	})
	for _, e := range sorted {
		m.RemapThroughEdit(e)
	}
}

// ClearAll drops the live batch.
func (m *Manager) ClearAll() {
	m.batch = uuid.UUID{}
	m.stops = nil
	m.current = 0
}

// Stops returns the live stops in visit order. Callers must not modify
// the slice.
func (m *Manager) Stops() []Tabstop { return m.stops }

func (m *Manager) group(order int) []cursor.Selection {
	var sels []cursor.Selection
	for _, s := range m.stops {
		if visitOrder(s.Index) == order {
			sels = append(sels, cursor.FromRange(s.Range))
		}
	}
	return sels
}
