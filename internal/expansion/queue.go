// Package expansion collects the edits produced while matching one
// keystroke and applies them to the buffer as a single transaction,
// resolving tabstop placeholder markers embedded in the inserted text.
package expansion

import (
	"sort"

	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/buffer"
)

// QueuedEdit is one pending replacement. Offsets address the pre-flush
// buffer; Text may contain tabstop markers, which are stripped before the
// edit is applied.
type QueuedEdit struct {
	Start  buffer.ByteOffset
	End    buffer.ByteOffset
	Text   string
	Origin string
}

// Marker is one tabstop placeholder found during a flush, located at its
// post-flush buffer offset. Markers are zero width at creation.
type Marker struct {
	Index int
	Pos   buffer.ByteOffset
}

// FlushResult reports what a flush did: the resolved tabstop markers, the
// post-flush tail offset of each insertion as a cursor fallback when no
// markers exist, and the edits that were applied (marker syntax stripped,
// offsets pre-flush) so callers can remap positions that predate the
// flush. Tails and Edits are ascending by position.
type FlushResult struct {
	Markers []Marker
	Tails   []buffer.ByteOffset
	Edits   []buffer.Edit
}

// Queue accumulates the edits for the keystroke being processed. It is
// empty before and after every fully processed keystroke.
type Queue struct {
	edits []QueuedEdit
}

// NewQueue creates an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Queue appends one pending edit without touching the buffer.
func (q *Queue) Queue(e QueuedEdit) { q.edits = append(q.edits, e) }

// Len returns the number of pending edits.
func (q *Queue) Len() int { return len(q.edits) }

// Clear discards every pending edit. Called on any error so a failed
// keystroke leaves the buffer untouched.
func (q *Queue) Clear() { q.edits = nil }

// Flush applies every pending edit to the buffer as one atomic
// transaction and clears the queue. All offsets are interpreted against
// the pre-flush buffer; the buffer validates and rejects overlapping
// edits, in which case nothing is applied and the queue is still cleared.
func (q *Queue) Flush(buf *buffer.Buffer) (FlushResult, error) {
	pending := q.edits
	q.edits = nil
	if len(pending) == 0 {
		return FlushResult{}, nil
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Start < pending[j].Start
	})

	edits := make([]buffer.Edit, 0, len(pending))
	type insertion struct {
		start    buffer.ByteOffset // pre-flush
		delta    buffer.ByteOffset
		stripped string
		markers  []markerRef
	}
	inserts := make([]insertion, 0, len(pending))
	for _, e := range pending {
		stripped, refs := stripMarkers(e.Text)
		edits = append(edits, buffer.Edit{
			Range:   buffer.NewRange(e.Start, e.End),
			NewText: stripped,
		})
		inserts = append(inserts, insertion{
			start:    e.Start,
			delta:    buffer.ByteOffset(len(stripped)) - (e.End - e.Start),
			stripped: stripped,
			markers:  refs,
		})
	}

	if err := buf.ApplyEdits(edits); err != nil {
		return FlushResult{}, err
	}

	// Post-flush positions: each insertion shifts by the accumulated
	// delta of the insertions before it.
	res := FlushResult{Edits: edits}
	var acc buffer.ByteOffset
	for _, ins := range inserts {
		base := ins.start + acc
		for _, ref := range ins.markers {
			res.Markers = append(res.Markers, Marker{
				Index: ref.index,
				Pos:   base + buffer.ByteOffset(ref.offset),
			})
		}
		res.Tails = append(res.Tails, base+buffer.ByteOffset(len(ins.stripped)))
		acc += ins.delta
	}
	return res, nil
}

type markerRef struct {
	index  int
	offset int // offset within the stripped insertion text
}

// stripMarkers removes $0..$9 and ${0}..${9} tabstop markers from text,
// recording each marker's index and its offset in the stripped result. A
// dollar preceded by a backslash is literal text.
func stripMarkers(text string) (string, []markerRef) {
	var (
		out  []byte
		refs []markerRef
	)
	for i := 0; i < len(text); {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			out = append(out, text[i], text[i+1])
			i += 2
			continue
		}
		if c == '$' {
			if i+1 < len(text) && isDigit(text[i+1]) {
				refs = append(refs, markerRef{index: int(text[i+1] - '0'), offset: len(out)})
				i += 2
				continue
			}
			if i+3 < len(text) && text[i+1] == '{' && isDigit(text[i+2]) && text[i+3] == '}' {
				refs = append(refs, markerRef{index: int(text[i+2] - '0'), offset: len(out)})
				i += 4
				continue
			}
		}
		out = append(out, c)
		i++
	}
	return string(out), refs
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
