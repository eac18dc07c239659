package cursor

import (
	"testing"

	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/buffer"
)

func TestSelectionBasics(t *testing.T) {
	sel := New(10, 5)
	if sel.Start() != 5 || sel.End() != 10 {
		t.Errorf("unexpected bounds %d..%d", sel.Start(), sel.End())
	}
	if sel.Len() != 5 {
		t.Errorf("expected length 5, got %d", sel.Len())
	}
	if sel.IsEmpty() {
		t.Error("selection should not be empty")
	}
	if !At(3).IsEmpty() {
		t.Error("cursor should be empty")
	}
}

func TestSelectionContains(t *testing.T) {
	sel := New(5, 10)
	if !sel.Contains(5) || sel.Contains(10) {
		t.Error("Contains should be half-open")
	}
	if !sel.ContainsInclusive(10) {
		t.Error("ContainsInclusive should include the end")
	}
	if At(5).Contains(5) {
		t.Error("bare cursor contains nothing")
	}
}

func TestSetNormalizeMergesOverlaps(t *testing.T) {
	s := NewSetFrom([]Selection{New(5, 10), New(8, 15), At(20)})
	if s.Count() != 2 {
		t.Fatalf("expected 2 selections after merge, got %d", s.Count())
	}
	if got := s.Primary().Range(); got != (Range{Start: 5, End: 15}) {
		t.Errorf("unexpected merged range %v", got)
	}
}

func TestSetDescendingByPosition(t *testing.T) {
	s := NewSetFrom([]Selection{At(3), At(17), At(9)})
	desc := s.DescendingByPosition()
	want := []ByteOffset{17, 9, 3}
	for i, sel := range desc {
		if sel.Head != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], sel.Head)
		}
	}
}

func TestTransformOffsetBeforeEdit(t *testing.T) {
	edit := buffer.NewEdit(buffer.NewRange(2, 4), "xxxx")
	if got := TransformOffset(10, edit); got != 12 {
		t.Errorf("offset after edit should shift by delta, got %d", got)
	}
}

func TestTransformOffsetAfterEdit(t *testing.T) {
	edit := buffer.NewEdit(buffer.NewRange(20, 25), "")
	if got := TransformOffset(10, edit); got != 10 {
		t.Errorf("offset before edit should be unchanged, got %d", got)
	}
}

func TestTransformOffsetInsideEdit(t *testing.T) {
	edit := buffer.NewEdit(buffer.NewRange(5, 15), "ab")
	if got := TransformOffset(10, edit); got != 7 {
		t.Errorf("offset inside replaced span should collapse to insertion end, got %d", got)
	}
}

func TestTransformOffsetSticky(t *testing.T) {
	ins := buffer.NewInsert(10, "abc")
	if got := TransformOffsetSticky(10, ins, true); got != 10 {
		t.Errorf("sticky offset should stay, got %d", got)
	}
	if got := TransformOffsetSticky(10, ins, false); got != 13 {
		t.Errorf("non-sticky offset should move past insert, got %d", got)
	}
}

func TestTransformRangeGrowsOnInsertInside(t *testing.T) {
	r := Range{Start: 5, End: 5}
	grown := TransformRange(r, buffer.NewInsert(5, "xy"))
	if grown != (Range{Start: 5, End: 7}) {
		t.Errorf("empty range should grow over insertion, got %v", grown)
	}
}

func TestTransformRangeShifts(t *testing.T) {
	r := Range{Start: 10, End: 14}
	shifted := TransformRange(r, buffer.NewInsert(2, "abc"))
	if shifted != (Range{Start: 13, End: 17}) {
		t.Errorf("range after edit should shift, got %v", shifted)
	}
	same := TransformRange(r, buffer.NewInsert(20, "abc"))
	if same != r {
		t.Errorf("range before edit should be unchanged, got %v", same)
	}
}

func TestTransformSetMulti(t *testing.T) {
	s := NewSetFrom([]Selection{At(5), At(10)})
	edits := []Edit{
		buffer.NewInsert(0, "xx"), // both shift by 2
		buffer.NewInsert(9, "y"),  // only the second shifts
	}
	TransformSetMulti(s, edits)
	all := s.All()
	if all[0].Head != 7 {
		t.Errorf("first cursor: expected 7, got %d", all[0].Head)
	}
	if all[1].Head != 13 {
		t.Errorf("second cursor: expected 13, got %d", all[1].Head)
	}
}
