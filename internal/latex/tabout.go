package latex

import "strings"

// TaboutPlan describes how a Tab press leaves its current bracket or math
// region: apply Changes (pre-edit offsets, non-overlapping), then place the
// cursor at Cursor interpreted against the post-edit text.
type TaboutPlan struct {
	Changes []Change
	Cursor  int
}

// Tabout computes the tabout action for a Tab pressed at pos inside math.
// It first looks for an unmatched closing delimiter between pos and the
// region end and steps just past it. Failing that, if only whitespace
// remains before the region end, the cursor exits the region entirely:
// past the closing $ for inline math, past the closing $$ for block math
// (creating a following line when the document ends there), trimming
// whitespace left behind on the vacated line.
func Tabout(text string, pos int) (TaboutPlan, bool) {
	eq, ok := EquationBounds(text, pos)
	if !ok {
		return TaboutPlan{}, false
	}
	end := eq.End
	if end > len(text) {
		end = len(text)
	}

	if target, found := nextUnmatchedClose(text, pos, end); found {
		return TaboutPlan{Cursor: target}, true
	}

	// No delimiter to step past: exit the region when only whitespace is
	// left before its end.
	if strings.TrimSpace(text[pos:end]) != "" {
		return TaboutPlan{}, false
	}

	var plan TaboutPlan
	trimEnd := lineWhitespaceEnd(text, pos, end)
	if trimEnd > pos {
		plan.Changes = append(plan.Changes, DeleteSpan(pos, trimEnd))
	}
	trimmed := trimEnd - pos

	switch eq.Mode {
	case MathInline:
		plan.Cursor = end + 1 - trimmed
	case MathBlock:
		after := end + 2
		if after >= len(text) || text[after] != '\n' {
			plan.Changes = append(plan.Changes, InsertAt(min(after, len(text)), "\n"))
		}
		plan.Cursor = after + 1 - trimmed
	default:
		return TaboutPlan{}, false
	}
	return plan, true
}

// nextUnmatchedClose finds the first closing delimiter between pos and end
// that has no matching open after pos, and returns the offset just past it.
func nextUnmatchedClose(text string, pos, end int) (int, bool) {
	depth := 0
	for i := pos; i < end; {
		if open := openTokenAt(text, i); open != "" {
			depth++
			i += len(open)
			continue
		}
		if close := closeTokenAt(text, i); close != "" {
			if depth == 0 {
				return i + len(close), true
			}
			depth--
			i += len(close)
			continue
		}
		i++
	}
	return 0, false
}

// lineWhitespaceEnd returns the end of the run of spaces and tabs starting
// at pos on the cursor's own line, bounded by limit.
func lineWhitespaceEnd(text string, pos, limit int) int {
	i := pos
	for i < limit && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return i
}
