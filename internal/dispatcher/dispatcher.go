// Package dispatcher routes key events through the engine's features in a
// fixed order: snippet expansion, tabstop navigation, auto-fraction,
// matrix shortcuts, tabout. The first feature that claims the key wins;
// any failure abandons the whole keystroke with the buffer untouched.
package dispatcher

import (
	"sort"

	"github.com/HerrChaos/obsidian-latex-suite/internal/config"
	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/buffer"
	"github.com/HerrChaos/obsidian-latex-suite/internal/engine/cursor"
	"github.com/HerrChaos/obsidian-latex-suite/internal/expansion"
	"github.com/HerrChaos/obsidian-latex-suite/internal/input/key"
	"github.com/HerrChaos/obsidian-latex-suite/internal/latex"
	"github.com/HerrChaos/obsidian-latex-suite/internal/script"
	"github.com/HerrChaos/obsidian-latex-suite/internal/snippet"
	"github.com/HerrChaos/obsidian-latex-suite/internal/snippet/match"
	"github.com/HerrChaos/obsidian-latex-suite/internal/tabstop"
)

// Engine owns the buffer, the cursor set, and the live tabstop batch, and
// processes one key event at a time to completion.
type Engine struct {
	settings config.Settings
	repo     *snippet.Repository
	buf      *buffer.Buffer
	cursors  *cursor.Set
	queue    *expansion.Queue
	stops    *tabstop.Manager
	eval     *script.Evaluator
}

// Option configures an Engine.
type Option func(*Engine)

// WithSettings overrides the default settings.
func WithSettings(s config.Settings) Option {
	return func(e *Engine) { e.settings = s }
}

// WithRepository supplies the initial snippet repository.
func WithRepository(r *snippet.Repository) Option {
	return func(e *Engine) { e.repo = r }
}

// New creates an Engine over the given buffer with the cursor at the
// start of the document.
func New(buf *buffer.Buffer, opts ...Option) *Engine {
	e := &Engine{
		settings: config.Default(),
		repo:     snippet.NewRepository(nil),
		buf:      buf,
		cursors:  cursor.NewSetAt(0),
		queue:    expansion.NewQueue(),
		stops:    tabstop.NewManager(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.eval = script.New(script.WithTimeout(e.settings.ScriptTimeout))
	return e
}

// Buffer returns the engine's buffer.
func (e *Engine) Buffer() *buffer.Buffer { return e.buf }

// Cursors returns the engine's cursor set. Hosts that move it directly
// must call CursorMoved afterward.
func (e *Engine) Cursors() *cursor.Set { return e.cursors }

// Tabstops returns the live tabstop manager.
func (e *Engine) Tabstops() *tabstop.Manager { return e.stops }

// Settings returns the engine configuration.
func (e *Engine) Settings() config.Settings { return e.settings }

// Reload swaps the snippet repository wholesale and clears any live
// tabstop batch. Malformed definitions are skipped and reported.
func (e *Engine) Reload(defs string) []error {
	repo, errs := snippet.Load(defs)
	e.repo = repo
	e.stops.ClearAll()
	return errs
}

// HandleKey processes one key event. A Handled result means the host must
// suppress its default handling of the key.
func (e *Engine) HandleKey(ev key.Event) Result {
	if res, done := e.expandSnippets(ev); done {
		return res
	}
	if res, done := e.navigateTabstops(ev); done {
		return res
	}
	if res, done := e.autoFraction(ev); done {
		return res
	}
	if res, done := e.matrixShortcuts(ev); done {
		return res
	}
	if res, done := e.tabout(ev); done {
		return res
	}
	return noOp()
}

// ApplyExternalEdit records a buffer change made outside the engine, such
// as ordinary typing or an undo, keeping tabstops and cursors anchored.
func (e *Engine) ApplyExternalEdit(edit buffer.Edit) error {
	if _, err := e.buf.ApplyEdit(edit); err != nil {
		return err
	}
	e.stops.RemapThroughEdit(edit)
	cursor.TransformSet(e.cursors, edit)
	return nil
}

// CursorMoved reacts to a user-initiated cursor move: leaving every live
// tabstop finishes the batch. The engine's own cursor placements never
// come through here.
func (e *Engine) CursorMoved() {
	if !e.stops.Active() {
		return
	}
	for _, sel := range e.cursors.All() {
		if e.stops.IsInsideATabstop(sel.Head) || e.stops.IsInsideLastTabstop(sel) {
			return
		}
	}
	e.stops.ClearAll()
}

func (e *Engine) expandSnippets(ev key.Event) (Result, bool) {
	if !e.settings.SnippetsEnabled || e.repo.Len() == 0 {
		return Result{}, false
	}
	typed := ""
	if ev.IsChar() {
		typed = string(ev.Rune)
	}
	tab := ev.IsTab()
	if typed == "" && !tab {
		return Result{}, false
	}

	// Every cursor matches against the same pre-keystroke snapshot; no
	// cursor observes another cursor's edit.
	text := e.buf.Snapshot().Text()
	opts := match.Options{
		WordDelimiters: e.settings.WordDelimiters,
		TrimInline:     e.settings.RemoveTrailingWhitespace,
		Evaluator:      e.eval,
	}
	snippets := e.repo.Snippets()
	var unmatched []cursor.Selection
	for _, sel := range e.cursors.DescendingByPosition() {
		req := match.Request{
			Text:     text,
			Pos:      int(sel.End()),
			SelStart: int(sel.Start()),
			SelEnd:   int(sel.End()),
			Typed:    typed,
			Tab:      tab,
		}
		matched := false
		for i := range snippets {
			res, ok, err := match.Try(&snippets[i], req, opts)
			if err != nil {
				// A failing script only rules out that snippet.
				continue
			}
			if ok {
				e.queue.Queue(expansion.QueuedEdit{
					Start:  buffer.ByteOffset(res.Start),
					End:    buffer.ByteOffset(res.End),
					Text:   res.Replacement,
					Origin: snippets[i].Trigger,
				})
				matched = true
				break
			}
		}
		if !matched {
			unmatched = append(unmatched, sel)
		}
	}
	if e.queue.Len() == 0 {
		return Result{}, false
	}
	return e.flushQueue(unmatched), true
}

func (e *Engine) navigateTabstops(ev key.Event) (Result, bool) {
	if !e.stops.Active() {
		return Result{}, false
	}
	if ev.IsShiftTab() {
		if sels, ok := e.stops.GotoPrevious(); ok {
			e.cursors.SetAll(sels)
			return handled(), true
		}
		return Result{}, false
	}
	if !ev.IsTab() || !e.stops.IsInsideATabstop(e.cursors.Primary().Head) {
		return Result{}, false
	}
	if sels, ok := e.stops.ConsumeAndGotoNext(); ok {
		e.cursors.SetAll(sels)
		return handled(), true
	}
	// The terminal tabstop was consumed: the batch is gone and the key
	// falls through to the remaining handlers.
	return Result{}, false
}

func (e *Engine) autoFraction(ev key.Event) (Result, bool) {
	if !e.settings.AutofractionEnabled || !ev.IsChar() || ev.Rune != '/' {
		return Result{}, false
	}
	text := e.buf.Snapshot().Text()
	var unmatched []cursor.Selection
	for _, sel := range e.cursors.DescendingByPosition() {
		if !sel.IsEmpty() {
			unmatched = append(unmatched, sel)
			continue
		}
		pos := int(sel.Head)
		if e.excludedFromAutofraction(text, pos) {
			unmatched = append(unmatched, sel)
			continue
		}
		fr, ok := latex.BuildFraction(text, pos, e.settings.AutofractionBreakingChars)
		if !ok {
			unmatched = append(unmatched, sel)
			continue
		}
		// The slash is never inserted; the span ends at the cursor.
		e.queue.Queue(expansion.QueuedEdit{
			Start:  buffer.ByteOffset(fr.Start),
			End:    buffer.ByteOffset(fr.End),
			Text:   fr.Replacement,
			Origin: "autofraction",
		})
	}
	if e.queue.Len() == 0 {
		return Result{}, false
	}
	return e.flushQueue(unmatched), true
}

// excludedFromAutofraction reports whether pos sits inside an environment
// where a slash should stay a slash, such as \text{}.
func (e *Engine) excludedFromAutofraction(text string, pos int) bool {
	for _, env := range e.settings.AutofractionExcludedEnvs {
		if latex.InsideEnvironment(text, pos, latex.NewEnvironment(env.Open, env.Close)) {
			return true
		}
	}
	return false
}

func (e *Engine) matrixShortcuts(ev key.Event) (Result, bool) {
	if !e.settings.MatrixShortcutsEnabled {
		return Result{}, false
	}
	text := e.buf.Snapshot().Text()
	pos := int(e.cursors.Primary().Head)
	if !latex.InMatrixEnvironment(text, pos, e.settings.MatrixEnvironments) {
		return Result{}, false
	}
	switch {
	case ev.IsTab():
		return e.insertAtCursors(latex.ColumnSeparator, "matrix"), true
	case ev.IsEnter():
		return e.insertAtCursors(latex.RowSeparator, "matrix"), true
	case ev.IsShiftEnter():
		if end, ok := latex.NextLineEnd(text, pos); ok {
			e.cursors.Set(cursor.At(buffer.ByteOffset(end)))
			return handled(), true
		}
	}
	return Result{}, false
}

func (e *Engine) tabout(ev key.Event) (Result, bool) {
	if !e.settings.TaboutEnabled || !ev.IsTab() || e.cursors.Count() != 1 {
		return Result{}, false
	}
	text := e.buf.Snapshot().Text()
	plan, ok := latex.Tabout(text, int(e.cursors.Primary().Head))
	if !ok {
		return Result{}, false
	}
	if len(plan.Changes) > 0 {
		edits := changesToEdits(plan.Changes)
		if err := e.buf.ApplyEdits(edits); err != nil {
			return failed(err), true
		}
		e.stops.RemapThroughEdits(edits)
	}
	e.cursors.Set(cursor.At(buffer.ByteOffset(plan.Cursor)))
	return handled(), true
}

// flushQueue applies the pending edits as one transaction and places the
// cursors: at the first tabstop group when the inserted text carried
// markers, at each insertion's tail otherwise. Cursors in unmatched did
// not contribute an edit and survive the flush, carried through the
// applied edits. A flush failure abandons the keystroke and drops any
// live batch.
func (e *Engine) flushQueue(unmatched []cursor.Selection) Result {
	fr, err := e.queue.Flush(e.buf)
	if err != nil {
		e.stops.ClearAll()
		return failed(err)
	}
	kept := transformSelections(unmatched, fr.Edits)
	if len(fr.Markers) > 0 {
		e.cursors.SetAll(append(e.stops.Begin(fr.Markers), kept...))
	} else {
		e.stops.RemapThroughEdits(fr.Edits)
		sels := kept
		for _, tail := range fr.Tails {
			sels = append(sels, cursor.At(tail))
		}
		if len(sels) > 0 {
			e.cursors.SetAll(sels)
		}
	}
	e.autoEnlarge()
	return handled()
}

// transformSelections maps selections taken against the pre-flush text
// through the flushed edits, highest first so each transform sees offsets
// the remaining edits have not shifted yet.
func transformSelections(sels []cursor.Selection, edits []buffer.Edit) []cursor.Selection {
	if len(sels) == 0 || len(edits) == 0 {
		return sels
	}
	desc := make([]buffer.Edit, len(edits))
	copy(desc, edits)
	sort.SliceStable(desc, func(i, j int) bool {
		return desc[i].Range.Start > desc[j].Range.Start
	})
	out := make([]cursor.Selection, len(sels))
	copy(out, sels)
	for i := range out {
		for _, edit := range desc {
			out[i] = cursor.TransformSelection(out[i], edit)
		}
	}
	return out
}

// insertAtCursors replaces every selection with text via the queue, so
// multi-cursor inserts stay atomic.
func (e *Engine) insertAtCursors(text, origin string) Result {
	for _, sel := range e.cursors.DescendingByPosition() {
		e.queue.Queue(expansion.QueuedEdit{
			Start:  sel.Start(),
			End:    sel.End(),
			Text:   text,
			Origin: origin,
		})
	}
	return e.flushQueue(nil)
}

// autoEnlarge wraps bracket pairs with tall contents in sizing commands,
// scanning the equation around the primary cursor. Runs after every
// expansion; already-wrapped pairs are skipped so the pass is idempotent.
func (e *Engine) autoEnlarge() {
	if !e.settings.AutoEnlargeBrackets {
		return
	}
	text := e.buf.Snapshot().Text()
	pos := int(e.cursors.Primary().Head)
	changes := latex.EnlargeBrackets(text, pos, e.settings.AutoEnlargeTriggers)
	if len(changes) == 0 {
		return
	}
	edits := changesToEdits(changes)
	if err := e.buf.ApplyEdits(edits); err != nil {
		return
	}
	e.stops.RemapThroughEdits(edits)
	desc := make([]buffer.Edit, len(edits))
	copy(desc, edits)
	sort.SliceStable(desc, func(i, j int) bool {
		return desc[i].Range.Start > desc[j].Range.Start
	})
	for _, edit := range desc {
		cursor.TransformSet(e.cursors, edit)
	}
}

func changesToEdits(changes []latex.Change) []buffer.Edit {
	edits := make([]buffer.Edit, 0, len(changes))
	for _, c := range changes {
		edits = append(edits, buffer.Edit{
			Range:   buffer.NewRange(buffer.ByteOffset(c.From), buffer.ByteOffset(c.To)),
			NewText: c.Insert,
		})
	}
	return edits
}
