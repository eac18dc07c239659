// Package match decides whether one snippet fires at one cursor and
// computes the replacement text and the span it replaces.
package match

import (
	"strconv"
	"strings"

	"github.com/HerrChaos/obsidian-latex-suite/internal/latex"
	"github.com/HerrChaos/obsidian-latex-suite/internal/script"
	"github.com/HerrChaos/obsidian-latex-suite/internal/snippet"
)

// DefaultWordDelimiters is the boundary character set for w-flagged
// snippets when the caller supplies none. Newline is a member so a trigger
// at the start or end of a line counts as bounded.
const DefaultWordDelimiters = "., +-\n\t:;!?/{}[]()=~$"

// Request is everything the matcher needs about the keystroke: a snapshot
// of the document, the cursor, the selection span (empty when SelStart ==
// SelEnd), and what was pressed. Typed holds the just-pressed printable
// character and is empty for Tab and other non-printable keys.
type Request struct {
	Text     string
	Pos      int
	SelStart int
	SelEnd   int
	Typed    string
	Tab      bool
}

// HasSelection reports whether a non-empty selection is active.
func (r Request) HasSelection() bool { return r.SelEnd > r.SelStart }

// Options carries the tunable matching behavior.
type Options struct {
	// WordDelimiters bounds w-flagged triggers; empty means the default
	// set.
	WordDelimiters string
	// TrimInline enables the inline-math trailing-whitespace cleanup.
	TrimInline bool
	// Evaluator runs script snippet replacements; nil means a default
	// evaluator.
	Evaluator *script.Evaluator
}

// Result is a successful match: replace [Start, End) of the pre-edit
// document with Replacement. Tabstop markers in Replacement are resolved
// later by the expansion queue.
type Result struct {
	Start       int
	End         int
	Replacement string
}

var defaultEvaluator = script.New()

// Try matches one snippet against one cursor. The boolean reports whether
// the snippet fires. A non-nil error means the snippet's script failed;
// the snippet does not fire but the caller may surface the diagnostic.
func Try(s *snippet.Snippet, req Request, opts Options) (Result, bool, error) {
	anyChar := s.Automatic || s.Kind == snippet.Visual
	if anyChar {
		if req.Typed == "" {
			return Result{}, false, nil
		}
	} else if !req.Tab {
		return Result{}, false, nil
	}

	mode := latex.MathModeAt(req.Text, req.Pos)
	if s.MathOnly && !mode.InMath() {
		return Result{}, false, nil
	}
	if s.TextOnly && mode.InMath() {
		return Result{}, false, nil
	}
	if !s.ExcludeIn.IsZero() && latex.InsideEnvironment(req.Text, req.Pos, s.ExcludeIn) {
		return Result{}, false, nil
	}

	if s.Kind == snippet.Visual {
		return tryVisual(s, req)
	}
	if req.HasSelection() {
		// Selections only trigger visual snippets.
		return Result{}, false, nil
	}

	lineStart := strings.LastIndexByte(req.Text[:req.Pos], '\n') + 1
	effective := req.Text[lineStart:req.Pos]
	if anyChar {
		effective += req.Typed
	}

	var res Result
	var captures []string
	matched := ""
	if s.IsRegex() {
		loc := s.Pattern.FindStringSubmatchIndex(effective)
		if loc == nil {
			return Result{}, false, nil
		}
		matched = effective[loc[0]:loc[1]]
		for g := 1; g*2 < len(loc); g++ {
			if loc[g*2] < 0 {
				captures = append(captures, "")
				continue
			}
			captures = append(captures, effective[loc[g*2]:loc[g*2+1]])
		}
		res.Start = lineStart + loc[0]
	} else {
		if !strings.HasSuffix(effective, s.Trigger) {
			return Result{}, false, nil
		}
		matched = s.Trigger
		res.Start = lineStart + len(effective) - len(s.Trigger)
	}
	res.End = req.Pos

	if s.WordBoundary && !wordBounded(req.Text, res.Start, req.Pos, opts.WordDelimiters) {
		return Result{}, false, nil
	}

	switch s.Kind {
	case snippet.Script:
		eval := opts.Evaluator
		if eval == nil {
			eval = defaultEvaluator
		}
		out, err := eval.Eval(s.LuaSource, matched, captures)
		if err != nil {
			return Result{}, false, err
		}
		res.Replacement = out
	case snippet.Regex:
		res.Replacement = substituteCaptures(s.Replacement, captures)
	default:
		res.Replacement = s.Replacement
	}

	if opts.TrimInline && mode == latex.MathInline && !s.IsRegex() && s.Kind != snippet.Visual {
		res.Replacement = trimInlineTail(res.Replacement)
	}
	return res, true, nil
}

func tryVisual(s *snippet.Snippet, req Request) (Result, bool, error) {
	if !req.HasSelection() {
		return Result{}, false, nil
	}
	// Typing with a selection active replaces it, so the effective line
	// is the text up to the selection plus the typed character.
	lineStart := strings.LastIndexByte(req.Text[:req.SelStart], '\n') + 1
	effective := req.Text[lineStart:req.SelStart] + req.Typed
	if !strings.HasSuffix(effective, s.Trigger) {
		return Result{}, false, nil
	}
	selected := req.Text[req.SelStart:req.SelEnd]
	return Result{
		Start:       req.SelStart,
		End:         req.SelEnd,
		Replacement: strings.ReplaceAll(s.Replacement, snippet.VisualPlaceholder, selected),
	}, true, nil
}

// wordBounded checks the character before the replaced span and the
// character after the pre-edit cursor against the delimiter set. Document
// boundaries count as delimiters.
func wordBounded(text string, start, pos int, delimiters string) bool {
	if delimiters == "" {
		delimiters = DefaultWordDelimiters
	}
	if start > 0 && strings.IndexByte(delimiters, text[start-1]) < 0 {
		return false
	}
	if pos < len(text) && strings.IndexByte(delimiters, text[pos]) < 0 {
		return false
	}
	return true
}

// substituteCaptures replaces every [[i]] placeholder with capture group
// i+1's text.
func substituteCaptures(template string, captures []string) string {
	for i, c := range captures {
		template = strings.ReplaceAll(template, "[["+strconv.Itoa(i)+"]]", c)
	}
	return template
}

// trimInlineTail removes a trailing space from a replacement inserted into
// inline math: a bare trailing space is dropped, and a " $d" tail keeps
// the tabstop marker while dropping the space.
func trimInlineTail(replacement string) string {
	n := len(replacement)
	if n >= 3 && replacement[n-3] == ' ' && replacement[n-2] == '$' &&
		replacement[n-1] >= '0' && replacement[n-1] <= '9' {
		return replacement[:n-3] + replacement[n-2:]
	}
	if strings.HasSuffix(replacement, " ") {
		return replacement[:n-1]
	}
	return replacement
}
