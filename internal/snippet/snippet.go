// Package snippet defines the snippet record model and parses snippet
// definitions from their JSON source form.
package snippet

import (
	"regexp"

	"github.com/HerrChaos/obsidian-latex-suite/internal/latex"
)

// Kind is the closed set of snippet variants. The variant decides how the
// trigger is matched and how the replacement is produced; everything else
// (scope, word boundaries, automatic firing) composes orthogonally.
type Kind uint8

const (
	// Literal matches the trigger verbatim at the end of the typed text.
	Literal Kind = iota
	// Regex matches the trigger as a regular expression anchored to the
	// end of the typed text, with capture substitution in the replacement.
	Regex
	// Visual requires an active selection; the replacement substitutes
	// the selected text for its placeholder.
	Visual
	// Script computes the replacement by running a Lua function over the
	// matched text and captures.
	Script
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Regex:
		return "regex"
	case Visual:
		return "visual"
	case Script:
		return "script"
	default:
		return "unknown"
	}
}

// VisualPlaceholder marks where the selected text lands in a visual
// snippet's replacement.
const VisualPlaceholder = "${VISUAL}"

// Snippet is one immutable snippet record. Pattern is non-nil for Regex
// snippets and for Script snippets whose trigger carries the regex flag.
type Snippet struct {
	Trigger     string
	Replacement string
	Kind        Kind
	Pattern     *regexp.Regexp
	LuaSource   string

	Priority     int
	MathOnly     bool
	TextOnly     bool
	Automatic    bool
	WordBoundary bool
	ExcludeIn    latex.Environment
}

// IsRegex reports whether the trigger is matched as a regular expression.
// True for the Regex variant and for regex-triggered Script snippets.
func (s *Snippet) IsRegex() bool { return s.Pattern != nil }
