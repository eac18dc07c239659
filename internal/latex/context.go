package latex

import "strings"

// MathMode classifies a buffer position relative to math delimiters.
type MathMode uint8

const (
	// MathNone means the position is in plain text.
	MathNone MathMode = iota
	// MathInline means the position is inside $...$.
	MathInline
	// MathBlock means the position is inside $$...$$.
	MathBlock
)

// String returns a human-readable name for the mode.
func (m MathMode) String() string {
	switch m {
	case MathInline:
		return "inline"
	case MathBlock:
		return "block"
	default:
		return "none"
	}
}

// InMath returns true for inline or block math.
func (m MathMode) InMath() bool { return m != MathNone }

// Equation is a math region: Start/End delimit the content between the
// delimiters, not including them.
type Equation struct {
	Start int
	End   int
	Mode  MathMode
}

// Contains returns true if pos lies within the equation content.
func (e Equation) Contains(pos int) bool {
	return pos >= e.Start && pos <= e.End
}

// Text returns the equation content.
func (e Equation) Text(text string) string {
	end := e.End
	if end > len(text) {
		end = len(text)
	}
	return text[e.Start:end]
}

// MathModeAt reports whether pos is inside math, scanning delimiters from
// the start of the document. An unterminated opening delimiter counts as
// inside through the end of the document. Escaped dollars (\$) are ignored.
func MathModeAt(text string, pos int) MathMode {
	eq, ok := EquationBounds(text, pos)
	if !ok {
		return MathNone
	}
	return eq.Mode
}

// EquationBounds returns the innermost math region enclosing pos, or false
// if pos is not inside math. The region covers the content between the
// delimiters; an unterminated region extends to the end of the document.
func EquationBounds(text string, pos int) (Equation, bool) {
	if pos < 0 || pos > len(text) {
		return Equation{}, false
	}

	mode := MathNone
	contentStart := 0
	for i := 0; i < len(text); {
		if text[i] == '\\' {
			// Skip the escaped character so \$ never toggles a region.
			i += 2
			continue
		}
		if text[i] != '$' {
			i++
			continue
		}

		isBlock := strings.HasPrefix(text[i:], "$$")
		tok := 1
		if isBlock {
			tok = 2
		}

		switch mode {
		case MathNone:
			if pos < i {
				return Equation{}, false
			}
			if isBlock {
				mode = MathBlock
			} else {
				mode = MathInline
			}
			contentStart = i + tok
		case MathInline:
			// A bare $ closes inline math; $$ would too (empty display
			// delimiters never occur after an open inline region).
			if pos <= i {
				if pos >= contentStart {
					return Equation{Start: contentStart, End: i, Mode: MathInline}, true
				}
				return Equation{}, false
			}
			mode = MathNone
			tok = 1
		case MathBlock:
			if !isBlock {
				// A single $ inside block math is content, not a delimiter.
				i++
				continue
			}
			if pos <= i {
				return Equation{Start: contentStart, End: i, Mode: MathBlock}, true
			}
			mode = MathNone
		}
		i += tok
	}

	if mode != MathNone && pos >= contentStart {
		return Equation{Start: contentStart, End: len(text), Mode: mode}, true
	}
	return Equation{}, false
}

// InsideEnvironment reports whether pos lies strictly between an unmatched
// occurrence of env.Open before it and that occurrence's matching
// env.Close. Environments whose open symbol ends in "{" nest with ordinary
// braces, so the matching close is found by brace counting.
func InsideEnvironment(text string, pos int, env Environment) bool {
	if env.IsZero() || pos < 0 || pos > len(text) {
		return false
	}

	for from := pos; from > 0; {
		idx := strings.LastIndex(text[:from], env.Open)
		if idx == NotFound {
			return false
		}

		contentStart := idx + len(env.Open)
		closeIdx := environmentClose(text, idx, env)
		if pos >= contentStart && (closeIdx == NotFound || pos <= closeIdx) {
			return true
		}
		from = idx
	}
	return false
}

// environmentClose locates the close delimiter matching the env.Open
// occurrence at openIdx, or NotFound if the environment is unterminated.
func environmentClose(text string, openIdx int, env Environment) int {
	if env.Close == "}" && strings.HasSuffix(env.Open, "{") {
		brace := openIdx + len(env.Open) - 1
		return FindMatchingBracket(text, brace, "{", "}", false, NotFound)
	}
	return FindMatchingBracket(text, openIdx, env.Open, env.Close, false, NotFound)
}
