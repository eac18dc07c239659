package latex

import "strings"

// NotFound is returned by scans that reach their bound without a match.
const NotFound = -1

// FindMatchingBracket walks text from start in one direction, tracking the
// nesting depth of an open/close token pair, and returns the index of the
// token that brings the depth back to zero. Tokens may be multi-character
// and are matched by literal substring comparison at each position.
//
// Searching forward, depth increases on open and decreases on close; the
// returned index is the start of the matching close token. Searching
// backward the roles are reversed and the returned index is the start of
// the matching open token. The scan starts counting at start, so callers
// normally pass the index of the bracket they want matched.
//
// limit bounds the scan: the index one past the last position examined when
// searching forward, or the lowest position examined when searching
// backward. Pass NotFound for the text's natural bound. Returns NotFound if
// the bound is reached first.
func FindMatchingBracket(text string, start int, open, close string, backward bool, limit int) int {
	if open == "" || close == "" || start < 0 || start > len(text) {
		return NotFound
	}

	if backward {
		if limit == NotFound {
			limit = 0
		}
		depth := 0
		for i := start; i >= limit; i-- {
			switch {
			case strings.HasPrefix(text[i:], close):
				depth++
			case strings.HasPrefix(text[i:], open):
				depth--
				if depth == 0 {
					return i
				}
			}
		}
		return NotFound
	}

	if limit == NotFound || limit > len(text) {
		limit = len(text)
	}
	depth := 0
	for i := start; i < limit; {
		switch {
		case strings.HasPrefix(text[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(text[i:], close):
			depth--
			if depth == 0 {
				return i
			}
			i += len(close)
		default:
			i++
		}
	}
	return NotFound
}

// bracketTable lists the delimiter pairs recognized by tabout. Longer
// tokens come first so multi-character delimiters win over their
// single-character tails. Bare braces are included here: stepping past a
// closing argument brace is a valid tabout target.
var bracketTable = []Environment{
	{Open: `\langle`, Close: `\rangle`},
	{Open: `\lbrace`, Close: `\rbrace`},
	{Open: `\{`, Close: `\}`},
	{Open: `(`, Close: `)`},
	{Open: `[`, Close: `]`},
	{Open: `{`, Close: `}`},
}

// closeTokenAt returns the closing delimiter starting at i, or "" if none.
func closeTokenAt(text string, i int) string {
	for _, pair := range bracketTable {
		if strings.HasPrefix(text[i:], pair.Close) {
			return pair.Close
		}
	}
	return ""
}

// openTokenAt returns the opening delimiter starting at i, or "" if none.
func openTokenAt(text string, i int) string {
	for _, pair := range bracketTable {
		if strings.HasPrefix(text[i:], pair.Open) {
			return pair.Open
		}
	}
	return ""
}
