package latex

import "strings"

// Separators inserted by matrix shortcuts.
const (
	ColumnSeparator = " & "
	RowSeparator    = ` \\` + "\n"
)

// InMatrixEnvironment reports whether pos lies inside any of the named
// \begin{...} / \end{...} environments.
func InMatrixEnvironment(text string, pos int, names []string) bool {
	for _, name := range names {
		if InsideEnvironment(text, pos, BeginEndEnvironment(name)) {
			return true
		}
	}
	return false
}

// NextLineEnd returns the offset of the end of the line after the one
// containing pos, for the Shift+Enter "move to next row" shortcut. Returns
// false if pos is on the last line.
func NextLineEnd(text string, pos int) (int, bool) {
	if pos < 0 || pos > len(text) {
		return 0, false
	}
	nl := strings.IndexByte(text[pos:], '\n')
	if nl == NotFound {
		return 0, false
	}
	next := pos + nl + 1
	if rel := strings.IndexByte(text[next:], '\n'); rel != NotFound {
		return next + rel, true
	}
	return len(text), true
}
