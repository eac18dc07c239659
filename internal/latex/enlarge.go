package latex

import "strings"

const (
	leftCommand  = `\left`
	rightCommand = `\right`
)

// enlargeTable lists the pairs auto-enlarge may wrap. Bare braces are
// absent: `{`/`}` is argument grouping (as in \frac{...}{...}), not a
// visible delimiter, and wrapping it in sizing commands breaks the
// command it belongs to.
var enlargeTable = []Environment{
	{Open: `\langle`, Close: `\rangle`},
	{Open: `\lbrace`, Close: `\rbrace`},
	{Open: `\{`, Close: `\}`},
	{Open: `(`, Close: `)`},
	{Open: `[`, Close: `]`},
}

// enlargePairAt returns the pair whose open token starts at i, or false.
func enlargePairAt(text string, i int) (Environment, bool) {
	for _, pair := range enlargeTable {
		if strings.HasPrefix(text[i:], pair.Open) {
			return pair, true
		}
	}
	return Environment{}, false
}

// EnlargeBrackets scans the math region around pos for bracket pairs whose
// contents contain one of the trigger words, and returns the insertions
// that wrap each such pair in \left / \right sizing commands. Pairs that
// are already wrapped are skipped, so applying the result and running the
// scan again yields nothing.
func EnlargeBrackets(text string, pos int, triggers []string) []Change {
	eq, ok := EquationBounds(text, pos)
	if !ok || len(triggers) == 0 {
		return nil
	}

	var out []Change
	end := eq.End
	if end > len(text) {
		end = len(text)
	}
	for i := eq.Start; i < end; {
		pair, isOpen := enlargePairAt(text, i)
		if !isOpen {
			i++
			continue
		}
		closeIdx := FindMatchingBracket(text, i, pair.Open, pair.Close, false, end)
		if closeIdx == NotFound {
			i += len(pair.Open)
			continue
		}

		contents := text[i+len(pair.Open) : closeIdx]
		if containsAny(contents, triggers) && !alreadyEnlarged(text, i, closeIdx) {
			out = append(out, InsertAt(i, leftCommand), InsertAt(closeIdx, rightCommand))
		}
		i += len(pair.Open)
	}
	return out
}

// alreadyEnlarged reports whether the pair at openIdx/closeIdx is already
// preceded by sizing commands.
func alreadyEnlarged(text string, openIdx, closeIdx int) bool {
	return strings.HasSuffix(text[:openIdx], leftCommand) ||
		strings.HasSuffix(text[:closeIdx], rightCommand)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
