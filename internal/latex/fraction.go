package latex

import (
	"regexp"
	"strings"
)

// Fraction is the computed auto-fraction rewrite: replace [Start, End) with
// Replacement. The replacement carries tabstop markers ($1 inside the
// denominator, $0 after the fraction) for the expansion queue to resolve.
type Fraction struct {
	Start       int
	End         int
	Replacement string
}

// greekSpace matches a Greek letter command followed by a space. The space
// in such a run is part of the numerator, not a boundary.
var greekSpace = regexp.MustCompile(`\\(?:alpha|beta|gamma|Gamma|delta|Delta|epsilon|varepsilon|zeta|eta|theta|Theta|vartheta|iota|kappa|lambda|Lambda|mu|nu|xi|Xi|pi|Pi|rho|varrho|sigma|Sigma|tau|upsilon|Upsilon|phi|Phi|varphi|chi|psi|Psi|omega|Omega) `)

// defaultBreakingChars terminate the backward numerator scan.
const defaultBreakingChars = " $([{\n"

// closeToOpen maps single-character closing brackets to their opens for the
// numerator scan's pair skipping.
var closeToOpen = map[byte]byte{')': '(', ']': '[', '}': '{'}

// BuildFraction computes the auto-fraction rewrite for a "/" typed at pos,
// which must lie inside a math region of text. extraBreaking adds
// characters to the default numerator boundary set. Returns false when pos
// is not in math or the numerator is empty.
func BuildFraction(text string, pos int, extraBreaking string) (Fraction, bool) {
	eq, ok := EquationBounds(text, pos)
	if !ok || pos <= eq.Start {
		return Fraction{}, false
	}

	breaking := defaultBreakingChars + extraBreaking
	scan := maskGreekSpaces(text[:pos])

	start := eq.Start
	i := pos - 1
	for i >= eq.Start {
		c := scan[i]
		if open, isClose := closeToOpen[c]; isClose {
			// Skip over the whole bracket pair; a breaking character
			// inside it does not end the numerator.
			match := FindMatchingBracket(scan, i, string(open), string(c), true, eq.Start)
			if match == NotFound {
				return Fraction{}, false
			}
			i = match - 1
			continue
		}
		if strings.IndexByte(breaking, c) != NotFound {
			start = i + 1
			break
		}
		i--
	}

	numerator := text[start:pos]
	if len(numerator) >= 2 && numerator[0] == '(' && numerator[len(numerator)-1] == ')' {
		// Only strip if the parens wrap the whole numerator.
		if FindMatchingBracket(numerator, 0, "(", ")", false, NotFound) == len(numerator)-1 {
			numerator = numerator[1 : len(numerator)-1]
		}
	}
	if numerator == "" {
		return Fraction{}, false
	}

	return Fraction{
		Start:       start,
		End:         pos,
		Replacement: `\frac{` + numerator + `}{$1}$0`,
	}, true
}

// maskGreekSpaces overwrites the space after each Greek letter command with
// a non-breaking placeholder, preserving offsets.
func maskGreekSpaces(s string) string {
	return greekSpace.ReplaceAllStringFunc(s, func(m string) string {
		return m[:len(m)-1] + "\x00"
	})
}
