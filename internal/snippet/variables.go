package snippet

import "strings"

// Variables maps symbolic names to regex fragments substituted into regex
// triggers before compilation. The substitution runs on every load so a
// reload always sees the current table.
var Variables = map[string]string{
	"${GREEK}": "alpha|beta|gamma|Gamma|delta|Delta|epsilon|varepsilon|zeta|eta|theta|Theta|vartheta|iota|kappa|lambda|Lambda|mu|nu|xi|Xi|pi|Pi|rho|varrho|sigma|Sigma|tau|upsilon|Upsilon|phi|Phi|varphi|chi|psi|Psi|omega|Omega",
	"${SYMBOL}": "hbar|ell|nabla|infty|dots|leftrightarrow|mapsto|setminus|mid|cap|cup|land|lor|subseteq|subset|implies|impliedby|iff|exists|forall|equiv|square|neq|geq|leq|gg|ll|sim|simeq|approx|propto|cdot|oplus|otimes|times|star|perp|det|exp|ln|log|partial",
	"${SHORT_SYMBOL}": "to|pm|mp",
}

// ExpandVariables replaces every variable name occurring in pattern with
// its fragment, wrapped in a non-capturing group so alternation does not
// leak into the surrounding expression.
func ExpandVariables(pattern string) string {
	for name, fragment := range Variables {
		if strings.Contains(pattern, name) {
			pattern = strings.ReplaceAll(pattern, name, "(?:"+fragment+")")
		}
	}
	return pattern
}
