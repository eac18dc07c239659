package snippet

import (
	"errors"
	"regexp"
	"testing"
)

func TestParseDefinitions(t *testing.T) {
	src := `[
		{"trigger": "mk", "replacement": "$$0$", "options": "tA"},
		{"trigger": "([a-z])(\\d)", "replacement": "[[0]]_{[[1]]}", "options": "rmA"},
		{"trigger": "bf", "replacement": "\\textbf{${VISUAL}}", "options": "m"}
	]`
	snippets, errs := ParseDefinitions(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(snippets) != 3 {
		t.Fatalf("expected 3 snippets, got %d", len(snippets))
	}

	mk := snippets[0]
	if mk.Kind != Literal || !mk.TextOnly || !mk.Automatic || mk.MathOnly {
		t.Errorf("mk parsed wrong: %+v", mk)
	}

	sub := snippets[1]
	if sub.Kind != Regex || sub.Pattern == nil {
		t.Fatalf("regex snippet parsed wrong: %+v", sub)
	}
	if m := sub.Pattern.FindStringSubmatch("x9"); m == nil || m[1] != "x" || m[2] != "9" {
		t.Errorf("compiled pattern does not capture: %v", m)
	}
	if sub.Pattern.MatchString("x9z") {
		t.Error("pattern should be anchored to the end of the line")
	}

	if snippets[2].Kind != Visual {
		t.Errorf("placeholder replacement should yield a visual snippet, got %v", snippets[2].Kind)
	}
}

func TestParseDefinitionsSkipsMalformed(t *testing.T) {
	src := `[
		{"replacement": "no trigger"},
		{"trigger": "[", "replacement": "x", "options": "r"},
		{"trigger": "ok", "replacement": "fine"}
	]`
	snippets, errs := ParseDefinitions(src)
	if len(snippets) != 1 || snippets[0].Trigger != "ok" {
		t.Fatalf("expected only the well-formed entry, got %+v", snippets)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if !errors.Is(errs[0], ErrMissingTrigger) {
		t.Errorf("first error = %v, want missing trigger", errs[0])
	}
	var perr *ParseError
	if !errors.As(errs[1], &perr) || perr.Index != 1 {
		t.Errorf("second error should carry entry index 1: %v", errs[1])
	}
}

func TestParseDefinitionsRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"not array", `{"trigger": "x"}`, ErrNotArray},
		{"unknown option", `[{"trigger": "x", "replacement": "y", "options": "q"}]`, ErrUnknownOption},
		{"visual regex", `[{"trigger": "x", "replacement": "${VISUAL}", "options": "r"}]`, ErrVisualRegex},
		{"no replacement", `[{"trigger": "x"}]`, ErrMissingReplacement},
	}
	for _, tt := range tests {
		snippets, errs := ParseDefinitions(tt.src)
		if len(snippets) != 0 {
			t.Errorf("%s: expected no snippets, got %+v", tt.name, snippets)
		}
		if len(errs) != 1 || !errors.Is(errs[0], tt.want) {
			t.Errorf("%s: errors = %v, want %v", tt.name, errs, tt.want)
		}
	}
}

func TestParseScriptSnippet(t *testing.T) {
	src := `[{"trigger": "(\\d+)!", "options": "rm",
		"lua": "function replacement(match, captures) return match end"}]`
	snippets, errs := ParseDefinitions(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	s := snippets[0]
	if s.Kind != Script || s.LuaSource == "" {
		t.Fatalf("expected a script snippet, got %+v", s)
	}
	if !s.IsRegex() {
		t.Error("regex-flagged script snippet should carry a compiled pattern")
	}
}

func TestParseExcludeEnvironment(t *testing.T) {
	src := `[{"trigger": "inn", "replacement": "\\in ", "options": "m",
		"exclude": {"open": "\\text{", "close": "}"}}]`
	snippets, errs := ParseDefinitions(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if snippets[0].ExcludeIn.Open != `\text{` || snippets[0].ExcludeIn.Close != "}" {
		t.Errorf("exclude environment parsed wrong: %+v", snippets[0].ExcludeIn)
	}
}

func TestExpandVariables(t *testing.T) {
	expanded := ExpandVariables(`\\(${GREEK})`)
	if expanded == `\\(${GREEK})` {
		t.Fatal("variable was not substituted")
	}
	pattern := ExpandVariables("(${GREEK})") + "$"
	// The fragment is wrapped in a non-capturing group, so group 1 is
	// still the author's parentheses.
	reExpanded := mustCompile(t, pattern)
	m := reExpanded.FindStringSubmatch("alpha")
	if m == nil || m[1] != "alpha" {
		t.Errorf("expected group 1 = alpha, got %v", m)
	}
}

func TestRepositoryOrdering(t *testing.T) {
	snippets, errs := ParseDefinitions(`[
		{"trigger": ">", "replacement": "\\gt"},
		{"trigger": "=>", "replacement": "\\implies"},
		{"trigger": "->", "replacement": "\\to"},
		{"trigger": "z", "replacement": "Z", "priority": 5}
	]`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	repo := NewRepository(snippets)
	order := make([]string, 0, repo.Len())
	for _, s := range repo.Snippets() {
		order = append(order, s.Trigger)
	}
	want := []string{"z", "->", "=>", ">"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestNilRepository(t *testing.T) {
	var r *Repository
	if r.Len() != 0 || r.Snippets() != nil {
		t.Error("nil repository should behave as empty")
	}
}

func mustCompile(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	return re
}
