package match

import (
	"testing"

	"github.com/HerrChaos/obsidian-latex-suite/internal/latex"
	"github.com/HerrChaos/obsidian-latex-suite/internal/snippet"
)

func literal(trigger, replacement string) *snippet.Snippet {
	return &snippet.Snippet{Trigger: trigger, Replacement: replacement}
}

func parseOne(t *testing.T, def string) *snippet.Snippet {
	t.Helper()
	snippets, errs := snippet.ParseDefinitions("[" + def + "]")
	if len(errs) != 0 || len(snippets) != 1 {
		t.Fatalf("bad definition %s: %v", def, errs)
	}
	return &snippets[0]
}

func TestLiteralTabTrigger(t *testing.T) {
	s := literal("lim", `\lim_{$1 \to $2} $0`)
	res, ok, err := Try(s, Request{Text: "take lim", Pos: 8, Tab: true}, Options{})
	if err != nil || !ok {
		t.Fatalf("expected a match, ok=%v err=%v", ok, err)
	}
	if res.Start != 5 || res.End != 8 {
		t.Errorf("span = [%d, %d), want [5, 8)", res.Start, res.End)
	}
	if res.Replacement != s.Replacement {
		t.Errorf("replacement = %q", res.Replacement)
	}
}

func TestLiteralRequiresTab(t *testing.T) {
	s := literal("lim", "x")
	if _, ok, _ := Try(s, Request{Text: "lim", Pos: 3, Typed: "q"}, Options{}); ok {
		t.Error("non-automatic snippet must not fire on a character key")
	}
}

func TestAutomaticVirtualCharacter(t *testing.T) {
	// The typed character completes the trigger but is not in the buffer,
	// so the replaced span ends at the cursor.
	s := parseOne(t, `{"trigger": "mk", "replacement": "$$0$", "options": "A"}`)
	res, ok, err := Try(s, Request{Text: "m", Pos: 1, Typed: "k"}, Options{})
	if err != nil || !ok {
		t.Fatalf("expected a match, ok=%v err=%v", ok, err)
	}
	if res.Start != 0 || res.End != 1 {
		t.Errorf("span = [%d, %d), want [0, 1)", res.Start, res.End)
	}
}

func TestRegexCaptureSubstitution(t *testing.T) {
	s := parseOne(t, `{"trigger": "([a-z])(\\d)", "replacement": "[[0]]^{[[1]]}", "options": "r"}`)
	res, ok, err := Try(s, Request{Text: "x9", Pos: 2, Tab: true}, Options{})
	if err != nil || !ok {
		t.Fatalf("expected a match, ok=%v err=%v", ok, err)
	}
	if res.Start != 0 || res.End != 2 {
		t.Errorf("span = [%d, %d), want [0, 2)", res.Start, res.End)
	}
	if res.Replacement != "x^{9}" {
		t.Errorf("replacement = %q, want %q", res.Replacement, "x^{9}")
	}
}

func TestRegexNoMatch(t *testing.T) {
	s := parseOne(t, `{"trigger": "([a-z])(\\d)", "replacement": "[[0]]^{[[1]]}", "options": "r"}`)
	if _, ok, _ := Try(s, Request{Text: "9x", Pos: 2, Tab: true}, Options{}); ok {
		t.Error("pattern should not match reversed input")
	}
}

func TestWordBoundary(t *testing.T) {
	s := parseOne(t, `{"trigger": "to", "replacement": "\\to ", "options": "w"}`)
	// Mid-word: "to" inside "tomorrow" is not bounded on the right.
	if _, ok, _ := Try(s, Request{Text: "tomorrow", Pos: 2, Tab: true}, Options{}); ok {
		t.Error("w-flagged trigger must not fire mid-word")
	}
	// Bounded on the left by a space, on the right by end of document.
	res, ok, err := Try(s, Request{Text: "a to", Pos: 4, Tab: true}, Options{})
	if err != nil || !ok {
		t.Fatal("standalone trigger should fire")
	}
	if res.Start != 2 || res.End != 4 {
		t.Errorf("span = [%d, %d), want [2, 4)", res.Start, res.End)
	}
	// Not bounded on the left.
	if _, ok, _ := Try(s, Request{Text: "into", Pos: 4, Tab: true}, Options{}); ok {
		t.Error("trigger preceded by a letter must not fire")
	}
}

func TestVisualSnippet(t *testing.T) {
	s := parseOne(t, `{"trigger": "U", "replacement": "\\underbrace{${VISUAL}}"}`)
	req := Request{Text: "abc rest", Pos: 3, SelStart: 0, SelEnd: 3, Typed: "U"}
	res, ok, err := Try(s, req, Options{})
	if err != nil || !ok {
		t.Fatalf("expected a match, ok=%v err=%v", ok, err)
	}
	if res.Start != 0 || res.End != 3 {
		t.Errorf("span = [%d, %d), want the selection [0, 3)", res.Start, res.End)
	}
	if res.Replacement != `\underbrace{abc}` {
		t.Errorf("replacement = %q", res.Replacement)
	}
}

func TestVisualRequiresSelection(t *testing.T) {
	s := parseOne(t, `{"trigger": "U", "replacement": "\\underbrace{${VISUAL}}"}`)
	if _, ok, _ := Try(s, Request{Text: "abc", Pos: 3, Typed: "U"}, Options{}); ok {
		t.Error("visual snippet must not fire without a selection")
	}
}

func TestSelectionBlocksNonVisual(t *testing.T) {
	s := parseOne(t, `{"trigger": "a", "replacement": "x", "options": "A"}`)
	req := Request{Text: "abc", Pos: 3, SelStart: 1, SelEnd: 3, Typed: "a"}
	if _, ok, _ := Try(s, req, Options{}); ok {
		t.Error("selections only trigger visual snippets")
	}
}

func TestMathScope(t *testing.T) {
	mathOnly := parseOne(t, `{"trigger": "sq", "replacement": "\\sqrt{}", "options": "m"}`)
	textOnly := parseOne(t, `{"trigger": "sq", "replacement": "square", "options": "t"}`)

	inMath := Request{Text: "$x sq$", Pos: 5, Tab: true}
	outside := Request{Text: "x sq", Pos: 4, Tab: true}

	if _, ok, _ := Try(mathOnly, inMath, Options{}); !ok {
		t.Error("m-flagged snippet should fire inside math")
	}
	if _, ok, _ := Try(mathOnly, outside, Options{}); ok {
		t.Error("m-flagged snippet must not fire outside math")
	}
	if _, ok, _ := Try(textOnly, outside, Options{}); !ok {
		t.Error("t-flagged snippet should fire outside math")
	}
	if _, ok, _ := Try(textOnly, inMath, Options{}); ok {
		t.Error("t-flagged snippet must not fire inside math")
	}
}

func TestExcludedEnvironment(t *testing.T) {
	s := literal("inn", `\in `)
	s.ExcludeIn = latex.NewEnvironment(`\text{`, "}")
	req := Request{Text: `$\text{inn}$`, Pos: 10, Tab: true}
	if _, ok, _ := Try(s, req, Options{}); ok {
		t.Error("snippet must not fire inside its excluded environment")
	}
	if _, ok, _ := Try(s, Request{Text: "$x inn$", Pos: 6, Tab: true}, Options{}); !ok {
		t.Error("snippet should fire outside the excluded environment")
	}
}

func TestInlineTrim(t *testing.T) {
	opts := Options{TrimInline: true}
	trailing := literal("to", `\to `)
	res, ok, _ := Try(trailing, Request{Text: "$a to$", Pos: 5, Tab: true}, opts)
	if !ok || res.Replacement != `\to` {
		t.Errorf("trailing space should be trimmed inline, got %q", res.Replacement)
	}

	marker := literal("ss", `\sqrt{$1} $0`)
	res, ok, _ = Try(marker, Request{Text: "$a ss$", Pos: 5, Tab: true}, opts)
	if !ok || res.Replacement != `\sqrt{$1}$0` {
		t.Errorf("space before a trailing marker should collapse, got %q", res.Replacement)
	}

	// Block math keeps the replacement as written.
	res, ok, _ = Try(trailing, Request{Text: "$$a to$$", Pos: 6, Tab: true}, opts)
	if !ok || res.Replacement != `\to ` {
		t.Errorf("block math should not trim, got %q", res.Replacement)
	}
}

func TestScriptSnippet(t *testing.T) {
	s := parseOne(t, `{"trigger": "(\\d+)!", "options": "r",
		"lua": "function replacement(match, captures) return captures[1] .. \"!{}\" end"}`)
	res, ok, err := Try(s, Request{Text: "12!", Pos: 3, Tab: true}, Options{})
	if err != nil || !ok {
		t.Fatalf("expected a match, ok=%v err=%v", ok, err)
	}
	if res.Replacement != "12!{}" {
		t.Errorf("replacement = %q", res.Replacement)
	}
	if res.Start != 0 || res.End != 3 {
		t.Errorf("span = [%d, %d), want [0, 3)", res.Start, res.End)
	}
}

func TestScriptErrorDoesNotFire(t *testing.T) {
	s := parseOne(t, `{"trigger": "x",
		"lua": "function replacement(match, captures) error(\"boom\") end"}`)
	_, ok, err := Try(s, Request{Text: "x", Pos: 1, Tab: true}, Options{})
	if ok {
		t.Error("failing script must not produce a match")
	}
	if err == nil {
		t.Error("the script failure should surface as a diagnostic")
	}
}
