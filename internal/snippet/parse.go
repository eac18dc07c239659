package snippet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/HerrChaos/obsidian-latex-suite/internal/latex"
)

// ParseDefinitions parses snippet definitions from their JSON source: an
// array of objects with fields trigger, replacement, options, and the
// optional fields priority, lua, and exclude {open, close}. Malformed
// entries are skipped and reported; the returned snippets are the entries
// that parsed cleanly, in source order.
func ParseDefinitions(src string) ([]Snippet, []error) {
	doc := gjson.Parse(src)
	if !doc.IsArray() {
		return nil, []error{ErrNotArray}
	}

	var (
		snippets []Snippet
		errs     []error
	)
	for i, entry := range doc.Array() {
		s, err := parseEntry(entry)
		if err != nil {
			errs = append(errs, &ParseError{
				Index:   i,
				Trigger: entry.Get("trigger").String(),
				Err:     err,
			})
			continue
		}
		snippets = append(snippets, s)
	}
	return snippets, errs
}

func parseEntry(entry gjson.Result) (Snippet, error) {
	trigger := entry.Get("trigger")
	if !trigger.Exists() || trigger.String() == "" {
		return Snippet{}, ErrMissingTrigger
	}

	s := Snippet{
		Trigger:     trigger.String(),
		Replacement: entry.Get("replacement").String(),
		LuaSource:   entry.Get("lua").String(),
		Priority:    int(entry.Get("priority").Int()),
	}

	isRegex := false
	for _, flag := range entry.Get("options").String() {
		switch flag {
		case 'm':
			s.MathOnly = true
		case 't':
			s.TextOnly = true
		case 'A':
			s.Automatic = true
		case 'r':
			isRegex = true
		case 'w':
			s.WordBoundary = true
		default:
			return Snippet{}, fmt.Errorf("%w %q", ErrUnknownOption, flag)
		}
	}

	isVisual := strings.Contains(s.Replacement, VisualPlaceholder)
	switch {
	case s.LuaSource != "":
		s.Kind = Script
	case isVisual && isRegex:
		return Snippet{}, ErrVisualRegex
	case isVisual:
		s.Kind = Visual
	case isRegex:
		s.Kind = Regex
	default:
		s.Kind = Literal
	}
	if s.Kind != Script && s.Replacement == "" {
		return Snippet{}, ErrMissingReplacement
	}

	if isRegex {
		// Anchoring to the end of the line makes "match at the cursor"
		// a plain regexp execution over the text up to the cursor.
		pattern, err := regexp.Compile(ExpandVariables(s.Trigger) + "$")
		if err != nil {
			return Snippet{}, err
		}
		s.Pattern = pattern
	}

	if exclude := entry.Get("exclude"); exclude.Exists() {
		s.ExcludeIn = latex.NewEnvironment(
			exclude.Get("open").String(),
			exclude.Get("close").String(),
		)
	}
	return s, nil
}
