// Package config holds the engine settings: an immutable value threaded
// explicitly into the engine's entry points, never ambient state. Default()
// supplies the stock behavior and the loaders overlay a settings file on
// top of it, so a partial file only overrides what it names.
package config

import "time"

// EnvironmentPair names an open/close delimiter pair in a settings file.
type EnvironmentPair struct {
	Open  string `toml:"open" yaml:"open" json:"open"`
	Close string `toml:"close" yaml:"close" json:"close"`
}

// Settings is the full engine configuration. Copy by value; the engine
// never mutates it.
type Settings struct {
	// SnippetsEnabled gates trigger matching entirely.
	SnippetsEnabled bool `toml:"snippets_enabled" yaml:"snippets_enabled" json:"snippets_enabled"`

	// WordDelimiters bounds w-flagged triggers.
	WordDelimiters string `toml:"word_delimiters" yaml:"word_delimiters" json:"word_delimiters"`

	// RemoveTrailingWhitespace trims replacement tails inside inline math.
	RemoveTrailingWhitespace bool `toml:"remove_trailing_whitespace" yaml:"remove_trailing_whitespace" json:"remove_trailing_whitespace"`

	// AutofractionEnabled gates the "/" handler.
	AutofractionEnabled bool `toml:"autofraction_enabled" yaml:"autofraction_enabled" json:"autofraction_enabled"`

	// AutofractionBreakingChars extends the numerator boundary set.
	AutofractionBreakingChars string `toml:"autofraction_breaking_chars" yaml:"autofraction_breaking_chars" json:"autofraction_breaking_chars"`

	// AutofractionExcludedEnvs lists delimiter pairs whose interior keeps
	// "/" literal even inside math, such as \text{ }.
	AutofractionExcludedEnvs []EnvironmentPair `toml:"autofraction_excluded_envs" yaml:"autofraction_excluded_envs" json:"autofraction_excluded_envs"`

	// AutoEnlargeBrackets gates the sizing pass after an expansion.
	AutoEnlargeBrackets bool `toml:"auto_enlarge_brackets" yaml:"auto_enlarge_brackets" json:"auto_enlarge_brackets"`

	// AutoEnlargeTriggers are the content words implying tall brackets.
	AutoEnlargeTriggers []string `toml:"auto_enlarge_triggers" yaml:"auto_enlarge_triggers" json:"auto_enlarge_triggers"`

	// MatrixShortcutsEnabled gates Tab/Enter handling inside matrices.
	MatrixShortcutsEnabled bool `toml:"matrix_shortcuts_enabled" yaml:"matrix_shortcuts_enabled" json:"matrix_shortcuts_enabled"`

	// MatrixEnvironments are the environment names treated as matrices.
	MatrixEnvironments []string `toml:"matrix_environments" yaml:"matrix_environments" json:"matrix_environments"`

	// TaboutEnabled gates the Tab region-exit behavior.
	TaboutEnabled bool `toml:"tabout_enabled" yaml:"tabout_enabled" json:"tabout_enabled"`

	// ScriptTimeout bounds one Lua replacement evaluation.
	ScriptTimeout time.Duration `toml:"script_timeout" yaml:"script_timeout" json:"script_timeout"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		SnippetsEnabled:           true,
		WordDelimiters:            "., +-\n\t:;!?/{}[]()=~$",
		RemoveTrailingWhitespace:  true,
		AutofractionEnabled:       true,
		AutofractionBreakingChars: "+-=<>|,;:",
		AutofractionExcludedEnvs: []EnvironmentPair{
			{Open: `\text{`, Close: `}`},
			{Open: `\tag{`, Close: `}`},
		},
		AutoEnlargeBrackets:       true,
		AutoEnlargeTriggers: []string{
			`\sum`, `\int`, `\frac`, `\prod`, `\bigcup`, `\bigcap`, `\lim`,
		},
		MatrixShortcutsEnabled: true,
		MatrixEnvironments: []string{
			"matrix", "pmatrix", "bmatrix", "Bmatrix",
			"vmatrix", "Vmatrix", "array", "cases",
		},
		TaboutEnabled: true,
		ScriptTimeout: 50 * time.Millisecond,
	}
}
