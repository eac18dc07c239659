package snippet

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed snippet definitions.
var (
	// ErrNotArray means the definition source is not a JSON array.
	ErrNotArray = errors.New("snippet definitions must be a JSON array")
	// ErrMissingTrigger means a definition has no trigger field.
	ErrMissingTrigger = errors.New("missing trigger")
	// ErrMissingReplacement means a definition has neither a replacement
	// nor a lua field.
	ErrMissingReplacement = errors.New("missing replacement")
	// ErrUnknownOption means the options string contains an unrecognized
	// flag character.
	ErrUnknownOption = errors.New("unknown option flag")
	// ErrVisualRegex means a definition combines a selection placeholder
	// with a regex trigger, which is not a valid combination.
	ErrVisualRegex = errors.New("visual replacement cannot use a regex trigger")
)

// ParseError reports one malformed definition. Parsing skips the entry and
// continues, so a load can yield both snippets and errors.
type ParseError struct {
	Index   int    // position of the entry in the definition array
	Trigger string // the entry's trigger, when one was present
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Trigger != "" {
		return fmt.Sprintf("snippet %d (%q): %v", e.Index, e.Trigger, e.Err)
	}
	return fmt.Sprintf("snippet %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is supports errors.Is comparisons against the sentinel values.
func (e *ParseError) Is(target error) bool { return errors.Is(e.Err, target) }
