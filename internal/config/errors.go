package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration loading.
var (
	// ErrUnknownFormat indicates the settings file extension is not one
	// of .toml, .yaml, .yml, or .json.
	ErrUnknownFormat = errors.New("unknown settings file format")

	// ErrFileNotFound indicates the settings file doesn't exist.
	ErrFileNotFound = errors.New("settings file not found")
)

// ParseError represents an error while parsing a settings file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }
