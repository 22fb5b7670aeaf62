// Package errors provides custom error types for the spec matcher.
// These errors enable programmatic error checking and carry the
// identifiers needed to name the offending record in user-visible
// failures.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the spec matcher.
var (
	// ErrMissingAttribute indicates a source item lacks the page-title attribute.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrShortTitle indicates a normalized title is shorter than the blocking key length.
	ErrShortTitle = errors.New("title too short")

	// ErrDuplicateID indicates two source items resolved to the same spec id.
	ErrDuplicateID = errors.New("duplicate spec id")

	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// MissingAttributeError reports a source item without the expected
// title-like attribute. Per-record: the caller skips the item and
// counts the drop, it never aborts the run on its own.
type MissingAttributeError struct {
	Source    string
	Number    string
	Attribute string
}

// Error implements the error interface.
func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("item %s/%s has no %q attribute", e.Source, e.Number, e.Attribute)
}

// Is implements errors.Is support.
func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// NewMissingAttributeError creates a new MissingAttributeError.
func NewMissingAttributeError(source, number, attribute string) *MissingAttributeError {
	return &MissingAttributeError{Source: source, Number: number, Attribute: attribute}
}

// ShortTitleError reports a normalized title too short to derive a
// blocking key from. Per-record, like MissingAttributeError.
type ShortTitleError struct {
	ID        string
	Title     string
	KeyLength int
}

// Error implements the error interface.
func (e *ShortTitleError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("title %q is shorter than the blocking key length %d", e.Title, e.KeyLength)
	}
	return fmt.Sprintf("title %q of %s is shorter than the blocking key length %d", e.Title, e.ID, e.KeyLength)
}

// Is implements errors.Is support.
func (e *ShortTitleError) Is(target error) bool {
	return target == ErrShortTitle
}

// NewShortTitleError creates a new ShortTitleError.
func NewShortTitleError(id, title string, keyLength int) *ShortTitleError {
	return &ShortTitleError{ID: id, Title: title, KeyLength: keyLength}
}

// DuplicateIDError reports two source items resolving to the same spec
// id. This is a structural invariant violation and always fatal: it
// indicates a corrupt input source.
type DuplicateIDError struct {
	ID     string
	Source string
	Number string
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("spec id %s produced twice by source %s item %s", e.ID, e.Source, e.Number)
}

// Is implements errors.Is support.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// NewDuplicateIDError creates a new DuplicateIDError.
func NewDuplicateIDError(id, source, number string) *DuplicateIDError {
	return &DuplicateIDError{ID: id, Source: source, Number: number}
}

// ParseError represents an error when parsing data formats.
type ParseError struct {
	Format  string // "json", "yaml", "csv", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations.
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsMissingAttribute checks if an error is a missing attribute error.
func IsMissingAttribute(err error) bool {
	return errors.Is(err, ErrMissingAttribute)
}

// IsShortTitle checks if an error is a short title error.
func IsShortTitle(err error) bool {
	return errors.Is(err, ErrShortTitle)
}

// IsDuplicateID checks if an error is a duplicate id error.
func IsDuplicateID(err error) bool {
	return errors.Is(err, ErrDuplicateID)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput checks if an error is an invalid input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Skippable reports whether an error is per-record and may be dropped
// with a counted warning instead of aborting the run.
func Skippable(err error) bool {
	return IsMissingAttribute(err) || IsShortTitle(err)
}

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
