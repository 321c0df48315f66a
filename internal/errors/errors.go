// Package errors provides the structured error type (SiteError) used across
// the Webineer core for kind-based classification of model, persistence, and
// rendering failures.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a SiteError so callers (CLI, editor UI) can decide how
// to present it without string matching.
type ErrorKind string

const (
	// Filesystem access failures.
	KindIORead  ErrorKind = "io_read"
	KindIOWrite ErrorKind = "io_write"

	// Persisted content does not match the expected structure.
	KindMalformedProject ErrorKind = "malformed_project"
	KindMalformedPage    ErrorKind = "malformed_page"

	// Rendering-time failures.
	KindTemplateNotFound ErrorKind = "template_not_found"
	KindRender           ErrorKind = "render"

	// Model-mutation policy violations. Recoverable validation failures,
	// never fatal to the process.
	KindHomePageProtected ErrorKind = "home_page_protected"
	KindPageNotFound      ErrorKind = "page_not_found"
	KindDuplicateFilename ErrorKind = "duplicate_filename"

	// Import pipeline failures that are not one of the above.
	KindImport ErrorKind = "import"
)

// ContextFields carries structured context for a SiteError.
type ContextFields map[string]any

// SiteError is a structured error with a kind and optional cause and context.
type SiteError struct {
	Kind    ErrorKind     `json:"kind"`
	Message string        `json:"message"`
	Cause   error         `json:"cause,omitempty"`
	Context ContextFields `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As chains.
func (e *SiteError) Unwrap() error {
	return e.Cause
}

// WithContext adds a context field to the error.
func (e *SiteError) WithContext(key string, value any) *SiteError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SiteError.
func New(kind ErrorKind, message string) *SiteError {
	return &SiteError{Kind: kind, Message: message}
}

// Wrap creates a new SiteError that wraps an existing error.
func Wrap(err error, kind ErrorKind, message string) *SiteError {
	return &SiteError{Kind: kind, Message: message, Cause: err}
}

// IsKind reports whether err (or anything it wraps) is a SiteError of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *SiteError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// GetKind extracts the kind from an error, or "" if it is not a SiteError.
func GetKind(err error) ErrorKind {
	var se *SiteError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
