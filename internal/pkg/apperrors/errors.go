package apperrors

import (
	"errors"
	"fmt"
)

// Pipeline errors. All three abort a run before anything is written.
var (
	ErrMissingFile    = errors.New("input file not found")
	ErrMalformedInput = errors.New("malformed input")
	ErrSchema         = errors.New("schema error")
)

// Catalog errors
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrBadRequest     = errors.New("bad request")
)

// Grades errors. Never surfaced to API callers as failures.
var (
	ErrGradesUnavailable = errors.New("grade data not available")
)

// FileError reports a problem with one input file
type FileError struct {
	Err    error
	Path   string
	Reason string
}

// Error implements error interface
func (e *FileError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s: %s", e.Err, e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Path)
}

// Unwrap implements errors.Unwrap interface
func (e *FileError) Unwrap() error {
	return e.Err
}

// NewMissingFileError reports an input path that does not exist
func NewMissingFileError(path string) error {
	return &FileError{Err: ErrMissingFile, Path: path}
}

// NewMalformedInputError reports an input file that is not a list of raw course objects
func NewMalformedInputError(path, reason string) error {
	return &FileError{Err: ErrMalformedInput, Path: path, Reason: reason}
}

// SchemaError reports a required column missing from the merged table
type SchemaError struct {
	Column string
}

// Error implements error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: required column %q is missing", ErrSchema, e.Column)
}

// Unwrap implements errors.Unwrap interface
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// NewSchemaError creates a SchemaError for the given column
func NewSchemaError(column string) error {
	return &SchemaError{Column: column}
}

// NewCourseNotFoundError creates a not found error carrying the requested key
func NewCourseNotFoundError(key string) error {
	return &CustomError{
		Err:     ErrCourseNotFound,
		Message: fmt.Sprintf("course %q not found", key),
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must abort a pipeline run
func IsFatal(err error) bool {
	return errors.Is(err, ErrMissingFile) || errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrSchema)
}
