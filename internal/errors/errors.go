package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCollectionNotFound is returned when a collection is not registered
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrCollectionAlreadyExists is returned when two collections share a name
	ErrCollectionAlreadyExists = errors.New("collection already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryTooLong is returned when a query exceeds the configured length
	ErrQueryTooLong = errors.New("query too long")

	// ErrSourceFailed is returned when a legacy source cannot produce hits
	ErrSourceFailed = errors.New("source fetch failed")
)

// CollectionNotFoundError represents a collection not found error with context
type CollectionNotFoundError struct {
	CollectionName string
}

func (e *CollectionNotFoundError) Error() string {
	return fmt.Sprintf("collection named '%s' not found", e.CollectionName)
}

func (e *CollectionNotFoundError) Is(target error) bool {
	return target == ErrCollectionNotFound
}

// NewCollectionNotFoundError creates a new CollectionNotFoundError
func NewCollectionNotFoundError(name string) *CollectionNotFoundError {
	return &CollectionNotFoundError{CollectionName: name}
}

// CollectionAlreadyExistsError represents a duplicate collection registration
type CollectionAlreadyExistsError struct {
	CollectionName string
}

func (e *CollectionAlreadyExistsError) Error() string {
	return fmt.Sprintf("collection named '%s' already exists", e.CollectionName)
}

func (e *CollectionAlreadyExistsError) Is(target error) bool {
	return target == ErrCollectionAlreadyExists
}

// NewCollectionAlreadyExistsError creates a new CollectionAlreadyExistsError
func NewCollectionAlreadyExistsError(name string) *CollectionAlreadyExistsError {
	return &CollectionAlreadyExistsError{CollectionName: name}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// QueryTooLongError carries the offending and permitted lengths
type QueryTooLongError struct {
	Length    int
	MaxLength int
}

func (e *QueryTooLongError) Error() string {
	return fmt.Sprintf("query length %d exceeds maximum of %d characters", e.Length, e.MaxLength)
}

func (e *QueryTooLongError) Is(target error) bool {
	return target == ErrQueryTooLong
}

// NewQueryTooLongError creates a new QueryTooLongError
func NewQueryTooLongError(length, maxLength int) *QueryTooLongError {
	return &QueryTooLongError{Length: length, MaxLength: maxLength}
}

// SourceError wraps a failure of a named legacy source
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source '%s' failed: %v", e.Source, e.Err)
}

func (e *SourceError) Is(target error) bool {
	return target == ErrSourceFailed
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}
