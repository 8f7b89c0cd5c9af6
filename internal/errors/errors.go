package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrEmptyQuery is returned when a search query is blank or whitespace-only
	ErrEmptyQuery = errors.New("empty query")

	// ErrUnknownCategory is returned when a category is not recognized
	ErrUnknownCategory = errors.New("unknown category")

	// ErrRebuildFailed is returned when an index rebuild aborted before
	// completing; the live index is left unchanged
	ErrRebuildFailed = errors.New("index rebuild failed")

	// ErrEventNotFound is returned when an event is not found
	ErrEventNotFound = errors.New("event not found")

	// ErrOrganizationNotFound is returned when an organization is not found
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// EmptyQueryError represents a blank or whitespace-only search query
type EmptyQueryError struct{}

func (e *EmptyQueryError) Error() string {
	return "search query cannot be empty"
}

func (e *EmptyQueryError) Is(target error) bool {
	return target == ErrEmptyQuery
}

// NewEmptyQueryError creates a new EmptyQueryError
func NewEmptyQueryError() *EmptyQueryError {
	return &EmptyQueryError{}
}

// UnknownCategoryError represents an unrecognized search category with context
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("category '%s' is not a known search category", e.Category)
}

func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}

// NewUnknownCategoryError creates a new UnknownCategoryError
func NewUnknownCategoryError(category string) *UnknownCategoryError {
	return &UnknownCategoryError{Category: category}
}

// RebuildFailedError represents an index rebuild that aborted before a
// category's trie was complete. The previously published index stays live.
type RebuildFailedError struct {
	Category string
	Cause    error
}

func (e *RebuildFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rebuild of '%s' index failed: %v", e.Category, e.Cause)
	}
	return fmt.Sprintf("rebuild of '%s' index failed", e.Category)
}

func (e *RebuildFailedError) Is(target error) bool {
	return target == ErrRebuildFailed
}

func (e *RebuildFailedError) Unwrap() error {
	return e.Cause
}

// NewRebuildFailedError creates a new RebuildFailedError
func NewRebuildFailedError(category string, cause error) *RebuildFailedError {
	return &RebuildFailedError{Category: category, Cause: cause}
}

// EventNotFoundError represents an event not found error with context
type EventNotFoundError struct {
	EventID int64
}

func (e *EventNotFoundError) Error() string {
	return fmt.Sprintf("event with ID %d not found", e.EventID)
}

func (e *EventNotFoundError) Is(target error) bool {
	return target == ErrEventNotFound
}

// NewEventNotFoundError creates a new EventNotFoundError
func NewEventNotFoundError(eventID int64) *EventNotFoundError {
	return &EventNotFoundError{EventID: eventID}
}

// OrganizationNotFoundError represents an organization not found error with context
type OrganizationNotFoundError struct {
	OrganizationID int64
}

func (e *OrganizationNotFoundError) Error() string {
	return fmt.Sprintf("organization with ID %d not found", e.OrganizationID)
}

func (e *OrganizationNotFoundError) Is(target error) bool {
	return target == ErrOrganizationNotFound
}

// NewOrganizationNotFoundError creates a new OrganizationNotFoundError
func NewOrganizationNotFoundError(organizationID int64) *OrganizationNotFoundError {
	return &OrganizationNotFoundError{OrganizationID: organizationID}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
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
