// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - Unexported errors (err*): Use for internal package errors
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Question source errors.
var (
	// ErrFetchFailed indicates a question source request failed (network error or non-2xx status).
	ErrFetchFailed = errors.New("question source fetch failed")

	// ErrEmptyResult indicates a fetched result page contained zero questions.
	// Surfaced instead of retrying so callers decide whether to re-issue.
	ErrEmptyResult = errors.New("result page contains no questions")

	// ErrParseFailed indicates the adapter could not decode or segment the fetched payload.
	ErrParseFailed = errors.New("question payload parse failed")
)

// Factory and validation errors.
var (
	// ErrUnknownSource indicates an unrecognized question source identifier.
	ErrUnknownSource = errors.New("unknown question source")
)

// Cache errors.
var (
	// ErrCacheNotFound indicates a cache entry was not found or has expired.
	// Callers treat this as the normal "expired" outcome, not a failure.
	ErrCacheNotFound = errors.New("cache entry not found")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
