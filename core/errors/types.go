// ABOUTME: Custom error types for the feed build pipeline
// ABOUTME: Distinguishes recoverable fetch/parse/image failures from fatal write failures

package errors

import (
	"errors"
	"fmt"
)

// ErrNoCandidate marks an image strategy that found nothing to offer
var ErrNoCandidate = errors.New("no candidate")

// FetchError represents a failed network fetch of a feed or page
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents feed bytes that could not be parsed
type ParseError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ImageResolutionError represents a failed image strategy
type ImageResolutionError struct {
	Strategy string
	Err      error
}

// Error implements the error interface
func (e *ImageResolutionError) Error() string {
	return fmt.Sprintf("image strategy %s: %v", e.Strategy, e.Err)
}

// Unwrap returns the underlying cause
func (e *ImageResolutionError) Unwrap() error {
	return e.Err
}

// WriteError represents a category output that could not be persisted
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsImageResolution checks if an error is an ImageResolutionError
func IsImageResolution(err error) bool {
	var imgErr *ImageResolutionError
	return errors.As(err, &imgErr)
}

// IsWrite checks if an error is a WriteError
func IsWrite(err error) bool {
	var writeErr *WriteError
	return errors.As(err, &writeErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
