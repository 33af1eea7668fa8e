package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for lifecycle misuse.
var (
	// ErrNotInitialized is returned when Play is called before Initialize.
	ErrNotInitialized = errors.New("engine: not initialized")

	// ErrUnsupported is returned when no vibration hardware is present.
	ErrUnsupported = errors.New("engine: haptics unsupported on this device")

	// ErrEngineClosed is returned when using the engine after Close.
	ErrEngineClosed = errors.New("engine: closed")

	// ErrNoDrivers is returned when building a chain with no drivers.
	ErrNoDrivers = errors.New("engine: chain requires at least one driver")
)

// SubmissionError wraps a driver rejection of a compiled timeline.
// The submission is not retried and no playback is assumed to have started.
type SubmissionError struct {
	Err error
}

// Error implements the error interface.
func (e *SubmissionError) Error() string {
	return fmt.Sprintf("engine: submission failed: %v", e.Err)
}

// Unwrap returns the underlying driver error.
func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// ChainError aggregates errors from all drivers in a chain.
type ChainError struct {
	Errors []error
}

// Error implements the error interface.
func (e *ChainError) Error() string {
	if len(e.Errors) == 0 {
		return "engine: chain recorded no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("engine: all %d drivers failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the aggregated errors to errors.Is/As.
func (e *ChainError) Unwrap() []error {
	return e.Errors
}
