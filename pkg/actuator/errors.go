package actuator

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNoVibrator is returned when no vibration hardware is present.
	ErrNoVibrator = errors.New("actuator: no vibrator present")

	// ErrEmptyWaveform is returned for a waveform with no segments.
	ErrEmptyWaveform = errors.New("actuator: empty waveform")

	// ErrArityMismatch is returned when timings and amplitudes differ in length.
	ErrArityMismatch = errors.New("actuator: timings and amplitudes length mismatch")

	// ErrNegativeDuration is returned when a segment duration is negative.
	ErrNegativeDuration = errors.New("actuator: negative segment duration")

	// ErrBadRepeatIndex is returned when the repeat index is out of range.
	ErrBadRepeatIndex = errors.New("actuator: repeat index out of range")

	// ErrClosed is returned when using a driver after Close.
	ErrClosed = errors.New("actuator: driver closed")
)

// DriverError wraps an error with driver context.
type DriverError struct {
	Driver string
	Err    error
}

// Error implements the error interface.
func (e *DriverError) Error() string {
	return fmt.Sprintf("actuator [%s]: %v", e.Driver, e.Err)
}

// Unwrap returns the underlying error.
func (e *DriverError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with driver context.
func WrapError(driver string, err error) error {
	if err == nil {
		return nil
	}
	return &DriverError{Driver: driver, Err: err}
}
