// Package actuator defines the vibration-primitive boundary and its drivers.
//
// This package follows the Interface Segregation Principle (ISP): the engine
// depends on the small Vibrator interface, capability probing is a separate
// interface, and drivers compose both. Consumers should depend only on the
// interfaces they actually use.
package actuator

// Vibrator is the amplitude-controlled vibration primitive.
//
// Vibrate plays a single pulse of durationMs milliseconds at the given
// amplitude (1-255; 0 is silence and is never submitted as a pulse).
// VibrateWaveform plays an alternating-duration amplitude timeline; repeat is
// the index to loop from, or -1 to play once and stop. Both calls are
// fire-and-forget: they return once the submission is accepted, not when
// playback finishes. Cancel stops any in-flight playback.
type Vibrator interface {
	Vibrate(durationMs int64, amplitude uint8) error
	VibrateWaveform(timings []int64, amplitudes []uint8, repeat int) error
	Cancel() error
	Close() error
}

// Capabilities reports what the underlying hardware can do.
type Capabilities struct {
	// Vibrator is true when a vibration actuator is present at all.
	Vibrator bool `json:"vibrator"`

	// AmplitudeControl is true when the actuator honors per-segment
	// amplitudes rather than simple on/off.
	AmplitudeControl bool `json:"amplitude_control"`
}

// Prober reports hardware capabilities. The probe is read once at engine
// initialization and treated as stable for the process lifetime.
type Prober interface {
	Capabilities() Capabilities
}

// Driver is the composite interface implemented by complete drivers.
type Driver interface {
	Vibrator
	Prober
}

// ValidateWaveform checks a waveform submission before it reaches hardware.
// Platform APIs reject malformed arrays with an opaque error; validating here
// keeps the failure local and descriptive.
func ValidateWaveform(timings []int64, amplitudes []uint8, repeat int) error {
	if len(timings) == 0 {
		return ErrEmptyWaveform
	}
	if len(timings) != len(amplitudes) {
		return ErrArityMismatch
	}
	for _, d := range timings {
		if d < 0 {
			return ErrNegativeDuration
		}
	}
	if repeat < -1 || repeat >= len(timings) {
		return ErrBadRepeatIndex
	}
	return nil
}
