// Package haptic provides the declarative haptic event model and the pattern
// compiler that projects it onto an amplitude-controlled vibration waveform.
//
// Callers describe feedback as a list of timed events (short transient taps or
// sustained continuous effects). The compiler flattens that list into a single
// alternating silence/pulse timeline that a vibration motor API can play in
// one submission. Overlap cannot be expressed on a single amplitude channel,
// so overlapping events are concatenated back-to-back rather than overlaid.
package haptic

// Kind identifies the event variant. It is fixed at construction time.
type Kind int

const (
	// KindTransient is a short, discrete tap. Duration is implicit
	// (TransientPulseMs) and the Duration field is ignored.
	KindTransient Kind = iota

	// KindContinuous is a sustained effect with an explicit duration.
	KindContinuous
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindContinuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Model constants shared by the compiler and the event builders.
const (
	// DefaultIntensity is used when a caller does not specify intensity.
	DefaultIntensity = 0.5

	// DefaultSharpness is used when a caller does not specify sharpness.
	DefaultSharpness = 0.5

	// TransientPulseMs is the fixed pulse width of a transient event on the
	// waveform channel.
	TransientPulseMs int64 = 50

	// MinContinuousMs is the floor for a positive continuous duration after
	// conversion to milliseconds.
	MinContinuousMs int64 = 1
)

// Event is one scheduled haptic occurrence inside a pattern.
//
// Time is the offset in seconds from pattern start. Input order is irrelevant:
// the compiler re-sorts by Time (stable on ties). Intensity and Sharpness are
// normalized to [0,1]. Sharpness only selects the actuation primitive on
// platforms that support it; it is never encoded into the compiled timeline.
// Duration (seconds) is meaningful only for KindContinuous.
type Event struct {
	Kind      Kind
	Time      float64
	Intensity float64
	Sharpness float64
	Duration  float64
}

// Option customizes an event built by Transient or Continuous.
type Option func(*Event)

// WithIntensity sets the normalized intensity in [0,1].
func WithIntensity(v float64) Option {
	return func(e *Event) { e.Intensity = v }
}

// WithSharpness sets the normalized sharpness in [0,1].
func WithSharpness(v float64) Option {
	return func(e *Event) { e.Sharpness = v }
}

// Transient builds a short tap at the given offset (seconds).
// Intensity and sharpness default to 0.5 unless overridden.
func Transient(at float64, opts ...Option) Event {
	e := Event{
		Kind:      KindTransient,
		Time:      at,
		Intensity: DefaultIntensity,
		Sharpness: DefaultSharpness,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Continuous builds a sustained effect at the given offset (seconds) lasting
// duration seconds. Intensity and sharpness default to 0.5 unless overridden.
func Continuous(at, duration float64, opts ...Option) Event {
	e := Event{
		Kind:      KindContinuous,
		Time:      at,
		Duration:  duration,
		Intensity: DefaultIntensity,
		Sharpness: DefaultSharpness,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
