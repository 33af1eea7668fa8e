package haptic

import (
	"math"
	"sort"
)

// NoRepeat is the repeat index meaning "play the waveform once and stop".
const NoRepeat = -1

// Segment is one slot of a compiled timeline: Duration milliseconds at the
// given amplitude. Amplitude 0 means silence; active pulses are in [1,255].
type Segment struct {
	Duration  int64
	Amplitude uint8
}

// Timeline is the compiled result: an ordered sequence of segments starting
// at pattern time zero, consumed as a single waveform submission.
type Timeline []Segment

// Timings returns the segment durations in milliseconds, in order.
func (t Timeline) Timings() []int64 {
	out := make([]int64, len(t))
	for i, s := range t {
		out[i] = s.Duration
	}
	return out
}

// Amplitudes returns the segment amplitudes, in order.
func (t Timeline) Amplitudes() []uint8 {
	out := make([]uint8, len(t))
	for i, s := range t {
		out[i] = s.Amplitude
	}
	return out
}

// TotalDuration returns the summed duration of all segments in milliseconds.
func (t Timeline) TotalDuration() int64 {
	var total int64
	for _, s := range t {
		total += s.Duration
	}
	return total
}

// SubmissionKind selects which actuator primitive a planned pattern targets.
type SubmissionKind int

const (
	// SubmissionNone means the pattern compiles to nothing: play succeeds
	// trivially and no actuator call is made.
	SubmissionNone SubmissionKind = iota

	// SubmissionOneShot is the single-continuous-event shortcut: one
	// duration+amplitude call, bypassing the waveform primitive.
	SubmissionOneShot

	// SubmissionWaveform is the generic path: a flat timings/amplitudes pair
	// played once.
	SubmissionWaveform
)

// Submission is the planned actuator call for a pattern.
type Submission struct {
	Kind SubmissionKind

	// One-shot parameters (SubmissionOneShot).
	DurationMs int64
	Amplitude  uint8

	// Waveform parameters (SubmissionWaveform). Repeat is always NoRepeat.
	Timings    []int64
	Amplitudes []uint8
	Repeat     int
}

// AmplitudeFor converts a normalized intensity into the integer amplitude
// scale of the actuator. Active pulses never use 0 (reserved for silence), so
// the result is clamped into [1,255].
func AmplitudeFor(intensity float64) uint8 {
	a := int(math.Round(intensity * 255))
	if a < 1 {
		a = 1
	}
	if a > 255 {
		a = 255
	}
	return uint8(a)
}

// sortedByTime returns a copy of events ordered by start time, stable on ties
// so that equal-time events keep their input order.
func sortedByTime(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// continuousMs resolves a continuous event's duration to milliseconds.
// Non-positive durations resolve to 0 (the event emits nothing); positive
// durations are floored at MinContinuousMs.
func continuousMs(seconds float64) int64 {
	if seconds <= 0 {
		return 0
	}
	ms := int64(math.Round(seconds * 1000))
	if ms < MinContinuousMs {
		ms = MinContinuousMs
	}
	return ms
}

// Compile flattens events into a waveform timeline.
//
// Events are stably sorted by start time, then folded left to right while
// tracking where the previous pulse ended. A positive gap between that end
// and the next event's start becomes a silence segment; a zero or negative
// gap (overlapping input) inserts nothing, so overlapping pulses concatenate
// back-to-back. A continuous event with non-positive duration contributes no
// segment and does not move the end marker.
//
// Compile is a pure function: it never fails and never touches hardware.
func Compile(events []Event) Timeline {
	if len(events) == 0 {
		return nil
	}

	var (
		tl      Timeline
		lastEnd int64
	)
	for _, ev := range sortedByTime(events) {
		startMs := int64(math.Round(ev.Time * 1000))
		amp := AmplitudeFor(ev.Intensity)

		var pulseMs int64
		switch ev.Kind {
		case KindTransient:
			pulseMs = TransientPulseMs
		case KindContinuous:
			pulseMs = continuousMs(ev.Duration)
		}
		if pulseMs <= 0 {
			// Malformed or zero-length slot: skip without corrupting
			// the timeline.
			continue
		}

		if gap := startMs - lastEnd; gap > 0 {
			tl = append(tl, Segment{Duration: gap, Amplitude: 0})
		}
		tl = append(tl, Segment{Duration: pulseMs, Amplitude: amp})
		lastEnd = startMs + pulseMs
	}
	return tl
}

// Plan decides how a pattern reaches the actuator.
//
// An empty pattern (or one whose events all resolve to nothing) plans to
// SubmissionNone. A pattern of exactly one continuous event plans to the
// direct one-shot primitive, which is cheaper than a waveform and
// parameter-identical to the pulse the generic path would emit. Everything
// else goes through Compile and plans a single no-repeat waveform.
func Plan(events []Event) Submission {
	if len(events) == 0 {
		return Submission{Kind: SubmissionNone}
	}

	if len(events) == 1 && events[0].Kind == KindContinuous {
		ms := continuousMs(events[0].Duration)
		if ms <= 0 {
			return Submission{Kind: SubmissionNone}
		}
		return Submission{
			Kind:       SubmissionOneShot,
			DurationMs: ms,
			Amplitude:  AmplitudeFor(events[0].Intensity),
		}
	}

	tl := Compile(events)
	if len(tl) == 0 {
		return Submission{Kind: SubmissionNone}
	}
	return Submission{
		Kind:       SubmissionWaveform,
		Timings:    tl.Timings(),
		Amplitudes: tl.Amplitudes(),
		Repeat:     NoRepeat,
	}
}
