package haptic

import (
	"reflect"
	"testing"
)

func TestAmplitudeFor(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		want      uint8
	}{
		{"zero clamps to one", 0, 1},
		{"full scale", 1, 255},
		{"default intensity", 0.5, 128},
		{"mid value", 0.8, 204},
		{"below range clamps", -0.5, 1},
		{"above range clamps", 1.5, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmplitudeFor(tt.intensity); got != tt.want {
				t.Errorf("AmplitudeFor(%v) = %d, want %d", tt.intensity, got, tt.want)
			}
		})
	}
}

func TestCompile_Empty(t *testing.T) {
	if tl := Compile(nil); len(tl) != 0 {
		t.Errorf("Compile(nil) = %v, want empty", tl)
	}
	if tl := Compile([]Event{}); len(tl) != 0 {
		t.Errorf("Compile([]) = %v, want empty", tl)
	}
}

func TestCompile_GapBetweenTransients(t *testing.T) {
	tl := Compile([]Event{
		Transient(0),
		Transient(0.2),
	})

	want := Timeline{
		{Duration: 50, Amplitude: 128},
		{Duration: 150, Amplitude: 0},
		{Duration: 50, Amplitude: 128},
	}
	if !reflect.DeepEqual(tl, want) {
		t.Errorf("Compile() = %v, want %v", tl, want)
	}
}

func TestCompile_Scenario(t *testing.T) {
	// Three transients at 0ms/150ms/400ms: each 50ms pulse, gaps of 100ms
	// and 200ms between them.
	tl := Compile([]Event{
		Transient(0, WithIntensity(0.8)),
		Transient(0.15, WithIntensity(0.5)),
		Transient(0.4, WithIntensity(1.0)),
	})

	want := Timeline{
		{Duration: 50, Amplitude: 204},
		{Duration: 100, Amplitude: 0},
		{Duration: 50, Amplitude: 128},
		{Duration: 200, Amplitude: 0},
		{Duration: 50, Amplitude: 255},
	}
	if !reflect.DeepEqual(tl, want) {
		t.Errorf("Compile() = %v, want %v", tl, want)
	}
}

func TestCompile_OrderIndependent(t *testing.T) {
	events := []Event{
		Transient(0.4, WithIntensity(1.0)),
		Continuous(0.1, 0.2, WithIntensity(0.3)),
		Transient(0, WithIntensity(0.8)),
	}

	want := Compile(events)

	permutations := [][]Event{
		{events[1], events[2], events[0]},
		{events[2], events[0], events[1]},
		{events[2], events[1], events[0]},
	}
	for i, perm := range permutations {
		if got := Compile(perm); !reflect.DeepEqual(got, want) {
			t.Errorf("permutation %d: Compile() = %v, want %v", i, got, want)
		}
	}
}

func TestCompile_StableOnEqualTimes(t *testing.T) {
	// Equal start times keep input order.
	tl := Compile([]Event{
		Transient(0.1, WithIntensity(0.2)),
		Transient(0.1, WithIntensity(0.9)),
	})

	want := Timeline{
		{Duration: 100, Amplitude: 0},
		{Duration: 50, Amplitude: 51},
		{Duration: 50, Amplitude: 230},
	}
	if !reflect.DeepEqual(tl, want) {
		t.Errorf("Compile() = %v, want %v", tl, want)
	}
}

func TestCompile_OverlapConcatenates(t *testing.T) {
	// Second event starts 20ms into the first pulse: no gap segment, no
	// negative durations, pulses back-to-back.
	tl := Compile([]Event{
		Transient(0),
		Transient(0.02),
	})

	want := Timeline{
		{Duration: 50, Amplitude: 128},
		{Duration: 50, Amplitude: 128},
	}
	if !reflect.DeepEqual(tl, want) {
		t.Errorf("Compile() = %v, want %v", tl, want)
	}
	for i, s := range tl {
		if s.Duration <= 0 {
			t.Errorf("segment %d has non-positive duration %d", i, s.Duration)
		}
	}
}

func TestCompile_ZeroDurationContinuous(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   Timeline
	}{
		{
			name:   "only event emits nothing",
			events: []Event{Continuous(0, 0)},
			want:   nil,
		},
		{
			name: "does not advance the end marker",
			events: []Event{
				Continuous(0.1, 0),
				Transient(0.2),
			},
			want: Timeline{
				{Duration: 200, Amplitude: 0},
				{Duration: 50, Amplitude: 128},
			},
		},
		{
			name: "negative duration treated the same",
			events: []Event{
				Transient(0),
				Continuous(0.05, -1),
				Transient(0.2),
			},
			want: Timeline{
				{Duration: 50, Amplitude: 128},
				{Duration: 150, Amplitude: 0},
				{Duration: 50, Amplitude: 128},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compile(tt.events); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompile_MinimumContinuousDuration(t *testing.T) {
	// A positive duration that rounds below 1ms is floored at 1ms.
	tl := Compile([]Event{Continuous(0, 0.0004, WithIntensity(1.0))})

	want := Timeline{{Duration: 1, Amplitude: 255}}
	if !reflect.DeepEqual(tl, want) {
		t.Errorf("Compile() = %v, want %v", tl, want)
	}
}

func TestTimeline_Accessors(t *testing.T) {
	tl := Timeline{
		{Duration: 50, Amplitude: 204},
		{Duration: 100, Amplitude: 0},
		{Duration: 30, Amplitude: 255},
	}

	if got, want := tl.Timings(), []int64{50, 100, 30}; !reflect.DeepEqual(got, want) {
		t.Errorf("Timings() = %v, want %v", got, want)
	}
	if got, want := tl.Amplitudes(), []uint8{204, 0, 255}; !reflect.DeepEqual(got, want) {
		t.Errorf("Amplitudes() = %v, want %v", got, want)
	}
	if got := tl.TotalDuration(); got != 180 {
		t.Errorf("TotalDuration() = %d, want 180", got)
	}
}

func TestPlan_Empty(t *testing.T) {
	if sub := Plan(nil); sub.Kind != SubmissionNone {
		t.Errorf("Plan(nil).Kind = %v, want SubmissionNone", sub.Kind)
	}
}

func TestPlan_SingleContinuousShortcut(t *testing.T) {
	sub := Plan([]Event{Continuous(0, 0.5, WithIntensity(0.8))})

	if sub.Kind != SubmissionOneShot {
		t.Fatalf("Plan().Kind = %v, want SubmissionOneShot", sub.Kind)
	}
	if sub.DurationMs != 500 {
		t.Errorf("DurationMs = %d, want 500", sub.DurationMs)
	}
	if sub.Amplitude != 204 {
		t.Errorf("Amplitude = %d, want 204", sub.Amplitude)
	}

	// The shortcut must be parameter-identical to the pulse the generic
	// path would emit for the same event.
	tl := Compile([]Event{Continuous(0, 0.5, WithIntensity(0.8))})
	if len(tl) != 1 || tl[0].Duration != sub.DurationMs || tl[0].Amplitude != sub.Amplitude {
		t.Errorf("shortcut (%d, %d) differs from compiled pulse %v",
			sub.DurationMs, sub.Amplitude, tl)
	}
}

func TestPlan_SingleContinuousZeroDuration(t *testing.T) {
	if sub := Plan([]Event{Continuous(0, 0)}); sub.Kind != SubmissionNone {
		t.Errorf("Plan().Kind = %v, want SubmissionNone", sub.Kind)
	}
}

func TestPlan_SingleTransientUsesWaveform(t *testing.T) {
	sub := Plan([]Event{Transient(0)})

	if sub.Kind != SubmissionWaveform {
		t.Fatalf("Plan().Kind = %v, want SubmissionWaveform", sub.Kind)
	}
	if got, want := sub.Timings, []int64{50}; !reflect.DeepEqual(got, want) {
		t.Errorf("Timings = %v, want %v", got, want)
	}
	if got, want := sub.Amplitudes, []uint8{128}; !reflect.DeepEqual(got, want) {
		t.Errorf("Amplitudes = %v, want %v", got, want)
	}
	if sub.Repeat != NoRepeat {
		t.Errorf("Repeat = %d, want %d", sub.Repeat, NoRepeat)
	}
}

func TestPlan_Waveform(t *testing.T) {
	sub := Plan([]Event{
		Transient(0, WithIntensity(0.8)),
		Transient(0.15, WithIntensity(0.5)),
		Transient(0.4, WithIntensity(1.0)),
	})

	if sub.Kind != SubmissionWaveform {
		t.Fatalf("Plan().Kind = %v, want SubmissionWaveform", sub.Kind)
	}
	if len(sub.Timings) != len(sub.Amplitudes) {
		t.Fatalf("timings/amplitudes length mismatch: %d vs %d",
			len(sub.Timings), len(sub.Amplitudes))
	}
	if got, want := sub.Timings, []int64{50, 100, 50, 200, 50}; !reflect.DeepEqual(got, want) {
		t.Errorf("Timings = %v, want %v", got, want)
	}
	if got, want := sub.Amplitudes, []uint8{204, 0, 128, 0, 255}; !reflect.DeepEqual(got, want) {
		t.Errorf("Amplitudes = %v, want %v", got, want)
	}
	if sub.Repeat != NoRepeat {
		t.Errorf("Repeat = %d, want %d", sub.Repeat, NoRepeat)
	}
}

func TestPlan_AllEventsResolveToNothing(t *testing.T) {
	sub := Plan([]Event{
		Continuous(0, 0),
		Continuous(0.1, -2),
	})
	if sub.Kind != SubmissionNone {
		t.Errorf("Plan().Kind = %v, want SubmissionNone", sub.Kind)
	}
}
