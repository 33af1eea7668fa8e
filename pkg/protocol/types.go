package protocol

import (
	"github.com/hapticlabs/go-haptics/pkg/haptic"
)

// WireEvent is the JSON form of one haptic event. Intensity and sharpness are
// pointers so that "absent" is distinguishable from an explicit 0 and can be
// defaulted on decode. Duration is in seconds and only meaningful for
// continuous events.
type WireEvent struct {
	Kind      string   `json:"kind"` // "transient" or "continuous"
	Time      float64  `json:"time"`
	Intensity *float64 `json:"intensity,omitempty"`
	Sharpness *float64 `json:"sharpness,omitempty"`
	Duration  float64  `json:"duration,omitempty"`
}

// PlayData is the payload of a play command.
type PlayData struct {
	Events []WireEvent `json:"events"`
}

// ToEvents converts the wire form into model events. Absent intensity and
// sharpness default per the model. Events with an unknown kind are dropped
// rather than failing the whole pattern; a continuous event without a
// duration decodes to a zero-duration event, which the compiler treats as a
// no-op slot.
func (d PlayData) ToEvents() []haptic.Event {
	out := make([]haptic.Event, 0, len(d.Events))
	for _, w := range d.Events {
		var opts []haptic.Option
		if w.Intensity != nil {
			opts = append(opts, haptic.WithIntensity(*w.Intensity))
		}
		if w.Sharpness != nil {
			opts = append(opts, haptic.WithSharpness(*w.Sharpness))
		}

		switch w.Kind {
		case haptic.KindTransient.String():
			out = append(out, haptic.Transient(w.Time, opts...))
		case haptic.KindContinuous.String():
			out = append(out, haptic.Continuous(w.Time, w.Duration, opts...))
		}
	}
	return out
}

// FromEvents converts model events into the wire form.
func FromEvents(events []haptic.Event) PlayData {
	wire := make([]WireEvent, len(events))
	for i, e := range events {
		intensity := e.Intensity
		sharpness := e.Sharpness
		wire[i] = WireEvent{
			Kind:      e.Kind.String(),
			Time:      e.Time,
			Intensity: &intensity,
			Sharpness: &sharpness,
		}
		if e.Kind == haptic.KindContinuous {
			wire[i].Duration = e.Duration
		}
	}
	return PlayData{Events: wire}
}

// AckData is the payload of an ack response.
type AckData struct {
	Command    MessageType `json:"command"`
	PlaybackID string      `json:"playback_id,omitempty"`
}

// ErrorData is the payload of an error response.
type ErrorData struct {
	Command MessageType `json:"command,omitempty"`
	Error   string      `json:"error"`
}

// PlaybackData is the payload of a playback lifecycle event.
type PlaybackData struct {
	ID         string `json:"id"`
	State      string `json:"state"` // started, canceled, rejected
	DurationMs int64  `json:"duration_ms,omitempty"`
	Segments   int    `json:"segments,omitempty"`
}
