package protocol

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hapticlabs/go-haptics/pkg/haptic"
)

func TestNewMessage(t *testing.T) {
	tests := []struct {
		name    string
		msgType MessageType
		data    interface{}
		wantErr bool
	}{
		{
			name:    "play message",
			msgType: TypePlay,
			data: PlayData{Events: []WireEvent{
				{Kind: "transient", Time: 0},
			}},
			wantErr: false,
		},
		{
			name:    "playback message",
			msgType: TypePlayback,
			data:    PlaybackData{ID: "abc", State: "started", DurationMs: 500},
			wantErr: false,
		},
		{
			name:    "nil data",
			msgType: TypePing,
			data:    nil,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := NewMessage(tt.msgType, tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMessage() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if msg.Type != tt.msgType {
				t.Errorf("NewMessage() type = %v, want %v", msg.Type, tt.msgType)
			}
			if msg.Timestamp == 0 {
				t.Error("NewMessage() timestamp not set")
			}
			if time.Now().UnixMilli()-msg.Timestamp > 1000 {
				t.Error("NewMessage() timestamp too old")
			}
		})
	}
}

func TestMessage_RoundTrip(t *testing.T) {
	orig, err := NewMessage(TypePlayback, PlaybackData{ID: "p1", State: "canceled"})
	if err != nil {
		t.Fatalf("NewMessage() error = %v", err)
	}

	wire, err := orig.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	parsed, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parsed.Type != TypePlayback {
		t.Errorf("parsed type = %v, want %v", parsed.Type, TypePlayback)
	}

	var data PlaybackData
	if err := parsed.ParseData(&data); err != nil {
		t.Fatalf("ParseData() error = %v", err)
	}
	if data.ID != "p1" || data.State != "canceled" {
		t.Errorf("ParseData() = %+v", data)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Parse() accepted malformed JSON")
	}
	if _, err := Parse([]byte(`{"ts": 1}`)); err == nil {
		t.Error("Parse() accepted a message without type")
	}
}

func TestPlayData_Events(t *testing.T) {
	intensity := 0.8
	d := PlayData{Events: []WireEvent{
		{Kind: "transient", Time: 0, Intensity: &intensity},
		{Kind: "continuous", Time: 0.5, Duration: 0.3},
		{Kind: "rumble", Time: 1}, // unknown kind is dropped
		{Kind: "continuous", Time: 2}, // missing duration decodes to a no-op slot
	}}

	events := d.ToEvents()
	if len(events) != 3 {
		t.Fatalf("Events() returned %d events, want 3", len(events))
	}

	if events[0].Kind != haptic.KindTransient || events[0].Intensity != 0.8 {
		t.Errorf("event 0 = %+v", events[0])
	}
	// Absent intensity defaults.
	if events[1].Intensity != haptic.DefaultIntensity {
		t.Errorf("event 1 intensity = %v, want default %v",
			events[1].Intensity, haptic.DefaultIntensity)
	}
	if events[1].Kind != haptic.KindContinuous || events[1].Duration != 0.3 {
		t.Errorf("event 1 = %+v", events[1])
	}
	if events[2].Duration != 0 {
		t.Errorf("event 2 duration = %v, want 0", events[2].Duration)
	}
	// The malformed slot must not corrupt compilation.
	if tl := haptic.Compile(events); len(tl) == 0 {
		t.Error("pattern with a malformed slot compiled to nothing")
	}
}

func TestFromEvents_RoundTrip(t *testing.T) {
	in := []haptic.Event{
		haptic.Transient(0, haptic.WithIntensity(0.9)),
		haptic.Continuous(0.2, 0.5, haptic.WithSharpness(0.1)),
	}

	wire, err := json.Marshal(FromEvents(in))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded PlayData
	if err := json.Unmarshal(wire, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	out := decoded.ToEvents()
	if len(out) != len(in) {
		t.Fatalf("round trip returned %d events, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("event %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}
