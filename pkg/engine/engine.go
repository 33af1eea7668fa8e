// Package engine owns the haptic playback lifecycle: it gates access to the
// single shared actuator, compiles declarative patterns via pkg/haptic, and
// enforces at-most-one active pattern per process. A new play request always
// preempts the one in flight; nothing is queued.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hapticlabs/go-haptics/internal/log"
	"github.com/hapticlabs/go-haptics/pkg/actuator"
	"github.com/hapticlabs/go-haptics/pkg/haptic"
)

// State is the engine lifecycle state.
type State int

const (
	// StateUninitialized means Initialize has not run yet.
	StateUninitialized State = iota

	// StateReady means the capability probe found a vibrator and the engine
	// accepts play requests.
	StateReady

	// StateUnsupported means the probe found no vibrator. Play requests are
	// rejected without touching the driver.
	StateUnsupported
)

// String returns the lifecycle state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// PlaybackEvent describes a playback lifecycle transition, emitted to the
// OnPlayback callback for observers (the bridge server streams these).
type PlaybackEvent struct {
	ID         string    `json:"id"`
	State      string    `json:"state"` // started, canceled, rejected
	DurationMs int64     `json:"duration_ms"`
	Segments   int       `json:"segments"`
	At         time.Time `json:"at"`
}

// Status is a point-in-time snapshot of the engine.
type Status struct {
	State        string                `json:"state"`
	Playing      bool                  `json:"playing"`
	PlaybackID   string                `json:"playback_id,omitempty"`
	DurationMs   int64                 `json:"duration_ms,omitempty"`
	Capabilities actuator.Capabilities `json:"capabilities"`
}

// playback tracks the submission currently believed to be on the actuator.
// Submissions are fire-and-forget, so "playing" is inferred from wall time.
type playback struct {
	id         string
	startedAt  time.Time
	durationMs int64
}

func (p *playback) active(now time.Time) bool {
	return p != nil && now.Sub(p.startedAt) < time.Duration(p.durationMs)*time.Millisecond
}

// Engine drives a single actuator.
type Engine struct {
	driver actuator.Driver
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	caps    actuator.Capabilities
	current *playback
	closed  bool

	onPlayback func(PlaybackEvent)
}

// New creates an engine over the given driver. Call Initialize before Play.
func New(driver actuator.Driver) *Engine {
	return &Engine{
		driver: driver,
		logger: log.Component("engine"),
	}
}

// OnPlayback registers a callback invoked on every playback transition.
// The callback runs synchronously under the engine lock; keep it cheap.
func (e *Engine) OnPlayback(fn func(PlaybackEvent)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onPlayback = fn
}

// Initialize probes the driver's capabilities and moves the engine to Ready
// or Unsupported. It is idempotent: repeated calls after the first successful
// probe return the cached result with no side effects.
func (e *Engine) Initialize() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false, ErrEngineClosed
	}
	if e.state != StateUninitialized {
		return e.state == StateReady, nil
	}

	e.caps = e.driver.Capabilities()
	if !e.caps.Vibrator {
		e.state = StateUnsupported
		e.logger.Warn("no vibration hardware detected")
		return false, nil
	}

	e.state = StateReady
	e.logger.Info("engine ready", "amplitude_control", e.caps.AmplitudeControl)
	return true, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Capabilities returns the probed capabilities (zero before Initialize).
func (e *Engine) Capabilities() actuator.Capabilities {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.caps
}

// Status returns a snapshot of the engine and any in-flight playback.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Status{
		State:        e.state.String(),
		Capabilities: e.caps,
	}
	if e.current.active(time.Now()) {
		st.Playing = true
		st.PlaybackID = e.current.id
		st.DurationMs = e.current.durationMs
	}
	return st
}

// Play compiles events and submits them to the actuator, preempting any
// pattern already in flight. It returns the playback id, or "" when the
// pattern compiles to nothing (an empty pattern succeeds trivially without
// touching the hardware).
//
// A submission failure is surfaced verbatim with no retry; the engine then
// tracks no active playback, since the platform guarantees a rejected
// submission never partially vibrates.
func (e *Engine) Play(events []haptic.Event) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.closed:
		return "", ErrEngineClosed
	case e.state == StateUninitialized:
		return "", ErrNotInitialized
	case e.state == StateUnsupported:
		return "", ErrUnsupported
	}

	sub := haptic.Plan(events)
	if sub.Kind == haptic.SubmissionNone {
		e.logger.Debug("empty pattern, nothing to play")
		return "", nil
	}

	// Preempt unconditionally. A cancel failure is not fatal: the new
	// submission overrides whatever the actuator is doing anyway.
	if err := e.driver.Cancel(); err != nil {
		e.logger.Warn("cancel before play failed", "error", err)
	}
	e.current = nil

	id := uuid.New().String()
	var (
		durationMs int64
		segments   int
		err        error
	)
	switch sub.Kind {
	case haptic.SubmissionOneShot:
		durationMs = sub.DurationMs
		segments = 1
		err = e.driver.Vibrate(sub.DurationMs, sub.Amplitude)
	case haptic.SubmissionWaveform:
		for _, d := range sub.Timings {
			durationMs += d
		}
		segments = len(sub.Timings)
		err = e.driver.VibrateWaveform(sub.Timings, sub.Amplitudes, sub.Repeat)
	}
	if err != nil {
		e.emit(PlaybackEvent{ID: id, State: "rejected", At: time.Now()})
		return "", &SubmissionError{Err: err}
	}

	e.current = &playback{id: id, startedAt: time.Now(), durationMs: durationMs}
	e.emit(PlaybackEvent{
		ID:         id,
		State:      "started",
		DurationMs: durationMs,
		Segments:   segments,
		At:         e.current.startedAt,
	})
	e.logger.Debug("pattern submitted",
		"playback_id", id,
		"duration_ms", durationMs,
		"segments", segments,
	)
	return id, nil
}

// Cancel stops any in-flight playback.
func (e *Engine) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if e.state != StateReady {
		return nil
	}

	err := e.driver.Cancel()
	if e.current != nil {
		e.emit(PlaybackEvent{ID: e.current.id, State: "canceled", At: time.Now()})
		e.current = nil
	}
	return err
}

// Close cancels playback and releases the driver. The engine cannot be
// reused afterwards.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	if e.state == StateReady {
		_ = e.driver.Cancel()
	}
	e.current = nil
	return e.driver.Close()
}

// emit must be called with the lock held.
func (e *Engine) emit(ev PlaybackEvent) {
	if e.onPlayback != nil {
		e.onPlayback(ev)
	}
}
