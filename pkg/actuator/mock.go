package actuator

import (
	"sync"
	"time"
)

// Mock implements Driver for testing.
// All methods can be customized via function fields.
type Mock struct {
	// VibrateFunc is called when Vibrate is invoked.
	// If nil, the call is accepted and only recorded.
	VibrateFunc func(durationMs int64, amplitude uint8) error

	// VibrateWaveformFunc is called when VibrateWaveform is invoked.
	// If nil, the waveform is validated and recorded.
	VibrateWaveformFunc func(timings []int64, amplitudes []uint8, repeat int) error

	// CancelFunc is called when Cancel is invoked. If nil, returns nil.
	CancelFunc func() error

	// CloseFunc is called when Close is invoked. If nil, returns nil.
	CloseFunc func() error

	// Caps is returned by Capabilities. Defaults to a full-featured
	// actuator when left zero via NewMock.
	Caps Capabilities

	// Tracking
	mu    sync.Mutex
	calls []MockCall
}

// MockCall records a method invocation for verification.
type MockCall struct {
	Method     string
	DurationMs int64
	Amplitude  uint8
	Timings    []int64
	Amplitudes []uint8
	Repeat     int
	Time       time.Time
}

// NewMock creates a mock driver that reports full amplitude-control
// capabilities and accepts every submission.
func NewMock() *Mock {
	return &Mock{
		Caps: Capabilities{Vibrator: true, AmplitudeControl: true},
	}
}

// WithError returns a mock whose submissions always fail with err.
func WithError(err error) *Mock {
	m := NewMock()
	m.VibrateFunc = func(int64, uint8) error { return err }
	m.VibrateWaveformFunc = func([]int64, []uint8, int) error { return err }
	return m
}

// Vibrate calls VibrateFunc and records the call.
func (m *Mock) Vibrate(durationMs int64, amplitude uint8) error {
	m.record(MockCall{Method: "Vibrate", DurationMs: durationMs, Amplitude: amplitude})
	if m.VibrateFunc != nil {
		return m.VibrateFunc(durationMs, amplitude)
	}
	return nil
}

// VibrateWaveform calls VibrateWaveformFunc and records the call.
func (m *Mock) VibrateWaveform(timings []int64, amplitudes []uint8, repeat int) error {
	// Copy so later caller mutations don't corrupt recorded calls.
	t := make([]int64, len(timings))
	copy(t, timings)
	a := make([]uint8, len(amplitudes))
	copy(a, amplitudes)
	m.record(MockCall{Method: "VibrateWaveform", Timings: t, Amplitudes: a, Repeat: repeat})

	if m.VibrateWaveformFunc != nil {
		return m.VibrateWaveformFunc(timings, amplitudes, repeat)
	}
	return ValidateWaveform(timings, amplitudes, repeat)
}

// Cancel calls CancelFunc and records the call.
func (m *Mock) Cancel() error {
	m.record(MockCall{Method: "Cancel"})
	if m.CancelFunc != nil {
		return m.CancelFunc()
	}
	return nil
}

// Close calls CloseFunc and records the call.
func (m *Mock) Close() error {
	m.record(MockCall{Method: "Close"})
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Capabilities returns the configured capabilities.
func (m *Mock) Capabilities() Capabilities {
	return m.Caps
}

func (m *Mock) record(call MockCall) {
	call.Time = time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Calls returns all recorded method calls.
func (m *Mock) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of times a method was called.
func (m *Mock) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, c := range m.calls {
		if c.Method == method {
			count++
		}
	}
	return count
}

// LastCall returns the most recent call, or nil if none.
func (m *Mock) LastCall() *MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	call := m.calls[len(m.calls)-1]
	return &call
}

// Reset clears all recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// Verify Mock implements Driver at compile time.
var _ Driver = (*Mock)(nil)
