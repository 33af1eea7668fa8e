package actuator

// Noop is the capability-absent fallback: it accepts and discards every
// submission so callers on hardware without an actuator degrade silently.
type Noop struct{}

// Vibrate discards the pulse.
func (Noop) Vibrate(int64, uint8) error { return nil }

// VibrateWaveform discards the waveform.
func (Noop) VibrateWaveform([]int64, []uint8, int) error { return nil }

// Cancel does nothing.
func (Noop) Cancel() error { return nil }

// Close does nothing.
func (Noop) Close() error { return nil }

// Capabilities reports no hardware at all.
func (Noop) Capabilities() Capabilities { return Capabilities{} }

// Verify Noop implements Driver at compile time.
var _ Driver = Noop{}
