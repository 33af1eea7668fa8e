package actuator

// OnOff adapts a driver whose hardware ignores amplitude levels (the browser
// Vibration API model, or legacy motors). Every active amplitude is quantized
// to full-on before delegating, so the relative timing of the compiled
// timeline survives even though intensity does not.
type OnOff struct {
	Inner Vibrator
}

// NewOnOff wraps inner with on/off quantization.
func NewOnOff(inner Vibrator) *OnOff {
	return &OnOff{Inner: inner}
}

// Vibrate plays the pulse at full amplitude.
func (o *OnOff) Vibrate(durationMs int64, amplitude uint8) error {
	if amplitude > 0 {
		amplitude = 255
	}
	return o.Inner.Vibrate(durationMs, amplitude)
}

// VibrateWaveform quantizes all active segments to full-on.
func (o *OnOff) VibrateWaveform(timings []int64, amplitudes []uint8, repeat int) error {
	if err := ValidateWaveform(timings, amplitudes, repeat); err != nil {
		return WrapError("onoff", err)
	}
	quantized := make([]uint8, len(amplitudes))
	for i, a := range amplitudes {
		if a > 0 {
			quantized[i] = 255
		}
	}
	return o.Inner.VibrateWaveform(timings, quantized, repeat)
}

// Cancel delegates to the wrapped driver.
func (o *OnOff) Cancel() error {
	return o.Inner.Cancel()
}

// Close delegates to the wrapped driver.
func (o *OnOff) Close() error {
	return o.Inner.Close()
}

// Capabilities reports a vibrator without amplitude control.
func (o *OnOff) Capabilities() Capabilities {
	return Capabilities{Vibrator: true, AmplitudeControl: false}
}

// Verify OnOff implements Driver at compile time.
var _ Driver = (*OnOff)(nil)
