package actuator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hapticlabs/go-haptics/internal/httpc"
)

// HTTPDriver implements Driver against a device-side agent that owns the
// physical actuator and exposes it over a small HTTP API. This is the
// primary driver used by the bridge daemon when the actuator lives on a
// separate device (phone, wearable, dev board).
type HTTPDriver struct {
	BaseURL string
	client  *http.Client
}

// NewHTTPDriver creates a driver talking to the agent at addr (host:port).
func NewHTTPDriver(addr string) *HTTPDriver {
	return &HTTPDriver{
		BaseURL: fmt.Sprintf("http://%s", addr),
		client:  httpc.Client,
	}
}

// Vibrate submits a single pulse.
func (d *HTTPDriver) Vibrate(durationMs int64, amplitude uint8) error {
	return d.post("/api/vibrate", map[string]interface{}{
		"duration_ms": durationMs,
		"amplitude":   amplitude,
	})
}

// VibrateWaveform submits a full timeline.
func (d *HTTPDriver) VibrateWaveform(timings []int64, amplitudes []uint8, repeat int) error {
	if err := ValidateWaveform(timings, amplitudes, repeat); err != nil {
		return WrapError("http", err)
	}
	// JSON has no uint8 array shorthand; widen for the wire.
	amps := make([]int, len(amplitudes))
	for i, a := range amplitudes {
		amps[i] = int(a)
	}
	return d.post("/api/waveform", map[string]interface{}{
		"timings":    timings,
		"amplitudes": amps,
		"repeat":     repeat,
	})
}

// Cancel stops any in-flight playback on the agent.
func (d *HTTPDriver) Cancel() error {
	return d.post("/api/cancel", nil)
}

// Close releases nothing; the HTTP client is shared.
func (d *HTTPDriver) Close() error {
	return nil
}

// Capabilities queries the agent's capability probe.
// A probe failure reports no vibrator rather than an error: an unreachable
// agent and absent hardware are handled the same way by the caller.
func (d *HTTPDriver) Capabilities() Capabilities {
	resp, err := d.client.Get(d.BaseURL + "/api/capabilities")
	if err != nil {
		return Capabilities{}
	}
	defer resp.Body.Close()

	var caps Capabilities
	if err := json.NewDecoder(resp.Body).Decode(&caps); err != nil {
		return Capabilities{}
	}
	return caps
}

// post sends a JSON command to the agent and treats non-2xx as failure.
func (d *HTTPDriver) post(path string, payload map[string]interface{}) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return WrapError("http", fmt.Errorf("marshal payload: %w", err))
		}
	}

	resp, err := d.client.Post(d.BaseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return WrapError("http", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return WrapError("http", fmt.Errorf("agent rejected %s: status %d", path, resp.StatusCode))
	}
	return nil
}

// Verify HTTPDriver implements Driver at compile time.
var _ Driver = (*HTTPDriver)(nil)
