package engine

import (
	"log/slog"

	"github.com/hapticlabs/go-haptics/internal/log"
	"github.com/hapticlabs/go-haptics/pkg/actuator"
)

// Chain implements actuator.Driver by trying multiple drivers in order.
// The first driver to accept a submission wins; if all reject it, the
// aggregate error is returned. Typical ordering: amplitude-controlled
// hardware, then an on/off adapter, then Noop.
type Chain struct {
	drivers []actuator.Driver
	logger  *slog.Logger
}

// NewChain creates a driver chain. At least one driver is required.
func NewChain(drivers ...actuator.Driver) (*Chain, error) {
	if len(drivers) == 0 {
		return nil, ErrNoDrivers
	}
	return &Chain{
		drivers: drivers,
		logger:  log.Component("engine.chain"),
	}, nil
}

// Vibrate tries each driver until one accepts the pulse.
func (c *Chain) Vibrate(durationMs int64, amplitude uint8) error {
	var errs []error
	for i, d := range c.drivers {
		err := d.Vibrate(durationMs, amplitude)
		if err == nil {
			c.noteFallback(i)
			return nil
		}
		errs = append(errs, err)
		c.logger.Warn("driver rejected pulse, trying next", "driver_index", i, "error", err)
	}
	return &ChainError{Errors: errs}
}

// VibrateWaveform tries each driver until one accepts the waveform.
func (c *Chain) VibrateWaveform(timings []int64, amplitudes []uint8, repeat int) error {
	var errs []error
	for i, d := range c.drivers {
		err := d.VibrateWaveform(timings, amplitudes, repeat)
		if err == nil {
			c.noteFallback(i)
			return nil
		}
		errs = append(errs, err)
		c.logger.Warn("driver rejected waveform, trying next", "driver_index", i, "error", err)
	}
	return &ChainError{Errors: errs}
}

// Cancel cancels on every driver; playback may sit on any of them.
func (c *Chain) Cancel() error {
	var lastErr error
	for _, d := range c.drivers {
		if err := d.Cancel(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all drivers.
func (c *Chain) Close() error {
	var lastErr error
	for _, d := range c.drivers {
		if err := d.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Capabilities reports the first driver that has hardware at all; the chain
// is only as capable as the best driver that can actually vibrate.
func (c *Chain) Capabilities() actuator.Capabilities {
	for _, d := range c.drivers {
		if caps := d.Capabilities(); caps.Vibrator {
			return caps
		}
	}
	return actuator.Capabilities{}
}

// Drivers returns the drivers in the chain.
func (c *Chain) Drivers() []actuator.Driver {
	return c.drivers
}

func (c *Chain) noteFallback(index int) {
	if index > 0 {
		c.logger.Info("fallback driver accepted submission", "driver_index", index)
	}
}

// Verify Chain implements Driver at compile time.
var _ actuator.Driver = (*Chain)(nil)
