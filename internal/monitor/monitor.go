// Package monitor samples the supply sense line and classifies the battery.
package monitor

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sweeney/battery-status/internal/gpio"
	"github.com/sweeney/battery-status/internal/logic"
)

// Reading is the outcome of one evaluation.
type Reading struct {
	Sample logic.RawSample
	State  logic.BatteryState
	// Changed is set when this sample moved the state across the band.
	Changed bool
}

// OK reports whether the battery is classified as ok after the reading.
func (r Reading) OK() bool {
	return r.State.OK()
}

// Monitor evaluates the battery against a fixed hysteresis band.
type Monitor struct {
	adc        gpio.AnalogInput
	ref        gpio.Reference
	thresholds logic.Thresholds
	log        *logrus.Entry
}

// New returns a Monitor sampling through adc against the internal reference.
func New(adc gpio.AnalogInput, thresholds logic.Thresholds, log *logrus.Entry) (*Monitor, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid thresholds: %w", err)
	}
	return &Monitor{
		adc:        adc,
		ref:        gpio.ReferenceInternal1V1,
		thresholds: thresholds,
		log:        log.WithField("component", "monitor"),
	}, nil
}

// Thresholds returns the band the monitor classifies against.
func (m *Monitor) Thresholds() logic.Thresholds {
	return m.thresholds
}

// Evaluate selects the internal reference, takes one blocking sample from pin
// and applies it to state. It returns whether the battery is ok.
// On error state is left untouched.
func (m *Monitor) Evaluate(state *logic.BatteryState, pin int) (bool, error) {
	r, err := m.Read(state, pin)
	if err != nil {
		return state.OK(), err
	}
	return r.OK(), nil
}

// Read is Evaluate returning the full reading.
func (m *Monitor) Read(state *logic.BatteryState, pin int) (Reading, error) {
	if err := m.adc.SetReference(m.ref); err != nil {
		return Reading{}, fmt.Errorf("set adc reference: %w", err)
	}

	raw, err := m.adc.ReadAnalog(pin)
	if err != nil {
		return Reading{}, fmt.Errorf("sample pin %d: %w", pin, err)
	}

	sample := logic.RawSample(raw)
	before := *state
	m.thresholds.Apply(state, sample)

	r := Reading{Sample: sample, State: *state, Changed: before != *state}

	fields := logrus.Fields{
		"pin":       pin,
		"raw":       raw,
		"state":     r.State,
		"low_enter": m.thresholds.LowEnter,
		"low_exit":  m.thresholds.LowExit,
	}
	if r.Changed {
		m.log.WithFields(fields).Infof("battery %s -> %s", before, r.State)
	} else {
		m.log.WithFields(fields).Debug("battery sampled")
	}
	return r, nil
}
