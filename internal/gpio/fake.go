package gpio

import (
	"errors"
	"time"
)

// FakeADC is a test double that returns scripted analog samples.
type FakeADC struct {
	// Samples contains scripted raw codes to return.
	// Each call to ReadAnalog() consumes the next sample.
	Samples []int

	// index tracks current position in Samples
	index int

	// Reference is the last reference selected via SetReference.
	Reference Reference

	// Reads records the pin passed to each ReadAnalog call.
	Reads []int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by ReadAnalog()
	ReadError error

	// ReferenceError, if set, will be returned by SetReference()
	ReferenceError error
}

// NewFakeADC creates a FakeADC with the given samples.
func NewFakeADC(samples ...int) *FakeADC {
	return &FakeADC{Samples: samples}
}

// SetReference records the selected reference.
func (f *FakeADC) SetReference(ref Reference) error {
	if f.ReferenceError != nil {
		return f.ReferenceError
	}
	f.Reference = ref
	return nil
}

// ReadAnalog returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeADC) ReadAnalog(pin int) (int, error) {
	if f.ReadError != nil {
		return 0, f.ReadError
	}

	if len(f.Samples) == 0 {
		return 0, errors.New("no samples configured")
	}

	f.Reads = append(f.Reads, pin)

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample, nil
}

// Close marks the ADC as closed.
func (f *FakeADC) Close() error {
	f.Closed = true
	return nil
}

// Reset rewinds to the first sample and clears recorded calls.
func (f *FakeADC) Reset() {
	f.index = 0
	f.Reads = nil
	f.Reference = ""
	f.Closed = false
}

// Write is one recorded output change, stamped with the fake clock.
type Write struct {
	At   time.Duration // fake time since creation
	Pin  int
	High bool
}

// FakeOutput records writes against a virtual clock that only Sleep advances.
type FakeOutput struct {
	// Writes contains every WriteDigital call in order.
	Writes []Write

	// Elapsed is the total fake time slept.
	Elapsed time.Duration

	// Closed tracks if Close was called
	Closed bool

	// WriteError, if set, will be returned by WriteDigital()
	WriteError error

	// FailAfter, if > 0, makes WriteDigital fail with WriteError once this
	// many writes have succeeded.
	FailAfter int
}

// NewFakeOutput creates an empty FakeOutput.
func NewFakeOutput() *FakeOutput {
	return &FakeOutput{}
}

// WriteDigital records the write at the current fake time.
func (f *FakeOutput) WriteDigital(pin int, high bool) error {
	if f.WriteError != nil && len(f.Writes) >= f.FailAfter {
		return f.WriteError
	}
	f.Writes = append(f.Writes, Write{At: f.Elapsed, Pin: pin, High: high})
	return nil
}

// Sleep advances the fake clock without blocking.
func (f *FakeOutput) Sleep(d time.Duration) {
	f.Elapsed += d
}

// Close marks the output as closed.
func (f *FakeOutput) Close() error {
	f.Closed = true
	return nil
}

// Level returns the last level written to pin, or false if it was never written.
func (f *FakeOutput) Level(pin int) bool {
	for i := len(f.Writes) - 1; i >= 0; i-- {
		if f.Writes[i].Pin == pin {
			return f.Writes[i].High
		}
	}
	return false
}

// Reset clears recorded writes and the fake clock.
func (f *FakeOutput) Reset() {
	f.Writes = nil
	f.Elapsed = 0
	f.Closed = false
	f.WriteError = nil
	f.FailAfter = 0
}
