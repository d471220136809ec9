// Package gpio provides analog input and digital output with hardware abstraction.
// The real implementation uses the Linux IIO sysfs ADC and GPIO character device.
// The fake implementations allow testing without hardware.
package gpio

import "time"

// Reference selects the ADC reference voltage.
type Reference string

const (
	// ReferenceInternal1V1 is the internal 1.1V bandgap. Raw codes against it
	// do not move with the supply being measured.
	ReferenceInternal1V1 Reference = "INTERNAL1V1"
	ReferenceVCC         Reference = "VCC"
)

// AnalogInput samples analog channels.
type AnalogInput interface {
	// SetReference selects the reference used by subsequent reads.
	SetReference(ref Reference) error

	// ReadAnalog performs one blocking conversion on pin and returns the raw code.
	ReadAnalog(pin int) (int, error)

	// Close releases ADC resources.
	Close() error
}

// DigitalOutput drives digital output lines with blocking delays.
type DigitalOutput interface {
	// WriteDigital sets pin high (true) or low (false).
	WriteDigital(pin int, high bool) error

	// Sleep blocks for d.
	Sleep(d time.Duration)

	// Close releases GPIO resources.
	Close() error
}

// Default wiring (BCM numbering for the LED, IIO channel for the sense line).
const (
	DefaultChip      = "gpiochip0"
	DefaultPinLED    = 17
	DefaultSenseChan = 0
	DefaultIIODevice = "/sys/bus/iio/devices/iio:device0"
	DefaultReference = ReferenceInternal1V1
)
