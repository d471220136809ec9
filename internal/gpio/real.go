//go:build linux

package gpio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// consumer labels the lines we hold in gpioinfo output.
const consumer = "battery-status"

// LineOutput drives LED lines through the Linux GPIO character device.
// Lines are requested on first write and held until Close.
type LineOutput struct {
	chip  *gpiocdev.Chip
	lines map[int]*gpiocdev.Line
}

// NewLineOutput opens the named GPIO chip (e.g. "gpiochip0").
func NewLineOutput(chipName string) (*LineOutput, error) {
	chip, err := gpiocdev.NewChip(chipName, gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}
	return &LineOutput{
		chip:  chip,
		lines: make(map[int]*gpiocdev.Line),
	}, nil
}

// WriteDigital drives pin to the given level, requesting it as an output
// (initially low) if this is the first write.
func (o *LineOutput) WriteDigital(pin int, high bool) error {
	val := 0
	if high {
		val = 1
	}

	line, ok := o.lines[pin]
	if !ok {
		l, err := o.chip.RequestLine(pin, gpiocdev.AsOutput(val))
		if err != nil {
			return fmt.Errorf("request output pin %d: %w", pin, err)
		}
		o.lines[pin] = l
		return nil
	}

	if err := line.SetValue(val); err != nil {
		return fmt.Errorf("set pin %d: %w", pin, err)
	}
	return nil
}

// Sleep blocks for d.
func (o *LineOutput) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Close drives every held line low and releases it, then closes the chip.
func (o *LineOutput) Close() error {
	var errs []error

	for pin, line := range o.lines {
		if err := line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear pin %d: %w", pin, err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin %d: %w", pin, err))
		}
		delete(o.lines, pin)
	}
	if o.chip != nil {
		if err := o.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// IIOReader samples ADC channels exposed by a Linux IIO device
// (in_voltage<N>_raw under the device directory).
// The reference is fixed by the board's device tree, so only the reference
// the reader was opened with can be selected.
type IIOReader struct {
	dir string
	ref Reference
}

// NewIIOReader checks that dir is an IIO device and returns a reader for it.
func NewIIOReader(dir string, ref Reference) (*IIOReader, error) {
	name, err := os.ReadFile(filepath.Join(dir, "name"))
	if err != nil {
		return nil, fmt.Errorf("open iio device %s: %w", dir, err)
	}
	if strings.TrimSpace(string(name)) == "" {
		return nil, fmt.Errorf("iio device %s has no name", dir)
	}
	return &IIOReader{dir: dir, ref: ref}, nil
}

// SetReference accepts only the board's fixed reference.
func (r *IIOReader) SetReference(ref Reference) error {
	if ref != r.ref {
		return fmt.Errorf("reference %s not available on %s (fixed at %s)", ref, r.dir, r.ref)
	}
	return nil
}

// ReadAnalog triggers one conversion by reading the channel's raw attribute.
func (r *IIOReader) ReadAnalog(pin int) (int, error) {
	path := filepath.Join(r.dir, fmt.Sprintf("in_voltage%d_raw", pin))
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read adc channel %d: %w", pin, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse adc channel %d: %w", pin, err)
	}
	return v, nil
}

// Close is a no-op; sysfs attributes are opened per read.
func (r *IIOReader) Close() error {
	return nil
}
