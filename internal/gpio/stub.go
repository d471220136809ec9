//go:build !linux

package gpio

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// LineOutput is not available on non-Linux platforms.
type LineOutput struct{}

// NewLineOutput returns an error on non-Linux platforms.
func NewLineOutput(chipName string) (*LineOutput, error) {
	return nil, errUnsupported
}

// WriteDigital is not implemented on non-Linux platforms.
func (o *LineOutput) WriteDigital(pin int, high bool) error {
	return errUnsupported
}

// Sleep blocks for d.
func (o *LineOutput) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Close is a no-op on non-Linux platforms.
func (o *LineOutput) Close() error {
	return nil
}

// IIOReader is not available on non-Linux platforms.
type IIOReader struct{}

// NewIIOReader returns an error on non-Linux platforms.
func NewIIOReader(dir string, ref Reference) (*IIOReader, error) {
	return nil, errUnsupported
}

// SetReference is not implemented on non-Linux platforms.
func (r *IIOReader) SetReference(ref Reference) error {
	return errUnsupported
}

// ReadAnalog is not implemented on non-Linux platforms.
func (r *IIOReader) ReadAnalog(pin int) (int, error) {
	return 0, errUnsupported
}

// Close is a no-op on non-Linux platforms.
func (r *IIOReader) Close() error {
	return nil
}
