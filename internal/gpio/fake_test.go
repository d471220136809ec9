package gpio

import (
	"errors"
	"testing"
	"time"
)

func TestFakeADCRead(t *testing.T) {
	f := NewFakeADC(900, 845, 800)

	want := []int{900, 845, 800, 800} // last sample repeats
	for i, w := range want {
		got, err := f.ReadAnalog(3)
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("read %d: got %d, want %d", i, got, w)
		}
	}

	if len(f.Reads) != 4 {
		t.Fatalf("expected 4 recorded reads, got %d", len(f.Reads))
	}
	for i, pin := range f.Reads {
		if pin != 3 {
			t.Errorf("read %d: pin %d, want 3", i, pin)
		}
	}
}

func TestFakeADCNoSamples(t *testing.T) {
	f := NewFakeADC()

	_, err := f.ReadAnalog(0)
	if err == nil {
		t.Error("expected error with no samples")
	}
}

func TestFakeADCErrors(t *testing.T) {
	f := NewFakeADC(900)
	f.ReadError = errors.New("simulated read error")
	f.ReferenceError = errors.New("simulated reference error")

	if _, err := f.ReadAnalog(0); err == nil || err.Error() != "simulated read error" {
		t.Errorf("unexpected read error: %v", err)
	}
	if err := f.SetReference(ReferenceInternal1V1); err == nil || err.Error() != "simulated reference error" {
		t.Errorf("unexpected reference error: %v", err)
	}
	if f.Reference != "" {
		t.Errorf("reference should not be recorded on error, got %q", f.Reference)
	}
}

func TestFakeADCReferenceAndReset(t *testing.T) {
	f := NewFakeADC(10, 20)

	if err := f.SetReference(ReferenceInternal1V1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Reference != ReferenceInternal1V1 {
		t.Errorf("Reference: got %q", f.Reference)
	}

	f.ReadAnalog(0)
	f.Close()
	f.Reset()

	if f.Closed || f.Reference != "" || f.Reads != nil {
		t.Error("Reset should clear recorded state")
	}
	if v, _ := f.ReadAnalog(0); v != 10 {
		t.Errorf("after reset: got %d, want 10", v)
	}
}

func TestFakeOutputClock(t *testing.T) {
	f := NewFakeOutput()

	f.WriteDigital(17, true)
	f.Sleep(250 * time.Millisecond)
	f.WriteDigital(17, false)
	f.Sleep(250 * time.Millisecond)

	want := []Write{
		{At: 0, Pin: 17, High: true},
		{At: 250 * time.Millisecond, Pin: 17, High: false},
	}
	if len(f.Writes) != len(want) {
		t.Fatalf("expected %d writes, got %d", len(want), len(f.Writes))
	}
	for i := range want {
		if f.Writes[i] != want[i] {
			t.Errorf("write %d: got %+v, want %+v", i, f.Writes[i], want[i])
		}
	}
	if f.Elapsed != 500*time.Millisecond {
		t.Errorf("Elapsed: got %v, want 500ms", f.Elapsed)
	}
	if f.Level(17) {
		t.Error("pin 17 should be low")
	}
	if f.Level(4) {
		t.Error("unwritten pin should read low")
	}
}

func TestFakeOutputFailAfter(t *testing.T) {
	f := NewFakeOutput()
	f.WriteError = errors.New("stuck line")
	f.FailAfter = 2

	if err := f.WriteDigital(1, true); err != nil {
		t.Fatalf("write 1: unexpected error: %v", err)
	}
	if err := f.WriteDigital(1, false); err != nil {
		t.Fatalf("write 2: unexpected error: %v", err)
	}
	if err := f.WriteDigital(1, true); err == nil {
		t.Error("write 3: expected error")
	}
	if len(f.Writes) != 2 {
		t.Errorf("expected 2 recorded writes, got %d", len(f.Writes))
	}
}

func TestFakeOutputCloseAndReset(t *testing.T) {
	f := NewFakeOutput()
	f.WriteDigital(1, true)
	f.Sleep(time.Second)

	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !f.Closed {
		t.Error("should be closed after Close()")
	}

	f.Reset()
	if f.Closed || f.Writes != nil || f.Elapsed != 0 {
		t.Error("Reset should clear recorded state")
	}
}

func TestFakesSatisfyInterfaces(t *testing.T) {
	var _ AnalogInput = NewFakeADC()
	var _ DigitalOutput = NewFakeOutput()
	var _ AnalogInput = (*IIOReader)(nil)
	var _ DigitalOutput = (*LineOutput)(nil)
}
