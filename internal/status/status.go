// Package status describes the outcome of a boot-time battery check for
// display on the console.
package status

import (
	"fmt"
	"time"

	"github.com/sweeney/battery-status/internal/logic"
	"github.com/sweeney/battery-status/internal/monitor"
)

// Config contains the wiring the check ran with.
type Config struct {
	Chip      string
	PinLED    int
	SenseChan int
	IIODevice string
}

// Snapshot is a point-in-time view of one battery check.
// It is a value type.
type Snapshot struct {
	Sample     logic.RawSample
	State      logic.BatteryState
	Pattern    logic.Pattern
	Shown      bool // whether the pattern was played on the LED
	Thresholds logic.Thresholds
	StartTime  time.Time
	Now        time.Time
	Config     Config
}

// New builds a snapshot from a monitor reading.
func New(r monitor.Reading, th logic.Thresholds, cfg Config, start, now time.Time) Snapshot {
	return Snapshot{
		Sample:     r.Sample,
		State:      r.State,
		Pattern:    logic.PatternFor(r.OK()),
		Thresholds: th,
		StartTime:  start,
		Now:        now,
		Config:     cfg,
	}
}

// Elapsed returns the time spent on the check.
func (s Snapshot) Elapsed() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Zone names where the sample fell relative to the band.
func (s Snapshot) Zone() string {
	switch {
	case s.Sample < s.Thresholds.LowEnter:
		return "LOW"
	case s.Sample > s.Thresholds.LowExit:
		return "OK"
	default:
		return "DEAD_ZONE"
	}
}

// FormatText returns a one-line summary like the one printed by --print-state.
func FormatText(s Snapshot) string {
	return fmt.Sprintf("Battery: %s, raw: %d (%s, band %d-%d)",
		s.State, s.Sample, s.Zone(), s.Thresholds.LowEnter, s.Thresholds.LowExit)
}
