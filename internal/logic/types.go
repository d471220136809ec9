// Package logic contains pure business logic for battery classification and
// status LED patterns.
// This package has NO external dependencies (no GPIO, ADC, OS, or time.Sleep).
// Durations are plain values; nothing here blocks.
package logic

import "time"

// RawSample is a single ADC conversion result, 0..MaxCode.
type RawSample int

// MaxCode is the largest code the 10-bit sense converter can produce.
const MaxCode RawSample = 1023

// Default classification thresholds in raw ADC codes, measured against the
// internal 1.1V reference. LowExit sits roughly 125mV above LowEnter.
const (
	DefaultLowEnter RawSample = 827
	DefaultLowExit  RawSample = 864
)

// Indicator timings.
const (
	// DisplayDuration is the total time either pattern may occupy the LED.
	DisplayDuration = 2 * time.Second
	// FlashHalfPeriod is the on (and off) time of one low battery flash.
	FlashHalfPeriod = 100 * time.Millisecond
)

// Level is the logical level of a digital output.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// BatteryState is the debounced classification carried between evaluations.
// The zero value is "not low".
type BatteryState struct {
	Low bool
}

// OK reports whether the battery is currently classified as ok.
func (s BatteryState) OK() bool {
	return !s.Low
}

func (s BatteryState) String() string {
	if s.Low {
		return "LOW"
	}
	return "OK"
}

// Pattern identifies one of the two status LED patterns.
type Pattern string

const (
	PatternOk         Pattern = "OK"
	PatternLowBattery Pattern = "LOW_BATTERY"
)

// PatternFor returns the pattern that signals the given verdict.
func PatternFor(ok bool) Pattern {
	if ok {
		return PatternOk
	}
	return PatternLowBattery
}

// Step holds the output at Level for Hold before the next step.
type Step struct {
	Level Level
	Hold  time.Duration
}
