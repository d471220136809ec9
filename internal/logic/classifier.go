package logic

import "fmt"

// Thresholds is the hysteresis band used to classify raw samples.
// Samples in [LowEnter, LowExit] leave the state unchanged.
type Thresholds struct {
	LowEnter RawSample // below this the battery becomes low
	LowExit  RawSample // above this the battery becomes ok again
}

// DefaultThresholds returns the built-in band for the sense divider.
func DefaultThresholds() Thresholds {
	return Thresholds{LowEnter: DefaultLowEnter, LowExit: DefaultLowExit}
}

// Validate checks that the band is non-empty and within converter range.
func (t Thresholds) Validate() error {
	if t.LowExit <= t.LowEnter {
		return fmt.Errorf("low exit %d must be above low enter %d", t.LowExit, t.LowEnter)
	}
	if t.LowEnter < 0 || t.LowExit > MaxCode {
		return fmt.Errorf("thresholds [%d, %d] outside converter range [0, %d]", t.LowEnter, t.LowExit, MaxCode)
	}
	return nil
}

// InDeadZone reports whether sample would leave any state unchanged.
func (t Thresholds) InDeadZone(sample RawSample) bool {
	return sample >= t.LowEnter && sample <= t.LowExit
}

// Apply updates state from a new sample and returns whether the battery is ok.
// At most one direction of change happens per call.
func (t Thresholds) Apply(state *BatteryState, sample RawSample) bool {
	switch {
	case sample < t.LowEnter:
		state.Low = true
	case sample > t.LowExit:
		state.Low = false
	}
	return state.OK()
}
