package logic

import "time"

// OkSteps renders the ok pattern: one pulse lasting d, then off.
func OkSteps(d time.Duration) []Step {
	return []Step{
		{Level: High, Hold: d},
		{Level: Low},
	}
}

// FlashCount returns how many high/low cycles of half-period f fit in d.
// Any remainder is left unflashed.
func FlashCount(d, f time.Duration) int {
	if f <= 0 {
		return 0
	}
	return int(d / (2 * f))
}

// LowBatterySteps renders the low battery pattern: FlashCount(d, f) cycles of
// f high then f low. If no cycle fits, the output is simply driven low.
func LowBatterySteps(d, f time.Duration) []Step {
	n := FlashCount(d, f)
	if n == 0 {
		return []Step{{Level: Low}}
	}

	steps := make([]Step, 0, 2*n)
	for i := 0; i < n; i++ {
		steps = append(steps,
			Step{Level: High, Hold: f},
			Step{Level: Low, Hold: f},
		)
	}
	return steps
}

// Steps renders p using the built-in timings.
func (p Pattern) Steps() []Step {
	if p == PatternOk {
		return OkSteps(DisplayDuration)
	}
	return LowBatterySteps(DisplayDuration, FlashHalfPeriod)
}

// TotalDuration sums the hold times of steps.
func TotalDuration(steps []Step) time.Duration {
	var total time.Duration
	for _, s := range steps {
		total += s.Hold
	}
	return total
}
