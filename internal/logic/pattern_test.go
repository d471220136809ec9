package logic

import (
	"testing"
	"time"
)

func TestOkSteps(t *testing.T) {
	steps := OkSteps(2 * time.Second)

	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0] != (Step{Level: High, Hold: 2 * time.Second}) {
		t.Errorf("step 0: got %+v", steps[0])
	}
	if steps[1] != (Step{Level: Low}) {
		t.Errorf("step 1: got %+v", steps[1])
	}
	if got := TotalDuration(steps); got != 2*time.Second {
		t.Errorf("total: got %v, want 2s", got)
	}
}

func TestFlashCount(t *testing.T) {
	tests := []struct {
		d, f time.Duration
		want int
	}{
		{2 * time.Second, 100 * time.Millisecond, 10},
		{2 * time.Second, 150 * time.Millisecond, 6}, // 1800ms used, 200ms left over
		{1000 * time.Millisecond, 300 * time.Millisecond, 1},
		{500 * time.Millisecond, 300 * time.Millisecond, 0},
		{time.Second, 0, 0},
	}

	for _, tt := range tests {
		if got := FlashCount(tt.d, tt.f); got != tt.want {
			t.Errorf("FlashCount(%v, %v): got %d, want %d", tt.d, tt.f, got, tt.want)
		}
	}
}

func TestLowBatterySteps(t *testing.T) {
	d := 2 * time.Second
	f := 150 * time.Millisecond
	steps := LowBatterySteps(d, f)

	if len(steps) != 12 {
		t.Fatalf("expected 12 steps (6 cycles), got %d", len(steps))
	}
	for i, s := range steps {
		want := High
		if i%2 == 1 {
			want = Low
		}
		if s.Level != want {
			t.Errorf("step %d: level %s, want %s", i, s.Level, want)
		}
		if s.Hold != f {
			t.Errorf("step %d: hold %v, want %v", i, s.Hold, f)
		}
	}
	if steps[len(steps)-1].Level != Low {
		t.Error("pattern should end low")
	}

	total := TotalDuration(steps)
	if total != 1800*time.Millisecond {
		t.Errorf("total: got %v, want 1.8s", total)
	}
	if total > d {
		t.Errorf("total %v exceeds display duration %v", total, d)
	}
}

func TestLowBatteryStepsNoCycleFits(t *testing.T) {
	steps := LowBatterySteps(100*time.Millisecond, 200*time.Millisecond)
	if len(steps) != 1 || steps[0] != (Step{Level: Low}) {
		t.Errorf("expected single low step, got %+v", steps)
	}
}

func TestPatternStepsUseBuiltInTimings(t *testing.T) {
	ok := PatternOk.Steps()
	if TotalDuration(ok) != DisplayDuration {
		t.Errorf("ok total: got %v, want %v", TotalDuration(ok), DisplayDuration)
	}

	low := PatternLowBattery.Steps()
	n := FlashCount(DisplayDuration, FlashHalfPeriod)
	if len(low) != 2*n {
		t.Errorf("low battery: got %d steps, want %d", len(low), 2*n)
	}
	if TotalDuration(low) != time.Duration(n)*2*FlashHalfPeriod {
		t.Errorf("low battery total: got %v", TotalDuration(low))
	}
}
