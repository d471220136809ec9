// Package indicator plays the power-on status patterns on a single LED.
package indicator

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sweeney/battery-status/internal/gpio"
	"github.com/sweeney/battery-status/internal/logic"
)

// Indicator drives status patterns on a digital output.
// Every call blocks until its pattern has finished.
type Indicator struct {
	out gpio.DigitalOutput
	log *logrus.Entry
}

// New returns an Indicator writing to out.
func New(out gpio.DigitalOutput, log *logrus.Entry) *Indicator {
	return &Indicator{
		out: out,
		log: log.WithField("component", "indicator"),
	}
}

// ShowOk holds pin high for the display duration, then drives it low.
func (i *Indicator) ShowOk(pin int) error {
	return i.Play(pin, logic.PatternOk)
}

// ShowLowBattery flashes pin for as many whole cycles as fit in the display
// duration, ending low.
func (i *Indicator) ShowLowBattery(pin int) error {
	return i.Play(pin, logic.PatternLowBattery)
}

// Show plays the pattern for the given verdict.
func (i *Indicator) Show(pin int, ok bool) error {
	return i.Play(pin, logic.PatternFor(ok))
}

// Play renders p on pin with the built-in timings.
func (i *Indicator) Play(pin int, p logic.Pattern) error {
	steps := p.Steps()
	i.log.WithFields(logrus.Fields{
		"pin":      pin,
		"pattern":  p,
		"steps":    len(steps),
		"duration": logic.TotalDuration(steps),
	}).Info("Indicator showing pattern")

	if err := i.PlaySteps(pin, steps); err != nil {
		return fmt.Errorf("show %s: %w", p, err)
	}
	return nil
}

// PlaySteps writes each step's level and holds it. A zero hold moves straight
// on to the next step.
func (i *Indicator) PlaySteps(pin int, steps []logic.Step) error {
	for n, s := range steps {
		if err := i.out.WriteDigital(pin, bool(s.Level)); err != nil {
			return fmt.Errorf("step %d: %w", n, err)
		}
		if s.Hold > 0 {
			i.out.Sleep(s.Hold)
		}
	}
	return nil
}
