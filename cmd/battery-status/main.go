// Command battery-status checks the supply voltage once at boot and signals the
// result on the status LED.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sweeney/battery-status/internal/gpio"
	"github.com/sweeney/battery-status/internal/indicator"
	"github.com/sweeney/battery-status/internal/logic"
	"github.com/sweeney/battery-status/internal/monitor"
	"github.com/sweeney/battery-status/internal/status"
)

func main() {
	chip := flag.String("chip", gpio.DefaultChip, "GPIO chip driving the status LED")
	pinLED := flag.Int("led", gpio.DefaultPinLED, "BCM pin number for the status LED")
	iioDevice := flag.String("adc", gpio.DefaultIIODevice, "IIO device directory of the sense ADC")
	senseChan := flag.Int("sense", gpio.DefaultSenseChan, "ADC channel of the supply sense line")
	printState := flag.Bool("print-state", false, "Print battery state and exit without driving the LED")
	asJSON := flag.Bool("json", false, "Print state as JSON (with --print-state)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	logger := setupLogger(*verbose)
	cfg := status.Config{
		Chip:      *chip,
		PinLED:    *pinLED,
		SenseChan: *senseChan,
		IIODevice: *iioDevice,
	}
	if err := run(cfg, *printState, *asJSON, logger); err != nil {
		logger.WithError(err).Fatal("battery check failed")
	}
}

func setupLogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

func run(cfg status.Config, printState, asJSON bool, logger *logrus.Logger) error {
	// Initialize ADC
	adc, err := gpio.NewIIOReader(cfg.IIODevice, gpio.DefaultReference)
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	defer adc.Close()

	// Print state mode
	if printState {
		_, err := runCheck(adc, nil, cfg, os.Stdout, asJSON, time.Now, logger)
		return err
	}

	// Initialize LED
	led, err := gpio.NewLineOutput(cfg.Chip)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer func() {
		if err := led.Close(); err != nil {
			logger.WithError(err).Warn("release gpio")
		}
	}()

	_, err = runCheck(adc, led, cfg, nil, asJSON, time.Now, logger)
	return err
}

// runCheck evaluates the battery once and, when led is non-nil, plays the
// matching pattern. When w is non-nil the resulting state is printed to it.
func runCheck(adc gpio.AnalogInput, led gpio.DigitalOutput, cfg status.Config, w io.Writer, asJSON bool, now func() time.Time, logger *logrus.Logger) (status.Snapshot, error) {
	start := now()
	log := logrus.NewEntry(logger)

	mon, err := monitor.New(adc, logic.DefaultThresholds(), log)
	if err != nil {
		return status.Snapshot{}, err
	}

	// Fresh process, fresh state: the classification starts as "not low".
	var state logic.BatteryState
	reading, err := mon.Read(&state, cfg.SenseChan)
	if err != nil {
		return status.Snapshot{}, fmt.Errorf("evaluate battery: %w", err)
	}

	snap := status.New(reading, mon.Thresholds(), cfg, start, start)

	if led != nil {
		ind := indicator.New(led, log)
		if err := ind.Show(cfg.PinLED, reading.OK()); err != nil {
			return snap, fmt.Errorf("show status: %w", err)
		}
		snap.Shown = true
	}
	snap.Now = now()

	logger.WithFields(logrus.Fields{
		"battery": snap.State,
		"raw":     snap.Sample,
		"pattern": snap.Pattern,
		"shown":   snap.Shown,
	}).Info("battery check complete")

	if w != nil {
		if asJSON {
			fmt.Fprintf(w, "%s\n", status.FormatJSON(snap))
		} else {
			fmt.Fprintln(w, status.FormatText(snap))
		}
	}
	return snap, nil
}
