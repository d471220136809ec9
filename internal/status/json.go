package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Battery    string         `json:"battery"`
	OK         bool           `json:"ok"`
	Raw        int            `json:"raw"`
	Zone       string         `json:"zone"`
	Pattern    string         `json:"pattern"`
	Shown      bool           `json:"shown"`
	Thresholds ThresholdsJSON `json:"thresholds"`
	ElapsedMs  int64          `json:"elapsed_ms"`
	Timestamp  string         `json:"timestamp"`
	Config     ConfigJSON     `json:"config"`
}

// ThresholdsJSON is the JSON representation of the hysteresis band.
type ThresholdsJSON struct {
	LowEnter int `json:"low_enter"`
	LowExit  int `json:"low_exit"`
}

// ConfigJSON is the JSON representation of the check's wiring.
type ConfigJSON struct {
	Chip      string `json:"chip"`
	PinLED    int    `json:"pin_led"`
	SenseChan int    `json:"sense_channel"`
	IIODevice string `json:"iio_device"`
}

// FormatJSON returns the indented JSON status for console output.
func FormatJSON(snap Snapshot) []byte {
	inner := StatusInner{
		Battery: snap.State.String(),
		OK:      snap.State.OK(),
		Raw:     int(snap.Sample),
		Zone:    snap.Zone(),
		Pattern: string(snap.Pattern),
		Shown:   snap.Shown,
		Thresholds: ThresholdsJSON{
			LowEnter: int(snap.Thresholds.LowEnter),
			LowExit:  int(snap.Thresholds.LowExit),
		},
		ElapsedMs: snap.Elapsed().Milliseconds(),
		Timestamp: snap.Now.UTC().Format(time.RFC3339),
		Config: ConfigJSON{
			Chip:      snap.Config.Chip,
			PinLED:    snap.Config.PinLED,
			SenseChan: snap.Config.SenseChan,
			IIODevice: snap.Config.IIODevice,
		},
	}

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}
