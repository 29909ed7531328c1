package beat

import (
	"fmt"
	"strings"
)

// Vitals are the display statistics derived from a BPM value.
type Vitals struct {
	BPM       int
	Interval  float64 // seconds between beats
	PerHour   int
	PerDay    int
	RR        float64 // R-R interval, milliseconds
	Frequency float64 // Hz
}

// ComputeVitals derives all statistics from bpm.
func ComputeVitals(bpm int) Vitals {
	bpm = Clamp(bpm)
	return Vitals{
		BPM:       bpm,
		Interval:  60.0 / float64(bpm),
		PerHour:   bpm * 60,
		PerDay:    bpm * 60 * 24,
		RR:        60000.0 / float64(bpm),
		Frequency: float64(bpm) / 60.0,
	}
}

// Format renders the vitals as copyable text, one statistic per line.
func (v Vitals) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "BPM: %d (%s)\n", v.BPM, ZoneFor(v.BPM).Name)
	fmt.Fprintf(&b, "Interval: %.2f s\n", v.Interval)
	fmt.Fprintf(&b, "Beats/hour: %d\n", v.PerHour)
	fmt.Fprintf(&b, "Beats/day: %d\n", v.PerDay)
	fmt.Fprintf(&b, "R-R interval: %.0f ms\n", v.RR)
	fmt.Fprintf(&b, "Frequency: %.2f Hz\n", v.Frequency)
	return b.String()
}
