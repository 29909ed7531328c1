// Package beat derives timing, rate zones, and vitals from a BPM value
// and owns the repeating beat timer that drives audio and visuals.
package beat

import (
	"time"

	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

// Clamp bounds bpm to the supported range.
func Clamp(bpm int) int {
	if bpm < constant.BPMMin {
		return constant.BPMMin
	}
	if bpm > constant.BPMMax {
		return constant.BPMMax
	}
	return bpm
}

// Interval returns the period between beats for bpm.
func Interval(bpm int) time.Duration {
	return time.Minute / time.Duration(Clamp(bpm))
}

// Zone is a named heart-rate band with its display color.
type Zone struct {
	Name  string
	Color uint32 // 0xRRGGBB
}

var (
	ZoneBradycardia = Zone{"Bradycardia", 0x5B8DEF}
	ZoneResting     = Zone{"Resting", 0x4CAF50}
	ZoneModerate    = Zone{"Moderate", 0xFFB300}
	ZoneVigorous    = Zone{"Vigorous", 0xFF7043}
	ZoneMaximum     = Zone{"Maximum", 0xE53935}
)

// ZoneFor maps bpm to its rate zone.
func ZoneFor(bpm int) Zone {
	switch {
	case bpm < 60:
		return ZoneBradycardia
	case bpm <= 100:
		return ZoneResting
	case bpm <= 140:
		return ZoneModerate
	case bpm <= 170:
		return ZoneVigorous
	default:
		return ZoneMaximum
	}
}

// Preset is a named BPM shortcut.
type Preset struct {
	Name string
	BPM  int
}

var Presets = []Preset{
	{"Sleep", constant.PresetSleepBPM},
	{"Rest", constant.PresetRestBPM},
	{"Walk", constant.PresetWalkBPM},
	{"Run", constant.PresetRunBPM},
	{"Sprint", constant.PresetSprintBPM},
}

// VisualBeat converts the audio beat counter into the throttled pulse
// counter. At or below MaxVisualPulsesPerSecond the pulse tracks the
// counter directly; above it the pulse advances proportionally slower so
// it never exceeds the cap.
func VisualBeat(count uint64, bpm int) uint64 {
	limit := constant.MaxVisualPulsesPerSecond * 60 // BPM at the cap
	if bpm <= limit {
		return count
	}
	return count * uint64(limit) / uint64(bpm)
}
