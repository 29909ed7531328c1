package constant

// BPM Range
const (
	BPMMin     = 30
	BPMMax     = 220
	BPMDefault = 72

	BPMStepFine   = 1
	BPMStepCoarse = 5
)

// Preset Rates
const (
	PresetSleepBPM  = 50
	PresetRestBPM   = 72
	PresetWalkBPM   = 110
	PresetRunBPM    = 155
	PresetSprintBPM = 190
)

// Visual Pulse Safety
const (
	// MaxVisualPulsesPerSecond caps the pulse animation rate for
	// photosensitivity; audio beats are not capped
	MaxVisualPulsesPerSecond = 3
)
