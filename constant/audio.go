package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioChannels   = 1
	AudioBitDepth   = 16
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// S1 "Lub" Tone
const (
	S1Duration  = 140 * time.Millisecond // decay reaches near-zero here
	S1Attack    = 8 * time.Millisecond
	S1Stop      = 160 * time.Millisecond
	S1StartFreq = 55.0 // Hz
	S1EndFreq   = 25.0 // Hz
)

// Sub-Bass Thump
const (
	SubBassDuration = 110 * time.Millisecond
	SubBassAttack   = 12 * time.Millisecond
	SubBassStop     = 130 * time.Millisecond
	SubBassFreq     = 32.0 // Hz
	SubBassGain     = 0.6
)

// Noise Transient
const (
	NoiseBufferDuration = 20 * time.Millisecond
	NoiseDecay          = 30 * time.Millisecond
	NoiseCutoffFreq     = 150.0 // Hz lowpass
	NoiseGain           = 0.4
)

// S2 "Dub" Tone
const (
	S2Delay     = 130 * time.Millisecond // after beat trigger
	S2Duration  = 100 * time.Millisecond
	S2Attack    = 8 * time.Millisecond
	S2Stop      = 120 * time.Millisecond
	S2StartFreq = 75.0 // Hz
	S2EndFreq   = 35.0 // Hz
)

// Gain Staging
const (
	MasterGainDefault = 0.7
	VolumeStep        = 0.05

	// DecayFloor is the envelope level treated as near-zero
	DecayFloor = 0.001
)

// Recording
const (
	RecordSecondsDefault = 10
	RecordSecondsMin     = 1
	RecordSecondsMax     = 600
	RecordFormatDefault  = "wav"
)
