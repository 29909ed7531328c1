package constant

import "time"

// Frame Timing
const (
	FrameInterval = 16 * time.Millisecond // ~60 FPS
	FPSDefault    = 60
	FPSMin        = 15
	FPSMax        = 120

	// ToastFrames holds a notice on screen for ~2.5 s at 60 FPS
	ToastFrames = 150

	// PulseFrames keeps the heart glyph lit after a beat
	PulseFrames = 12
)

// Trace Geometry (braille dot units)
const (
	// DotsPerBeatSecond scales beat width: one beat spans (60/bpm)*120 dots
	DotsPerBeatSecond = 120.0

	// ScrollStep advances the trace each frame
	ScrollStep = 1.5
)

// EKG Trace Segments
// Phases are fractions of one beat width, amplitudes in dots.
// Up on screen means smaller y.
const (
	PWaveStart = 0.10
	PWaveEnd   = 0.18
	PWaveAmp   = 6.0

	QRSOnsetStart = 0.22
	QRSOnsetEnd   = 0.24
	QRSOnsetRise  = 9.0

	QRSFallStart = 0.24
	QRSFallEnd   = 0.28
	QRSFallDrop  = 46.0

	QRSRiseStart = 0.28
	QRSRiseEnd   = 0.32
	QRSRiseGain  = 48.0

	SettleStart = 0.32
	SettleEnd   = 0.34
	SettleDrop  = 11.0

	TWaveStart = 0.40
	TWaveEnd   = 0.52
	TWaveAmp   = 10.0
)

// Trace Glow
const (
	// GlowDecayFactor multiplies cell intensity each frame
	GlowDecayFactor = 0.82

	// GlowStrokeIntensity is the level for the widened glow stroke
	GlowStrokeIntensity = 0.55

	// GlowFloor removes cells fainter than this
	GlowFloor = 0.05
)

// Dashed Baseline (stopped state)
const (
	BaselineDashOn  = 3 // cells drawn
	BaselineDashOff = 2 // cells skipped
)
