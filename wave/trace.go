// Package wave renders the scrolling EKG trace on a braille dot canvas.
package wave

import (
	"math"

	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

// BeatWidth returns the horizontal dot span of one waveform period.
func BeatWidth(bpm int) float64 {
	return 60.0 / float64(bpm) * constant.DotsPerBeatSecond
}

// phase maps x under the accumulated offset to [0,1) within one beat.
func phase(x, offset, beatWidth float64) float64 {
	t := math.Mod(x+offset, beatWidth)
	if t < 0 {
		t += beatWidth
	}
	return t / beatWidth
}

// Y returns the vertical dot position of the trace at horizontal
// position x, given the scroll offset, the beat width, and the baseline
// mid. Smaller y is higher on screen. The function is periodic in x with
// period beatWidth and continuous across segment boundaries.
func Y(x, offset, beatWidth, mid float64) float64 {
	t := phase(x, offset, beatWidth)
	switch {
	case t >= constant.PWaveStart && t < constant.PWaveEnd:
		f := (t - constant.PWaveStart) / (constant.PWaveEnd - constant.PWaveStart)
		return mid - constant.PWaveAmp*math.Sin(f*math.Pi)

	case t >= constant.QRSOnsetStart && t < constant.QRSOnsetEnd:
		f := (t - constant.QRSOnsetStart) / (constant.QRSOnsetEnd - constant.QRSOnsetStart)
		return mid - constant.QRSOnsetRise*f

	case t >= constant.QRSFallStart && t < constant.QRSFallEnd:
		f := (t - constant.QRSFallStart) / (constant.QRSFallEnd - constant.QRSFallStart)
		return mid - constant.QRSOnsetRise + constant.QRSFallDrop*f

	case t >= constant.QRSRiseStart && t < constant.QRSRiseEnd:
		f := (t - constant.QRSRiseStart) / (constant.QRSRiseEnd - constant.QRSRiseStart)
		return mid + (constant.QRSFallDrop - constant.QRSOnsetRise) - constant.QRSRiseGain*f

	case t >= constant.SettleStart && t < constant.SettleEnd:
		f := (t - constant.SettleStart) / (constant.SettleEnd - constant.SettleStart)
		return mid - constant.SettleDrop + constant.SettleDrop*f

	case t >= constant.TWaveStart && t < constant.TWaveEnd:
		f := (t - constant.TWaveStart) / (constant.TWaveEnd - constant.TWaveStart)
		return mid + constant.TWaveAmp*math.Sin(f*math.Pi)

	default:
		return mid
	}
}
