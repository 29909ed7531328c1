// Package record exports offline heartbeat renders to audio files.
package record

import (
	"fmt"
	"math"
	"os"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/transforms"
	"github.com/gopxl/beep"

	"github.com/bengous/heartbeat-audio-visualizer/audio"
	"github.com/bengous/heartbeat-audio-visualizer/beat"
	"github.com/bengous/heartbeat-audio-visualizer/constant"
	"github.com/bengous/heartbeat-audio-visualizer/encoder"
)

// Result describes a finished export.
type Result struct {
	Path   string
	Frames uint64
	Bytes  int64
}

// Filename builds the timestamped default export name.
func Filename(bpm int, format string, t time.Time) string {
	return fmt.Sprintf("heartbeat-%dbpm-%s.%s",
		beat.Clamp(bpm), t.Format("20060102-150405"), format)
}

// Write renders duration seconds of heartbeat at bpm, normalizes the
// peak, and encodes to path. The container comes from the extension.
func Write(path string, bpm int, volume float64, duration time.Duration) (Result, error) {
	bpm = beat.Clamp(bpm)
	rate := beep.SampleRate(constant.AudioSampleRate)

	samples := audio.RenderLoop(rate, beat.Interval(bpm), volume, duration)
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("nothing to render for %v", duration)
	}
	normalize(samples)

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = int16(s * 32767)
	}

	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", path, err)
	}

	enc, err := encoder.ForFile(f, constant.AudioSampleRate)
	if err != nil {
		f.Close()
		os.Remove(path)
		return Result{}, err
	}

	for start := 0; start < len(pcm); start += encoder.BlockSize {
		end := start + encoder.BlockSize
		if end > len(pcm) {
			end = len(pcm)
		}
		if err := enc.EncodeBlock(pcm[start:end]); err != nil {
			f.Close()
			os.Remove(path)
			return Result{}, fmt.Errorf("encoding block at %d: %w", start, err)
		}
	}

	if err := enc.Close(); err != nil {
		f.Close()
		os.Remove(path)
		return Result{}, fmt.Errorf("finalizing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("closing %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Result{Path: path, Frames: enc.TotalFrames(), Bytes: info.Size()}, nil
}

// normalize scales the peak to full scale. A silent render stays
// silent.
func normalize(samples []float64) {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}
	buf := &gaudio.FloatBuffer{
		Format: &gaudio.Format{
			NumChannels: encoder.Channels,
			SampleRate:  constant.AudioSampleRate,
		},
		Data: samples,
	}
	transforms.NormalizeMax(buf)
}
