package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// RenderBeat renders one beat offline to a mono buffer with the master
// volume applied, using the same streamers the live path plays.
func RenderBeat(rate beep.SampleRate, master float64) []float64 {
	s := newVolume(Beat(rate), master)
	out := make([]float64, 0, rate.N(BeatLength()))
	var block [512][2]float64
	for {
		n, ok := s.Stream(block[:])
		for i := 0; i < n; i++ {
			out = append(out, (block[i][0]+block[i][1])*0.5)
		}
		if !ok {
			break
		}
	}
	return out
}

// RenderLoop renders a run of beats at the given interval covering at
// least dur, tiling one rendered beat; overlapping tails sum. The
// buffer extends past dur when the final beat's tail crosses it.
func RenderLoop(rate beep.SampleRate, interval time.Duration, master float64, dur time.Duration) []float64 {
	step := rate.N(interval)
	total := rate.N(dur)
	if step <= 0 || total <= 0 {
		return nil
	}

	one := RenderBeat(rate, master)
	out := make([]float64, total)
	for start := 0; start < total; start += step {
		end := start + len(one)
		if end > len(out) {
			out = append(out, make([]float64, end-len(out))...)
		}
		for i, v := range one {
			out[start+i] += v
		}
	}
	return out
}
