package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

// sweepSteepness shapes the exponential frequency glide; the pitch has
// effectively reached the end frequency when the sweep window closes.
const sweepSteepness = 8.0

// sweepOscillator is a sine voice whose frequency glides exponentially
// from start toward end across the sweep window, holding end afterward.
// A voice with start == end is a plain fixed tone.
type sweepOscillator struct {
	startFreq float64
	endFreq   float64
	sweep     int // samples over which the glide completes
	duration  int // total samples before the voice stops
	position  int
	phase     float64
	rate      beep.SampleRate
}

func newSweep(start, end float64, sweep, total time.Duration, rate beep.SampleRate) *sweepOscillator {
	return &sweepOscillator{
		startFreq: start,
		endFreq:   end,
		sweep:     rate.N(sweep),
		duration:  rate.N(total),
		rate:      rate,
	}
}

func (o *sweepOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		freq := o.endFreq
		if o.position < o.sweep {
			t := float64(o.position) / float64(o.sweep)
			freq = o.endFreq + (o.startFreq-o.endFreq)*math.Exp(-sweepSteepness*t)
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sweepOscillator) Err() error { return nil }

// expEnvelope shapes a voice with a linear attack to peak followed by an
// exponential decay that reaches the decay floor when the decay window
// closes; past that it holds the floor until the voice itself stops.
type expEnvelope struct {
	streamer beep.Streamer
	peak     float64
	position int
	attack   int
	decayEnd int
}

func newExpEnvelope(s beep.Streamer, peak float64, attack, decay time.Duration, rate beep.SampleRate) *expEnvelope {
	return &expEnvelope{
		streamer: s,
		peak:     peak,
		attack:   rate.N(attack),
		decayEnd: rate.N(decay),
	}
}

func (e *expEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		gain := e.peak * constant.DecayFloor
		switch {
		case e.position < e.attack:
			gain = e.peak * float64(e.position) / float64(e.attack)
		case e.position < e.decayEnd:
			f := float64(e.position-e.attack) / float64(e.decayEnd-e.attack)
			gain = e.peak * math.Pow(constant.DecayFloor, f)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok
}

func (e *expEnvelope) Err() error { return e.streamer.Err() }

// bufferVoice streams a prerendered mono buffer once.
type bufferVoice struct {
	buf      []float64
	position int
}

func (v *bufferVoice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.position >= len(v.buf) {
			return i, false
		}
		val := v.buf[v.position]
		samples[i][0] = val
		samples[i][1] = val
		v.position++
	}
	return len(samples), true
}

func (v *bufferVoice) Err() error { return nil }

// noiseBuffer renders the band-limited transient source: white noise
// through a one-pole lowpass at the cutoff, normalized to unit peak.
func noiseBuffer(rate beep.SampleRate) []float64 {
	buf := make([]float64, rate.N(constant.NoiseBufferDuration))
	coeff := 1 - math.Exp(-2*math.Pi*constant.NoiseCutoffFreq/float64(rate))
	lp := 0.0
	for i := range buf {
		white := rand.Float64()*2 - 1
		lp += coeff * (white - lp)
		buf[i] = lp
	}
	normalizePeak(buf)
	return buf
}

// normalizePeak scales the buffer so its largest magnitude is 1.0.
func normalizePeak(buf []float64) {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak > 0 {
		scale := 1.0 / peak
		for i := range buf {
			buf[i] *= scale
		}
	}
}

// noiseCache holds the rendered transient buffer. It is rebuilt only
// when the sample rate changes; repeated beats at one rate share it.
var noiseCache struct {
	mu   sync.RWMutex
	rate beep.SampleRate
	buf  []float64
}

func transient(rate beep.SampleRate) []float64 {
	noiseCache.mu.RLock()
	if noiseCache.buf != nil && noiseCache.rate == rate {
		buf := noiseCache.buf
		noiseCache.mu.RUnlock()
		return buf
	}
	noiseCache.mu.RUnlock()

	noiseCache.mu.Lock()
	defer noiseCache.mu.Unlock()
	if noiseCache.buf == nil || noiseCache.rate != rate {
		noiseCache.buf = noiseBuffer(rate)
		noiseCache.rate = rate
	}
	return noiseCache.buf
}

// Beat builds the one-shot streamer for a single heartbeat: the S1
// "lub", the sub-bass thump, the noise transient, and the S2 "dub"
// delayed by exactly S2Delay. The components sum at unity gain; the
// master stage applies the volume. Every voice drains at its stop time,
// so a mixer holding the result drops it without cleanup.
func Beat(rate beep.SampleRate) beep.Streamer {
	s1 := newExpEnvelope(
		newSweep(constant.S1StartFreq, constant.S1EndFreq, constant.S1Duration, constant.S1Stop, rate),
		1.0, constant.S1Attack, constant.S1Duration, rate)

	sub := newExpEnvelope(
		newSweep(constant.SubBassFreq, constant.SubBassFreq, constant.SubBassDuration, constant.SubBassStop, rate),
		constant.SubBassGain, constant.SubBassAttack, constant.SubBassDuration, rate)

	snap := newExpEnvelope(
		&bufferVoice{buf: transient(rate)},
		constant.NoiseGain, 0, constant.NoiseDecay, rate)

	s2 := beep.Seq(
		beep.Silence(rate.N(constant.S2Delay)),
		newExpEnvelope(
			newSweep(constant.S2StartFreq, constant.S2EndFreq, constant.S2Duration, constant.S2Stop, rate),
			1.0, constant.S2Attack, constant.S2Duration, rate),
	)

	return beep.Mix(s1, sub, snap, s2)
}

// Event describes one scheduled component of a beat, offsets relative
// to the trigger instant.
type Event struct {
	Name  string
	Start time.Duration
	Stop  time.Duration
	Peak  float64
}

// Schedule returns the deterministic per-beat component timing.
func Schedule() []Event {
	return []Event{
		{Name: "s1", Start: 0, Stop: constant.S1Stop, Peak: 1.0},
		{Name: "sub", Start: 0, Stop: constant.SubBassStop, Peak: constant.SubBassGain},
		{Name: "noise", Start: 0, Stop: constant.NoiseDecay, Peak: constant.NoiseGain},
		{Name: "s2", Start: constant.S2Delay, Stop: constant.S2Delay + constant.S2Stop, Peak: 1.0},
	}
}

// BeatLength is the duration of one beat's audio including the S2 tail.
func BeatLength() time.Duration {
	return constant.S2Delay + constant.S2Stop
}

// newVolume wraps a streamer in a volume stage.
// math.Log2(0) is -Inf, so zero volume switches to silent instead.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
