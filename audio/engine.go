package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

// Engine owns the live audio path: one long-lived mixer wrapped in the
// master volume stage, played once on the sink. Each beat adds a
// one-shot streamer that the mixer drops when it drains, so repeated
// beats never accumulate voices.
type Engine struct {
	mu          sync.Mutex
	sink        Sink
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	muted       bool
	silentMode  bool
	initialized bool
}

// NewEngine creates an engine on the given sink with the master volume
// clamped to [0,1].
func NewEngine(sink Sink, rate int, volume float64) *Engine {
	e := &Engine{
		sink:   sink,
		rate:   beep.SampleRate(rate),
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
	e.master = newVolume(e.mixer, e.volume)
	return e
}

// Initialize brings the device up and starts the master stage. On
// device failure the engine swaps in the no-op sink and keeps running
// silent; the returned error reports the failure for logging only. An
// engine built on the no-op sink comes up silent with no error.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := e.sink.Init(e.rate, e.rate.N(constant.AudioBufferDuration)); err != nil {
		e.sink = NoopSink()
		e.silentMode = true
		e.initialized = true
		return fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}

	if _, ok := e.sink.(noopSink); ok {
		e.silentMode = true
	}
	e.sink.Play(e.master)
	e.initialized = true
	return nil
}

// Beat schedules one heartbeat on the live output. Silent engines drop
// the trigger; the no-op sink never streams the mixer, so a queued
// voice would stay until shutdown.
func (e *Engine) Beat() {
	e.mu.Lock()
	sink := e.sink
	ready := e.initialized && !e.silentMode
	e.mu.Unlock()
	if !ready {
		return
	}

	s := Beat(e.rate)
	sink.Lock()
	e.mixer.Add(s)
	sink.Unlock()
}

// SetVolume adjusts the master stage to v, clamped to [0,1].
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	e.volume = clampVolume(v)
	e.applyLocked()
	e.mu.Unlock()
}

// Volume returns the master level.
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// ToggleMute flips mute without losing the level and reports the new
// state.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	e.muted = !e.muted
	e.applyLocked()
	muted := e.muted
	e.mu.Unlock()
	return muted
}

// Muted reports the mute state.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// SilentMode reports whether the no-op sink is driving output, whether
// chosen at startup or swapped in after a device failure.
func (e *Engine) SilentMode() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.silentMode
}

// Rate returns the engine sample rate.
func (e *Engine) Rate() beep.SampleRate {
	return e.rate
}

// Active returns the number of beat streamers still sounding.
func (e *Engine) Active() int {
	e.mu.Lock()
	sink := e.sink
	e.mu.Unlock()

	sink.Lock()
	n := e.mixer.Len()
	sink.Unlock()
	return n
}

// applyLocked pushes volume and mute onto the master stage. Caller
// holds e.mu; the sink lock serializes against the streaming goroutine.
func (e *Engine) applyLocked() {
	e.sink.Lock()
	if e.muted || e.volume <= 0 {
		e.master.Silent = true
	} else {
		e.master.Silent = false
		e.master.Volume = math.Log2(e.volume)
	}
	e.sink.Unlock()
}

// Close stops all sounds and shuts the device down. Safe to call more
// than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.initialized = false

	e.sink.Lock()
	e.mixer.Clear()
	e.sink.Unlock()

	e.sink.Clear()
	e.sink.Close()
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
