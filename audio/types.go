package audio

import (
	"errors"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrNoAudioDevice marks output device initialization failure. The
// engine falls back to the no-op sink and keeps running silent.
var ErrNoAudioDevice = errors.New("audio device unavailable")

// Sink is the audio output capability. The speaker sink drives the
// platform device; the no-op sink is the silent fallback selected at
// startup when the device cannot initialize. Call sites never branch on
// which one is active.
type Sink interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Clear()
	Close()
}

type speakerSink struct{}

// SpeakerSink returns the real output device.
func SpeakerSink() Sink { return speakerSink{} }

func (speakerSink) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerSink) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerSink) Lock()                   { speaker.Lock() }
func (speakerSink) Unlock()                 { speaker.Unlock() }
func (speakerSink) Clear()                  { speaker.Clear() }
func (speakerSink) Close()                  { speaker.Close() }

type noopSink struct{}

// NoopSink returns the silent sink.
func NoopSink() Sink { return noopSink{} }

func (noopSink) Init(rate beep.SampleRate, bufferSize int) error { return nil }
func (noopSink) Play(s ...beep.Streamer)                         {}
func (noopSink) Lock()                                           {}
func (noopSink) Unlock()                                         {}
func (noopSink) Clear()                                          {}
func (noopSink) Close()                                          {}
