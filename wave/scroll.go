package wave

import (
	"math"

	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

// Scroll is the per-frame render state of the trace: the accumulated
// horizontal offset and the current beat width. It is threaded through
// the frame functions explicitly so rendering is testable without a
// screen.
type Scroll struct {
	Offset    float64
	BeatWidth float64
}

// NewScroll returns scroll state for bpm with zero offset.
func NewScroll(bpm int) Scroll {
	return Scroll{BeatWidth: BeatWidth(bpm)}
}

// Advance moves the trace by the fixed per-frame step, wrapping the
// offset modulo one beat width.
func (s *Scroll) Advance() {
	s.Offset += constant.ScrollStep
	if s.Offset >= s.BeatWidth {
		s.Offset = math.Mod(s.Offset, s.BeatWidth)
	}
}

// SetBPM updates the beat width. The offset wraps into the new period so
// the trace keeps moving without a jump backwards.
func (s *Scroll) SetBPM(bpm int) {
	s.BeatWidth = BeatWidth(bpm)
	if s.Offset >= s.BeatWidth {
		s.Offset = math.Mod(s.Offset, s.BeatWidth)
	}
}
