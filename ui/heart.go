package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bengous/heartbeat-audio-visualizer/beat"
	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

// Heart is the beating glyph in the header. A beat resets the frame
// counter; while it runs down the glyph renders bright in the current
// zone color, then settles to dim.
type Heart struct {
	framesLeft int
}

// Pulse restarts the glow.
func (h *Heart) Pulse() {
	h.framesLeft = constant.PulseFrames
}

// Tick advances the glow by one frame. Returns true while still lit.
func (h *Heart) Tick() bool {
	if h.framesLeft <= 0 {
		return false
	}
	h.framesLeft--
	return h.framesLeft > 0
}

// Lit reports whether the glyph is currently glowing.
func (h *Heart) Lit() bool {
	return h.framesLeft > 0
}

// Render draws the glyph at (x, y).
func (h *Heart) Render(screen tcell.Screen, x, y int, zone beat.Zone, theme Theme) {
	style := theme.Dim
	if h.framesLeft > 0 {
		style = tcell.StyleDefault.Foreground(ZoneColor(zone)).Bold(true)
	}
	screen.SetContent(x, y, '♥', nil, style)
}
