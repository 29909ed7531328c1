package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bengous/heartbeat-audio-visualizer/beat"
	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

const (
	sliderFull  = '█'
	sliderHalf  = '▌'
	sliderEmpty = '░'

	bpmSliderWidth = 24
	volGaugeWidth  = 10
)

// StatusInfo is the snapshot the status row renders from.
type StatusInfo struct {
	BPM       int
	Zone      beat.Zone
	Volume    float64
	Muted     bool
	Silent    bool
	Playing   bool
	Beats     uint64
	Recording bool
}

// drawSlider fills w cells proportionally to frac in [0, 1], using a
// half block at the boundary.
func drawSlider(screen tcell.Screen, x, y, w int, frac float64, theme Theme) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	cells := frac * float64(w)
	full := int(cells)
	for i := 0; i < w; i++ {
		ch := sliderEmpty
		style := theme.SliderEmpty
		switch {
		case i < full:
			ch = sliderFull
			style = theme.SliderFilled
		case i == full && cells-float64(full) >= 0.5:
			ch = sliderHalf
			style = theme.SliderFilled
		}
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// renderControls draws the BPM slider row with the entry field beside
// it.
func renderControls(screen tcell.Screen, y, width int, field *NumericField, bpm int, theme Theme) {
	col := drawText(screen, 1, y, theme.StatusLabel, "bpm ")
	frac := float64(bpm-constant.BPMMin) / float64(constant.BPMMax-constant.BPMMin)
	drawSlider(screen, col, y, bpmSliderWidth, frac, theme)
	col += bpmSliderWidth + 1

	field.Render(screen, col, y, maxFieldDigits+1, bpm, theme)
	col += maxFieldDigits + 2

	hint := "←→ ±1  ↑↓ ±5  b type  1-5 presets"
	if field.Focused() {
		hint = "enter apply  esc cancel"
	}
	if col+len([]rune(hint)) < width {
		drawText(screen, col, y, theme.Hint, hint)
	}
}

// renderStatus draws the bottom bar: zone, volume, playback state and
// the most useful key hints. Sections drop from the right when the
// terminal is narrow.
func renderStatus(screen tcell.Screen, y, width int, info StatusInfo, theme Theme) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(theme.StatusBg))
	}

	zoneStyle := theme.ZoneStyle(info.Zone).Background(theme.StatusBg)
	col := drawText(screen, 1, y, zoneStyle, info.Zone.Name)
	col = drawText(screen, col, y, theme.StatusLabel, " │ ")
	col = drawText(screen, col, y, theme.StatusValue, fmt.Sprintf("%d bpm", info.BPM))
	col = drawText(screen, col, y, theme.StatusLabel, " │ vol ")

	drawSlider(screen, col, y, volGaugeWidth, info.Volume, theme)
	col += volGaugeWidth + 1
	switch {
	case info.Muted:
		col = drawText(screen, col, y, theme.StatusLabel, "muted")
	default:
		col = drawText(screen, col, y, theme.StatusValue, fmt.Sprintf("%3.0f%%", info.Volume*100))
	}
	col = drawText(screen, col, y, theme.StatusLabel, " │ ")

	state := "STOPPED"
	stateStyle := theme.Dim.Background(theme.StatusBg)
	switch {
	case info.Recording:
		state = "RECORDING"
		stateStyle = theme.ZoneStyle(beat.ZoneMaximum).Background(theme.StatusBg)
	case info.Playing && info.Silent:
		state = "PLAYING (silent)"
		stateStyle = theme.StatusValue
	case info.Playing:
		state = "PLAYING"
		stateStyle = theme.StatusValue.Bold(true)
	}
	col = drawText(screen, col, y, stateStyle, state)

	if info.Playing {
		col = drawText(screen, col, y, theme.StatusLabel, fmt.Sprintf(" │ %d beats", info.Beats))
	}

	hint := "space play  s vitals  ? help  q quit"
	if col+len([]rune(hint))+3 < width {
		drawText(screen, width-len([]rune(hint))-1, y, theme.Hint.Background(theme.StatusBg), hint)
	}
}
