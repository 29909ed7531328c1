package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bengous/heartbeat-audio-visualizer/beat"
)

type kvRow struct {
	Key   string
	Value string
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) int {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
	return col
}

// drawBox paints a single-line bordered box with interior cleared.
func drawBox(screen tcell.Screen, x, y, w, h int, theme Theme) {
	if w < 2 || h < 2 {
		return
	}
	style := theme.OverlayBorder
	fill := tcell.StyleDefault.Background(theme.Bg)

	screen.SetContent(x, y, '┌', nil, style)
	screen.SetContent(x+w-1, y, '┐', nil, style)
	screen.SetContent(x, y+h-1, '└', nil, style)
	screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
	for i := 1; i < w-1; i++ {
		screen.SetContent(x+i, y, '─', nil, style)
		screen.SetContent(x+i, y+h-1, '─', nil, style)
	}
	for j := 1; j < h-1; j++ {
		screen.SetContent(x, y+j, '│', nil, style)
		screen.SetContent(x+w-1, y+j, '│', nil, style)
		for i := 1; i < w-1; i++ {
			screen.SetContent(x+i, y+j, ' ', nil, fill)
		}
	}
}

// drawOverlay centers a titled box of key/value rows on the screen.
// Keys render right-aligned against the separator column.
func drawOverlay(screen tcell.Screen, width, height int, title string, rows []kvRow, theme Theme) {
	keyW, valW := 0, 0
	for _, r := range rows {
		if n := len([]rune(r.Key)); n > keyW {
			keyW = n
		}
		if n := len([]rune(r.Value)); n > valW {
			valW = n
		}
	}
	if n := len([]rune(title)); n > keyW+valW+3 {
		valW = n - keyW - 3
	}

	boxW := keyW + valW + 3 + 4 // " : " plus side padding
	boxH := len(rows) + 4
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}
	x := (width - boxW) / 2
	y := (height - boxH) / 2

	drawBox(screen, x, y, boxW, boxH, theme)
	drawText(screen, x+(boxW-len([]rune(title)))/2, y+1, theme.OverlayTitle, title)

	for i, r := range rows {
		row := y + 3 + i
		if row >= y+boxH-1 {
			break
		}
		pad := keyW - len([]rune(r.Key))
		col := drawText(screen, x+2+pad, row, theme.OverlayKey, r.Key)
		col = drawText(screen, col, row, theme.Dim, " : ")
		drawText(screen, col, row, theme.OverlayValue, r.Value)
	}
}

// vitalsRows lays out the statistics overlay content.
func vitalsRows(v beat.Vitals) []kvRow {
	return []kvRow{
		{"bpm", fmt.Sprintf("%d (%s)", v.BPM, beat.ZoneFor(v.BPM).Name)},
		{"interval", fmt.Sprintf("%.2f s", v.Interval)},
		{"beats/hour", fmt.Sprintf("%d", v.PerHour)},
		{"beats/day", fmt.Sprintf("%d", v.PerDay)},
		{"r-r interval", fmt.Sprintf("%.0f ms", v.RR)},
		{"frequency", fmt.Sprintf("%.2f Hz", v.Frequency)},
	}
}

// helpRows lists every key binding.
func helpRows() []kvRow {
	return []kvRow{
		{"space", "start / stop"},
		{"← →", "bpm ±1"},
		{"↑ ↓", "bpm ±5"},
		{"b", "type a bpm"},
		{"1-5", "presets"},
		{"[ ]", "volume down / up"},
		{"m", "mute"},
		{"s", "vitals"},
		{"y", "copy vitals"},
		{"r", "record a loop"},
		{"?", "this help"},
		{"q", "quit"},
	}
}
