// Package ui owns the terminal interface: the application loop, the
// trace view, and the keyboard widgets around it.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bengous/heartbeat-audio-visualizer/beat"
)

// Theme defines semantic colors for the interface.
type Theme struct {
	Bg       tcell.Color
	Text     tcell.Style
	Dim      tcell.Style
	Title    tcell.Style
	Hint     tcell.Style
	Baseline tcell.Style

	FieldText  tcell.Style
	FieldFocus tcell.Style
	Cursor     tcell.Style

	StatusBg    tcell.Color
	StatusLabel tcell.Style
	StatusValue tcell.Style

	OverlayBorder tcell.Style
	OverlayTitle  tcell.Style
	OverlayKey    tcell.Style
	OverlayValue  tcell.Style

	SliderFilled tcell.Style
	SliderEmpty  tcell.Style

	ToastInfo    tcell.Style
	ToastSuccess tcell.Style
	ToastWarning tcell.Style
	ToastError   tcell.Style
}

// DefaultTheme provides reasonable defaults on a dark background.
var DefaultTheme = Theme{
	Bg:       tcell.NewRGBColor(12, 12, 18),
	Text:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)),
	Dim:      tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 110)),
	Title:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255)).Bold(true),
	Hint:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 180, 200)),
	Baseline: tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 80, 90)),

	FieldText:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 220)),
	FieldFocus: tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255)).Background(tcell.NewRGBColor(30, 30, 50)),
	Cursor:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255)).Background(tcell.NewRGBColor(50, 50, 70)).Reverse(true),

	StatusBg:    tcell.NewRGBColor(25, 25, 35),
	StatusLabel: tcell.StyleDefault.Foreground(tcell.NewRGBColor(140, 140, 140)).Background(tcell.NewRGBColor(25, 25, 35)),
	StatusValue: tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 220)).Background(tcell.NewRGBColor(25, 25, 35)),

	OverlayBorder: tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 80, 100)),
	OverlayTitle:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255)).Bold(true),
	OverlayKey:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 180, 200)),
	OverlayValue:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)),

	SliderFilled: tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 180, 190)),
	SliderEmpty:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 70)),

	ToastInfo:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 230, 230)).Background(tcell.NewRGBColor(40, 60, 80)),
	ToastSuccess: tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 255, 230)).Background(tcell.NewRGBColor(30, 70, 40)),
	ToastWarning: tcell.StyleDefault.Foreground(tcell.NewRGBColor(30, 25, 10)).Background(tcell.NewRGBColor(200, 160, 50)),
	ToastError:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 230, 230)).Background(tcell.NewRGBColor(120, 30, 30)),
}

// ZoneColor converts a rate zone's packed RGB to a tcell color.
func ZoneColor(z beat.Zone) tcell.Color {
	return tcell.NewHexColor(int32(z.Color))
}

// ZoneStyle renders zone text in the zone's color.
func (t Theme) ZoneStyle(z beat.Zone) tcell.Style {
	return tcell.StyleDefault.Foreground(ZoneColor(z)).Bold(true)
}

// TraceStyle scales the zone color by glow intensity, the phosphor
// ramp for trace cells.
func (t Theme) TraceStyle(z beat.Zone, intensity float64) tcell.Style {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	r := int32(float64((z.Color>>16)&0xFF) * intensity)
	g := int32(float64((z.Color>>8)&0xFF) * intensity)
	b := int32(float64(z.Color&0xFF) * intensity)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, g, b))
}
