package ui

import "github.com/gdamore/tcell/v2"

// Severity selects the toast icon and accent color.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) icon() rune {
	switch s {
	case SeveritySuccess:
		return '✓'
	case SeverityWarning:
		return '⚠'
	case SeverityError:
		return '✗'
	default:
		return 'ℹ'
	}
}

// Toast is a transient one-line notice rendered over the status row.
// It counts down in frames and dismisses itself.
type Toast struct {
	Visible    bool
	Message    string
	Severity   Severity
	FramesLeft int
}

// Show replaces any visible toast.
func (t *Toast) Show(message string, severity Severity, frames int) {
	t.Visible = true
	t.Message = message
	t.Severity = severity
	t.FramesLeft = frames
}

// Tick advances the countdown by one frame. Returns true while the
// toast stays visible.
func (t *Toast) Tick() bool {
	if !t.Visible {
		return false
	}
	t.FramesLeft--
	if t.FramesLeft <= 0 {
		t.Dismiss()
		return false
	}
	return true
}

// Dismiss hides the toast immediately.
func (t *Toast) Dismiss() {
	t.Visible = false
	t.Message = ""
	t.FramesLeft = 0
}

func (t *Toast) accent(theme Theme) tcell.Style {
	switch t.Severity {
	case SeveritySuccess:
		return theme.ToastSuccess
	case SeverityWarning:
		return theme.ToastWarning
	case SeverityError:
		return theme.ToastError
	default:
		return theme.ToastInfo
	}
}

// Render paints the toast as a full-width bar on row y.
func (t *Toast) Render(screen tcell.Screen, y, width int, theme Theme) {
	if !t.Visible {
		return
	}
	style := t.accent(theme)
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	screen.SetContent(1, y, t.Severity.icon(), nil, style)
	col := 3
	for _, r := range t.Message {
		if col >= width-1 {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
