package ui

import (
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/bengous/heartbeat-audio-visualizer/beat"
)

// maxFieldDigits bounds the edit buffer; parsing clamps anyway.
const maxFieldDigits = 4

// FieldResult reports how the field consumed a key.
type FieldResult uint8

const (
	FieldIdle      FieldResult = iota // not focused or key not consumed
	FieldEdited                       // consumed, still editing
	FieldCommitted                    // Enter or Tab, value ready to parse
	FieldCancelled                    // Escape, edit abandoned
)

// NumericField is a focusable digits-only entry for direct BPM input.
// While focused, digits edit the text live; committing parses and
// silently clamps, cancelling restores the previous value.
type NumericField struct {
	text    []rune
	cursor  int // positions before which cursor sits
	focused bool
}

// Focused reports whether the field is capturing keys.
func (f *NumericField) Focused() bool {
	return f.focused
}

// Value returns the current edit text.
func (f *NumericField) Value() string {
	return string(f.text)
}

// Focus begins an edit pre-filled with the current BPM, cursor at the
// end.
func (f *NumericField) Focus(current int) {
	f.text = []rune(strconv.Itoa(current))
	f.cursor = len(f.text)
	f.focused = true
}

// Blur ends the edit.
func (f *NumericField) Blur() {
	f.focused = false
	f.text = nil
	f.cursor = 0
}

// Parse converts the edit text to a clamped BPM. Unparsable text
// yields fallback unchanged.
func (f *NumericField) Parse(fallback int) int {
	n, err := strconv.Atoi(string(f.text))
	if err != nil {
		return fallback
	}
	return beat.Clamp(n)
}

// HandleKey processes one key event while focused.
func (f *NumericField) HandleKey(ev *tcell.EventKey) FieldResult {
	if !f.focused {
		return FieldIdle
	}

	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyTab:
		return FieldCommitted
	case tcell.KeyEscape:
		return FieldCancelled
	case tcell.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
		return FieldEdited
	case tcell.KeyRight:
		if f.cursor < len(f.text) {
			f.cursor++
		}
		return FieldEdited
	case tcell.KeyHome:
		f.cursor = 0
		return FieldEdited
	case tcell.KeyEnd:
		f.cursor = len(f.text)
		return FieldEdited
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if f.cursor > 0 {
			f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
			f.cursor--
		}
		return FieldEdited
	case tcell.KeyDelete:
		if f.cursor < len(f.text) {
			f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
		}
		return FieldEdited
	case tcell.KeyCtrlU:
		f.text = nil
		f.cursor = 0
		return FieldEdited
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsDigit(r) && len(f.text) < maxFieldDigits {
			f.text = append(f.text[:f.cursor], append([]rune{r}, f.text[f.cursor:]...)...)
			f.cursor++
		}
		return FieldEdited
	}
	return FieldEdited
}

// Render draws the field at (x, y), w cells wide, with the cursor
// marked while focused. When idle it shows the live BPM instead.
func (f *NumericField) Render(screen tcell.Screen, x, y, w int, current int, theme Theme) {
	text := strconv.Itoa(current)
	style := theme.FieldText
	if f.focused {
		text = string(f.text)
		style = theme.FieldFocus
	}

	for i := 0; i < w; i++ {
		ch := ' '
		if i < len(text) {
			ch = rune(text[i])
		}
		st := style
		if f.focused && i == f.cursor {
			st = theme.Cursor
		}
		screen.SetContent(x+i, y, ch, nil, st)
	}
}
