package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func typeDigits(f *NumericField, digits string) {
	for _, r := range digits {
		f.HandleKey(key(tcell.KeyRune, r))
	}
}

func TestFieldFocusPrefills(t *testing.T) {
	var f NumericField
	f.Focus(72)

	if !f.Focused() {
		t.Fatal("field not focused after Focus")
	}
	if got := f.Value(); got != "72" {
		t.Errorf("Value() = %q, want %q", got, "72")
	}
	if f.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (end of text)", f.cursor)
	}
}

func TestFieldDigitEntry(t *testing.T) {
	var f NumericField
	f.Focus(72)

	typeDigits(&f, "0")
	if got := f.Value(); got != "720" {
		t.Errorf("after typing 0: Value() = %q, want %q", got, "720")
	}

	// Non-digits are swallowed without editing.
	f.HandleKey(key(tcell.KeyRune, 'x'))
	if got := f.Value(); got != "720" {
		t.Errorf("after typing x: Value() = %q, want %q", got, "720")
	}

	// A fourth digit fits, a fifth does not.
	typeDigits(&f, "59")
	if got := f.Value(); got != "7205" {
		t.Errorf("at capacity: Value() = %q, want %q", got, "7205")
	}
}

func TestFieldEditingKeys(t *testing.T) {
	var f NumericField
	f.Focus(150)

	f.HandleKey(key(tcell.KeyBackspace2, 0))
	if got := f.Value(); got != "15" {
		t.Errorf("after backspace: Value() = %q, want %q", got, "15")
	}

	f.HandleKey(key(tcell.KeyHome, 0))
	f.HandleKey(key(tcell.KeyDelete, 0))
	if got := f.Value(); got != "5" {
		t.Errorf("after home+delete: Value() = %q, want %q", got, "5")
	}

	f.HandleKey(key(tcell.KeyEnd, 0))
	typeDigits(&f, "9")
	if got := f.Value(); got != "59" {
		t.Errorf("after end+insert: Value() = %q, want %q", got, "59")
	}

	f.HandleKey(key(tcell.KeyLeft, 0))
	typeDigits(&f, "0")
	if got := f.Value(); got != "509" {
		t.Errorf("after left+insert: Value() = %q, want %q", got, "509")
	}

	f.HandleKey(key(tcell.KeyCtrlU, 0))
	if got := f.Value(); got != "" {
		t.Errorf("after ctrl-u: Value() = %q, want empty", got)
	}
}

func TestFieldCommitAndCancel(t *testing.T) {
	var f NumericField
	f.Focus(100)

	if got := f.HandleKey(key(tcell.KeyEnter, 0)); got != FieldCommitted {
		t.Errorf("Enter = %v, want FieldCommitted", got)
	}
	if got := f.HandleKey(key(tcell.KeyTab, 0)); got != FieldCommitted {
		t.Errorf("Tab = %v, want FieldCommitted", got)
	}
	if got := f.HandleKey(key(tcell.KeyEscape, 0)); got != FieldCancelled {
		t.Errorf("Escape = %v, want FieldCancelled", got)
	}
}

func TestFieldIgnoredWhenUnfocused(t *testing.T) {
	var f NumericField
	if got := f.HandleKey(key(tcell.KeyRune, '5')); got != FieldIdle {
		t.Errorf("HandleKey unfocused = %v, want FieldIdle", got)
	}
	if got := f.Value(); got != "" {
		t.Errorf("Value() = %q, want empty", got)
	}
}

func TestFieldParse(t *testing.T) {
	var f NumericField

	f.Focus(72)
	f.HandleKey(key(tcell.KeyCtrlU, 0))
	typeDigits(&f, "150")
	if got := f.Parse(72); got != 150 {
		t.Errorf("Parse(150) = %d, want 150", got)
	}

	f.HandleKey(key(tcell.KeyCtrlU, 0))
	typeDigits(&f, "9999")
	if got := f.Parse(72); got != 220 {
		t.Errorf("Parse(9999) = %d, want 220 (clamped)", got)
	}

	f.HandleKey(key(tcell.KeyCtrlU, 0))
	typeDigits(&f, "7")
	if got := f.Parse(72); got != 30 {
		t.Errorf("Parse(7) = %d, want 30 (clamped)", got)
	}

	// Empty text falls back to the previous value.
	f.HandleKey(key(tcell.KeyCtrlU, 0))
	if got := f.Parse(72); got != 72 {
		t.Errorf("Parse(empty) = %d, want fallback 72", got)
	}
}

func TestFieldBlurResets(t *testing.T) {
	var f NumericField
	f.Focus(72)
	f.Blur()

	if f.Focused() {
		t.Error("field still focused after Blur")
	}
	if got := f.Value(); got != "" {
		t.Errorf("Value() = %q after Blur, want empty", got)
	}
}

func TestFieldRenderShowsCursor(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(20, 3)

	var f NumericField
	f.Focus(72)
	f.Render(screen, 0, 0, 5, 72, DefaultTheme)

	r0, _, _, _ := screen.GetContent(0, 0)
	r1, _, _, _ := screen.GetContent(1, 0)
	if r0 != '7' || r1 != '2' {
		t.Errorf("rendered %q%q, want %q%q", r0, r1, '7', '2')
	}
	_, _, style, _ := screen.GetContent(2, 0)
	if style != DefaultTheme.Cursor {
		t.Error("cursor cell not rendered with cursor style")
	}
}
