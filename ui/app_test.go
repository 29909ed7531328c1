package ui

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bengous/heartbeat-audio-visualizer/audio"
	"github.com/bengous/heartbeat-audio-visualizer/beat"
	"github.com/bengous/heartbeat-audio-visualizer/config"
	"github.com/bengous/heartbeat-audio-visualizer/constant"
	"github.com/bengous/heartbeat-audio-visualizer/record"
	"github.com/bengous/heartbeat-audio-visualizer/wave"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)

	cfg := config.Default()
	sched := beat.NewScheduler(cfg.BPM)
	engine := audio.NewEngine(audio.NoopSink(), constant.AudioSampleRate, cfg.Volume)

	a := NewApp(screen, cfg, sched, engine)
	a.resize()
	t.Cleanup(func() {
		sched.Dispose()
		engine.Close()
	})
	return a
}

func press(a *App, k tcell.Key, r rune) bool {
	return a.handleKey(tcell.NewEventKey(k, r, tcell.ModNone))
}

func litCells(c *wave.Canvas) int {
	n := 0
	for cy := 0; cy < c.H; cy++ {
		for cx := 0; cx < c.W; cx++ {
			if ch, _ := c.Cell(cx, cy); ch != 0 {
				n++
			}
		}
	}
	return n
}

func TestAppArrowKeysAdjustBPM(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRight, 0)
	if got := a.sched.BPM(); got != 73 {
		t.Errorf("after right: BPM = %d, want 73", got)
	}
	press(a, tcell.KeyLeft, 0)
	press(a, tcell.KeyUp, 0)
	if got := a.sched.BPM(); got != 77 {
		t.Errorf("after left+up: BPM = %d, want 77", got)
	}
	press(a, tcell.KeyDown, 0)
	if got := a.sched.BPM(); got != 72 {
		t.Errorf("after down: BPM = %d, want 72", got)
	}

	// Scroll period follows the rate.
	press(a, tcell.KeyUp, 0)
	if got, want := a.scroll.BeatWidth, wave.BeatWidth(77); got != want {
		t.Errorf("scroll beat width = %v, want %v", got, want)
	}
}

func TestAppBPMClampsAtBounds(t *testing.T) {
	a := newTestApp(t)

	a.setBPM(constant.BPMMin)
	press(a, tcell.KeyLeft, 0)
	if got := a.sched.BPM(); got != constant.BPMMin {
		t.Errorf("below range: BPM = %d, want %d", got, constant.BPMMin)
	}

	a.setBPM(constant.BPMMax)
	press(a, tcell.KeyRight, 0)
	if got := a.sched.BPM(); got != constant.BPMMax {
		t.Errorf("above range: BPM = %d, want %d", got, constant.BPMMax)
	}
}

func TestAppSpaceTogglesPlayback(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRune, ' ')
	if !a.sched.Playing() {
		t.Fatal("not playing after space")
	}
	if a.sched.Count() == 0 {
		t.Error("first beat did not fire on start")
	}

	press(a, tcell.KeyRune, ' ')
	if a.sched.Playing() {
		t.Fatal("still playing after second space")
	}
	if litCells(a.canvas) == 0 {
		t.Error("no baseline on canvas after stop")
	}
}

func TestAppPresetKeys(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRune, '3')
	if got := a.sched.BPM(); got != constant.PresetWalkBPM {
		t.Errorf("preset 3: BPM = %d, want %d", got, constant.PresetWalkBPM)
	}
	if !a.toast.Visible || !strings.Contains(a.toast.Message, "Walk") {
		t.Errorf("toast = %q, want preset name shown", a.toast.Message)
	}

	press(a, tcell.KeyRune, '1')
	if got := a.sched.BPM(); got != constant.PresetSleepBPM {
		t.Errorf("preset 1: BPM = %d, want %d", got, constant.PresetSleepBPM)
	}
}

func TestAppFieldCommitFlow(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRune, 'b')
	if !a.field.Focused() {
		t.Fatal("field not focused after b")
	}

	// While focused, ordinary bindings are captured by the field.
	press(a, tcell.KeyRune, ' ')
	if a.sched.Playing() {
		t.Error("space toggled playback while field focused")
	}

	press(a, tcell.KeyCtrlU, 0)
	press(a, tcell.KeyRune, '1')
	press(a, tcell.KeyRune, '5')
	press(a, tcell.KeyRune, '0')
	press(a, tcell.KeyEnter, 0)

	if a.field.Focused() {
		t.Error("field still focused after commit")
	}
	if got := a.sched.BPM(); got != 150 {
		t.Errorf("BPM = %d, want 150", got)
	}
}

func TestAppFieldEscapeCancels(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRune, 'b')
	press(a, tcell.KeyRune, '9')
	press(a, tcell.KeyEscape, 0)

	if a.field.Focused() {
		t.Error("field still focused after escape")
	}
	if got := a.sched.BPM(); got != constant.BPMDefault {
		t.Errorf("BPM = %d, want unchanged %d", got, constant.BPMDefault)
	}
}

func TestAppVolumeKeys(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRune, ']')
	if got := a.engine.Volume(); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("volume after ] = %v, want 0.75", got)
	}
	press(a, tcell.KeyRune, '[')
	press(a, tcell.KeyRune, '[')
	if got := a.engine.Volume(); math.Abs(got-0.65) > 1e-9 {
		t.Errorf("volume after [[ = %v, want 0.65", got)
	}
}

func TestAppMuteToggle(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRune, 'm')
	if !a.engine.Muted() {
		t.Error("engine not muted after m")
	}
	if !a.toast.Visible || a.toast.Message != "muted" {
		t.Errorf("toast = %q, want %q", a.toast.Message, "muted")
	}

	press(a, tcell.KeyRune, 'm')
	if a.engine.Muted() {
		t.Error("engine still muted after second m")
	}
	if a.toast.Message != "unmuted" {
		t.Errorf("toast = %q, want %q", a.toast.Message, "unmuted")
	}
}

func TestAppOverlayToggles(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRune, 's')
	if !a.showVitals {
		t.Error("vitals overlay not shown after s")
	}
	press(a, tcell.KeyRune, '?')
	if !a.showHelp || a.showVitals {
		t.Error("help should replace vitals overlay")
	}
	press(a, tcell.KeyEscape, 0)
	if a.showHelp || a.showVitals {
		t.Error("escape did not close overlays")
	}
}

func TestAppQuitKeys(t *testing.T) {
	a := newTestApp(t)

	if press(a, tcell.KeyRune, 'q') {
		t.Error("q did not quit")
	}
	if press(a, tcell.KeyCtrlC, 0) {
		t.Error("ctrl-c did not quit")
	}
}

func TestAppRecordGuard(t *testing.T) {
	a := newTestApp(t)

	a.recording = true
	a.startRecord()
	if a.toast.Severity != SeverityWarning {
		t.Errorf("toast severity = %v, want SeverityWarning", a.toast.Severity)
	}
	if !a.recording {
		t.Error("guard cleared the recording flag")
	}
}

func TestAppFinishRecord(t *testing.T) {
	a := newTestApp(t)

	a.recording = true
	a.finishRecord(recordOutcome{
		path: "out.wav",
		res:  record.Result{Path: "out.wav", Frames: 44100, Bytes: 100},
	})
	if a.recording {
		t.Error("recording flag still set after success")
	}
	if a.toast.Severity != SeveritySuccess {
		t.Errorf("toast severity = %v, want SeveritySuccess", a.toast.Severity)
	}

	a.recording = true
	a.finishRecord(recordOutcome{path: "out.wav", err: errors.New("disk full")})
	if a.toast.Severity != SeverityError {
		t.Errorf("toast severity = %v, want SeverityError", a.toast.Severity)
	}
	if !strings.Contains(a.toast.Message, "disk full") {
		t.Errorf("toast = %q, want error detail", a.toast.Message)
	}
}

func TestAppIdleStopsTicker(t *testing.T) {
	a := newTestApp(t)

	if a.animating() {
		t.Error("fresh app should not animate")
	}

	press(a, tcell.KeyRune, ' ')
	if !a.animating() {
		t.Error("not animating while playing")
	}

	press(a, tcell.KeyRune, ' ')
	if a.animating() {
		t.Error("still animating with playback stopped and nothing glowing")
	}

	// A live toast alone keeps the ticker running.
	a.toast.Show("notice", SeverityInfo, 5)
	if !a.animating() {
		t.Error("not animating while a toast counts down")
	}
}

func TestAppTickWhilePlaying(t *testing.T) {
	a := newTestApp(t)

	press(a, tcell.KeyRune, ' ')
	a.tick()
	if litCells(a.canvas) == 0 {
		t.Error("no trace cells after a playing tick")
	}
	if !a.heart.Lit() {
		t.Error("heart did not pulse on the first beat")
	}
	if a.lastVisual == 0 {
		t.Error("visual beat counter not advanced")
	}
}

func TestAppDrawHeaderAndStatus(t *testing.T) {
	a := newTestApp(t)
	a.draw()

	glyph, _, _, _ := a.screen.GetContent(1, 0)
	if glyph != '♥' {
		t.Errorf("header glyph = %q, want %q", glyph, '♥')
	}
	title, _, _, _ := a.screen.GetContent(3, 0)
	if title != 'h' {
		t.Errorf("title start = %q, want %q", title, 'h')
	}

	// Default 72 bpm sits in the Resting zone on the status row.
	z, _, _, _ := a.screen.GetContent(1, a.height-1)
	if z != 'R' {
		t.Errorf("status zone start = %q, want %q", z, 'R')
	}
}

func TestAppResizeKeepsBaseline(t *testing.T) {
	a := newTestApp(t)
	sim := a.screen.(tcell.SimulationScreen)
	sim.SetSize(60, 20)

	a.handleEvent(tcell.NewEventResize(60, 20))

	if a.width != 60 || a.height != 20 {
		t.Errorf("size = %dx%d, want 60x20", a.width, a.height)
	}
	if a.canvas.W != 60 || a.canvas.H != 17 {
		t.Errorf("canvas = %dx%d, want 60x17", a.canvas.W, a.canvas.H)
	}
	if litCells(a.canvas) == 0 {
		t.Error("baseline not redrawn after resize")
	}
}
