package ui

import (
	"fmt"
	"time"

	cb "github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/bengous/heartbeat-audio-visualizer/audio"
	"github.com/bengous/heartbeat-audio-visualizer/beat"
	"github.com/bengous/heartbeat-audio-visualizer/config"
	"github.com/bengous/heartbeat-audio-visualizer/constant"
	"github.com/bengous/heartbeat-audio-visualizer/log"
	"github.com/bengous/heartbeat-audio-visualizer/record"
	"github.com/bengous/heartbeat-audio-visualizer/wave"
)

// canvasTop is the first screen row of the trace area. Header and
// controls sit above it, the status bar below.
const canvasTop = 2

type recordOutcome struct {
	path    string
	res     record.Result
	err     error
	elapsed time.Duration
}

// App owns the screen and every interactive piece of state. All
// mutation happens on the Run goroutine; the scheduler callback only
// touches the thread-safe audio engine.
type App struct {
	screen tcell.Screen
	cfg    config.Config
	theme  Theme

	sched  *beat.Scheduler
	engine *audio.Engine
	canvas *wave.Canvas
	scroll wave.Scroll

	field NumericField
	toast Toast
	heart Heart

	showVitals bool
	showHelp   bool
	recording  bool

	width, height int
	lastVisual    uint64

	records chan recordOutcome
}

// NewApp wires the interface onto an initialized screen. The beat
// callback is bound here so every scheduled beat reaches the engine
// even before Run starts.
func NewApp(screen tcell.Screen, cfg config.Config, sched *beat.Scheduler, engine *audio.Engine) *App {
	a := &App{
		screen:  screen,
		cfg:     cfg,
		theme:   DefaultTheme,
		sched:   sched,
		engine:  engine,
		canvas:  wave.NewCanvas(1, 1),
		scroll:  wave.NewScroll(sched.BPM()),
		records: make(chan recordOutcome, 1),
	}
	sched.OnBeat(func(uint64) { engine.Beat() })
	return a
}

// Run drives the interface until the user quits. Events and frame
// ticks are serialized through one select so handlers never race. The
// tick case is disabled (nil channel) while nothing animates, so an
// idle trace costs no redraws.
func (a *App) Run() {
	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	a.resize()
	wave.DrawBaseline(a.canvas)
	a.draw()

	for {
		var tickC <-chan time.Time
		if a.animating() {
			tickC = ticker.C
		}

		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()

		case <-tickC:
			a.tick()
			a.draw()

		case out := <-a.records:
			a.finishRecord(out)
			a.draw()
		}
	}
}

// animating reports whether the frame ticker should be live: a moving
// trace, a glowing heart, or a toast counting down.
func (a *App) animating() bool {
	return a.sched.Playing() || a.heart.Lit() || a.toast.Visible
}

// tick advances one frame of animation.
func (a *App) tick() {
	if a.sched.Playing() {
		wave.DrawFrame(a.canvas, &a.scroll)
		if v := beat.VisualBeat(a.sched.Count(), a.sched.BPM()); v != a.lastVisual {
			a.lastVisual = v
			a.heart.Pulse()
		}
	}
	if a.heart.Lit() {
		a.heart.Tick()
	}
	if a.toast.Visible {
		a.toast.Tick()
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.resize()
		if !a.sched.Playing() {
			wave.DrawBaseline(a.canvas)
		}
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	// A focused field captures everything until commit or cancel.
	if a.field.Focused() {
		switch a.field.HandleKey(ev) {
		case FieldCommitted:
			a.setBPM(a.field.Parse(a.sched.BPM()))
			a.field.Blur()
		case FieldCancelled:
			a.field.Blur()
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		a.setBPM(a.sched.BPM() - constant.BPMStepFine)
	case tcell.KeyRight:
		a.setBPM(a.sched.BPM() + constant.BPMStepFine)
	case tcell.KeyUp:
		a.setBPM(a.sched.BPM() + constant.BPMStepCoarse)
	case tcell.KeyDown:
		a.setBPM(a.sched.BPM() - constant.BPMStepCoarse)
	case tcell.KeyEscape:
		switch {
		case a.showVitals || a.showHelp:
			a.showVitals, a.showHelp = false, false
		case a.toast.Visible:
			a.toast.Dismiss()
		}
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		a.togglePlayback()
	case 'b', 'B':
		a.field.Focus(a.sched.BPM())
	case 'm', 'M':
		if a.engine.ToggleMute() {
			a.toast.Show("muted", SeverityInfo, constant.ToastFrames)
		} else {
			a.toast.Show("unmuted", SeverityInfo, constant.ToastFrames)
		}
	case '[':
		a.engine.SetVolume(a.engine.Volume() - constant.VolumeStep)
	case ']':
		a.engine.SetVolume(a.engine.Volume() + constant.VolumeStep)
	case 's', 'S':
		a.showVitals = !a.showVitals
		a.showHelp = false
	case '?':
		a.showHelp = !a.showHelp
		a.showVitals = false
	case 'y', 'Y':
		a.copyVitals()
	case 'r', 'R':
		a.startRecord()
	case '1', '2', '3', '4', '5':
		p := beat.Presets[r-'1']
		a.setBPM(p.BPM)
		a.toast.Show(fmt.Sprintf("%s: %d bpm", p.Name, p.BPM), SeverityInfo, constant.ToastFrames)
	}
	return true
}

func (a *App) togglePlayback() {
	if a.sched.Playing() {
		a.sched.Stop()
		wave.DrawBaseline(a.canvas)
	} else {
		a.sched.Start()
	}
	log.BeatState(a.sched.Playing(), a.sched.BPM())
}

// setBPM applies a clamped rate change to the scheduler and the trace
// period together so audio and visuals stay in step.
func (a *App) setBPM(bpm int) {
	bpm = beat.Clamp(bpm)
	if bpm == a.sched.BPM() {
		return
	}
	a.sched.SetBPM(bpm)
	a.scroll.SetBPM(bpm)
	log.BeatState(a.sched.Playing(), bpm)
}

func (a *App) copyVitals() {
	text := beat.ComputeVitals(a.sched.BPM()).Format()
	if err := cb.WriteAll(text); err != nil {
		log.Errorf("clipboard write: %v", err)
		a.toast.Show("clipboard unavailable", SeverityError, constant.ToastFrames)
		return
	}
	a.toast.Show("vitals copied", SeveritySuccess, constant.ToastFrames)
}

// startRecord renders the loop off-thread so playback and input stay
// live. One export at a time; the outcome arrives on the records
// channel.
func (a *App) startRecord() {
	if a.recording {
		a.toast.Show("already recording", SeverityWarning, constant.ToastFrames)
		return
	}
	a.recording = true

	bpm := a.sched.BPM()
	vol := a.engine.Volume()
	dur := a.cfg.RecordDuration()
	path := record.Filename(bpm, a.cfg.RecordFormat, time.Now())
	a.toast.Show(fmt.Sprintf("recording %s", path), SeverityInfo, constant.ToastFrames)

	go func() {
		start := time.Now()
		res, err := record.Write(path, bpm, vol, dur)
		a.records <- recordOutcome{path: path, res: res, err: err, elapsed: time.Since(start)}
	}()
}

func (a *App) finishRecord(out recordOutcome) {
	a.recording = false
	if out.err != nil {
		log.RecordFailed(out.path, out.err)
		a.toast.Show(fmt.Sprintf("record failed: %v", out.err), SeverityError, constant.ToastFrames)
		return
	}
	log.RecordDone(out.res.Path, out.res.Frames, out.res.Bytes, float64(out.elapsed.Milliseconds()))
	a.toast.Show(fmt.Sprintf("saved %s", out.res.Path), SeveritySuccess, constant.ToastFrames)
}

func (a *App) resize() {
	a.width, a.height = a.screen.Size()
	rows := a.height - 3
	if rows < 1 {
		rows = 1
	}
	a.canvas.Resize(a.width, rows)
}

func (a *App) draw() {
	a.screen.Clear()
	bpm := a.sched.BPM()
	zone := beat.ZoneFor(bpm)
	playing := a.sched.Playing()

	a.heart.Render(a.screen, 1, 0, zone, a.theme)
	drawText(a.screen, 3, 0, a.theme.Title, "heartbeat")
	label := fmt.Sprintf("%d bpm  %s", bpm, zone.Name)
	if x := a.width - len([]rune(label)) - 1; x > 14 {
		drawText(a.screen, x, 0, a.theme.ZoneStyle(zone), label)
	}

	renderControls(a.screen, 1, a.width, &a.field, bpm, a.theme)

	for cy := 0; cy < a.canvas.H; cy++ {
		for cx := 0; cx < a.canvas.W; cx++ {
			ch, intensity := a.canvas.Cell(cx, cy)
			if ch == 0 {
				continue
			}
			style := a.theme.TraceStyle(zone, intensity)
			if !playing {
				style = a.theme.Baseline
			}
			a.screen.SetContent(cx, canvasTop+cy, ch, nil, style)
		}
	}

	info := StatusInfo{
		BPM:       bpm,
		Zone:      zone,
		Volume:    a.engine.Volume(),
		Muted:     a.engine.Muted(),
		Silent:    a.engine.SilentMode(),
		Playing:   playing,
		Beats:     a.sched.Count(),
		Recording: a.recording,
	}
	renderStatus(a.screen, a.height-1, a.width, info, a.theme)
	if a.toast.Visible {
		a.toast.Render(a.screen, a.height-1, a.width, a.theme)
	}

	if a.showVitals {
		drawOverlay(a.screen, a.width, a.height, "vitals", vitalsRows(beat.ComputeVitals(bpm)), a.theme)
	}
	if a.showHelp {
		drawOverlay(a.screen, a.width, a.height, "keys", helpRows(), a.theme)
	}

	a.screen.Show()
}
