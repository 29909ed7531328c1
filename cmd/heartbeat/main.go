package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bengous/heartbeat-audio-visualizer/audio"
	"github.com/bengous/heartbeat-audio-visualizer/beat"
	"github.com/bengous/heartbeat-audio-visualizer/config"
	"github.com/bengous/heartbeat-audio-visualizer/constant"
	"github.com/bengous/heartbeat-audio-visualizer/log"
	"github.com/bengous/heartbeat-audio-visualizer/record"
	"github.com/bengous/heartbeat-audio-visualizer/ui"
)

var version = "0.1.0"

var (
	configFlag  = flag.String("config", "", "path to a TOML config file")
	bpmFlag     = flag.Int("bpm", 0, "starting BPM (30-220), overrides config")
	volumeFlag  = flag.Float64("volume", -1, "master volume 0.0-1.0, overrides config")
	silentFlag  = flag.Bool("silent", false, "run without audio output")
	logFlag     = flag.String("log", "", "append diagnostics to this file")
	recordFlag  = flag.String("record", "", "render a loop to this .wav or .flac file and exit")
	secondsFlag = flag.Int("seconds", 0, "length of the recorded loop in seconds")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println("heartbeat " + version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	if err := log.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if *recordFlag != "" {
		if err := headlessRecord(cfg, *recordFlag); err != nil {
			fmt.Fprintf(os.Stderr, "record: %v\n", err)
			os.Exit(1)
		}
		return
	}

	run(cfg)
}

// applyFlags lets explicit flags win over file and environment. Zero
// values are the unset sentinels.
func applyFlags(cfg *config.Config) {
	if *bpmFlag != 0 {
		cfg.BPM = beat.Clamp(*bpmFlag)
	}
	if *volumeFlag >= 0 {
		v := *volumeFlag
		if v > 1 {
			v = 1
		}
		cfg.Volume = v
	}
	if *silentFlag {
		cfg.Audio = false
	}
	if *logFlag != "" {
		cfg.Log = *logFlag
	}
	if *secondsFlag > 0 {
		s := *secondsFlag
		if s < constant.RecordSecondsMin {
			s = constant.RecordSecondsMin
		}
		if s > constant.RecordSecondsMax {
			s = constant.RecordSecondsMax
		}
		cfg.RecordSeconds = s
	}
}

// headlessRecord renders one export without bringing up the screen.
func headlessRecord(cfg config.Config, path string) error {
	start := time.Now()
	res, err := record.Write(path, cfg.BPM, cfg.Volume, cfg.RecordDuration())
	if err != nil {
		log.RecordFailed(path, err)
		return err
	}
	log.RecordDone(res.Path, res.Frames, res.Bytes, float64(time.Since(start).Milliseconds()))
	fmt.Printf("wrote %s: %d frames, %d bytes\n", res.Path, res.Frames, res.Bytes)
	return nil
}

func run(cfg config.Config) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal first so the stack trace is
	// readable after the screen drops out of the alternate buffer.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nheartbeat crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sink := audio.SpeakerSink()
	if !cfg.Audio {
		sink = audio.NoopSink()
	}
	engine := audio.NewEngine(sink, constant.AudioSampleRate, cfg.Volume)
	if err := engine.Initialize(); err != nil {
		log.AudioFallback(err)
	}

	sched := beat.NewScheduler(cfg.BPM)
	log.SessionStart(cfg.BPM, cfg.Volume, engine.SilentMode())

	app := ui.NewApp(screen, cfg, sched, engine)
	app.Run()

	sched.Dispose()
	log.SessionEnd(sched.Count())
	engine.Close()
	screen.Fini()
}
