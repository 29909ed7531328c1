// Package log writes diagnostics to a file through zerolog. The
// terminal belongs to the UI, so nothing ever goes to stdout or
// stderr; with no path configured every call is a no-op.
package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
)

// Init opens the log file for appending. An empty path leaves logging
// disabled.
func Init(path string) error {
	logMu.Lock()
	defer logMu.Unlock()

	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file %q: %w", path, err)
	}
	diagFile = f

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", os.Getpid()).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// SessionStart records the resolved startup settings.
func SessionStart(bpm int, volume float64, silent bool) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("bpm", bpm).
		Float64("volume", volume).
		Bool("silent", silent).
		Msg("session_start")
}

// SessionEnd records the total beats played this run.
func SessionEnd(beats uint64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Uint64("beats", beats).
		Msg("session_end")
}

// BeatState records start/stop transitions and BPM changes.
func BeatState(playing bool, bpm int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Bool("playing", playing).
		Int("bpm", bpm).
		Msg("beat_state")
}

// AudioFallback records the switch to silent mode.
func AudioFallback(err error) {
	if !logReady {
		return
	}
	diagLog.Warn().
		Err(err).
		Msg("audio_fallback")
}

// RecordDone records a finished export.
func RecordDone(path string, frames uint64, bytes int64, ms float64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("path", path).
		Uint64("frames", frames).
		Int64("bytes", bytes).
		Float64("encode_ms", ms).
		Msg("record_done")
}

// RecordFailed records an export error.
func RecordFailed(path string, err error) {
	if !logReady {
		return
	}
	diagLog.Error().
		Str("path", path).
		Err(err).
		Msg("record_failed")
}
