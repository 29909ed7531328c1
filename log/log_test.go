package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heartbeat.log")
	t.Cleanup(Close)
	return path
}

func TestInitCreatesFile(t *testing.T) {
	path := setupLogFile(t)

	if err := Init(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestInitEmptyPathDisabled(t *testing.T) {
	t.Cleanup(Close)

	if err := Init(""); err != nil {
		t.Fatalf("Init with empty path: %v", err)
	}

	// Disabled logging swallows writes without panicking.
	Info("dropped")
	BeatState(true, 72)
}

func TestWritesAreStructured(t *testing.T) {
	path := setupLogFile(t)

	if err := Init(path); err != nil {
		t.Fatal(err)
	}
	SessionStart(110, 0.7, false)
	BeatState(true, 110)
	Warnf("volume %0.2f", 0.75)
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"session_start", "bpm=110", "beat_state", "volume 0.75", "pid="} {
		if !strings.Contains(text, want) {
			t.Errorf("log missing %q, got: %q", want, text)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	path := setupLogFile(t)

	if err := Init(path); err != nil {
		t.Fatal(err)
	}
	Close()
	Close()

	// Calls after Close are ignored.
	Error("after close")
}
