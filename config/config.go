// Package config loads startup settings from an optional TOML file
// with environment overrides. Every value clamps to the same bounds
// the UI enforces.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bengous/heartbeat-audio-visualizer/beat"
	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

type Config struct {
	BPM           int     `toml:"bpm"`
	Volume        float64 `toml:"volume"`
	Audio         bool    `toml:"audio"`
	FPS           int     `toml:"fps"`
	RecordSeconds int     `toml:"record_seconds"`
	RecordFormat  string  `toml:"record_format"`
	Log           string  `toml:"log"`
}

// Default returns the built-in settings used when no file or overrides
// are present.
func Default() Config {
	return Config{
		BPM:           constant.BPMDefault,
		Volume:        constant.MasterGainDefault,
		Audio:         true,
		FPS:           constant.FPSDefault,
		RecordSeconds: constant.RecordSecondsDefault,
		RecordFormat:  constant.RecordFormatDefault,
	}
}

// Load reads the TOML file at path when given, applies HEARTBEAT_*
// environment overrides, and clamps the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		bs, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %q: %w", path, err)
		}
		if err := toml.Unmarshal(bs, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.clamp()
	return cfg, nil
}

// FrameInterval converts the configured frame rate to a tick period.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// RecordDuration is the configured export length.
func (c Config) RecordDuration() time.Duration {
	return time.Duration(c.RecordSeconds) * time.Second
}

func (c *Config) applyEnv() {
	c.BPM = envInt("HEARTBEAT_BPM", c.BPM)
	c.Volume = envFloat("HEARTBEAT_VOLUME", c.Volume)
	c.Audio = envBool("HEARTBEAT_AUDIO", c.Audio)
	c.FPS = envInt("HEARTBEAT_FPS", c.FPS)
	c.RecordSeconds = envInt("HEARTBEAT_RECORD_SECONDS", c.RecordSeconds)
	c.RecordFormat = envStr("HEARTBEAT_RECORD_FORMAT", c.RecordFormat)
	c.Log = envStr("HEARTBEAT_LOG", c.Log)
}

func (c *Config) clamp() {
	c.BPM = beat.Clamp(c.BPM)

	if c.Volume < 0 {
		c.Volume = 0
	} else if c.Volume > 1 {
		c.Volume = 1
	}

	if c.FPS < constant.FPSMin {
		c.FPS = constant.FPSMin
	} else if c.FPS > constant.FPSMax {
		c.FPS = constant.FPSMax
	}

	if c.RecordSeconds < constant.RecordSecondsMin {
		c.RecordSeconds = constant.RecordSecondsMin
	} else if c.RecordSeconds > constant.RecordSecondsMax {
		c.RecordSeconds = constant.RecordSecondsMax
	}

	c.RecordFormat = strings.ToLower(c.RecordFormat)
	if c.RecordFormat != "wav" && c.RecordFormat != "flac" {
		c.RecordFormat = constant.RecordFormatDefault
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
