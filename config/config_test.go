package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/rocket-range/audio"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "rockets.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsWithoutFile(t *testing.T) {
	cfg, err := load(viper.New(), "", []string{t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.File != "" {
		t.Errorf("Expected no config file, got %q", cfg.File)
	}
	if cfg.View.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want auto", cfg.View.ColorMode)
	}
	if cfg.View.TimeScale != 1.0 {
		t.Errorf("TimeScale = %f, want 1", cfg.View.TimeScale)
	}
	if cfg.View.FPS != 62 {
		t.Errorf("FPS = %d, want 62", cfg.View.FPS)
	}
	if !cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("Audio = %+v, want enabled at 0.5", cfg.Audio)
	}
	if cfg.Metrics.Addr != "" || cfg.Stream.Addr != "" {
		t.Errorf("Listeners should default off, got %q %q", cfg.Metrics.Addr, cfg.Stream.Addr)
	}
}

func TestFileFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[view]
color_mode = "TrueColor"
time_scale = 2.5
fps = 30
idle_advance = "4s"

[audio]
enabled = false
master_volume = 0.25

[log]
level = "debug"
format = "json"

[metrics]
addr = ":9100"
`)

	cfg, err := load(viper.New(), "", []string{t.TempDir(), dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.File != filepath.Join(dir, "rockets.toml") {
		t.Errorf("File = %q", cfg.File)
	}
	if cfg.View.ColorMode != ColorTrueColor {
		t.Errorf("ColorMode = %q, want truecolor", cfg.View.ColorMode)
	}
	if cfg.View.TimeScale != 2.5 || cfg.View.FPS != 30 {
		t.Errorf("View = %+v", cfg.View)
	}
	if cfg.View.IdleAdvance != 4*time.Second {
		t.Errorf("IdleAdvance = %s, want 4s", cfg.View.IdleAdvance)
	}
	if got := cfg.View.FrameInterval(); got != time.Second/30 {
		t.Errorf("FrameInterval = %s", got)
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("Metrics.Addr = %q", cfg.Metrics.Addr)
	}

	ac := cfg.AudioConfig()
	if ac.Enabled || ac.MasterVolume != 0.25 {
		t.Errorf("AudioConfig = %+v", ac)
	}
	if ac.EffectVolumes[audio.SoundCrash] != 0.9 {
		t.Errorf("Per-effect balance should keep defaults, got %v", ac.EffectVolumes)
	}
	if lc := cfg.LogConfig(); lc.Level != "debug" || lc.Format != "json" {
		t.Errorf("LogConfig = %+v", lc)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[audio]\nenabled = true\n[stream]\naddr = \":8080\"\n")

	t.Setenv("ROCKETS_AUDIO_ENABLED", "false")
	t.Setenv("ROCKETS_STREAM_ADDR", ":9999")

	cfg, err := load(viper.New(), path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("ROCKETS_AUDIO_ENABLED should win over the file")
	}
	if cfg.Stream.Addr != ":9999" {
		t.Errorf("Stream.Addr = %q, want :9999", cfg.Stream.Addr)
	}
}

func TestExplicitFileMissing(t *testing.T) {
	_, err := load(viper.New(), filepath.Join(t.TempDir(), "nope.toml"), nil)
	if err == nil {
		t.Fatal("Expected an error for a missing explicit config")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero time scale", "[view]\ntime_scale = 0\n"},
		{"negative fps", "[view]\nfps = -1\n"},
		{"bad color", "[view]\ncolor_mode = \"mono\"\n"},
		{"loud", "[audio]\nmaster_volume = 1.5\n"},
		{"bad format", "[log]\nformat = \"xml\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := load(viper.New(), path, nil)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoudVolumeWrapsAudioError(t *testing.T) {
	cfg := &Config{
		View:  ViewConfig{ColorMode: ColorAuto, TimeScale: 1, FPS: 60},
		Audio: AudioSection{Enabled: true, MasterVolume: 2, SampleRate: 44100},
		Log:   LogSection{Format: "text"},
	}
	if err := cfg.Validate(); !errors.Is(err, audio.ErrInvalidVolume) {
		t.Errorf("Expected wrapped ErrInvalidVolume, got %v", err)
	}
}
