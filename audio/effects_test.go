package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak level
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("Streamer never drained")
	return 0, 0
}

// TestOscillatorWaves verifies every wave stays within [-1, 1] and ends on time
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(50*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

// TestOscillatorSquareLevels verifies the square wave only emits full-scale values
func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Fatalf("Sample %d = %f, want +-1", i, samples[i][0])
		}
	}
}

// TestEnvelopeShapes verifies attack starts silent and release ends near silent
func TestEnvelopeShapes(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Attack should start at zero, got %f", samples[0][0])
	}
	if samples[500][0] != 1.0 {
		t.Errorf("Sustain should be full scale, got %f", samples[500][0])
	}
	if math.Abs(samples[999][0]) > 0.02 {
		t.Errorf("Release should end near zero, got %f", samples[999][0])
	}
}

// TestSoundLengths verifies every effect drains within its declared timing
func TestSoundLengths(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound SoundType
		want  int
	}{
		{SoundLaunch, rate.N(400 * time.Millisecond)},
		{SoundCollision, rate.N(90*time.Millisecond) + rate.N(260*time.Millisecond)},
	}
	for _, tt := range tests {
		n, peak := drain(t, CreateSound(tt.sound, cfg))
		if n != tt.want {
			t.Errorf("%s: expected %d samples, got %d", tt.sound, tt.want, n)
		}
		if peak == 0 {
			t.Errorf("%s: expected audible output", tt.sound)
		}
	}

	for _, st := range []SoundType{SoundCrash, SoundGrab} {
		n, _ := drain(t, CreateSound(st, cfg))
		if n == 0 {
			t.Errorf("%s: produced no samples", st)
		}
	}
}

// TestZeroVolumeIsSilent verifies a muted effect produces only silence
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	_, peak := drain(t, CreateLaunchSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence, peak %f", peak)
	}
}
