package audio

import (
	"fmt"

	"github.com/lixenwraith/rocket-range/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundLaunch:    0.6,
			SoundCrash:     0.9,
			SoundCollision: 0.7,
			SoundGrab:      0.8,
		},
	}
}

// Validate rejects settings the mixer cannot honor
func (c *AudioConfig) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master volume %.2f: %w", c.MasterVolume, ErrInvalidVolume)
	}
	for st, v := range c.EffectVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s volume %.2f: %w", st, v, ErrInvalidVolume)
		}
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d must be positive", c.SampleRate)
	}
	return nil
}

// volume returns the effective gain of st
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
