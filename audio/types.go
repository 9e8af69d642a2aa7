package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundLaunch    SoundType = iota // Rocket, missile or drone lift-off
	SoundCrash                      // Rocket crash flash
	SoundCollision                  // Missile burst
	SoundGrab                       // Drone hauling an object away
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundLaunch:
		return "launch"
	case SoundCrash:
		return "crash"
	case SoundCollision:
		return "collision"
	case SoundGrab:
		return "grab"
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrInvalidVolume  = errors.New("volume must be within [0,1]")
)
