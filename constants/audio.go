package constants

import "time"

// Audio Engine
const (
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultSampleRate is used when the config does not set one
	DefaultSampleRate = 44100
)

// Launch Sound Timing
const (
	LaunchSoundDuration = 400 * time.Millisecond
	LaunchSoundAttack   = 150 * time.Millisecond
	LaunchSoundRelease  = 200 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 700 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 500 * time.Millisecond
)

// Collision Sound Timing
const (
	CollisionSoundNote1Duration = 90 * time.Millisecond
	CollisionSoundNote2Duration = 260 * time.Millisecond
	CollisionSoundAttack        = 5 * time.Millisecond
	CollisionSoundNote1Release  = 40 * time.Millisecond
	CollisionSoundNote2Release  = 200 * time.Millisecond
)

// Grab Sound Timing
const (
	GrabSoundDuration           = 500 * time.Millisecond
	GrabSoundAttack             = 5 * time.Millisecond
	GrabSoundFundamentalRelease = 450 * time.Millisecond
	GrabSoundOvertoneRelease    = 180 * time.Millisecond
)
