package constants

import "time"

// Live view geometry, expressed in source pixels
const (
	// LiveViewSize is the edge of the square live view
	LiveViewSize = 600.0

	// SpriteScale divides catalog sizes into on-screen sprite widths
	SpriteScale = 5.0

	// PixelsPerSecond is the vertical animation speed
	PixelsPerSecond = 100.0
)

// Obstruction geometry (normalized)
const (
	// DefaultObjectWidth is the half-width of a moving entity's query band
	DefaultObjectWidth = 0.05

	// CrashOffset is how far below an obstruction an unshielded rocket stops
	CrashOffset = 0.15

	// CollisionLift raises the collision burst above the missile's stop point
	CollisionLift = 0.1

	// LaunchSpriteOffset sinks the launching rocket sprite below the pad
	LaunchSpriteOffset = -0.1

	// DebrisLiftScale scales the debris field altitude when drones haul it away
	DebrisLiftScale = 1.3
)

// Effect timing
const (
	// FadeOutDuration is the fade applied to expiring sprites
	FadeOutDuration = 1 * time.Second

	// CrashFadeIn is the crash flash fade in
	CrashFadeIn = 1 * time.Second

	// CollisionFadeIn and CollisionFadeOut shape the collision burst
	CollisionFadeIn  = 1 * time.Second
	CollisionFadeOut = 3 * time.Second

	// CollisionBurstSize is the burst sprite size in source pixels
	CollisionBurstSize = 100.0
)
