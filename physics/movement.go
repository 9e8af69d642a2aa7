package physics

import (
	"time"

	"github.com/lixenwraith/rocket-range/constants"
)

// Clamp01 restricts v to [0,1]
func Clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// AnimationDuration is how long a sprite takes to travel a normalized vertical distance
func AnimationDuration(distance float64) time.Duration {
	if distance < 0 {
		distance = -distance
	}
	seconds := distance * constants.LiveViewSize / constants.PixelsPerSecond
	return time.Duration(seconds * float64(time.Second))
}

// Lerp interpolates between a and b by t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
