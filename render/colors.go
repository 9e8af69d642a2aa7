package render

import (
	"github.com/lixenwraith/rocket-range/catalog"
)

// Scene colors
var (
	RgbSky       = FromUnit(0.07, 0.37, 0.58) // Live view background
	RgbGround    = RGB{40, 60, 30}            // Launch pad row
	RgbSatellite = RGB{230, 230, 210}         // Functioning satellite
	RgbRocket    = RGB{255, 255, 255}
	RgbMissile   = RGB{255, 90, 60}
	RgbDrone     = RGB{120, 255, 160}
	RgbDebris    = RGB{150, 130, 110}
	RgbShield    = RGB{0, 220, 255}   // Aura around a shielded rocket
	RgbCrash     = RGB{255, 150, 40}  // Full view flash
	RgbCollision = RGB{255, 230, 90}  // Missile burst ring
	RgbExhaust   = RGB{255, 200, 120} // Flame under a climbing sprite
)

// Panel colors
var (
	RgbPanelBg      = RGB{26, 27, 38} // Tokyo Night background
	RgbNarration    = RGB{200, 200, 200}
	RgbNarrationNew = RGB{255, 255, 255}
	RgbStatusBg     = RGB{135, 206, 250} // Light sky blue
	RgbStatusText   = RGB{0, 0, 0}
	RgbPausedBg     = RGB{255, 165, 0}
	RgbIdleBg       = RGB{144, 238, 144}
)

// ObjectColor returns the base color of a sprite
func ObjectColor(o catalog.Object) RGB {
	switch {
	case o == catalog.Debris:
		return RgbDebris
	case o == catalog.Missile:
		return RgbMissile
	case o == catalog.Drone:
		return RgbDrone
	case o.IsRocket():
		return RgbRocket
	}
	return RgbSatellite
}

// SpriteColor resolves a sprite over bg at alpha, graying dead satellites
func SpriteColor(o catalog.Object, dimmed bool, alpha float64, bg RGB) RGB {
	c := ObjectColor(o)
	if dimmed {
		c = Blend(Grayscale(c), RGBBlack, 0.45)
	}
	return Blend(bg, c, alpha)
}
