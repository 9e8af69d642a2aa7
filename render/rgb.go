package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color used for blending before it reaches the screen
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// FromUnit builds a color from normalized channels
func FromUnit(r, g, b float64) RGB {
	return RGB{clamp(r*255.0 + 0.5), clamp(g*255.0 + 0.5), clamp(b*255.0 + 0.5)}
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	// Pre-calculate invariant
	inv := 1.0 - alpha

	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add performs additive blend with clamping and alpha blending
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	added := RGB{
		R: add(c.R, src.R),
		G: add(c.G, src.G),
		B: add(c.B, src.B),
	}

	if alpha >= 1.0 {
		return added
	}

	return Blend(c, added, alpha)
}

// fastDiv255 approximates x / 255 using integer math
// Formula: (x + (x >> 8) + 1) >> 8
func fastDiv255(x int) int {
	return (x + (x >> 8) + 1) >> 8
}

// Screen blend: 1 - (1-Dst)*(1-Src) with alpha blending
func Screen(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	screened := RGB{
		R: uint8(255 - fastDiv255((255-int(c.R))*(255-int(src.R)))),
		G: uint8(255 - fastDiv255((255-int(c.G))*(255-int(src.G)))),
		B: uint8(255 - fastDiv255((255-int(c.B))*(255-int(src.B)))),
	}

	if alpha >= 1.0 {
		return screened
	}

	return Blend(c, screened, alpha)
}

// Grayscale keeps luminance, used for dead satellites
func Grayscale(c RGB) RGB {
	y := clamp(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
	return RGB{y, y, y}
}

// cubeLevels are the channel steps of the xterm 6x6x6 color cube
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

func cubeIndex(v uint8) int {
	best, bestDist := 0, 1<<30
	for i, l := range cubeLevels {
		d := int(v) - l
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Palette256 returns the nearest xterm-256 cube entry
func Palette256(c RGB) int {
	return 16 + 36*cubeIndex(c.R) + 6*cubeIndex(c.G) + cubeIndex(c.B)
}

// Color converts c for the given mode
func (c RGB) Color(mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(Palette256(c))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
