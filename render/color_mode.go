package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects how blended colors reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

func (m ColorMode) String() string {
	if m == ColorMode256 {
		return "256"
	}
	return "truecolor"
}

// ResolveColorMode maps a config value to a mode; auto asks the screen
func ResolveColorMode(name string, screen tcell.Screen) (ColorMode, error) {
	switch strings.ToLower(name) {
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	case "", "auto":
		if screen != nil && screen.Colors() >= 1<<24 {
			return ColorModeTrueColor, nil
		}
		return ColorMode256, nil
	}
	return ColorModeTrueColor, fmt.Errorf("unknown color mode %q", name)
}
