// Package catalog is the static table of orbital objects shown in the live view.
package catalog

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/rocket-range/constants"
)

// Object identifies a catalog entry. Identity is the enumerated value itself
type Object uint8

const (
	Chandra Object = iota
	Compton
	Debris
	Drone
	Explorer
	Hubble
	ISS
	Landsat
	Missile
	NOAA15
	Rocket
	RocketLaunch
	RocketShield
	Spitzer
	Sputnik
	Tiros
	Vanguard

	objectCount
)

// entry holds the constant attributes of one object
type entry struct {
	name     string
	filename string
	glyph    rune
	size     float64 // source pixels
	position float64 // normalized horizontal
	altitude float64 // normalized vertical
}

// table is indexed by Object
var table = [objectCount]entry{
	Chandra:      {"chandra", "chandra.png", 'C', 800, 0.5, 0.5},
	Compton:      {"compton", "compton.png", 'c', 800, 0.1, 0.45},
	Debris:       {"debris", "debris.png", '░', 2000, 0.5, 0.4},
	Drone:        {"drone", "drone.png", '¤', 300, 0.5, 0},
	Explorer:     {"explorer", "explorer.png", 'e', 400, 0.45, 0.4},
	Hubble:       {"hubble", "hubble.png", 'H', 800, 0.85, 0.7},
	ISS:          {"iss", "iss.png", '#', 1200, 0.4, 0.65},
	Landsat:      {"landsat", "landsat.png", 'L', 500, 0.9, 0.45},
	Missile:      {"missile", "missile.png", '!', 300, 0.5, 0},
	NOAA15:       {"noaa15", "noaa15.png", 'N', 500, 0.7, 0.4},
	Rocket:       {"rocket", "rocket.png", 'A', 800, 0.5, 0},
	RocketLaunch: {"rocketlaunch", "rocket-launch.png", '▲', 800, 0.5, 0},
	RocketShield: {"rocketshield", "rocket-shield.png", '◆', 800, 0.5, 0},
	Spitzer:      {"spitzer", "spitzer.png", 'S', 800, 0.65, 0.75},
	Sputnik:      {"sputnik", "sputnik.png", 'o', 400, 0.15, 0.3},
	Tiros:        {"tiros", "tiros.png", 'T', 400, 0.8, 0.6},
	Vanguard:     {"vanguard", "vanguard.png", 'v', 400, 0.25, 0.5},
}

// All returns every catalog object in declaration order
func All() []Object {
	objs := make([]Object, 0, objectCount)
	for o := Object(0); o < objectCount; o++ {
		objs = append(objs, o)
	}
	return objs
}

// Parse resolves a catalog name (case-insensitive)
func Parse(name string) (Object, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for o := Object(0); o < objectCount; o++ {
		if table[o].name == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown orbital object %q", name)
}

// Valid reports whether o is a declared catalog member
func (o Object) Valid() bool { return o < objectCount }

func (o Object) String() string {
	if !o.Valid() {
		return fmt.Sprintf("object(%d)", uint8(o))
	}
	return table[o].name
}

// Filename is the sprite asset reference
func (o Object) Filename() string { return table[o].filename }

// Glyph is the terminal rune drawn for the sprite
func (o Object) Glyph() rune { return table[o].glyph }

// Size is the sprite size in source pixels
func (o Object) Size() float64 { return table[o].size }

// Position is the normalized horizontal placement
func (o Object) Position() float64 { return table[o].position }

// Altitude is the normalized orbital altitude
func (o Object) Altitude() float64 { return table[o].altitude }

// Width is the normalized on-screen sprite width
func (o Object) Width() float64 {
	return (table[o].size / constants.SpriteScale) / constants.LiveViewSize
}

// IsSatellite reports whether o sits in the orbital field (as opposed to a launched entity)
func (o Object) IsSatellite() bool {
	switch o {
	case Drone, Missile, Rocket, RocketLaunch, RocketShield:
		return false
	}
	return o.Valid()
}

// IsRocket reports whether o is one of the rocket sprites
func (o Object) IsRocket() bool {
	return o == Rocket || o == RocketLaunch || o == RocketShield
}

// MarshalText encodes the object by catalog name
func (o Object) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid orbital object %d", uint8(o))
	}
	return []byte(table[o].name), nil
}

// UnmarshalText decodes a catalog name
func (o *Object) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
