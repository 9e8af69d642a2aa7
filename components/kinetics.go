// Package components holds the mutable state of launched entities.
package components

import (
	"github.com/lixenwraith/rocket-range/constants"
	"github.com/lixenwraith/rocket-range/physics"
)

// Kinetics is the flight state shared by rockets, missiles and drones
type Kinetics struct {
	Fuel     float64
	Altitude float64 // normalized, may exceed 1 once off the top of the view
	Position float64 // normalized horizontal, clamped to [0,1]
	Speed    float64
}

// NewKinetics returns a fueled, grounded, stationary state at position
func NewKinetics(position float64) Kinetics {
	return Kinetics{
		Fuel:     constants.FuelFull,
		Altitude: 0.0,
		Position: physics.Clamp01(position),
		Speed:    0.0,
	}
}

// Direction is a horizontal steering direction
type Direction uint8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// AdjustPosition steers by amount, clamping to the view
func (k *Kinetics) AdjustPosition(dir Direction, amount float64) {
	if dir == Left {
		k.Position = physics.Clamp01(k.Position - amount)
	} else {
		k.Position = physics.Clamp01(k.Position + amount)
	}
}

// HasFuel reports whether another flight step can be burned
func (k *Kinetics) HasFuel() bool {
	return k.Fuel > 0.0
}

// Burn performs one flight step: climb and consume fuel
func (k *Kinetics) Burn() {
	k.Altitude += constants.AltitudePerStep
	k.Fuel -= constants.FuelBurnPerStep
}

// Launch burns until the tank is empty
func (k *Kinetics) Launch() {
	k.Speed = constants.CruiseSpeed
	start := k.Altitude
	steps := 0
	for k.HasFuel() {
		k.Burn()
		steps++
		// Recompute from the step count so a full tank lands exactly on 10.0
		k.Altitude = start + float64(steps)*constants.AltitudePerStep
	}
	k.Speed = 0.0
}
