package components

import "github.com/lixenwraith/rocket-range/constants"

// Rocket is a named launch vehicle
type Rocket struct {
	Name string
	Kinetics
}

// NewRocket builds a rocket on the pad at the default position
func NewRocket(name string) *Rocket {
	return &Rocket{
		Name:     name,
		Kinetics: NewKinetics(constants.LaunchPosition),
	}
}
