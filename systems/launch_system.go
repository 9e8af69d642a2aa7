package systems

import (
	"github.com/lixenwraith/rocket-range/components"
	"github.com/lixenwraith/rocket-range/constants"
)

// LaunchWithShield flies the rocket until its tank is empty, deflecting
// obstructions while the shield holds and crashing once it is spent
func (m *Mission) LaunchWithShield(r *components.Rocket, shield *components.Shield) {
	r.Speed = constants.CruiseSpeed
	for r.HasFuel() {
		r.Burn()
		collision, ok := m.HasCollided(&r.Kinetics, r.Altitude)
		if !ok {
			continue
		}
		if !shield.IsDepleted() {
			m.narrator.Say("Deflecting %s near miss", collision)
			m.Deflect(collision)
			shield.TakeHit()
		} else {
			m.Crash(collision)
		}
	}
	r.Speed = 0.0
}
