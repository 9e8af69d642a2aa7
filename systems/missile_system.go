package systems

import (
	"github.com/lixenwraith/rocket-range/components"
	"github.com/lixenwraith/rocket-range/constants"
)

// Fire climbs the missile until it hits something or runs dry
func (m *Mission) Fire(missile *components.Missile) {
	k := &missile.Kinetics
	k.Speed = constants.CruiseSpeed

	collision, hit := m.HasCollided(k, k.Altitude)
	for k.HasFuel() && !hit {
		k.Burn()
		collision, hit = m.HasCollided(k, k.Altitude)
	}
	k.Speed = 0.0

	if hit {
		m.Destroy(collision, missile)
	} else {
		m.narrator.Say("Missile missed at %.2f!", k.Position)
	}
}

// FireAll fires an arsenal in order; earlier hits are invisible to later missiles
func (m *Mission) FireAll(arsenal []*components.Missile) {
	for _, missile := range arsenal {
		m.Fire(missile)
	}
}
