package systems

import (
	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/components"
	"github.com/lixenwraith/rocket-range/constants"
)

// NextObjectAbove returns the object a drone would reach first. A debris
// field in front is passed over for the first dead satellite behind it.
func (m *Mission) NextObjectAbove(drone *components.CleanupDrone) (catalog.Object, bool) {
	obstructions := m.Obstructions(drone.Position)
	if len(obstructions) == 0 {
		return 0, false
	}

	first := obstructions[0]
	if first == catalog.Debris {
		for _, o := range obstructions[1:] {
			if m.Satellites.IsDead(o) {
				return o, true
			}
		}
	}
	return first, true
}

// Deploy sends the drone up and grabs the next object if it is dead
func (m *Mission) Deploy(drone *components.CleanupDrone) {
	target, ok := m.NextObjectAbove(drone)
	if !ok || !m.Satellites.IsDead(target) {
		return
	}
	m.Grab(drone, target)
}

// Grab attaches a satellite to the drone and queues its removal
func (m *Mission) Grab(drone *components.CleanupDrone, satellite catalog.Object) {
	drone.Altitude = satellite.Altitude()
	drone.Satellite = &satellite
	m.narrator.Say("Grabbed %s", satellite)
	m.Remove(satellite)
}

// DroneArmy builds drones across the view at the standard spacing
func DroneArmy() []*components.CleanupDrone {
	var army []*components.CleanupDrone
	for i := 0; ; i++ {
		p := constants.DroneFirstPosition + float64(i)*constants.DroneSpacing
		if p > constants.DroneLastPosition+1e-9 {
			break
		}
		army = append(army, components.NewCleanupDrone(p))
	}
	return army
}
