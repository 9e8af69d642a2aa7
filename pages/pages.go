// Package pages scripts the six live view scenes, from a rocket on the pad
// to a drone-cleared launch.
package pages

import (
	"fmt"

	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/components"
	"github.com/lixenwraith/rocket-range/constants"
	"github.com/lixenwraith/rocket-range/engine"
	"github.com/lixenwraith/rocket-range/narration"
	"github.com/lixenwraith/rocket-range/systems"
)

// Page is one scripted scene. Build simulates the page's flights and
// schedules their animation on the live view.
type Page struct {
	Number int
	Title  string
	Build  func(lv *engine.LiveView, n narration.Narrator)
}

// spaceRace is the satellite status used by the shield and missile pages
var spaceRace = catalog.Roster{
	catalog.Sputnik:  false,
	catalog.Explorer: false,
	catalog.Vanguard: false,
	catalog.Tiros:    false,
	catalog.Landsat:  false,
	catalog.Hubble:   true,
	catalog.Compton:  false,
	catalog.ISS:      true,
	catalog.Chandra:  true,
	catalog.NOAA15:   true,
	catalog.Spitzer:  true,
}

// junkyard adds the debris field and a dead NOAA-15
var junkyard = catalog.Roster{
	catalog.Debris:   false,
	catalog.Sputnik:  false,
	catalog.Explorer: false,
	catalog.Vanguard: false,
	catalog.Tiros:    false,
	catalog.Landsat:  false,
	catalog.Hubble:   true,
	catalog.Compton:  false,
	catalog.ISS:      true,
	catalog.Chandra:  true,
	catalog.NOAA15:   false,
	catalog.Spitzer:  true,
}

// Arsenal is the missile layout of the missile page
var Arsenal = []float64{0.12, 0.15, 0.23, 0.48, 0.88, 0.85}

var all = []Page{
	{Number: 1, Title: "Hello rocket", Build: helloRocket},
	{Number: 2, Title: "Launch", Build: launch},
	{Number: 3, Title: "Steering", Build: steering},
	{Number: 4, Title: "Shields", Build: shields},
	{Number: 5, Title: "Missiles", Build: missiles},
	{Number: 6, Title: "Cleanup drones", Build: cleanupDrones},
}

// All returns every page in order
func All() []Page {
	out := make([]Page, len(all))
	copy(out, all)
	return out
}

// Count is the number of pages
func Count() int { return len(all) }

// Get returns page n (1-based)
func Get(n int) (Page, error) {
	if n < 1 || n > len(all) {
		return Page{}, fmt.Errorf("page %d out of range 1..%d", n, len(all))
	}
	return all[n-1], nil
}

func helloRocket(lv *engine.LiveView, n narration.Narrator) {
	n.Say("Hello World")
	rocket := components.NewRocket("My Rocket")
	lv.Track(rocket.Kinetics, catalog.Rocket, engine.TrackOptions{})
}

func launch(lv *engine.LiveView, _ narration.Narrator) {
	rocket := components.NewRocket("My Rocket")
	rocket.Launch()
	lv.Track(rocket.Kinetics, catalog.RocketLaunch, engine.TrackOptions{})
}

func steering(lv *engine.LiveView, _ narration.Narrator) {
	rocket := components.NewRocket("My Rocket")
	rocket.AdjustPosition(components.Right, 0.1)
	rocket.Launch()

	lv.Add(catalog.Sputnik, true)
	lv.Add(catalog.Explorer, true)
	lv.Add(catalog.Vanguard, true)
	lv.Track(rocket.Kinetics, catalog.RocketLaunch, engine.TrackOptions{})
}

func shields(lv *engine.LiveView, n narration.Narrator) {
	mission := systems.NewMission(spaceRace, n)
	rocket := components.NewRocket("My Rocket")
	rocket.AdjustPosition(components.Right, 0.15)
	shield := components.NewShield()
	mission.LaunchWithShield(rocket, shield)

	lv.Add(catalog.Sputnik, false)
	lv.Add(catalog.Explorer, false)
	lv.Add(catalog.Vanguard, false)
	for _, o := range []catalog.Object{catalog.Tiros, catalog.Landsat, catalog.Hubble, catalog.Compton, catalog.ISS} {
		lv.Add(o, true)
	}
	lv.Track(rocket.Kinetics, catalog.RocketShield, engine.TrackOptions{
		Ignoring: mission.Dodged,
		Shield:   true,
	})
}

func missiles(lv *engine.LiveView, n narration.Narrator) {
	mission := systems.NewMission(spaceRace, n)
	arsenal := make([]*components.Missile, 0, len(Arsenal))
	for _, p := range Arsenal {
		arsenal = append(arsenal, components.NewMissile(p))
	}
	mission.FireAll(arsenal)

	rocket := components.NewRocket("My Rocket")
	rocket.AdjustPosition(components.Left, 0.4)
	rocket.Launch()

	for _, o := range []catalog.Object{
		catalog.Sputnik, catalog.Explorer, catalog.Vanguard, catalog.Tiros, catalog.Landsat,
		catalog.Hubble, catalog.Compton, catalog.ISS, catalog.Chandra, catalog.NOAA15, catalog.Spitzer,
	} {
		lv.Add(o, spaceRace.IsAlive(o))
	}

	for _, missile := range arsenal {
		target, ok := mission.TargetOf(missile)
		if !ok {
			lv.Track(missile.Kinetics, catalog.Missile, engine.TrackOptions{})
			continue
		}
		to := target.Altitude()
		missile.Altitude = to
		lv.Remove(target, catalog.Missile)
		lv.Track(missile.Kinetics, catalog.Missile, engine.TrackOptions{Target: &target, To: &to})
	}

	destroyed := mission.Targets()
	lv.QueueActions(func() {
		lv.Track(rocket.Kinetics, catalog.RocketLaunch, engine.TrackOptions{Ignoring: destroyed})
	})
}

func cleanupDrones(lv *engine.LiveView, n narration.Narrator) {
	mission := systems.NewMission(junkyard, n)
	army := systems.DroneArmy()
	for _, drone := range army {
		mission.Deploy(drone)
	}

	rocket := components.NewRocket("My Rocket")
	rocket.AdjustPosition(components.Left, 0.4)
	rocket.Launch()

	for _, o := range junkyard.Objects() {
		lv.Add(o, junkyard.IsAlive(o))
	}
	for _, o := range mission.Removals {
		lv.Remove(o, catalog.Drone)
	}
	for _, drone := range army {
		drone.Altitude = constants.DroneParkAltitude
		lv.Track(drone.Kinetics, catalog.Drone, engine.TrackOptions{})
	}

	removals := mission.Removals
	lv.QueueActions(func() {
		lv.Track(rocket.Kinetics, catalog.RocketLaunch, engine.TrackOptions{Ignoring: removals})
	})
}
