package systems

import (
	"slices"
	"strings"
	"testing"

	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/components"
	"github.com/lixenwraith/rocket-range/narration"
)

// earlyRoster is the satellite field of the shield and missile pages
func earlyRoster() catalog.Roster {
	return catalog.Roster{
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
}

func TestHasCollidedRespectsAltitude(t *testing.T) {
	m := NewMission(catalog.Roster{catalog.Chandra: true}, nil)
	k := components.NewKinetics(0.5)

	if _, ok := m.HasCollided(&k, 0.49); ok {
		t.Error("Chandra at 0.5 must not be reported below its altitude")
	}
	got, ok := m.HasCollided(&k, 0.5)
	if !ok || got != catalog.Chandra {
		t.Errorf("Expected chandra at altitude 0.5, got %v %v", got, ok)
	}
}

func TestExcludedObjectsNeverReappear(t *testing.T) {
	m := NewMission(earlyRoster(), nil)
	m.Deflect(catalog.NOAA15)
	m.Remove(catalog.Chandra)
	m.Destroy(catalog.Spitzer, components.NewMissile(0.65))

	for _, x := range []float64{0.5, 0.6, 0.65, 0.7} {
		for _, o := range m.Obstructions(x) {
			if o == catalog.NOAA15 || o == catalog.Chandra || o == catalog.Spitzer {
				t.Errorf("x=%v: handled object %s reappeared", x, o)
			}
		}
	}

	excluded := m.Excluded()
	if len(excluded) != 3 {
		t.Errorf("Expected 3 excluded objects, got %v", excluded)
	}
}

func TestExcludedDeduplicates(t *testing.T) {
	m := NewMission(earlyRoster(), nil)
	m.Deflect(catalog.Tiros)
	m.Deflect(catalog.Tiros)
	m.Remove(catalog.Tiros)
	if got := m.Excluded(); len(got) != 1 {
		t.Errorf("Expected a single excluded entry, got %v", got)
	}
}

func TestShieldDeflectsUntilSpent(t *testing.T) {
	roster := catalog.Roster{catalog.NOAA15: true, catalog.Chandra: true, catalog.Spitzer: true}

	t.Run("full shield", func(t *testing.T) {
		m := NewMission(roster.Clone(), nil)
		r := components.NewRocket("My Rocket")
		r.AdjustPosition(components.Right, 0.15)
		m.LaunchWithShield(r, components.NewShield())

		want := []catalog.Object{catalog.NOAA15, catalog.Chandra, catalog.Spitzer}
		if !slices.Equal(m.Dodged, want) {
			t.Errorf("Dodged = %v, want %v", m.Dodged, want)
		}
		if m.Crashed {
			t.Error("Full shield should not crash")
		}
		if r.Speed != 0 {
			t.Errorf("Expected rocket to stop, speed %v", r.Speed)
		}
	})

	t.Run("weak shield", func(t *testing.T) {
		m := NewMission(roster.Clone(), nil)
		r := components.NewRocket("My Rocket")
		r.AdjustPosition(components.Right, 0.15)
		m.LaunchWithShield(r, &components.Shield{Health: 2})

		if !m.Crashed || m.CrashedInto == nil || *m.CrashedInto != catalog.Spitzer {
			t.Errorf("Expected crash into spitzer, got crashed=%v into=%v", m.Crashed, m.CrashedInto)
		}
		if len(m.Dodged) != 2 {
			t.Errorf("Expected two deflections, got %v", m.Dodged)
		}
	})
}

func TestMissileArsenal(t *testing.T) {
	tr := narration.NewTranscript(nil)
	m := NewMission(earlyRoster(), tr)

	positions := []float64{0.12, 0.15, 0.23, 0.48, 0.88, 0.85}
	arsenal := make([]*components.Missile, len(positions))
	for i, p := range positions {
		arsenal[i] = components.NewMissile(p)
	}
	m.FireAll(arsenal)

	want := []catalog.Object{
		catalog.Sputnik,
		catalog.Compton,
		catalog.Vanguard,
		catalog.Explorer,
		catalog.Landsat,
		catalog.Tiros,
	}
	if got := m.Targets(); !slices.Equal(got, want) {
		t.Errorf("Targets() = %v, want %v", got, want)
	}

	for i, missile := range arsenal {
		target, ok := m.TargetOf(missile)
		if !ok || target != want[i] {
			t.Errorf("missile %d: target %v %v, want %v", i, target, ok, want[i])
		}
		if missile.Target == nil || *missile.Target != want[i] {
			t.Errorf("missile %d: Target field not set", i)
		}
	}

	for _, line := range tr.Lines() {
		if strings.Contains(line, "functioning") {
			t.Errorf("No functioning satellite should be hit: %q", line)
		}
	}
}

func TestMissileMissAndFunctioningWarning(t *testing.T) {
	tr := narration.NewTranscript(nil)
	m := NewMission(catalog.Roster{catalog.Hubble: true}, tr)

	miss := components.NewMissile(0.3)
	m.Fire(miss)
	if miss.Target != nil {
		t.Errorf("Expected a miss, hit %v", *miss.Target)
	}
	if miss.Fuel > 1e-9 {
		t.Errorf("A missing missile burns its whole tank, fuel %v", miss.Fuel)
	}

	hit := components.NewMissile(0.85)
	m.Fire(hit)
	if hit.Target == nil || *hit.Target != catalog.Hubble {
		t.Fatal("Expected hubble to be hit")
	}
	if hit.Altitude < catalog.Hubble.Altitude() || hit.Altitude > catalog.Hubble.Altitude()+0.1 {
		t.Errorf("Missile should stop at hubble's altitude, got %v", hit.Altitude)
	}

	lines := strings.Join(tr.Lines(), "\n")
	if !strings.Contains(lines, "Missile missed at 0.30!") {
		t.Errorf("Expected miss narration, got %q", lines)
	}
	if !strings.Contains(lines, "Hit functioning satellite hubble!") {
		t.Errorf("Expected warning narration, got %q", lines)
	}
}

func TestDronePassesOverDebris(t *testing.T) {
	roster := catalog.Roster{catalog.Debris: false, catalog.Explorer: false, catalog.Chandra: true}
	m := NewMission(roster, nil)

	first := components.NewCleanupDrone(0.45)
	m.Deploy(first)
	if first.Satellite == nil || *first.Satellite != catalog.Explorer {
		t.Fatalf("Expected first drone to grab explorer, got %v", first.Satellite)
	}
	if first.Altitude != catalog.Explorer.Altitude() {
		t.Errorf("Drone should park at the grabbed altitude, got %v", first.Altitude)
	}

	second := components.NewCleanupDrone(0.45)
	m.Deploy(second)
	if second.Satellite == nil || *second.Satellite != catalog.Debris {
		t.Fatalf("Expected second drone to grab debris, got %v", second.Satellite)
	}

	third := components.NewCleanupDrone(0.45)
	m.Deploy(third)
	if third.Satellite != nil {
		t.Errorf("Functioning chandra must not be grabbed, got %v", *third.Satellite)
	}

	if !slices.Equal(m.Removals, []catalog.Object{catalog.Explorer, catalog.Debris}) {
		t.Errorf("Unexpected removals %v", m.Removals)
	}
}

func TestDroneArmyLayout(t *testing.T) {
	army := DroneArmy()
	if len(army) != 12 {
		t.Fatalf("Expected 12 drones, got %d", len(army))
	}
	if army[0].Position != 0.05 {
		t.Errorf("First drone at %v", army[0].Position)
	}
	last := army[len(army)-1].Position
	if last < 0.92 || last > 0.94 {
		t.Errorf("Last drone at %v, want ~0.93", last)
	}
}
