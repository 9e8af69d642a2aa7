// Package systems runs the simulated flights of one page and records what they hit.
package systems

import (
	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/components"
	"github.com/lixenwraith/rocket-range/narration"
	"github.com/lixenwraith/rocket-range/physics"
)

// Destruction pairs a missile with the object it is going to take out
type Destruction struct {
	Missile *components.Missile
	Target  catalog.Object
}

// Mission is the bookkeeping of one simulated run over a satellite roster.
// Objects that were dodged, destroyed or removed stay out of every later
// obstruction query of the same run.
type Mission struct {
	Satellites   catalog.Roster
	Dodged       []catalog.Object
	Destructions []Destruction
	Removals     []catalog.Object
	Crashed      bool
	CrashedInto  *catalog.Object

	narrator narration.Narrator
}

// NewMission starts a run over roster; narrator may be nil
func NewMission(roster catalog.Roster, narrator narration.Narrator) *Mission {
	if narrator == nil {
		narrator = narration.Discard
	}
	if roster == nil {
		roster = catalog.Roster{}
	}
	return &Mission{
		Satellites: roster,
		narrator:   narrator,
	}
}

// Excluded returns every object already handled in this run
func (m *Mission) Excluded() []catalog.Object {
	var out []catalog.Object
	add := func(o catalog.Object) {
		if !catalog.Contains(out, o) {
			out = append(out, o)
		}
	}
	for _, o := range m.Dodged {
		add(o)
	}
	for _, d := range m.Destructions {
		add(d.Target)
	}
	for _, o := range m.Removals {
		add(o)
	}
	return out
}

// Targets returns the queued destruction targets in firing order
func (m *Mission) Targets() []catalog.Object {
	out := make([]catalog.Object, 0, len(m.Destructions))
	for _, d := range m.Destructions {
		out = append(out, d.Target)
	}
	return out
}

// TargetOf returns the object a missile is queued to destroy
func (m *Mission) TargetOf(missile *components.Missile) (catalog.Object, bool) {
	for _, d := range m.Destructions {
		if d.Missile == missile {
			return d.Target, true
		}
	}
	return 0, false
}

// Obstructions returns the unhandled roster objects above position, lowest first
func (m *Mission) Obstructions(position float64) []catalog.Object {
	return physics.ObstructionsAt(m.Satellites.Objects(), position, m.Excluded()...)
}

// HasCollided returns the nearest unhandled obstruction above k if it sits
// at or below altitude
func (m *Mission) HasCollided(k *components.Kinetics, altitude float64) (catalog.Object, bool) {
	obstructions := m.Obstructions(k.Position)
	if len(obstructions) == 0 {
		return 0, false
	}
	first := obstructions[0]
	if first.Altitude() <= altitude {
		return first, true
	}
	return 0, false
}

// Deflect marks o as dodged
func (m *Mission) Deflect(o catalog.Object) {
	if !catalog.Contains(m.Dodged, o) {
		m.Dodged = append(m.Dodged, o)
	}
}

// Crash records that the run ended against o
func (m *Mission) Crash(o catalog.Object) {
	if m.Crashed {
		return
	}
	m.Crashed = true
	m.CrashedInto = &o
}

// Destroy queues o for destruction by missile
func (m *Mission) Destroy(o catalog.Object, missile *components.Missile) {
	m.Destructions = append(m.Destructions, Destruction{Missile: missile, Target: o})
	missile.Target = &o
	if m.Satellites.IsAlive(o) {
		m.narrator.Say("Hit functioning satellite %s!", o)
	}
}

// Remove queues o for removal by a cleanup drone
func (m *Mission) Remove(o catalog.Object) {
	if !catalog.Contains(m.Removals, o) {
		m.Removals = append(m.Removals, o)
	}
}
