package components

import "github.com/lixenwraith/rocket-range/constants"

// Shield absorbs a fixed number of near misses
type Shield struct {
	Health int
}

// NewShield returns a fully charged shield
func NewShield() *Shield {
	return &Shield{Health: constants.ShieldHealth}
}

// IsDepleted reports whether the shield can no longer absorb a hit
func (s *Shield) IsDepleted() bool {
	return s.Health < 1
}

// TakeHit spends one unit of shield health
func (s *Shield) TakeHit() {
	s.Health--
}
