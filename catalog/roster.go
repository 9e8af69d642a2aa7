package catalog

import "slices"

// Roster tracks the alive/dead status of the satellites in one run
type Roster map[Object]bool

// Objects returns the roster members in catalog order
func (r Roster) Objects() []Object {
	objs := make([]Object, 0, len(r))
	for o := range r {
		objs = append(objs, o)
	}
	slices.Sort(objs)
	return objs
}

// IsDead reports whether o is on the roster and not functioning.
// Objects missing from the roster are treated as alive.
func (r Roster) IsDead(o Object) bool {
	alive, ok := r[o]
	if !ok {
		return false
	}
	return !alive
}

// IsAlive reports whether o is on the roster and functioning
func (r Roster) IsAlive(o Object) bool {
	return r[o]
}

// Clone returns an independent copy
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for o, alive := range r {
		out[o] = alive
	}
	return out
}

// Contains reports whether o appears in objs
func Contains(objs []Object, o Object) bool {
	return slices.Contains(objs, o)
}
