// Package physics holds the geometry and timing helpers of the live view.
// Everything here is a pure function over normalized coordinates.
package physics

import (
	"slices"

	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/constants"
)

// Interval is a closed horizontal span in normalized coordinates
type Interval struct {
	Min, Max float64
}

// Band returns the query interval of a moving entity centered at x
func Band(x, halfWidth float64) Interval {
	return Interval{Min: x - halfWidth, Max: x + halfWidth}
}

// Span returns the horizontal interval a catalog object occupies
func Span(o catalog.Object) Interval {
	half := o.Width() / 2.0
	return Interval{Min: o.Position() - half, Max: o.Position() + half}
}

// Contains reports whether v lies inside the closed interval
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Min && v <= iv.Max
}

// Obstructs reports whether the query band hits the object interval.
// Either query endpoint inside the object counts, as does a query that
// fully spans an object narrower than itself.
func Obstructs(query, object Interval) bool {
	if object.Contains(query.Min) || object.Contains(query.Max) {
		return true
	}
	return query.Min < object.Min && query.Max > object.Max
}

// InBounds reports whether x is a valid normalized horizontal position
func InBounds(x float64) bool {
	return x >= 0.0 && x <= 1.0
}

// ObstructionsWith returns the objects whose span overlaps the band around x,
// skipping excluded objects, ordered by ascending altitude.
// Ties keep catalog order. Positions outside [0,1] yield nil.
func ObstructionsWith(objects []catalog.Object, x, halfWidth float64, exclude ...catalog.Object) []catalog.Object {
	if !InBounds(x) {
		return nil
	}

	query := Band(x, halfWidth)
	var hits []catalog.Object
	for _, o := range objects {
		if catalog.Contains(exclude, o) || catalog.Contains(hits, o) {
			continue
		}
		if Obstructs(query, Span(o)) {
			hits = append(hits, o)
		}
	}

	slices.SortFunc(hits, func(a, b catalog.Object) int {
		switch {
		case a.Altitude() < b.Altitude():
			return -1
		case a.Altitude() > b.Altitude():
			return 1
		}
		return int(a) - int(b)
	})
	return hits
}

// ObstructionsAt is ObstructionsWith using the default entity half-width
func ObstructionsAt(objects []catalog.Object, x float64, exclude ...catalog.Object) []catalog.Object {
	return ObstructionsWith(objects, x, constants.DefaultObjectWidth, exclude...)
}
