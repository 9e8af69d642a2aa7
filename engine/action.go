package engine

import (
	"time"
)

type actionKind uint8

const (
	actionMove actionKind = iota
	actionFade
	actionRun
)

// Action is one segment of a node's action sequence
type Action struct {
	kind     actionKind
	amount   float64
	duration time.Duration
	fn       func()
}

// MoveBy shifts the node vertically by dy over d
func MoveBy(dy float64, d time.Duration) Action {
	return Action{kind: actionMove, amount: dy, duration: d}
}

// FadeTo interpolates the node alpha to alpha over d. Fading to the current
// alpha is a hold.
func FadeTo(alpha float64, d time.Duration) Action {
	return Action{kind: actionFade, amount: alpha, duration: d}
}

// Run invokes fn once the sequence reaches it; fn runs after the step
func Run(fn func()) Action {
	return Action{kind: actionRun, fn: fn}
}

// Duration returns the segment length
func (a Action) Duration() time.Duration { return a.duration }

// SequenceDuration sums the segment lengths of a sequence
func SequenceDuration(actions []Action) time.Duration {
	var total time.Duration
	for _, a := range actions {
		total += a.duration
	}
	return total
}
