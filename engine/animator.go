package engine

import (
	"time"

	"github.com/lixenwraith/rocket-range/physics"
)

// sequence is the running state of one action list on one node
type sequence struct {
	node    *Node
	actions []Action
	index   int
	elapsed time.Duration // time spent in the current segment
	from    float64       // node value when the current segment began
	started bool
	done    func()
}

// Animator advances action sequences in fixed or variable steps.
// Sequences added during a step begin on the next one. Completions fire in
// scheduling order after every sequence has been advanced.
type Animator struct {
	running  []*sequence
	starting []*sequence
	elapsed  time.Duration
}

// NewAnimator creates an idle animator
func NewAnimator() *Animator {
	return &Animator{}
}

// Run schedules actions on n; done runs once the last action completes
func (a *Animator) Run(n *Node, actions []Action, done func()) {
	a.starting = append(a.starting, &sequence{
		node:    n,
		actions: actions,
		done:    done,
	})
}

// Advance progresses every sequence by dt
func (a *Animator) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	a.elapsed += dt

	a.running = append(a.running, a.starting...)
	a.starting = nil

	var callbacks []func()
	live := a.running[:0]
	for _, s := range a.running {
		if s.advance(dt, &callbacks) {
			if s.done != nil {
				callbacks = append(callbacks, s.done)
			}
			continue
		}
		live = append(live, s)
	}
	for i := len(live); i < len(a.running); i++ {
		a.running[i] = nil
	}
	a.running = live

	for _, fn := range callbacks {
		fn()
	}
}

// Busy reports whether any sequence is running or waiting to start
func (a *Animator) Busy() bool {
	return len(a.running) > 0 || len(a.starting) > 0
}

// Active returns the number of running and waiting sequences
func (a *Animator) Active() int {
	return len(a.running) + len(a.starting)
}

// Elapsed returns the total time advanced
func (a *Animator) Elapsed() time.Duration {
	return a.elapsed
}

// advance consumes budget across segments, returning true when finished
func (s *sequence) advance(budget time.Duration, callbacks *[]func()) bool {
	for s.index < len(s.actions) {
		act := &s.actions[s.index]
		if !s.started {
			s.begin(act)
		}

		remaining := act.duration - s.elapsed
		if budget < remaining {
			s.elapsed += budget
			s.apply(act, float64(s.elapsed)/float64(act.duration))
			return false
		}

		budget -= remaining
		s.apply(act, 1.0)
		if act.kind == actionRun && act.fn != nil {
			*callbacks = append(*callbacks, act.fn)
		}
		s.index++
		s.elapsed = 0
		s.started = false
	}
	return true
}

func (s *sequence) begin(act *Action) {
	switch act.kind {
	case actionMove:
		s.from = s.node.Y
	case actionFade:
		s.from = s.node.Alpha
	}
	s.started = true
}

func (s *sequence) apply(act *Action, t float64) {
	switch act.kind {
	case actionMove:
		s.node.Y = s.from + act.amount*t
	case actionFade:
		s.node.Alpha = physics.Lerp(s.from, act.amount, t)
	}
}
