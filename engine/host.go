package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/rocket-range/constants"
)

// ErrSceneTimeout is returned when a scene is still animating after the
// host's time budget
var ErrSceneTimeout = errors.New("scene did not settle")

// Host presents a live view until its transitions have settled
type Host interface {
	Present(ctx context.Context, lv *LiveView) error
}

// HeadlessHost advances a virtual clock in fixed steps with no output
type HeadlessHost struct {
	Step        time.Duration
	MaxDuration time.Duration
	// OnFrame runs after every step
	OnFrame func(lv *LiveView)
}

// NewHeadlessHost creates a headless host with default timing
func NewHeadlessHost() *HeadlessHost {
	return &HeadlessHost{
		Step:        constants.HeadlessStep,
		MaxDuration: constants.HeadlessMaxDuration,
	}
}

// Present steps the view until it is idle
func (h *HeadlessHost) Present(ctx context.Context, lv *LiveView) error {
	step := h.Step
	if step <= 0 {
		step = constants.HeadlessStep
	}
	limit := h.MaxDuration
	if limit <= 0 {
		limit = constants.HeadlessMaxDuration
	}

	start := lv.Elapsed()
	lv.Dispatch()
	for !lv.Idle() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lv.Elapsed()-start >= limit {
			return fmt.Errorf("%w after %s with %d pending", ErrSceneTimeout, limit, lv.Pending())
		}
		lv.Step(step)
		if h.OnFrame != nil {
			h.OnFrame(lv)
		}
	}
	return nil
}
