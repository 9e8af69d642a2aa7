package pages

import (
	"context"
	"fmt"

	"github.com/lixenwraith/rocket-range/engine"
	"github.com/lixenwraith/rocket-range/events"
	"github.com/lixenwraith/rocket-range/logging"
	"github.com/lixenwraith/rocket-range/narration"
)

// PageAware hosts show the page being presented
type PageAware interface {
	SetPage(number, total int, title string)
}

// Runner builds pages on fresh live views and hands them to a host
type Runner struct {
	Host       engine.Host
	Transcript *narration.Transcript // optional, reset before every page
	Log        logging.Logger

	// Setup runs on every new live view before the page is built,
	// typically to register audio and metrics handlers
	Setup func(lv *engine.LiveView, p Page)
}

// NewRunner creates a runner presenting on host
func NewRunner(host engine.Host, transcript *narration.Transcript, log logging.Logger) *Runner {
	if log == nil {
		log = logging.Noop()
	}
	return &Runner{Host: host, Transcript: transcript, Log: log}
}

// Run presents a single page and returns its live view once settled
func (r *Runner) Run(ctx context.Context, p Page) (*engine.LiveView, error) {
	log := r.Log
	if log == nil {
		log = logging.Noop()
	}
	log = log.With(logging.Int("page", p.Number))

	var narrator narration.Narrator = narration.Discard
	if r.Transcript != nil {
		r.Transcript.Reset()
		narrator = r.Transcript
	}

	lv := engine.NewLiveView(narrator, log)
	if r.Setup != nil {
		r.Setup(lv, p)
	}
	if ph, ok := r.Host.(PageAware); ok {
		ph.SetPage(p.Number, Count(), p.Title)
	}

	payload := &events.PagePayload{Number: p.Number, Title: p.Title}
	lv.Emit(events.EventPageStart, payload)
	log.Info(ctx, "page start", logging.String("title", p.Title))

	p.Build(lv, narrator)

	if err := r.Host.Present(ctx, lv); err != nil {
		return lv, fmt.Errorf("page %d: %w", p.Number, err)
	}

	lv.Emit(events.EventPageDone, payload)
	lv.Dispatch()
	log.Info(ctx, "page done", logging.Any("elapsed", lv.Elapsed()))
	return lv, nil
}

// RunFrom presents pages first..last in order, stopping at the first error
func (r *Runner) RunFrom(ctx context.Context, first int) error {
	if _, err := Get(first); err != nil {
		return err
	}
	for _, p := range all[first-1:] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := r.Run(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
