package render

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-range/constants"
	"github.com/lixenwraith/rocket-range/core"
	"github.com/lixenwraith/rocket-range/engine"
	"github.com/lixenwraith/rocket-range/logging"
	"github.com/lixenwraith/rocket-range/narration"
)

// ErrQuit is returned by Present when the viewer asked to leave
var ErrQuit = errors.New("quit requested")

// HostConfig tunes the terminal loop
type HostConfig struct {
	FrameInterval time.Duration
	TimeScale     float64
	// IdleAdvance leaves an idle page on its own after this long (0 waits for enter)
	IdleAdvance time.Duration
}

// DefaultHostConfig returns the ~60 FPS real-time loop
func DefaultHostConfig() HostConfig {
	return HostConfig{
		FrameInterval: constants.FrameUpdateInterval,
		TimeScale:     1.0,
		IdleAdvance:   constants.IdleAdvanceDelay,
	}
}

// TerminalHost presents live views on a tcell screen
type TerminalHost struct {
	screen     tcell.Screen
	renderer   *TerminalRenderer
	clock      *engine.PausableClock
	config     HostConfig
	transcript *narration.Transcript
	log        logging.Logger

	actions chan hostAction
	started bool

	status Status
}

// NewTerminalHost wraps an initialized screen. transcript may be nil
func NewTerminalHost(screen tcell.Screen, mode ColorMode, cfg HostConfig, transcript *narration.Transcript, log logging.Logger) *TerminalHost {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constants.FrameUpdateInterval
	}
	if log == nil {
		log = logging.Noop()
	}
	return &TerminalHost{
		screen:     screen,
		renderer:   NewTerminalRenderer(screen, mode),
		clock:      engine.NewPausableClock(),
		config:     cfg,
		transcript: transcript,
		log:        log,
		actions:    make(chan hostAction, constants.InputChannelSize),
	}
}

// Start begins polling terminal input; PollEvent returns nil once the screen is finalized
func (h *TerminalHost) Start() {
	if h.started {
		return
	}
	h.started = true
	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			if a := h.classify(ev); a != actionNone {
				h.actions <- a
			}
		}
	})
}

// SetPage labels the status bar
func (h *TerminalHost) SetPage(number, total int, title string) {
	h.status.Page = number
	h.status.Pages = total
	h.status.Title = title
}

// Clock returns the host clock
func (h *TerminalHost) Clock() *engine.PausableClock {
	return h.clock
}

// Renderer returns the frame renderer
func (h *TerminalHost) Renderer() *TerminalRenderer {
	return h.renderer
}

// hostAction is the loop's reaction to one input event
type hostAction uint8

const (
	actionNone hostAction = iota
	actionQuit
	actionPause
	actionNext
	actionResize
)

func (h *TerminalHost) classify(ev tcell.Event) hostAction {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return actionQuit
		case tcell.KeyEnter:
			return actionNext
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return actionQuit
			case ' ':
				return actionPause
			case 'n':
				return actionNext
			}
		}
	case *tcell.EventResize:
		return actionResize
	}
	return actionNone
}

// Present runs the frame loop until lv is idle and the viewer moves on.
// Space pauses the scene clock, enter (or n) advances once idle, q or Esc quits.
func (h *TerminalHost) Present(ctx context.Context, lv *engine.LiveView) error {
	h.Start()

	var idleSince time.Duration
	wasIdle := false
	quit := false

	lv.Dispatch()
	h.draw(lv)

	sched := engine.NewClockScheduler(h.clock, h.config.FrameInterval, h.config.TimeScale)
	err := sched.Run(ctx, func(dt time.Duration) bool {
		next := false
	input:
		for {
			select {
			case a := <-h.actions:
				switch a {
				case actionQuit:
					quit = true
					return false
				case actionPause:
					paused := h.clock.Toggle()
					h.log.Debug(ctx, "pause toggled", logging.Any("paused", paused))
				case actionNext:
					next = true
				case actionResize:
					w, hgt := h.screen.Size()
					h.renderer.Resize(w, hgt)
					h.screen.Sync()
				}
			default:
				break input
			}
		}

		lv.Step(dt)
		h.draw(lv)

		if !lv.Idle() {
			wasIdle = false
			return true
		}
		if !wasIdle {
			wasIdle = true
			idleSince = h.clock.Elapsed()
		}
		if next {
			return false
		}
		if h.config.IdleAdvance > 0 && h.clock.Elapsed()-idleSince >= h.config.IdleAdvance {
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	if quit {
		return ErrQuit
	}
	return nil
}

func (h *TerminalHost) draw(lv *engine.LiveView) {
	h.status.Pending = lv.Pending()
	h.status.Elapsed = lv.Elapsed()
	h.status.Paused = h.clock.IsPaused()
	h.status.Idle = lv.Idle()

	var lines []string
	if h.transcript != nil {
		lines = h.transcript.Tail(constants.NarrationLines)
	}
	h.renderer.RenderFrame(lv.Nodes(), lines, h.status)
}
