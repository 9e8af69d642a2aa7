// Package narration carries the informational lines the pages print while they run.
package narration

import (
	"context"
	"fmt"
	"sync"

	"github.com/lixenwraith/rocket-range/logging"
)

// Narrator receives informational lines. Lines are never part of any contract
type Narrator interface {
	Say(format string, args ...any)
}

// Discard drops every line
var Discard Narrator = discard{}

type discard struct{}

func (discard) Say(string, ...any) {}

// Transcript records narration lines in order and mirrors them to a logger
type Transcript struct {
	mu    sync.Mutex
	lines []string
	log   logging.Logger
}

// NewTranscript creates a transcript; log may be nil
func NewTranscript(log logging.Logger) *Transcript {
	if log == nil {
		log = logging.Noop()
	}
	return &Transcript{log: log}
}

// Say appends a formatted line
func (t *Transcript) Say(format string, args ...any) {
	line := fmt.Sprintf(format, args...)

	t.mu.Lock()
	t.lines = append(t.lines, line)
	t.mu.Unlock()

	t.log.Info(context.Background(), line, logging.String("source", "narration"))
}

// Lines returns a copy of every recorded line
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Tail returns up to n most recent lines
func (t *Transcript) Tail(n int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n <= 0 {
		return nil
	}
	start := len(t.lines) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(t.lines)-start)
	copy(out, t.lines[start:])
	return out
}

// Reset clears the transcript between pages
func (t *Transcript) Reset() {
	t.mu.Lock()
	t.lines = nil
	t.mu.Unlock()
}
