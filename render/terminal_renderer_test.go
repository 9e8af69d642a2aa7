package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-range/catalog"
	"github.com/lixenwraith/rocket-range/components"
	"github.com/lixenwraith/rocket-range/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		viewHeight int
		panel      int
	}{
		{"roomy", 40, 20, 15, 4},
		{"short drops narration", 40, 10, 9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(newSimScreen(t, tt.w, tt.h), ColorModeTrueColor)
			if r.ViewHeight() != tt.viewHeight {
				t.Errorf("ViewHeight = %d, want %d", r.ViewHeight(), tt.viewHeight)
			}
			if got := r.statusY - r.panelY; got != tt.panel {
				t.Errorf("panel rows = %d, want %d", got, tt.panel)
			}
		})
	}
}

func TestCellMapping(t *testing.T) {
	r := NewTerminalRenderer(newSimScreen(t, 40, 20), ColorModeTrueColor)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"pad", 0.5, 0, 20, 14, true},
		{"top", 0.5, 1, 20, 0, true},
		{"left edge", 0, 0.5, 0, 7, true},
		{"off the top", 0.5, 1.1, 20, -1, false},
		{"flown away", 0.5, 10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := r.Cell(tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("Cell(%v,%v) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
			}
			if ok && (col != tt.col || row != tt.row) {
				t.Errorf("Cell(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestRenderStaticRocket(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	r := NewTerminalRenderer(s, ColorModeTrueColor)

	lv := engine.NewLiveView(nil, nil)
	lv.Track(components.NewKinetics(0.5), catalog.RocketLaunch, engine.TrackOptions{})
	lv.Add(catalog.Hubble, false)

	r.RenderFrame(lv.Nodes(), []string{"first", "Rocket launched!"}, Status{Page: 1, Pages: 6, Title: "Hello rocket", Idle: true})

	ch, _, _, _ := s.GetContent(20, 14)
	if ch != catalog.RocketLaunch.Glyph() {
		t.Errorf("Expected rocket glyph on the pad, got %q", ch)
	}

	// size 800 -> 160 live view pixels -> 11 cells centered on column 20
	left, _, _, _ := s.GetContent(15, 14)
	outside, _, _, _ := s.GetContent(14, 14)
	if left != catalog.RocketLaunch.Glyph() || outside == catalog.RocketLaunch.Glyph() {
		t.Errorf("Rocket sprite should span columns 15..25, got %q at 15 and %q at 14", left, outside)
	}

	// hubble at (0.85, 0.7): column round(33.15)=33, row 14-round(9.8)=4
	ch, _, style, _ := s.GetContent(33, 4)
	if ch != catalog.Hubble.Glyph() {
		t.Errorf("Expected hubble glyph, got %q", ch)
	}
	fg, _, _ := style.Decompose()
	red, green, blue := fg.RGB()
	if red != green || green != blue {
		t.Errorf("Dead hubble should be drawn gray, got (%d,%d,%d)", red, green, blue)
	}

	if got := rowText(s, 16, 40); !strings.Contains(got, "Rocket launched!") {
		t.Errorf("Narration panel missing newest line: %q", got)
	}
	status := rowText(s, 19, 40)
	if !strings.Contains(status, "Page 1/6") || !strings.Contains(status, "done") {
		t.Errorf("Status bar = %q", status)
	}
}

func TestRenderCrashTintsSky(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	r := NewTerminalRenderer(s, ColorModeTrueColor)

	nodes := []engine.Node{{Kind: engine.NodeCrash, X: 0.5, Y: 0.5, Alpha: 1, Size: 600}}
	r.RenderFrame(nodes, nil, Status{})

	_, _, style, _ := s.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	want := Blend(RgbSky, RgbCrash, 0.7)
	if bg != tcell.NewRGBColor(int32(want.R), int32(want.G), int32(want.B)) {
		t.Errorf("Crash flash background = %v, want %v", bg, want)
	}
}

func TestRenderCollisionBurst(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	r := NewTerminalRenderer(s, ColorModeTrueColor)

	nodes := []engine.Node{{Kind: engine.NodeCollision, X: 0.5, Y: 0.5, Alpha: 1, Size: 100}}
	r.RenderFrame(nodes, nil, Status{})

	col, row, _ := r.Cell(0.5, 0.5)
	ch, _, _, _ := s.GetContent(col, row)
	if ch != '✶' {
		t.Errorf("Expected burst center, got %q", ch)
	}
	ch, _, _, _ = s.GetContent(col+1, row)
	if ch != '*' {
		t.Errorf("Expected burst ring, got %q", ch)
	}
}

func TestRenderShieldAura(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	r := NewTerminalRenderer(s, ColorModeTrueColor)

	nodes := []engine.Node{{Kind: engine.NodeSprite, Object: catalog.RocketShield, X: 0.5, Y: 0.5, Alpha: 1, Size: 30, Shield: true}}
	r.RenderFrame(nodes, nil, Status{})

	col, row, _ := r.Cell(0.5, 0.5)
	ch, _, _, _ := s.GetContent(col-2, row)
	if ch != '(' {
		t.Errorf("Expected aura left of the rocket, got %q", ch)
	}
	ch, _, _, _ = s.GetContent(col, row+1)
	if ch != '∙' {
		t.Errorf("Expected exhaust below a flying rocket, got %q", ch)
	}
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(Status{Page: 3, Pages: 6, Title: "Steering", Pending: 2, Elapsed: 1500 * time.Millisecond}, "running")
	for _, want := range []string{"Page 3/6 Steering", "pending 2", "1.5s", "q: quit"} {
		if !strings.Contains(line, want) {
			t.Errorf("StatusLine missing %q: %q", want, line)
		}
	}
	if strings.Contains(line, "enter") {
		t.Errorf("Busy status should not offer enter: %q", line)
	}
}
