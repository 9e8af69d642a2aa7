package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-range/constants"
	"github.com/lixenwraith/rocket-range/engine"
)

// Status is the bottom bar state
type Status struct {
	Page    int
	Pages   int
	Title   string
	Pending int
	Elapsed time.Duration
	Paused  bool
	Idle    bool
}

// TerminalRenderer draws a live view, the narration panel and the status bar
type TerminalRenderer struct {
	screen tcell.Screen
	mode   ColorMode

	width      int
	height     int
	viewHeight int
	panelY     int // first narration row, == statusY when the panel is hidden
	statusY    int
}

// NewTerminalRenderer creates a new terminal renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, mode ColorMode) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, mode: mode}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the layout; the narration panel is dropped when the view would get too short
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.statusY = height - constants.StatusBarHeight

	panel := constants.NarrationLines
	if r.statusY-panel < constants.MinViewHeight {
		panel = 0
	}
	r.panelY = r.statusY - panel
	r.viewHeight = max(r.panelY, 0)
}

// ViewHeight returns the number of rows given to the live view
func (r *TerminalRenderer) ViewHeight() int {
	return r.viewHeight
}

// Cell maps normalized scene coordinates to a screen cell; ok is false off the view
func (r *TerminalRenderer) Cell(x, y float64) (col, row int, ok bool) {
	if r.width <= 0 || r.viewHeight <= 0 {
		return 0, 0, false
	}
	levels := float64(r.viewHeight - 1)
	row = r.viewHeight - 1 - int(math.Round(y*levels))
	col = int(math.Round(x * float64(r.width-1)))
	if row < 0 || row >= r.viewHeight || col < 0 || col >= r.width {
		return col, row, false
	}
	return col, row, true
}

// cells converts a live view pixel size to a cell count
func (r *TerminalRenderer) cells(size float64) int {
	return max(1, int(math.Round(size/constants.LiveViewSize*float64(r.width))))
}

func (r *TerminalRenderer) style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Color(r.mode)).Background(bg.Color(r.mode))
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(nodes []engine.Node, lines []string, st Status) {
	r.screen.Clear()

	sky := RgbSky
	for _, n := range nodes {
		if n.Kind == engine.NodeCrash && n.Visible() {
			sky = Blend(sky, RgbCrash, n.Alpha*0.7)
		}
	}
	r.drawSky(sky)

	for _, n := range nodes {
		if n.Kind == engine.NodeCollision && n.Visible() {
			r.drawCollision(n, sky)
		}
	}
	for _, n := range nodes {
		if n.Kind == engine.NodeSprite && n.Visible() {
			r.drawSprite(n, sky)
		}
	}

	r.drawNarration(lines)
	r.drawStatusBar(st)
	r.screen.Show()
}

func (r *TerminalRenderer) drawSky(sky RGB) {
	skyStyle := r.style(sky, sky)
	groundStyle := r.style(RgbGround, RgbGround)
	for y := 0; y < r.viewHeight; y++ {
		style := skyStyle
		if y == r.viewHeight-1 {
			style = groundStyle
		}
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawSprite(n engine.Node, sky RGB) {
	col, row, ok := r.Cell(n.X, n.DrawY())
	if !ok {
		return
	}

	fg := SpriteColor(n.Object, n.Dimmed, n.Alpha, sky)
	bg := sky
	if row == r.viewHeight-1 {
		bg = RgbGround
	}
	style := r.style(fg, bg)

	w := r.cells(n.Size)
	left := col - w/2
	for x := left; x < left+w; x++ {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, row, n.Object.Glyph(), nil, style)
		}
	}

	if n.Shield {
		aura := r.style(Blend(sky, RgbShield, n.Alpha), bg)
		if left-1 >= 0 {
			r.screen.SetContent(left-1, row, '(', nil, aura)
		}
		if left+w < r.width {
			r.screen.SetContent(left+w, row, ')', nil, aura)
		}
	}

	// Exhaust under anything in flight
	if !n.Object.IsSatellite() && n.Y > 0 && row+1 < r.viewHeight-1 {
		r.screen.SetContent(col, row+1, '∙', nil, r.style(Blend(sky, RgbExhaust, n.Alpha), sky))
	}
}

func (r *TerminalRenderer) drawCollision(n engine.Node, sky RGB) {
	col, row, ok := r.Cell(n.X, n.Y)
	if !ok {
		return
	}
	style := r.style(Blend(sky, RgbCollision, n.Alpha), Add(sky, RgbCollision, n.Alpha*0.3))

	radius := max(1, r.cells(n.Size)/2)
	for dy := -1; dy <= 1; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := col+dx, row+dy
			if x < 0 || x >= r.width || y < 0 || y >= r.viewHeight {
				continue
			}
			ch := '*'
			if dy != 0 && (dx == -radius || dx == radius) {
				continue
			}
			if dy == 0 && dx == 0 {
				ch = '✶'
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawNarration(lines []string) {
	rows := r.statusY - r.panelY
	if rows <= 0 {
		return
	}
	bg := r.style(RgbNarration, RgbPanelBg)
	for y := r.panelY; y < r.statusY; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, line := range lines {
		style := bg
		if i == len(lines)-1 {
			style = r.style(RgbNarrationNew, RgbPanelBg).Bold(true)
		}
		r.drawText(1, r.panelY+i, line, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(st Status) {
	if r.statusY < 0 {
		return
	}
	bgColor := RgbStatusBg
	state := "running"
	switch {
	case st.Paused:
		bgColor = RgbPausedBg
		state = "PAUSED"
	case st.Idle:
		bgColor = RgbIdleBg
		state = "done"
	}
	style := r.style(RgbStatusText, bgColor)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, r.statusY, ' ', nil, style)
	}

	text := StatusLine(st, state)
	r.drawText(0, r.statusY, text, style)
}

// StatusLine formats the status bar text
func StatusLine(st Status, state string) string {
	var b strings.Builder
	if st.Page > 0 {
		fmt.Fprintf(&b, " Page %d/%d %s |", st.Page, st.Pages, st.Title)
	}
	fmt.Fprintf(&b, " %s | pending %d | %.1fs |", state, st.Pending, st.Elapsed.Seconds())
	if st.Idle {
		b.WriteString(" enter: next |")
	}
	b.WriteString(" space: pause | q: quit")
	return b.String()
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
