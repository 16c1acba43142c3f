package loop

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/loop/config"
	"github.com/tomz197/orbrunner/internal/object"
)

// hudRows is the number of terminal rows reserved above the arena.
const hudRows = 1

// Render draws the world onto a surface: arena border, orbs, power-ups,
// hazards, the player, and the slow-motion overlay. It never mutates w.
func Render(s draw.Surface, w *World) error {
	s.StrokeRect(0, 0, w.Arena.Width, w.Arena.Height, draw.InkBorder)

	ctx := object.DrawContext{Surface: s}
	for _, obj := range w.Objects() {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	if w.SlowTimer > 0 {
		s.Tint(draw.InkSlowTint)
	}
	return nil
}

// styles holds the lipgloss styles used for text overlays.
type styles struct {
	hud   lipgloss.Style
	slow  lipgloss.Style
	title lipgloss.Style
	text  lipgloss.Style
	hint  lipgloss.Style
	panel lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		hud:   r.NewStyle().Foreground(lipgloss.Color(draw.InkText.Hex())).Bold(true),
		slow:  r.NewStyle().Foreground(lipgloss.Color(draw.InkPowerSlow.Hex())).Bold(true),
		title: r.NewStyle().Foreground(lipgloss.Color(draw.InkOrb.Hex())).Bold(true),
		text:  r.NewStyle().Foreground(lipgloss.Color(draw.InkText.Hex())),
		hint:  r.NewStyle().Foreground(lipgloss.Color("245")),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draw.InkPlayer.Hex())).
			Padding(1, 4).
			Align(lipgloss.Center),
	}
}

// NewTermRenderer returns a lipgloss renderer for w with 256-color output,
// matching the canvas palette.
func NewTermRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

// hudLine caches the status line; the world refreshes it on every change.
type hudLine struct {
	style lipgloss.Style
	text  string
}

func (h *hudLine) Refresh(score, level, lives int) {
	h.text = h.style.Render(fmt.Sprintf("Score %-6d Level %-3d Lives %d", score, level, lives))
}

var _ HUD = (*hudLine)(nil)

// screen renders sessions to a terminal.
type screen struct {
	cw        *draw.ChunkWriter
	canvas    *draw.Canvas
	styles    styles
	hud       *hudLine
	termW     int
	termH     int
	prevPhase Phase
	prevSlow  bool
}

func newScreen(w io.Writer, r *lipgloss.Renderer) *screen {
	st := newStyles(r)
	return &screen{
		cw:        draw.NewChunkWriter(w),
		canvas:    draw.NewScaledCanvas(1, 1, config.ArenaWidth, config.ArenaHeight),
		styles:    st,
		hud:       &hudLine{style: st.hud},
		prevPhase: -1,
	}
}

// resize refits the canvas when the terminal size changes.
func (sc *screen) resize(termW, termH int) {
	if termW == sc.termW && termH == sc.termH {
		return
	}
	sc.termW, sc.termH = termW, termH
	cols, rows, offCol, offRow := draw.FitCanvas(termW, termH, hudRows, sc.canvas.LogicalWidth(), sc.canvas.LogicalHeight())
	sc.canvas.Resize(cols, rows)
	sc.canvas.SetOffset(offCol, offRow)
	sc.clear()
}

func (sc *screen) clear() {
	sc.cw.WriteString("\033[0m\033[H\033[2J")
	sc.canvas.ForceRedraw()
}

// drawFrame draws the current frame.
func (sc *screen) drawFrame(s *Session) error {
	// On phase transitions, do a full terminal clear so overlays from the
	// previous phase don't persist on screen.
	slow := s.World != nil && s.World.SlowTimer > 0
	if s.Phase != sc.prevPhase || slow != sc.prevSlow {
		sc.clear()
		sc.prevPhase = s.Phase
		sc.prevSlow = slow
	}

	sc.canvas.Clear()
	if s.World != nil {
		if err := Render(sc.canvas, s.World); err != nil {
			return err
		}
	}
	if err := sc.canvas.Render(sc.cw); err != nil {
		return err
	}

	sc.drawUI(s)
	return sc.cw.Flush()
}

// drawUI draws the HUD row and the phase overlay.
func (sc *screen) drawUI(s *Session) {
	centerX := sc.canvas.OffsetCol() + sc.canvas.TerminalWidth()/2
	centerY := sc.canvas.OffsetRow() + sc.canvas.TerminalHeight()/2

	if s.World != nil {
		sc.drawHUD(s.World)
	}

	switch s.Phase {
	case PhaseIdle:
		sc.drawStartScreen(centerX, centerY)
	case PhasePaused:
		sc.drawPanel(centerX, centerY,
			sc.styles.title.Render("PAUSED"),
			"",
			sc.styles.hint.Render("p resume · q quit"),
		)
	case PhaseGameOver:
		sc.drawGameOverScreen(s, centerX, centerY)
	}
}

// drawHUD draws score, level and lives on the reserved top row.
func (sc *screen) drawHUD(w *World) {
	left := sc.canvas.OffsetCol() + 1
	sc.cw.WriteAt(left, 1, sc.hud.text)

	right := sc.styles.hint.Render("p pause · q quit")
	if w.SlowTimer > 0 {
		right = sc.styles.slow.Render(fmt.Sprintf("SLOW %.1fs", float64(w.SlowTimer)/config.TargetFPS))
	}
	col := sc.canvas.OffsetCol() + sc.canvas.TerminalWidth() - lipgloss.Width(right) + 1
	sc.cw.WriteAt(col, 1, "\033[K")
	sc.cw.WriteAt(col, 1, right)
}

// drawStartScreen draws the title screen.
func (sc *screen) drawStartScreen(centerX, centerY int) {
	sc.drawPanel(centerX, centerY,
		sc.styles.title.Render("O R B   R U N N E R"),
		"",
		sc.styles.text.Render("Collect orbs, dodge the red hazards."),
		sc.styles.text.Render("Cyan squares slow time for a few seconds."),
		"",
		sc.styles.text.Render("Press SPACE to Start"),
		"",
		sc.styles.hint.Render("Move: arrows or WASD · p pause · q quit"),
	)
}

// drawGameOverScreen draws the final score with retry and home prompts.
func (sc *screen) drawGameOverScreen(s *Session, centerX, centerY int) {
	sc.drawPanel(centerX, centerY,
		sc.styles.title.Render("GAME OVER"),
		"",
		sc.styles.text.Render(fmt.Sprintf("Final score: %d", s.FinalScore)),
		"",
		sc.styles.hint.Render("SPACE retry · h home · q quit"),
	)
}

// drawPanel renders lines inside a bordered box centered on (centerX, centerY).
func (sc *screen) drawPanel(centerX, centerY int, lines ...string) {
	box := sc.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	rows := strings.Split(box, "\n")
	width := lipgloss.Width(box)

	top := centerY - len(rows)/2
	for i, row := range rows {
		sc.cw.WriteAt(centerX-width/2, top+i, row)
	}
}
