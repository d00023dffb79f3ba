package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game/physics"
)

// Visual characters for rendering
const (
	BallChar      = '●'
	GoalChar      = '◎'
	BlockChar     = '█'
	RockChar      = '▓'
	AttractChar   = '⊕'
	RepelChar     = '⊖'
	TrapChar      = '⊗'
	SeparatorChar = '─'
)

// instructions is the text of the first-run overlay.
var instructions = []string{
	"Guide the ball to the goal",
	"",
	"click        spawn the selected magnet",
	"click magnet remove it",
	"hold magnet  flip its polarity",
	"shift+click  two-finger repel",
	"1-4  select  0 none  space polarity",
	"",
	"Press ENTER to start",
}

// Render draws the current session state to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if s.ball == nil {
		dst.DrawTextCentered(dst.Height()/2, "No level loaded", core.ColorRed)
		return
	}

	arena := s.viewport.Rect(s.arena)
	frame := core.NewRect(arena.X-1, arena.Y-1, arena.W+2, arena.H+2)
	if frame.X < 0 || frame.Y < HUDRows || frame.Right() > dst.Width() || frame.Bottom() > dst.Height() {
		need := fmt.Sprintf("Need %dx%d", frame.W, frame.H+HUDRows)
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, need, core.ColorDefault)
		return
	}

	s.renderHUD(dst)
	dst.DrawBox(frame, core.ColorGray)
	s.renderGoal(dst)
	s.renderObstacles(dst)
	s.renderMagnets(dst)
	s.renderBall(dst)
	s.renderOverlay(dst)
}

// renderHUD draws level, timer and spawn selection on the top row and the
// remaining budget on the second.
func (s *Session) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Level %d  Time %4.1f  Placed %d", s.levelNum, s.timeLeft, s.placed)
	timeColor := core.ColorWhite
	if s.timeLeft < 10 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColor(1, 0, left, timeColor)

	// The selection turns red once its budget is spent
	right := fmt.Sprintf("Tap: %s  Mode: %s", s.ctx.Pending(), s.ctx.Mode())
	tapColor := core.ColorCyan
	if !s.budget.CanSpawnPending(s.ctx) {
		tapColor = core.ColorBrightRed
	}
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, tapColor)

	for x := range dst.Width() {
		dst.SetColor(x, 1, SeparatorChar, core.ColorGray)
	}
	parts := make([]string, 0, len(core.SpawnTypes))
	for i, t := range core.SpawnTypes {
		parts = append(parts, fmt.Sprintf("%d:%s×%d", i+1, t, s.budget.Remaining(t)))
	}
	dst.DrawTextColor(1, 1, " "+strings.Join(parts, "  ")+" ", core.ColorDefault)
}

func (s *Session) renderGoal(dst *core.Screen) {
	s.fillWorld(dst, s.goal, GoalChar, core.ColorBrightGreen)
}

func (s *Session) renderObstacles(dst *core.Screen) {
	for _, o := range s.obstacles {
		glyph, color := BlockChar, core.ColorGray
		if o.Tag == "rock" {
			glyph, color = RockChar, core.ColorOrange
		}
		s.fillWorld(dst, o.Box(), glyph, color)
	}
}

// fillWorld fills the screen cells of a world box, at least one cell.
func (s *Session) fillWorld(dst *core.Screen, b core.Bounds, glyph rune, c core.Color) {
	r := s.viewport.Rect(b)
	if r.W < 1 || r.H < 1 {
		x, y := s.viewport.Cell(b.Center())
		dst.SetColor(x, y, glyph, c)
		return
	}
	dst.FillRect(r, glyph, c)
}

func (s *Session) renderMagnets(dst *core.Screen) {
	for _, m := range s.magnets {
		x, y := s.viewport.Cell(m.Position)
		dst.SetColor(x, y, magnetGlyph(m), magnetColor(m))
	}
}

func magnetGlyph(m *physics.Magnet) rune {
	switch {
	case m.Kind == physics.Trap:
		return TrapChar
	case m.Polarity == physics.Repel:
		return RepelChar
	default:
		return AttractChar
	}
}

func magnetColor(m *physics.Magnet) core.Color {
	switch {
	case m.Stuck():
		return core.ColorBrightYellow
	case m.Kind == physics.Trap:
		return core.ColorMagenta
	case m.Polarity == physics.Repel:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightRed
	}
}

func (s *Session) renderBall(dst *core.Screen) {
	x, y := s.viewport.Cell(s.ball.Position)
	dst.SetColor(x, y, BallChar, core.ColorWhite)
}

// renderOverlay draws state messages over the arena.
func (s *Session) renderOverlay(dst *core.Screen) {
	switch {
	case s.showInstructions:
		s.drawCenteredBox(dst, "MAGNET MAZE", instructions, core.ColorBrightCyan)
	case s.outcome.Kind == OutcomeWin:
		s.drawCenteredBox(dst, "YOU WIN!", []string{
			fmt.Sprintf("%.1fs left, %d magnets", s.timeLeft, s.placed),
			"N next level  R retry",
		}, core.ColorBrightGreen)
	case s.outcome.Kind == OutcomeGameOver:
		s.drawCenteredBox(dst, "GAME OVER", []string{
			s.outcome.Reason,
			"R retry  G new layout",
		}, core.ColorBrightRed)
	case s.paused:
		s.drawCenteredBox(dst, "PAUSED", []string{"Press P to resume"}, core.ColorYellow)
	}
}

// drawCenteredBox draws a centered message box.
func (s *Session) drawCenteredBox(dst *core.Screen, title string, lines []string, c core.Color) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColor(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawText(box.X+2, box.Y+3+i, l)
	}
}
