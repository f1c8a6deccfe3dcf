package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-relativity/internal/core"
	"github.com/vovakirdan/tui-relativity/internal/physics"
)

var (
	titleColor   = core.RGB(200, 200, 255)
	hudColor     = core.RGB(210, 210, 210)
	successColor = core.RGB(80, 220, 120)
	failureColor = core.RGB(255, 90, 70)
)

func (g *Game) drawTitle(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("RELATIVITY · %s %s", g.level.ID, g.level.Name), titleColor)

	status := g.phaseLabel()
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(status)-1, 0, status, titleColor)

	if g.phase == PhaseAiming && g.launch.Phase == physics.LaunchIdle && g.level.Hint != "" {
		dst.DrawTextCentered(titleRows, g.level.Hint, labelColor)
	}
}

func (g *Game) phaseLabel() string {
	switch g.phase {
	case PhaseAiming:
		return "AIM " + g.launch.Phase.String()
	case PhaseRunning:
		return fmt.Sprintf("RUNNING %.2fx", g.rate)
	case PhasePaused:
		return "PAUSED"
	case PhaseFinished:
		return "ARRIVED"
	default:
		return "FAILED"
	}
}

// drawHUD prints both clocks and the dilation factors under the field.
func (g *Game) drawHUD(dst *core.Screen) {
	y := dst.Height() - hudRows
	s := g.State()

	// Craft clock
	x := 1
	x = hudField(dst, x, y, "craft ", fmt.Sprintf("%8.2f d", s.ProperDays()), hudColor)
	x = hudField(dst, x, y, "  γv ", fmt.Sprintf("%6.3f", s.VelocityGamma), colorOf(physics.GammaColor(s.VelocityGamma)))
	x = hudField(dst, x, y, "  γg ", fmt.Sprintf("%6.3f", s.GravGamma), colorOf(physics.GammaColor(s.GravGamma)))
	hudField(dst, x, y, "  v ", fmt.Sprintf("%.3fc", s.Speed), hudColor)

	// Observer clock
	x = 1
	x = hudField(dst, x, y+1, "world ", fmt.Sprintf("%8.2f d", s.ObserverDays()), hudColor)
	x = hudField(dst, x, y+1, "  Δ ", fmt.Sprintf("%.2f d", s.ObserverDays()-s.ProperDays()), hudColor)
	x = hudField(dst, x, y+1, "  rate ", fmt.Sprintf("%.2fx", s.Rate), hudColor)
	grid := "off"
	if s.GridVisible {
		grid = "on"
	}
	hudField(dst, x, y+1, "  grid ", grid, hudColor)

	keys := "[g]rid [space]pause [+/-]rate [r]estart [b]ack"
	if g.phase == PhaseAiming {
		keys = "[←/→]aim [↑/↓]power [space]lock/fire [esc]cancel"
	}
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(keys)-1, y+1, keys, labelColor)
}

// hudField draws "label value" and returns the column after it.
func hudField(dst *core.Screen, x, y int, label, value string, c core.Color) int {
	dst.DrawTextColor(x, y, label, labelColor)
	x += utf8.RuneCountInString(label)
	dst.DrawTextColor(x, y, value, c)
	return x + utf8.RuneCountInString(value)
}

func (g *Game) drawOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseFinished:
		s := g.State()
		g.drawCenteredMessage(dst, successColor,
			"DESTINATION REACHED",
			fmt.Sprintf("craft clock  %.2f d", s.ProperDays()),
			fmt.Sprintf("world clock  %.2f d", s.ObserverDays()),
			"[enter] next level  [r] retry  [b] menu",
		)
	case PhaseFailed:
		g.drawCenteredMessage(dst, failureColor, "MISSION FAILED", g.failReason, "resetting...")
	case PhasePaused:
		g.drawCenteredMessage(dst, hudColor, "PAUSED", "[space] resume")
	}
}

// drawCenteredMessage draws a message box in the middle of the field.
func (g *Game) drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	box := fieldRect(dst.Width(), dst.Height()).Centered(w+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		lc := hudColor
		if i == 0 {
			lc = c
		}
		dst.DrawTextColor(box.X+(box.W-utf8.RuneCountInString(l))/2, box.Y+1+i, l, lc)
	}
}
