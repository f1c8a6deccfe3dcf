package game

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-relativity/internal/core"
	"github.com/vovakirdan/tui-relativity/internal/levels"
	"github.com/vovakirdan/tui-relativity/internal/physics"
)

// Layout: one title row, the field, then a two-row HUD.
const (
	titleRows = 1
	hudRows   = 2
)

// Visual characters for rendering
const (
	CraftChar       = '◆'
	StarChar        = '█'
	PlanetChar      = '●'
	OrbiterChar     = '○'
	DestinationChar = '▓'
	TrailChar       = '·'
	PreviewChar     = '∙'
	AimChar         = '•'
	TickChar        = '+'
)

// Body colors.
var (
	starColor        = core.RGB(255, 180, 60)
	planetColor      = core.RGB(90, 150, 255)
	orbiterColor     = core.RGB(170, 170, 190)
	destinationColor = core.RGB(80, 220, 120)
	craftColor       = core.RGB(255, 255, 255)
	labelColor       = core.RGB(120, 120, 130)
	previewColor     = core.RGB(150, 150, 150)
)

// starMass separates stars from planets when picking a glyph.
const starMass = 0.1 * physics.SunMass

// arcFractions are the launch speeds marked along the aim line.
var arcFractions = []float64{0.25, 0.5, 0.75, 0.9}

// fieldRect is the area of a w×h screen used by the play field.
func fieldRect(w, h int) core.Rect {
	return core.NewRect(0, titleRows, w, max(1, h-titleRows-hudRows))
}

// viewport maps the play field onto the screen, optionally shaken.
func (g *Game) viewport(shaken bool) core.Viewport {
	vp := core.Viewport{
		Cells:  fieldRect(g.runtime.ScreenW, g.runtime.ScreenH),
		FieldW: physics.ScreenWidth,
		FieldH: physics.ScreenHeight,
	}
	if shaken {
		vp.ShiftX, vp.ShiftY = g.shakeX, g.shakeY
	}
	return vp
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.runtime.ScreenW, g.runtime.ScreenH = dst.Width(), dst.Height()
	vp := g.viewport(true)

	if g.showGrid {
		g.drawLattice(dst, vp)
	}
	g.drawTrail(dst, vp)
	g.drawPreview(dst, vp)
	g.drawBodies(dst, vp)
	if g.phase == PhaseAiming {
		g.drawAim(dst, vp)
	}

	g.drawTitle(dst)
	g.drawHUD(dst)
	g.drawOverlay(dst)
}

func (g *Game) drawLattice(dst *core.Screen, vp core.Viewport) {
	lat := g.cfg.Lattice(vp.Cells.W, vp.Cells.H)
	toWorld := func(p r2.Vec) (int, int) {
		return vp.ToCell(p.X/lat.Width*lat.WorldWidth, p.Y/lat.Height*lat.WorldHeight)
	}

	for _, seg := range lat.Sample(g.Sources()).Segments() {
		x0, y0 := toWorld(seg.Start)
		x1, y1 := toWorld(seg.End)
		c := colorOf(seg.Color).Dim(0.3 + 1.3*seg.Alpha)
		dst.DrawLine(x0, y0, x1, y1, segmentRune(x1-x0, y1-y0), c)
	}
}

// segmentRune picks a box-drawing glyph close to a segment's direction in
// cells.
func segmentRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (g *Game) drawTrail(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.trail.Points() {
		x, y := vp.ToCell(p.Position.X, p.Position.Y)
		dst.SetCell(x, y, TrailChar, colorOf(physics.GammaColor(p.Gamma)))
	}
}

func (g *Game) drawPreview(dst *core.Screen, vp core.Viewport) {
	for i, p := range g.preview {
		if i%2 == 1 {
			continue
		}
		x, y := vp.ToCell(p.X, p.Y)
		dst.SetCell(x, y, PreviewChar, previewColor)
	}
}

func (g *Game) drawBodies(dst *core.Screen, vp core.Viewport) {
	for _, b := range g.static {
		g.drawBody(dst, vp, b, b.Body)
	}
	for i, b := range g.orbiters {
		g.drawBody(dst, vp, b, g.bodies[i+1])
	}

	craft := g.bodies[0]
	x, y := vp.ToCell(craft.Position.X, craft.Position.Y)
	c := craftColor
	if g.phase != PhaseAiming {
		c = colorOf(physics.GammaColor(physics.CombinedGamma(g.traveler.VelocityGamma, g.traveler.GravGamma)))
	}
	dst.SetCell(x, y, CraftChar, c)
}

func (g *Game) drawBody(dst *core.Screen, vp core.Viewport, b levels.Body, at physics.Body) {
	glyph, c := PlanetChar, planetColor
	switch {
	case b.Role == levels.RoleDestination:
		glyph, c = DestinationChar, destinationColor
	case b.Role == levels.RoleOrbiter:
		glyph, c = OrbiterChar, orbiterColor
	case b.Mass >= starMass:
		glyph, c = StarChar, starColor
	}

	cx, cy := vp.ToCell(at.Position.X, at.Position.Y)
	ry := vp.CellsY(at.Radius)
	dst.DrawDisc(cx, cy, vp.CellsX(at.Radius), ry, glyph, c)

	label := b.Name
	dst.DrawTextColor(cx-len([]rune(label))/2, cy+int(ry)+1, label, labelColor)
}

// drawAim shows the launch direction, a line whose length follows the
// effective power, and the speed marks along it.
func (g *Game) drawAim(dst *core.Screen, vp core.Viewport) {
	craft := g.bodies[0].Position
	cx, cy := vp.ToCell(craft.X, craft.Y)

	angle, power := g.aim, 0.0
	c := labelColor
	switch g.launch.Phase {
	case physics.LaunchAimLocked:
		angle, c = g.launch.Angle, craftColor
	case physics.LaunchLaunching:
		angle, power = g.launch.Angle, g.launch.Power
		c = colorOf(physics.GammaColor(physics.VelocityGamma(g.curve.Fraction(power)*physics.C, physics.C)))
	}

	end := func(p float64) (int, int) {
		l := aimReach * (0.15 + 0.85*g.curve.MapPower(p))
		return cx + int(math.Round(vp.CellsX(math.Cos(angle)*l))), cy - int(math.Round(vp.CellsY(math.Sin(angle)*l)))
	}

	x1, y1 := end(g.shownPower)
	dst.DrawLine(cx, cy, x1, y1, AimChar, c)
	dst.SetCell(cx, cy, CraftChar, craftColor)

	if g.cfg.Assist.ArcTicks && g.launch.Phase != physics.LaunchIdle {
		for _, f := range arcFractions {
			tx, ty := end(g.curve.PowerForFraction(f))
			dst.SetCell(tx, ty, TickChar, labelColor)
			dst.DrawTextColor(tx+1, ty-1, fmt.Sprintf("%.2gc", f), labelColor)
		}
	}

	if g.launch.Phase == physics.LaunchLaunching {
		dst.DrawTextColor(x1+2, y1, fmt.Sprintf("v = %.2fc", g.curve.Fraction(power)), c)
	}
}

// aimReach is the aim line length at full power, in meters.
const aimReach = 0.3 * physics.ScreenWidth

func colorOf(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}
