package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-relativity/internal/core"
	"github.com/vovakirdan/tui-relativity/internal/physics"
)

// handleAim applies one tick of launch input and reports whether the craft
// was fired.
func (g *Game) handleAim(in core.InputFrame) bool {
	before := g.launch

	// Keyboard rotation only moves a free aim; a locked aim keeps its angle.
	if g.launch.Phase == physics.LaunchIdle {
		step := g.cfg.Launch.AimStepDegrees * math.Pi / 180
		if in.Has(core.ActionAimLeft) {
			g.aim = normalizeAngle(g.aim + step)
		}
		if in.Has(core.ActionAimRight) {
			g.aim = normalizeAngle(g.aim - step)
		}
	}

	if in.Has(core.ActionPowerUp) || in.Has(core.ActionPowerDown) {
		delta := g.cfg.Launch.PowerStep
		if in.Has(core.ActionPowerDown) {
			delta = -delta
		}
		g.launch = g.launch.Aim(g.aim)
		g.power = math.Max(0, math.Min(1, g.power+delta))
		g.launch = g.launch.Drag(g.power)
	}

	if in.Has(core.ActionCancel) {
		g.cancelAim()
	}

	for _, ev := range in.Pointers {
		if g.pointer(ev) {
			return true
		}
	}

	if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) {
		if g.launch.Phase == physics.LaunchIdle {
			g.launch = g.launch.Aim(g.aim)
		} else if g.release() {
			return true
		}
	}

	if g.launch != before {
		g.updatePreview()
	}
	return false
}

// pointer handles one mouse event. Press locks the aim toward the cursor,
// dragging away from the craft sets the power and releasing fires.
func (g *Game) pointer(ev core.PointerEvent) bool {
	fx, fy := g.viewport(false).ToField(ev.X, ev.Y)
	cursor := r2.Vec{X: fx, Y: fy}
	craft := g.bodies[0].Position

	switch ev.Kind {
	case core.PointerPress:
		if g.launch.Phase == physics.LaunchIdle {
			g.aim = g.angleTo(cursor)
			g.launch = g.launch.Aim(g.aim)
		}
	case core.PointerDrag:
		maxDrag := g.cfg.Launch.MaxDragFraction * physics.ScreenWidth
		power := physics.PowerFromDrag(r2.Norm(r2.Sub(cursor, craft)), maxDrag)
		if g.launch.Phase != physics.LaunchIdle {
			g.power = power
		}
		g.launch = g.launch.Drag(power)
	case core.PointerRelease:
		return g.release()
	case core.PointerCancel:
		g.cancelAim()
	}
	return false
}

// release ends the current gesture and fires when it carried power.
func (g *Game) release() bool {
	angle, power := g.launch.Angle, g.launch.Power
	next, fired := g.launch.Release()
	g.launch = next
	g.power = 0
	g.preview = nil
	if !fired {
		return false
	}
	return g.Launch(angle, power)
}

func (g *Game) cancelAim() {
	g.launch = g.launch.Cancel()
	g.power = 0
	g.preview = nil
}

// updatePreview predicts the flight for the current launch by running the
// physics core on a copy of the level.
func (g *Game) updatePreview() {
	g.preview = nil
	steps := g.cfg.Assist.PreviewSteps
	if steps == 0 || g.launch.Phase != physics.LaunchLaunching {
		return
	}

	bodies := make([]physics.Body, len(g.bodies))
	copy(bodies, g.bodies)
	bodies[0].Velocity = g.curve.Velocity(g.launch.Angle, g.launch.Power, physics.C)

	f := g.frame(g.bounds.Default)
	f.Bodies = bodies

	points := make([]r2.Vec, 0, steps)
	for range steps {
		physics.StepAll(f.Bodies, f.Masses, f.Sources, f.Elapsed, f.Rate)
		points = append(points, bodies[0].Position)
		if g.predictedHit(bodies) {
			break
		}
	}
	g.preview = points
}

func (g *Game) predictedHit(bodies []physics.Body) bool {
	for _, b := range bodies[1:] {
		if physics.HasCollided(bodies[0], b) {
			return true
		}
	}
	for _, b := range g.static {
		if physics.HasCollided(bodies[0], b.Body) {
			return true
		}
	}
	return false
}

// Preview returns the predicted flight path for the current launch, if any.
func (g *Game) Preview() []r2.Vec {
	return g.preview
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// aimFrequency is the angular frequency of the aim line spring.
const aimFrequency = 12.0

// easeAim moves the drawn aim length one tick toward the gesture's power.
func (g *Game) easeAim() {
	target := 0.0
	if g.phase == PhaseAiming && g.launch.Phase == physics.LaunchLaunching {
		target = g.launch.Power
	}
	g.shownPower, g.shownVel = g.aimSpring.Update(g.shownPower, g.shownVel, target)
	g.shownPower = math.Max(0, math.Min(1, g.shownPower))
}
