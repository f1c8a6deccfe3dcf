package physics

import "gonum.org/v1/gonum/spatial/r2"

// Frame is everything the core needs for one simulation step. Sources never
// move. Bodies are advanced in place; Masses runs parallel to Bodies and
// marks which of them gravitate (zero for the traveler and other test
// particles). Traveler indexes the body whose clock is being tracked.
type Frame struct {
	Elapsed  float64
	Rate     float64
	Sources  []MassSource
	Bodies   []Body
	Masses   []float64
	Traveler int
}

// FrameResult is the traveler's state after a step.
type FrameResult struct {
	Position            r2.Vec
	Velocity            r2.Vec
	VelocityGamma       float64
	GravGamma           float64
	ProperTimeIncrement float64
}

// Advance integrates every body and then measures the traveler's dilation
// at its new position. With a zero rate nothing moves and the proper-time
// increment is zero, but the gammas are still reported.
func Advance(f Frame) FrameResult {
	StepAll(f.Bodies, f.Masses, f.Sources, f.Elapsed, f.Rate)

	if f.Traveler < 0 || f.Traveler >= len(f.Bodies) {
		return FrameResult{}
	}
	tr := f.Bodies[f.Traveler]
	vg := VelocityGamma(r2.Norm(tr.Velocity), C)
	gg := GravitationalGamma(tr.Position, f.SourcesFor(f.Traveler))

	return FrameResult{
		Position:            tr.Position,
		Velocity:            tr.Velocity,
		VelocityGamma:       vg,
		GravGamma:           gg,
		ProperTimeIncrement: AdvanceClock(f.Elapsed*f.Rate, vg, gg, 0),
	}
}

// SourcesFor lists every gravitating mass seen by body i: the fixed sources
// plus every other massive body. Pass -1 to include all bodies.
func (f Frame) SourcesFor(i int) []MassSource {
	out := make([]MassSource, 0, len(f.Sources)+len(f.Bodies))
	out = append(out, f.Sources...)
	for j, b := range f.Bodies {
		if j == i || j >= len(f.Masses) || f.Masses[j] <= 0 {
			continue
		}
		out = append(out, MassSource{Position: b.Position, Mass: f.Masses[j]})
	}
	return out
}

// Traveler is the tracked body together with its clock and the dilation
// factors measured on the last frame.
type Traveler struct {
	Body
	ProperTime    float64
	VelocityGamma float64
	GravGamma     float64
}

// Apply folds a frame result into the traveler.
func (t *Traveler) Apply(r FrameResult) {
	t.Position = r.Position
	t.Velocity = r.Velocity
	t.VelocityGamma = r.VelocityGamma
	t.GravGamma = r.GravGamma
	t.ProperTime += r.ProperTimeIncrement
}

// Speed is the traveler's speed as a fraction of c.
func (t Traveler) Speed() float64 {
	return r2.Norm(t.Velocity) / C
}
