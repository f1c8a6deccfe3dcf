package physics

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Body is anything with extent that moves or can be hit: the traveler,
// orbiting sources, static obstacles and the destination.
type Body struct {
	Position r2.Vec
	Velocity r2.Vec
	Radius   float64
}

// Step advances body by dt·rate with semi-implicit Euler: velocity first,
// then position with the new velocity. A zero effective step changes nothing.
func Step(body *Body, sources []MassSource, dt, rate float64) {
	h := dt * rate
	if h == 0 {
		return
	}
	kick(body, Acceleration(body.Position, sources), h)
}

// StepAll advances several bodies that attract each other as well as being
// pulled by the fixed sources. masses runs parallel to bodies; a zero entry
// marks a body that feels gravity but exerts none. Every acceleration is
// taken from the start-of-step positions and a body never pulls on itself.
func StepAll(bodies []Body, masses []float64, fixed []MassSource, dt, rate float64) {
	h := dt * rate
	if h == 0 || len(bodies) == 0 {
		return
	}

	accs := make([]r2.Vec, len(bodies))
	for i := range bodies {
		accs[i] = Acceleration(bodies[i].Position, fixed)
		for j := range bodies {
			if j == i || j >= len(masses) || masses[j] <= 0 {
				continue
			}
			src := MassSource{Position: bodies[j].Position, Mass: masses[j]}
			accs[i] = r2.Add(accs[i], pull(bodies[i].Position, src))
		}
	}

	for i := range bodies {
		kick(&bodies[i], accs[i], h)
	}
}

func kick(body *Body, acc r2.Vec, h float64) {
	body.Velocity = LimitSpeed(r2.Add(body.Velocity, r2.Scale(h, acc)))
	body.Position = r2.Add(body.Position, r2.Scale(h, body.Velocity))
}

// LimitSpeed rescales v so its magnitude does not exceed MaxSpeed.
func LimitSpeed(v r2.Vec) r2.Vec {
	speed := r2.Norm(v)
	if speed <= MaxSpeed {
		return v
	}
	return r2.Scale(MaxSpeed/speed, v)
}
