package game

import "gonum.org/v1/gonum/spatial/r2"

// TrailPoint is one recorded craft position and the combined dilation
// factor it had there.
type TrailPoint struct {
	Position r2.Vec
	Gamma    float64
}

// Trail is a fixed-size ring of the most recent flight positions.
type Trail struct {
	points []TrailPoint
	start  int
	size   int
}

// NewTrail creates a trail that keeps at most capacity points.
func NewTrail(capacity int) *Trail {
	return &Trail{points: make([]TrailPoint, max(1, capacity))}
}

// Add records a point, dropping the oldest one when full.
func (t *Trail) Add(pos r2.Vec, gamma float64) {
	idx := (t.start + t.size) % len(t.points)
	t.points[idx] = TrailPoint{Position: pos, Gamma: gamma}
	if t.size < len(t.points) {
		t.size++
		return
	}
	t.start = (t.start + 1) % len(t.points)
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.size
}

// Points returns the stored points, oldest first.
func (t *Trail) Points() []TrailPoint {
	out := make([]TrailPoint, t.size)
	for i := range t.size {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

// Clear drops every point.
func (t *Trail) Clear() {
	t.start, t.size = 0, 0
}
