package physics

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// FieldSample is one lattice vertex: its rest position, where the field
// pushes it, and the values that produced the push. Positions are in lattice
// (pixel) space.
type FieldSample struct {
	Grid         r2.Vec
	Displaced    r2.Vec
	Magnitude    float64
	Displacement float64
}

// Lattice describes the visualization grid laid over the play field.
// Cols and Rows count cells; the grid has (Cols+1)·(Rows+1) vertices spanning
// Width×Height pixels, which map onto WorldWidth×WorldHeight meters.
type Lattice struct {
	Cols   int
	Rows   int
	Width  float64
	Height float64

	WorldWidth  float64
	WorldHeight float64

	ReferenceStrength float64 // m/s² normalizing the log curve
	DisplacementScale float64 // pixels per unit of ln(1 + |a|/ref)
	MaxDisplacement   float64 // pixel cap
}

// DefaultLattice is a 40×24 grid over the full play field.
func DefaultLattice() Lattice {
	return Lattice{
		Cols:              40,
		Rows:              24,
		Width:             PixelWidth,
		Height:            PixelHeight,
		WorldWidth:        ScreenWidth,
		WorldHeight:       ScreenHeight,
		ReferenceStrength: 50,
		DisplacementScale: 18,
		MaxDisplacement:   80,
	}
}

// Displacement maps a field magnitude onto a capped pixel offset.
func (l Lattice) Displacement(magnitude float64) float64 {
	if magnitude < fieldFloor {
		return 0
	}
	d := math.Log1p(magnitude/l.ReferenceStrength) * l.DisplacementScale
	return math.Min(d, l.MaxDisplacement)
}

// Sample evaluates the field at every vertex. It never touches gameplay
// state and works with an empty source list.
func (l Lattice) Sample(sources []MassSource) LatticeFrame {
	cols, rows := l.Cols+1, l.Rows+1
	frame := LatticeFrame{
		Cols:    cols,
		Rows:    rows,
		Samples: make([]FieldSample, 0, cols*rows),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			fx := float64(col) / float64(l.Cols)
			fy := float64(row) / float64(l.Rows)

			grid := r2.Vec{X: fx * l.Width, Y: fy * l.Height}
			world := r2.Vec{X: fx * l.WorldWidth, Y: fy * l.WorldHeight}

			mag, dir := FieldAt(world, sources)
			disp := l.Displacement(mag)
			if toward, ok := dampedPull(world, sources); ok {
				disp = l.MaxDisplacement
				if dir == (r2.Vec{}) {
					dir = toward
				}
			}

			frame.Samples = append(frame.Samples, FieldSample{
				Grid:         grid,
				Displaced:    r2.Add(grid, r2.Scale(disp, dir)),
				Magnitude:    mag,
				Displacement: disp,
			})
			frame.MaxDisplacement = math.Max(frame.MaxDisplacement, disp)
		}
	}
	return frame
}

// dampedPull reports whether point lies within two Schwarzschild radii of a
// source, where the damped pull shrinks as mass grows, and the unit direction
// toward the first such source.
func dampedPull(point r2.Vec, sources []MassSource) (r2.Vec, bool) {
	for _, s := range sources {
		delta := r2.Sub(s.Position, point)
		d := r2.Norm(delta)
		if d == 0 {
			continue
		}
		if math.Max(d, MinDistance) <= 2*SchwarzschildRadius(s.Mass) {
			return r2.Scale(1/d, delta), true
		}
	}
	return r2.Vec{}, false
}

// LatticeFrame is one sampled lattice in row-major order. Cols and Rows
// count vertices here.
type LatticeFrame struct {
	Cols            int
	Rows            int
	Samples         []FieldSample
	MaxDisplacement float64
}

// At returns the vertex at (col, row).
func (f LatticeFrame) At(col, row int) FieldSample {
	return f.Samples[row*f.Cols+col]
}

// Segment is a colored line between two displaced vertices.
type Segment struct {
	Start r2.Vec
	End   r2.Vec
	Color colorful.Color
	Alpha float64
	Level float64 // normalized curvature in [0,1]
}

// Segments connects horizontally and vertically adjacent vertices. Horizontal
// segments come first, row by row.
func (f LatticeFrame) Segments() []Segment {
	if f.Cols == 0 || f.Rows == 0 {
		return nil
	}
	norm := f.MaxDisplacement
	if norm < 1e-6 {
		norm = 1
	}

	segs := make([]Segment, 0, f.Rows*(f.Cols-1)+(f.Rows-1)*f.Cols)
	for row := 0; row < f.Rows; row++ {
		for col := 0; col+1 < f.Cols; col++ {
			segs = append(segs, segmentBetween(f.At(col, row), f.At(col+1, row), norm))
		}
	}
	for row := 0; row+1 < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			segs = append(segs, segmentBetween(f.At(col, row), f.At(col, row+1), norm))
		}
	}
	return segs
}

func segmentBetween(a, b FieldSample, norm float64) Segment {
	t := clamp01((a.Displacement + b.Displacement) * 0.5 / norm)
	return Segment{
		Start: a.Displaced,
		End:   b.Displaced,
		Color: CurvatureColor(t),
		Alpha: 0.08 + 0.45*t,
		Level: t,
	}
}

// Curvature gradient stops.
var (
	curvatureLow  = colorful.Color{R: 0.2, G: 0.4, B: 1.0}
	curvatureMid  = colorful.Color{R: 0.6, G: 0.2, B: 0.8}
	curvatureHigh = colorful.Color{R: 1.0, G: 0.4, B: 0.1}
)

// CurvatureColor runs blue → purple → orange as t goes 0 → 1.
func CurvatureColor(t float64) colorful.Color {
	t = clamp01(t)
	if t < 0.5 {
		return curvatureLow.BlendRgb(curvatureMid, t*2)
	}
	return curvatureMid.BlendRgb(curvatureHigh, (t-0.5)*2)
}

// Dilation gradient stops.
var (
	dilationCool = colorful.Color{R: 0.2, G: 0.6, B: 1.0}
	dilationWarm = colorful.Color{R: 1.0, G: 0.3, B: 0.0}
)

// GammaColor shades a dilation factor from cool (γ = 1) to warm (γ ≥ 3).
func GammaColor(gamma float64) colorful.Color {
	return dilationCool.BlendRgb(dilationWarm, GammaBlend(gamma))
}

// GammaBlend is the position of gamma on the cool→warm ramp.
func GammaBlend(gamma float64) float64 {
	return clamp01((gamma - 1) / 2)
}
