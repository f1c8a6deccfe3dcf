// Package core provides the terminal-facing primitives shared by the game and
// the platform layer: a colored cell buffer, geometry helpers and semantic
// input. It imports nothing outside the standard library.
package core

import "math"

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}

// Viewport maps a continuous field onto a block of cells. Field y grows
// upward while cell rows grow downward. ShiftX/ShiftY offset the whole image
// by whole cells (camera shake).
type Viewport struct {
	Cells  Rect
	FieldW float64
	FieldH float64
	ShiftX int
	ShiftY int
}

// ToCell returns the cell under the field point (x, y). Points off the field
// map to cells outside Cells; callers rely on Screen clipping.
func (v Viewport) ToCell(x, y float64) (int, int) {
	col := int(math.Floor(x / v.FieldW * float64(v.Cells.W)))
	row := int(math.Floor((1 - y/v.FieldH) * float64(v.Cells.H)))
	// The far edges belong to the last column and the bottom row.
	if x == v.FieldW {
		col = v.Cells.W - 1
	}
	if y == 0 {
		row = v.Cells.H - 1
	}
	return v.Cells.X + col + v.ShiftX, v.Cells.Y + row + v.ShiftY
}

// ToField returns the field point at the center of cell (cx, cy).
func (v Viewport) ToField(cx, cy int) (float64, float64) {
	fx := (float64(cx-v.Cells.X-v.ShiftX) + 0.5) / float64(v.Cells.W) * v.FieldW
	fy := (1 - (float64(cy-v.Cells.Y-v.ShiftY)+0.5)/float64(v.Cells.H)) * v.FieldH
	return fx, fy
}

// CellsX converts a horizontal field length into cells.
func (v Viewport) CellsX(d float64) float64 {
	return d / v.FieldW * float64(v.Cells.W)
}

// CellsY converts a vertical field length into cells.
func (v Viewport) CellsY(d float64) float64 {
	return d / v.FieldH * float64(v.Cells.H)
}
