package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("edges = %d, %d", r.Right(), r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	got := NewRect(0, 0, 80, 24).Centered(20, 6)
	if got != NewRect(30, 9, 20, 6) {
		t.Errorf("Centered = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestViewportToCell(t *testing.T) {
	v := Viewport{Cells: NewRect(0, 1, 40, 20), FieldW: 1280, FieldH: 720}

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"bottom-left corner", 0, 0, 0, 20},
		{"top-right corner", 1280, 720, 39, 1},
		{"center", 640, 360, 20, 11},
		{"inside first cell", 31, 719, 0, 1},
		{"off field right", 1400, 360, 43, 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.ToCell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Cells: NewRect(3, 2, 50, 18), FieldW: 6e12, FieldH: 3.375e12, ShiftX: 1, ShiftY: -1}
	for cy := 2; cy < 20; cy += 3 {
		for cx := 3; cx < 53; cx += 7 {
			fx, fy := v.ToField(cx, cy)
			gx, gy := v.ToCell(fx, fy)
			if gx != cx || gy != cy {
				t.Errorf("cell (%d, %d) → field (%v, %v) → cell (%d, %d)", cx, cy, fx, fy, gx, gy)
			}
		}
	}
}

func TestViewportScale(t *testing.T) {
	v := Viewport{Cells: NewRect(0, 0, 80, 20), FieldW: 160, FieldH: 40}
	if got := v.CellsX(20); got != 10 {
		t.Errorf("CellsX(20) = %v", got)
	}
	if got := v.CellsY(20); got != 10 {
		t.Errorf("CellsY(20) = %v", got)
	}
}
