package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorOrange)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorOrange {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	s.Set(5, 5, 'Y')
	if c := s.GetCell(5, 5); c.Rune != 'Y' || c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %+v", c)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0) != blank {
		t.Error("out of bounds reads should return a blank cell")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(4, 3)
	s.Fill('#', ColorGray)
	if c := s.GetCell(3, 2); c.Rune != '#' || c.Color != ColorGray {
		t.Errorf("Fill did not reach the corner: %+v", c)
	}

	s.Clear()
	if s.String() != "    \n    \n    " {
		t.Errorf("Clear left %q", s.String())
	}
}

func TestScreenDrawTextUnicode(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawTextColor(0, 0, "γ=1.25 t", ColorCyan)

	if got := s.Row(0); got != "γ=1.25 t    " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(1, 0); c.Rune != '=' || c.Color != ColorCyan {
		t.Errorf("multi-byte rune shifted following cells: %+v", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "γγ", ColorDefault)
	if got := s.Row(0); got != "    γγ    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 2, 2), '█', ColorWhite)
	if s.Get(1, 1) != '█' || s.Get(2, 2) != '█' || s.Get(3, 3) != ' ' {
		t.Errorf("DrawRect painted wrong cells:\n%s", s.String())
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 6, 4), ColorBlue)
	expected := "┌────┐\n│    │\n│    │\n└────┘"
	if s.String() != expected {
		t.Errorf("DrawBox =\n%s\nexpected\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Color != ColorBlue {
		t.Errorf("box border not colored")
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expected       string
	}{
		{"horizontal", 0, 1, 4, 1, "     \n*****\n     "},
		{"vertical", 2, 0, 2, 2, "  *  \n  *  \n  *  "},
		{"diagonal", 0, 0, 2, 2, "*    \n *   \n  *  "},
		{"reversed", 4, 2, 0, 2, "     \n     \n*****"},
		{"single cell", 3, 0, 3, 0, "   * \n     \n     "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '*', ColorDefault)
			if s.String() != tc.expected {
				t.Errorf("got\n%s\nexpected\n%s", s.String(), tc.expected)
			}
		})
	}
}

func TestScreenDrawLineClips(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawLine(-5, 1, 10, 1, '-', ColorDefault)
	if s.Row(1) != "---" {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenDrawDisc(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawDisc(3, 2, 2, 1, 'o', ColorYellow)
	expected := "       \n   o   \n ooooo \n   o   \n       "
	if s.String() != expected {
		t.Errorf("DrawDisc =\n%s\nexpected\n%s", s.String(), expected)
	}

	s.Clear()
	s.DrawDisc(0, 0, 0.2, 0.1, '.', ColorDefault)
	if s.Get(0, 0) != '.' {
		t.Errorf("tiny disc should still paint its center")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if result := s.String(); result != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", result)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorGreen)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorGreen {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Get(14, 7) != ' ' {
		t.Errorf("new area should be blank")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}
