package game

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTrailKeepsNewestPoints(t *testing.T) {
	tr := NewTrail(3)
	for i := range 5 {
		tr.Add(r2.Vec{X: float64(i)}, 1+float64(i))
	}

	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	pts := tr.Points()
	for i, want := range []float64{2, 3, 4} {
		if pts[i].Position.X != want || pts[i].Gamma != want+1 {
			t.Errorf("point %d = %+v, want X=%v", i, pts[i], want)
		}
	}

	tr.Clear()
	if tr.Len() != 0 || len(tr.Points()) != 0 {
		t.Error("Clear() left points behind")
	}
}

func TestTrailZeroCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Add(r2.Vec{X: 1}, 1)
	tr.Add(r2.Vec{X: 2}, 1)

	if pts := tr.Points(); len(pts) != 1 || pts[0].Position.X != 2 {
		t.Errorf("Points() = %+v, want only the newest point", pts)
	}
}
