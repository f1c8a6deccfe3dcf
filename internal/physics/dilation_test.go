package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestVelocityGamma(t *testing.T) {
	if got := VelocityGamma(0, C); got != 1 {
		t.Errorf("VelocityGamma(0) = %v, expected exactly 1", got)
	}

	for _, beta := range []float64{0.01, 0.1, 0.5, 0.9, 0.99, 0.999999} {
		if got := VelocityGamma(beta*C, C); got <= 1 {
			t.Errorf("VelocityGamma(%vc) = %v, expected > 1", beta, got)
		}
	}

	if got := VelocityGamma(0.6*C, C); !almostEqual(got, 1.25, 1e-12) {
		t.Errorf("VelocityGamma(0.6c) = %v, expected 1.25", got)
	}
	if got := VelocityGamma(50, 100); !almostEqual(got, 1/math.Sqrt(0.75), 1e-12) {
		t.Errorf("VelocityGamma(50, 100) = %v", got)
	}
}

func TestVelocityGammaClampsAtLightSpeed(t *testing.T) {
	for _, s := range []float64{C, 2 * C, -C} {
		got := VelocityGamma(s, C)
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("VelocityGamma(%v) = %v, expected finite", s, got)
		}
		if got < 1000 {
			t.Errorf("VelocityGamma(%v) = %v, expected a very large factor", s, got)
		}
	}
}

func TestVelocityGammaMonotonic(t *testing.T) {
	prev := VelocityGamma(0, C)
	for beta := 0.05; beta < 1; beta += 0.05 {
		g := VelocityGamma(beta*C, C)
		if g <= prev {
			t.Fatalf("gamma not increasing at β=%v: %v <= %v", beta, g, prev)
		}
		prev = g
	}
}

func TestGravitationalGammaNoSources(t *testing.T) {
	if got := GravitationalGamma(r2.Vec{X: 7}, nil); got != 1 {
		t.Errorf("GravitationalGamma with no sources = %v, expected exactly 1", got)
	}
}

func TestGravitationalGammaIncreasesWithMass(t *testing.T) {
	point := r2.Vec{X: 1e10}
	prev := 1.0
	for _, m := range []float64{EarthMass, 10 * EarthMass, 100 * EarthMass, 1000 * EarthMass} {
		g := GravitationalGamma(point, []MassSource{{Mass: m}})
		if g <= prev {
			t.Errorf("mass %v: gamma %v not above %v", m, g, prev)
		}
		prev = g
	}
}

func TestGravitationalGammaIncreasesAsDistanceShrinks(t *testing.T) {
	src := []MassSource{{Mass: SunMass}}
	prev := 1.0
	for _, d := range []float64{1e14, 1e13, 5e12, 1e12} {
		g := GravitationalGamma(r2.Vec{X: d}, src)
		if g <= prev {
			t.Errorf("d=%v: gamma %v not above %v", d, g, prev)
		}
		prev = g
	}
}

func TestGravitationalGammaClamp(t *testing.T) {
	src := []MassSource{{Mass: SunMass}}
	for _, d := range []float64{0, 1, SchwarzschildRadius(SunMass)} {
		g := GravitationalGamma(r2.Vec{X: d}, src)
		if !almostEqual(g, 10, 1e-12) {
			t.Errorf("d=%v: gamma = %v, expected clamp at 10", d, g)
		}
	}
}

func TestGravitationalGammaCompoundsMultiplicatively(t *testing.T) {
	point := r2.Vec{}
	a := MassSource{Position: r2.Vec{X: 1e12}, Mass: SunMass}
	b := MassSource{Position: r2.Vec{Y: -2e12}, Mass: 0.5 * SunMass}

	ga := GravitationalGamma(point, []MassSource{a})
	gb := GravitationalGamma(point, []MassSource{b})
	both := GravitationalGamma(point, []MassSource{a, b})

	if !almostEqual(both, ga*gb, 1e-12) {
		t.Errorf("gamma(a,b) = %v, expected product %v", both, ga*gb)
	}

	potential := 1 / math.Sqrt(1-SchwarzschildRadius(a.Mass)/1e12-SchwarzschildRadius(b.Mass)/2e12)
	if almostEqual(both, potential, 1e-9) {
		t.Errorf("gamma(a,b) = %v matches summed-potential form", both)
	}
}

func TestAdvanceClock(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		vg, gg   float64
		prev     float64
		expected float64
	}{
		{"no dilation", 5, 1, 1, 12, 17},
		{"velocity only", 10, 2, 1, 0, 5},
		{"gravity only", 10, 1, 4, 1, 3.5},
		{"both", 12, 2, 3, 0, 2},
		{"zero dt", 0, 3, 3, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AdvanceClock(tc.dt, tc.vg, tc.gg, tc.prev); got != tc.expected {
				t.Errorf("AdvanceClock = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAdvanceClockStrictlyIncreasing(t *testing.T) {
	clock := 0.0
	for i := 0; i < 100; i++ {
		next := AdvanceClock(0.1, 1.5, 7.3, clock)
		if next <= clock {
			t.Fatalf("clock did not advance: %v → %v", clock, next)
		}
		if next-clock >= 0.1 {
			t.Fatalf("dilated clock ran at least as fast as coordinate time")
		}
		clock = next
	}
}

func TestCombinedGamma(t *testing.T) {
	vg, gg := VelocityGamma(0.8*C, C), 1.7
	combined := CombinedGamma(vg, gg)
	if combined < vg || combined < gg {
		t.Errorf("CombinedGamma(%v, %v) = %v, expected ≥ both", vg, gg, combined)
	}
}
