// Package physics implements the relativistic gravity core: field evaluation,
// integration, time dilation, collision queries, launch mapping and the
// warped-lattice field sampler. Everything here is pure and allocation-light;
// the game driver owns all state and calls in once per frame.
package physics

// Physical constants in SI units.
const (
	G = 6.674e-11     // m³ kg⁻¹ s⁻²
	C = 299_792_458.0 // m/s
)

// Length and time units.
const (
	Kilometer = 1000.0
	Day       = 86_400.0
)

// MassFactor scales real stellar masses up so that dilation is visible at
// play-field distances.
const MassFactor = 1e8

// Reference masses, already scaled by MassFactor.
const (
	SunMass   = MassFactor * 1.989e30
	EarthMass = MassFactor * 5.972e24
)

// Play-field geometry. The field is a 16:9 rectangle whose lower-left corner
// is the world origin; y grows upward.
const (
	PixelWidth   = 1280.0
	PixelHeight  = 720.0
	ScreenWidth  = 6e9 * Kilometer
	ScreenHeight = ScreenWidth * PixelHeight / PixelWidth
	UnitRadius   = 6e7 * Kilometer
)

// DaysPerSecond is simulated time per wall-clock second at rate 1.
const DaysPerSecond = 0.1

// MinDistance is the floor applied to every source distance before division.
const MinDistance = 1.0

// MaxSpeed bounds integrated speeds strictly below light speed.
const MaxSpeed = C * 0.999

// SchwarzschildRadius returns 2Gm/c².
func SchwarzschildRadius(mass float64) float64 {
	return 2 * G * mass / (C * C)
}

// SimSeconds converts wall-clock seconds into simulated seconds at rate 1.
func SimSeconds(wall float64) float64 {
	return wall * DaysPerSecond * Day
}
