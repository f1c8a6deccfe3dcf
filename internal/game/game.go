// Package game drives one level: it turns input into launches, advances the
// physics core once per tick, keeps both clocks and decides the outcome.
package game

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/harmonica"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-relativity/internal/config"
	"github.com/vovakirdan/tui-relativity/internal/core"
	"github.com/vovakirdan/tui-relativity/internal/levels"
	"github.com/vovakirdan/tui-relativity/internal/physics"
)

// Phase is where a level run currently is.
type Phase uint8

const (
	PhaseAiming   Phase = iota // craft at rest, launch input accepted
	PhaseRunning               // in flight
	PhasePaused                // in flight, simulation frozen
	PhaseFinished              // reached the destination
	PhaseFailed                // crashed or lost, waiting to reset
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	case PhaseFailed:
		return "failed"
	default:
		return "aiming"
	}
}

// Event is something that happened during a single Step.
type Event uint8

const (
	EventLaunched Event = iota + 1
	EventFinished
	EventFailed
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventLaunched:
		return "launched"
	case EventFinished:
		return "finished"
	case EventFailed:
		return "failed"
	case EventReset:
		return "reset"
	default:
		return "none"
	}
}

// StepResult is returned by Step.
type StepResult struct {
	State  State
	Events []Event
}

// Has reports whether ev happened during the step.
func (r StepResult) Has(ev Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}

// Game is a single level in play.
type Game struct {
	level   levels.Level
	cfg     config.PhysicsConfig
	runtime core.RuntimeConfig

	curve  physics.LaunchCurve
	bounds physics.RateBounds

	phase    Phase
	launch   physics.LaunchState
	aim      float64 // keyboard aim, radians
	power    float64 // keyboard power in [0,1]
	rate     float64
	showGrid bool

	traveler physics.Traveler
	bodies   []physics.Body // traveler first, then orbiters
	masses   []float64
	orbiters []levels.Body
	static   []levels.Body
	sources  []physics.MassSource

	observerTime   float64
	launchFraction float64
	failReason     string
	failTimer      float64
	trauma         float64
	shakeX, shakeY int

	// aim line length eases toward the launch power
	aimSpring  harmonica.Spring
	shownPower float64
	shownVel   float64

	trail   *Trail
	preview []r2.Vec
	rng     *rand.Rand
	ticks   int
}

// New creates a game for level. Call Reset before stepping it.
func New(level levels.Level, cfg config.PhysicsConfig) *Game {
	return &Game{
		level:    level,
		cfg:      cfg,
		curve:    cfg.LaunchCurve(),
		bounds:   cfg.RateBounds(),
		showGrid: cfg.Grid.Visible,
		trail:    NewTrail(cfg.Trail.MaxPoints),
	}
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Config returns the physics config the game runs with.
func (g *Game) Config() config.PhysicsConfig {
	return g.cfg
}

// Reset starts the level over. The simulation rate returns to its default.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.aimSpring = harmonica.NewSpring(harmonica.FPS(max(1, cfg.TickRate)), aimFrequency, 1)
	g.rate = g.bounds.Default
	g.trauma = 0
	g.restart()
}

// LoadLevel swaps in another level and starts it.
func (g *Game) LoadLevel(level levels.Level) {
	g.level = level
	g.Reset(g.runtime)
}

// Resize updates the screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// restart puts every body back where the level places it and clears both
// clocks. The rate and any running shake survive.
func (g *Game) restart() {
	g.phase = PhaseAiming
	g.launch = physics.LaunchState{}
	g.power = 0
	g.observerTime = 0
	g.launchFraction = 0
	g.failReason = ""
	g.failTimer = 0
	g.ticks = 0
	g.trail.Clear()
	g.preview = nil
	g.shownPower, g.shownVel = 0, 0

	g.static = g.level.Static()
	g.orbiters = g.level.Orbiters()

	g.sources = make([]physics.MassSource, 0, len(g.static))
	for _, b := range g.static {
		g.sources = append(g.sources, b.Source())
	}

	g.bodies = make([]physics.Body, 0, len(g.orbiters)+1)
	g.masses = make([]float64, 0, len(g.orbiters)+1)
	g.bodies = append(g.bodies, g.level.Player)
	g.masses = append(g.masses, 0)
	for _, b := range g.orbiters {
		g.bodies = append(g.bodies, b.Body)
		g.masses = append(g.masses, b.Mass)
	}

	g.traveler = physics.Traveler{Body: g.level.Player}
	g.aim = g.angleTo(g.level.Destination().Position)

	// Measure the resting dilation so the HUD is live before launch.
	g.traveler.Apply(physics.Advance(g.frame(0)))
}

func (g *Game) frame(rate float64) physics.Frame {
	return physics.Frame{
		Elapsed:  g.cfg.SimSeconds(g.runtime.FrameSeconds()),
		Rate:     rate,
		Sources:  g.sources,
		Bodies:   g.bodies,
		Masses:   g.masses,
		Traveler: 0,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	var events []Event
	g.ticks++

	if in.Has(core.ActionToggleGrid) {
		g.showGrid = !g.showGrid
	}
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return StepResult{State: g.State(), Events: []Event{EventReset}}
	}

	switch g.phase {
	case PhaseAiming:
		if g.handleAim(in) {
			events = append(events, EventLaunched)
		}
		g.traveler.Apply(physics.Advance(g.frame(0)))

	case PhaseRunning, PhasePaused:
		if in.Has(core.ActionPause) {
			if g.phase == PhaseRunning {
				g.phase = PhasePaused
			} else {
				g.phase = PhaseRunning
			}
		}
		if g.phase == PhaseRunning {
			if in.Has(core.ActionFaster) {
				g.rate = g.bounds.Up(g.rate)
			}
			if in.Has(core.ActionSlower) {
				g.rate = g.bounds.Down(g.rate)
			}
		}
		if ev, ok := g.fly(); ok {
			events = append(events, ev)
		}

	case PhaseFailed:
		g.failTimer -= g.runtime.FrameSeconds()
		if g.failTimer <= 0 {
			g.restart()
			events = append(events, EventReset)
		}
	}

	g.easeAim()
	g.updateShake()
	return StepResult{State: g.State(), Events: events}
}

// Launch fires the craft at angle with raw power. It only works while
// aiming and reports whether the craft left.
func (g *Game) Launch(angle, power float64) bool {
	if g.phase != PhaseAiming {
		return false
	}
	g.launchFraction = g.curve.Fraction(power)
	g.bodies[0].Velocity = g.curve.Velocity(angle, power, physics.C)
	g.traveler.Velocity = g.bodies[0].Velocity
	g.launch = physics.LaunchState{}
	g.preview = nil
	g.phase = PhaseRunning
	g.trail.Add(g.bodies[0].Position, 1)
	return true
}

// fly advances the flight by one frame and checks the outcome.
func (g *Game) fly() (Event, bool) {
	rate := g.rate
	if g.phase == PhasePaused {
		rate = 0
	}
	f := g.frame(rate)
	g.traveler.Apply(physics.Advance(f))

	if rate == 0 {
		return 0, false
	}
	g.observerTime += f.Elapsed * rate
	g.trail.Add(g.traveler.Position, physics.CombinedGamma(g.traveler.VelocityGamma, g.traveler.GravGamma))

	// Crashes win over arrivals when both happen on the same frame.
	craft := g.bodies[0]
	for i, b := range g.orbiters {
		if physics.HasCollided(craft, g.bodies[i+1]) {
			g.fail("crashed into " + b.Name)
			return EventFailed, true
		}
	}
	for _, b := range g.static {
		if b.Role == levels.RoleObstacle && physics.HasCollided(craft, b.Body) {
			g.fail("crashed into " + b.Name)
			return EventFailed, true
		}
	}
	if g.lost() {
		g.fail("lost in deep space")
		return EventFailed, true
	}
	if dest := g.level.Destination(); physics.HasCollided(craft, dest.Body) {
		g.phase = PhaseFinished
		return EventFinished, true
	}
	return 0, false
}

func (g *Game) lost() bool {
	p := g.traveler.Position
	mx := g.cfg.Outcome.LostMargin * physics.ScreenWidth
	my := g.cfg.Outcome.LostMargin * physics.ScreenHeight
	return p.X < -mx || p.X > physics.ScreenWidth+mx || p.Y < -my || p.Y > physics.ScreenHeight+my
}

func (g *Game) fail(reason string) {
	g.phase = PhaseFailed
	g.failReason = reason
	g.failTimer = g.cfg.Outcome.FailureResetSeconds
	g.trauma = math.Min(1, g.trauma+g.cfg.Outcome.ShakeTrauma)
}

// updateShake decays the trauma and rolls a new camera offset. The offset
// grows with the square of the trauma.
func (g *Game) updateShake() {
	g.trauma = math.Max(0, g.trauma-g.cfg.Outcome.ShakeDecay*g.runtime.FrameSeconds())
	if g.trauma == 0 {
		g.shakeX, g.shakeY = 0, 0
		return
	}
	s := g.trauma * g.trauma
	g.shakeX = int(math.Round(s * maxShakeX * (g.rng.Float64()*2 - 1)))
	g.shakeY = int(math.Round(s * maxShakeY * (g.rng.Float64()*2 - 1)))
}

const (
	maxShakeX = 3.0
	maxShakeY = 1.0
)

func (g *Game) angleTo(p r2.Vec) float64 {
	d := r2.Sub(p, g.level.Player.Position)
	return math.Atan2(d.Y, d.X)
}

// Sources returns every gravitating mass at its current position.
func (g *Game) Sources() []physics.MassSource {
	return g.frame(0).SourcesFor(-1)
}

// State is a snapshot of the run for the platform layer.
type State struct {
	Phase          Phase
	LevelID        string
	Launch         physics.LaunchState
	Aim            float64
	Power          float64
	ProperTime     float64 // seconds on the craft's clock
	ObserverTime   float64 // seconds on the distant observer's clock
	VelocityGamma  float64
	GravGamma      float64
	Speed          float64 // fraction of c
	Rate           float64
	LaunchFraction float64
	FailReason     string
	GridVisible    bool
	Ticks          int
}

// ProperDays is the craft's clock in days.
func (s State) ProperDays() float64 { return s.ProperTime / physics.Day }

// ObserverDays is the observer's clock in days.
func (s State) ObserverDays() float64 { return s.ObserverTime / physics.Day }

// Gamma is the combined dilation factor.
func (s State) Gamma() float64 { return physics.CombinedGamma(s.VelocityGamma, s.GravGamma) }

// State returns the current run snapshot.
func (g *Game) State() State {
	return State{
		Phase:          g.phase,
		LevelID:        g.level.ID,
		Launch:         g.launch,
		Aim:            g.aim,
		Power:          g.power,
		ProperTime:     g.traveler.ProperTime,
		ObserverTime:   g.observerTime,
		VelocityGamma:  g.traveler.VelocityGamma,
		GravGamma:      g.traveler.GravGamma,
		Speed:          g.traveler.Speed(),
		Rate:           g.rate,
		LaunchFraction: g.launchFraction,
		FailReason:     g.failReason,
		GridVisible:    g.showGrid,
		Ticks:          g.ticks,
	}
}
