package game

// TestSim is a headless round harness used by tests and the batch report.
// It mirrors what a shell does each frame (commands, then Tick) without
// any rendering dependency, and supports deterministic seeding, scripted
// or bot input and structured logging.
type TestSim struct {
	Sim       *Simulation
	SimLog    *SimLog
	Reporter  *SimReporter
	Autopilot *Autopilot

	cfg     Config
	rng     Random
	verbose bool

	// Commands queued for the next tick only.
	pending []Command
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // viewport, seed, rules: applied before the round is built
	simOptRound                      // entity tweaks: applied to the built round
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithViewport sets the playfield dimensions.
func WithViewport(w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Width = w
		ts.cfg.Height = h
	}}
}

// WithSeed seeds the round's random source for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Seed = seed
		ts.rng = NewRandom(seed)
	}}
}

// WithRandom injects a random source, typically a mock that forces draws.
func WithRandom(rng Random) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rng
	}}
}

// WithDoubleCooldownDecrement toggles the move-drains-cooldown rule.
func WithDoubleCooldownDecrement(on bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.DoubleCooldownDecrement = on
	}}
}

// WithDespawnMargin sets the off-field projectile margin; negative disables despawning.
func WithDespawnMargin(px int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.DespawnMargin = px
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithAutopilot lets the rule-based bot play the round.
func WithAutopilot() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Autopilot = NewAutopilot()
	}}
}

// WithInvaderCount trims the grid to its first n invaders.
func WithInvaderCount(n int) SimOption {
	return SimOption{simOptRound, func(ts *TestSim) {
		if n < len(ts.Sim.invaders) {
			clear(ts.Sim.invaders[n:])
			ts.Sim.invaders = ts.Sim.invaders[:n]
		}
	}}
}

// WithProjectile puts a projectile into play before the first tick.
func WithProjectile(pos Vector2i, target Affiliation, velocity Vector2i) SimOption {
	return SimOption{simOptRound, func(ts *TestSim) {
		ts.Sim.AddProjectile(NewProjectile(pos, target, velocity))
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (viewport, seed, rules, verbose)
//  2. Build the round, then apply round tweaks
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg: DefaultConfig(),
	}
	ts.rng = NewRandom(ts.cfg.Seed)
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.SimLog = NewSimLog(ts.verbose)
	ts.Sim = newSimulation(ts.cfg, ts.rng, ts.SimLog)
	ts.Reporter = NewSimReporter(reportWindowTicks)
	for _, o := range opts {
		if o.kind == simOptRound {
			o.fn(ts)
		}
	}
	return ts
}

// Queue schedules commands to be applied before the next tick.
func (ts *TestSim) Queue(cmds ...Command) {
	ts.pending = append(ts.pending, cmds...)
}

// RunTicks advances up to n ticks, stopping once the round has ended.
// It returns how many ticks were run.
func (ts *TestSim) RunTicks(n int) int {
	for i := 0; i < n; i++ {
		if ts.Sim.Ended() {
			return i
		}
		ts.step()
	}
	return n
}

// RunUntil advances up to maxTicks, stopping early if predicate returns
// true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks && !ts.Sim.Ended(); i++ {
		ts.step()
		if predicate(ts) {
			return ts.Sim.TickCount()
		}
	}
	return -1
}

// RunUntilEnd plays until the round ends or maxTicks elapse, and reports
// whether the round ended. The end is only observed by the tick after
// the condition arose, as in a live shell.
func (ts *TestSim) RunUntilEnd(maxTicks int) bool {
	ts.RunTicks(maxTicks)
	return ts.Sim.Ended()
}

// step mirrors one shell frame: input, then Tick, then periodic sampling.
func (ts *TestSim) step() {
	for _, cmd := range ts.pending {
		ts.Sim.Apply(cmd)
	}
	ts.pending = ts.pending[:0]
	if ts.Autopilot != nil {
		for _, cmd := range ts.Autopilot.Decide(ts.Sim.Frame()) {
			ts.Sim.Apply(cmd)
		}
	}
	ts.Sim.Tick()
	if !ts.Sim.Ended() && ts.Sim.TickCount()%reportInterval == 0 {
		ts.Reporter.Collect(ts.Sim)
	}
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Sim.TickCount()
}

// Report renders the round report including the reporter's window summary.
func (ts *TestSim) Report() string {
	return RoundReport(ts.Sim, ts.Reporter, 0)
}
