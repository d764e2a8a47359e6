package game

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-pressure reports (~10s at 60TPS).
const reportWindowTicks = 600

// reportInterval is how often the harness and shells collect a sample (~1s at 60TPS).
const reportInterval = TicksPerSecond

// SimReport is a snapshot of the round at one tick.
type SimReport struct {
	Tick        int
	Score       int
	Lives       int
	Invaders    int
	Projectiles int

	// Enemy shots in flight versus the player's own.
	IncomingShots int
	OutgoingShots int

	// LowestInvaderY is the y of the invader closest to the bottom edge,
	// -1 when the grid is empty.
	LowestInvaderY int

	PlayerCooldown int
	EnemyCooldown  int
}

// SimReporter collects periodic reports from a round and can produce
// summaries over sliding time windows.
type SimReporter struct {
	history     []SimReport
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect gathers a snapshot from the current simulation state.
// Call this periodically (e.g. every reportInterval ticks).
func (r *SimReporter) Collect(s *Simulation) {
	report := SimReport{
		Tick:           s.tick,
		Score:          s.score,
		Lives:          s.player.Lives(),
		Invaders:       len(s.invaders),
		Projectiles:    len(s.projectiles),
		LowestInvaderY: -1,
		PlayerCooldown: s.player.Cooldown(),
		EnemyCooldown:  s.cooldown,
	}
	for i, inv := range s.invaders {
		if i == 0 || inv.Pos.Y < report.LowestInvaderY {
			report.LowestInvaderY = inv.Pos.Y
		}
	}
	for _, p := range s.projectiles {
		if p.Target() == AffiliationPlayer {
			report.IncomingShots++
		} else {
			report.OutgoingShots++
		}
	}
	r.history = append(r.history, report)
}

// Latest returns the most recent report, or nil before the first Collect.
func (r *SimReporter) Latest() *SimReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected reports.
func (r *SimReporter) History() []SimReport {
	return r.history
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	ScoreDelta        int // score change across the window
	LivesLost         int
	InvadersDestroyed int
	DescentPx         int // how far the lowest invader dropped

	AvgIncoming float64
	AvgOutgoing float64
	MinLowestY  int
}

// WindowSummary returns an aggregated summary over the recent time window.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []SimReport
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	newest := window[0]
	oldest := window[len(window)-1]
	wr := &WindowReport{
		FromTick:          oldest.Tick,
		ToTick:            newest.Tick,
		SampleCount:       len(window),
		ScoreDelta:        newest.Score - oldest.Score,
		LivesLost:         oldest.Lives - newest.Lives,
		InvadersDestroyed: oldest.Invaders - newest.Invaders,
		MinLowestY:        newest.LowestInvaderY,
	}
	if oldest.LowestInvaderY >= 0 && newest.LowestInvaderY >= 0 {
		wr.DescentPx = oldest.LowestInvaderY - newest.LowestInvaderY
	}

	n := float64(len(window))
	for _, rpt := range window {
		wr.AvgIncoming += float64(rpt.IncomingShots)
		wr.AvgOutgoing += float64(rpt.OutgoingShots)
		if rpt.LowestInvaderY >= 0 && (wr.MinLowestY < 0 || rpt.LowestInvaderY < wr.MinLowestY) {
			wr.MinLowestY = rpt.LowestInvaderY
		}
	}
	wr.AvgIncoming /= n
	wr.AvgOutgoing /= n
	return wr
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Pressure Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "  score %+d  lives lost %d  invaders destroyed %d\n",
		wr.ScoreDelta, wr.LivesLost, wr.InvadersDestroyed)
	fmt.Fprintf(&sb, "  grid descent %dpx  lowest y %d (%s)\n",
		wr.DescentPx, wr.MinLowestY, pressureLabel(wr.MinLowestY))
	fmt.Fprintf(&sb, "  shots in flight: incoming=%.1f outgoing=%.1f\n",
		wr.AvgIncoming, wr.AvgOutgoing)
	return sb.String()
}

// pressureLabel grades how close the grid is to landing.
func pressureLabel(lowestY int) string {
	switch {
	case lowestY < 0:
		return "grid empty"
	case lowestY < 100:
		return "landing"
	case lowestY < 250:
		return "close"
	case lowestY < 450:
		return "advancing"
	default:
		return "distant"
	}
}

// FormatLatest returns a concise snapshot of the most recent collected report.
func (r *SimReporter) FormatLatest() string {
	rpt := r.Latest()
	if rpt == nil {
		return "No data.\n"
	}
	return fmt.Sprintf("--- Snapshot T=%d ---\nscore=%d lives=%d invaders=%d lowest_y=%d incoming=%d outgoing=%d cooldown=%d/%d\n",
		rpt.Tick, rpt.Score, rpt.Lives, rpt.Invaders, rpt.LowestInvaderY,
		rpt.IncomingShots, rpt.OutgoingShots, rpt.PlayerCooldown, rpt.EnemyCooldown)
}
