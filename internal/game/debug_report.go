package game

import (
	"fmt"
	"strings"
)

// RoundReport renders a plain-text report of the round for pasting into
// bug reports. lastTicks bounds the event timeline at the end.
func RoundReport(s *Simulation, reporter *SimReporter, lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	toTick := s.tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	st := s.stats
	var b strings.Builder
	fmt.Fprintf(&b, "--- Invaders round report ---\n")
	fmt.Fprintf(&b, "round=%s seed=%d tick=%d viewport=%dx%d\n",
		s.roundID, s.cfg.Seed, s.tick, s.cfg.Width, s.cfg.Height)
	fmt.Fprintf(&b, "state=%s outcome=%s score=%d lives=%d\n",
		roundState(s), s.outcome, s.score, s.player.Lives())
	fmt.Fprintf(&b, "invaders=%d/%d projectiles=%d enemy_cooldown=%d player_cooldown=%d\n",
		len(s.invaders), Rows*Columns, len(s.projectiles), s.cooldown, s.player.Cooldown())
	fmt.Fprintf(&b, "shots: player=%d blocked=%d enemy=%d  hits: invaders=%d player=%d  accuracy=%.0f%%  despawned=%d\n",
		st.PlayerShots, st.BlockedShots, st.EnemyShots,
		st.InvadersDestroyed, st.PlayerHits, st.Accuracy()*100, st.Despawned)
	fmt.Fprintf(&b, "double_cooldown_decrement=%v despawn_margin=%d\n\n",
		s.cfg.DoubleCooldownDecrement, s.cfg.DespawnMargin)

	if reporter != nil {
		b.WriteString(reporter.WindowSummary().Format())
		b.WriteByte('\n')
	}

	events := s.log.FilterTickRange(fromTick, toTick)
	fmt.Fprintf(&b, "events T=%d..%d:\n", fromTick, toTick)
	if len(events) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, e := range events {
		b.WriteString("  ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func roundState(s *Simulation) string {
	if s.ended {
		return "ended"
	}
	return "running"
}
