package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Invaders/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	roundID  string

	ended   bool
	outcome game.Outcome
	ticks   int
	score   int
	lives   int
	stats   game.RoundStats

	firstKillTick  int
	firstPlayerHit int
	firstBlocked   int
	lastKillTick   int

	windowSummary *game.WindowReport
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var doubleDecrement bool
	var despawnMargin int

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot rounds")
	flag.IntVar(&ticks, "ticks", 40000, "tick cap per round")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&doubleDecrement, "double-cooldown", true, "player moves also drain the fire cooldown")
	flag.IntVar(&despawnMargin, "despawn-margin", game.DefaultDespawnMargin, "px past the edge before a projectile is dropped (negative disables)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Round Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d double_cooldown=%v despawn_margin=%d\n\n",
		runs, ticks, seedBase, seedStep, doubleDecrement, despawnMargin)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runAutopilotRound(i+1, seed, ticks,
			game.WithDoubleCooldownDecrement(doubleDecrement),
			game.WithDespawnMargin(despawnMargin),
		)
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func runAutopilotRound(runIndex int, seed int64, ticks int, opts ...game.SimOption) runStats {
	opts = append(opts, game.WithSeed(seed), game.WithAutopilot())
	ts := game.NewTestSim(opts...)
	ended := ts.RunUntilEnd(ticks)

	entries := ts.SimLog.Entries()
	kills := ts.SimLog.Filter("hit", "invader_destroyed")
	lastKill := -1
	if len(kills) > 0 {
		lastKill = kills[len(kills)-1].Tick
	}

	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		roundID:        ts.Sim.RoundID(),
		ended:          ended,
		outcome:        ts.Sim.Outcome(),
		ticks:          ts.Sim.TickCount(),
		score:          ts.Sim.Score(),
		lives:          ts.Sim.Player().Lives(),
		stats:          ts.Sim.Stats(),
		firstKillTick:  firstTick(entries, "hit", "invader_destroyed", ""),
		firstPlayerHit: firstTick(entries, "hit", "player_hit", ""),
		firstBlocked:   firstTick(entries, "fire", "player_blocked", ""),
		lastKillTick:   lastKill,
		windowSummary:  ts.Reporter.WindowSummary(),
	}
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d round=%s) ---\n", rs.runIndex, rs.seed, rs.roundID)
	status := rs.outcome.String()
	if !rs.ended {
		status = "capped"
	}
	fmt.Printf("result: %s ticks=%d score=%d lives=%d\n", status, rs.ticks, rs.score, rs.lives)
	fmt.Printf("shots: player=%d blocked=%d enemy=%d accuracy=%.0f%%\n",
		rs.stats.PlayerShots, rs.stats.BlockedShots, rs.stats.EnemyShots, rs.stats.Accuracy()*100)
	fmt.Printf("hits: invaders=%d player=%d despawned=%d\n",
		rs.stats.InvadersDestroyed, rs.stats.PlayerHits, rs.stats.Despawned)
	fmt.Printf("phase_markers: first_kill=%d last_kill=%d first_player_hit=%d first_blocked=%d\n",
		rs.firstKillTick, rs.lastKillTick, rs.firstPlayerHit, rs.firstBlocked)
	if rs.windowSummary != nil {
		fmt.Print(rs.windowSummary.Format())
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalTicks := 0
	totalShots := 0
	totalKills := 0
	totalPlayerHits := 0
	firstKills := make([]int, 0, len(all))
	firstPlayerHits := make([]int, 0, len(all))

	for _, rs := range all {
		totalScore += rs.score
		totalTicks += rs.ticks
		totalShots += rs.stats.PlayerShots
		totalKills += rs.stats.InvadersDestroyed
		totalPlayerHits += rs.stats.PlayerHits
		if rs.firstKillTick >= 0 {
			firstKills = append(firstKills, rs.firstKillTick)
		}
		if rs.firstPlayerHit >= 0 {
			firstPlayerHits = append(firstPlayerHits, rs.firstPlayerHit)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d win_rate=%.0f%% outcomes=[%s]\n", len(all), winRate(all)*100, joinCounts(outcomeCounts(all)))
	fmt.Printf("avg_per_run: score=%.1f ticks=%.1f player_shots=%.1f invaders_destroyed=%.1f player_hits=%.1f\n",
		avg(totalScore, len(all)), avg(totalTicks, len(all)), avg(totalShots, len(all)),
		avg(totalKills, len(all)), avg(totalPlayerHits, len(all)))
	accuracy := 0.0
	if totalShots > 0 {
		accuracy = float64(totalKills) / float64(totalShots) * 100
	}
	fmt.Printf("overall_accuracy=%.0f%%\n", accuracy)
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s first_player_hit=%s\n",
		avgTickString(firstKills), avgTickString(firstPlayerHits))
}

func outcomeCounts(all []runStats) map[string]int {
	counts := map[string]int{}
	for _, rs := range all {
		if !rs.ended {
			counts["capped"]++
			continue
		}
		counts[rs.outcome.String()]++
	}
	return counts
}

func winRate(all []runStats) float64 {
	if len(all) == 0 {
		return 0
	}
	wins := 0
	for _, rs := range all {
		if rs.ended && rs.outcome.Won() {
			wins++
		}
	}
	return float64(wins) / float64(len(all))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ",")
}
