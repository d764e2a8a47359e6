package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a round.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "P" for the player, "I07" for an invader, "--" for round events
	Category string  // fire, hit, projectile, round
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value, e.g. score after a hit
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] I07  hit       invader_destroyed  score=20
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-10s %-18s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events for one round. It is unbounded and
// machine-readable; the arcade feed keeps its own short ring of recent lines.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick player position
// and cooldown entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Len returns the number of recorded entries.
func (sl *SimLog) Len() int {
	return len(sl.entries)
}

// Since returns entries recorded after the first n, for incremental readers.
func (sl *SimLog) Since(n int) []SimLogEntry {
	if n < 0 {
		n = 0
	}
	if n >= len(sl.entries) {
		return nil
	}
	return sl.entries[n:]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the round so far.
func (sl *SimLog) Summary(s *Simulation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", s.TickCount())
	fmt.Fprintf(&sb, "Score: %d  Lives: %d  Invaders: %d  Projectiles: %d\n",
		s.Score(), s.Player().Lives(), len(s.invaders), len(s.projectiles))
	fmt.Fprintf(&sb, "Shots: enemy=%d player=%d blocked=%d\n",
		sl.CountCategory("fire", "enemy_shot"),
		sl.CountCategory("fire", "player_shot"),
		sl.CountCategory("fire", "player_blocked"))
	fmt.Fprintf(&sb, "Hits: invaders=%d player=%d  Despawned: %d\n",
		sl.CountCategory("hit", "invader_destroyed"),
		sl.CountCategory("hit", "player_hit"),
		sl.CountCategory("projectile", "despawn"))
	if e, ok := sl.LastOf("round", "end"); ok {
		fmt.Fprintf(&sb, "Ended: T=%03d %s\n", e.Tick, e.Value)
	} else {
		sb.WriteString("Ended: no\n")
	}
	return sb.String()
}
