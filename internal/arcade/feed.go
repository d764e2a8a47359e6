package arcade

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Invaders/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 320
	feedMaxEntries = 60
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick     int
	Actor    string // "P", "I07", "--"
	Category string
	Message  string
}

// Feed is a ring buffer of recent round events rendered beside the playfield.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int

	// cursor is how many SimLog entries have already been copied in.
	cursor int
}

// NewFeed creates a feed with a fixed capacity.
func NewFeed() *Feed {
	return &Feed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *Feed) Add(tick int, actor, category, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Message:  msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Sync copies in every SimLog entry recorded since the last call.
func (f *Feed) Sync(log *game.SimLog) {
	for _, e := range log.Since(f.cursor) {
		f.Add(e.Tick, e.Actor, e.Category, e.Key+" "+e.Value)
	}
	f.cursor = log.Len()
}

// Reset empties the feed for a new round.
func (f *Feed) Reset() {
	f.head, f.count, f.cursor = 0, 0, 0
}

// Recent returns entries in chronological order (oldest first).
func (f *Feed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

func categoryColor(category string) color.RGBA {
	switch category {
	case "hit":
		return color.RGBA{R: 230, G: 80, B: 70, A: 255}
	case "fire":
		return color.RGBA{R: 230, G: 200, B: 70, A: 255}
	case "round":
		return color.RGBA{R: 90, G: 200, B: 110, A: 255}
	default:
		return color.RGBA{R: 120, G: 120, B: 140, A: 255}
	}
}

// Draw renders the feed panel at panelX, newest entries at the bottom.
func (f *Feed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 8, G: 8, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 50, B: 90, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 18, G: 18, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	const recent = 3
	y := 20
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 26, G: 26, B: 50, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %-3s %s", e.Tick, e.Actor, e.Message), panelX+12, y-2)
		y += feedLineHeight
	}
}
