// Package terminal plays a round in a text terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/Garsondee/Invaders/internal/game"
	"github.com/gdamore/tcell/v2"
)

const (
	// Playfield pixels covered by one terminal cell.
	cellWidth  = 10
	cellHeight = 20

	// hudRows is the number of text rows above the playfield.
	hudRows = 1

	frameInterval = time.Second / game.TicksPerSecond
)

var (
	tierRunes  = [game.Rows]rune{'W', 'M', 'X', 'H', 'Y'}
	tierColors = [game.Rows]tcell.Color{
		tcell.ColorFuchsia, tcell.ColorPurple, tcell.ColorBlue, tcell.ColorTeal, tcell.ColorYellow,
	}

	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	shotStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bombStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	endStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

const (
	playerRune = '^'
	shotRune   = '|'
	bombRune   = '!'
)

// Shell owns a round and the screen it is drawn on. All methods are called
// from the goroutine running Run.
type Shell struct {
	screen    tcell.Screen
	sim       *game.Simulation
	autopilot *game.Autopilot

	// Commands waiting for the next tick; at most one per kind.
	pending []game.Command
}

// New wraps an initialised screen and a round.
func New(screen tcell.Screen, sim *game.Simulation) *Shell {
	return &Shell{screen: screen, sim: sim}
}

// EnableAutopilot lets the bot play instead of the keyboard.
func (s *Shell) EnableAutopilot() {
	s.autopilot = game.NewAutopilot()
}

// Simulation exposes the live round.
func (s *Shell) Simulation() *game.Simulation {
	return s.sim
}

// Run drives the round at the fixed tick rate until ctx is cancelled, the
// player quits, or the end screen is dismissed.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			s.Step()
			s.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the shell
// should stop.
func (s *Shell) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		// Any key dismisses the end screen.
		if s.sim.Ended() {
			return false
		}
		if cmd := decodeKey(ev); cmd == game.CommandQuit {
			return false
		} else if cmd != game.CommandNone {
			s.queue(cmd)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// decodeKey maps a key event to a command. Terminals do not report key
// releases, so each press or auto-repeat is one discrete command.
func decodeKey(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.CommandMoveLeft
	case tcell.KeyRight:
		return game.CommandMoveRight
	case tcell.KeyUp:
		return game.CommandFire
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return game.CommandMoveLeft
		case 'd', 'l':
			return game.CommandMoveRight
		case ' ', 'w', 'k':
			return game.CommandFire
		case 'q':
			return game.CommandQuit
		}
	}
	return game.CommandNone
}

func (s *Shell) queue(cmd game.Command) {
	for _, c := range s.pending {
		if c == cmd {
			return
		}
	}
	s.pending = append(s.pending, cmd)
}

// Step applies queued commands, or the autopilot's, and advances one tick.
func (s *Shell) Step() {
	if s.sim.Ended() {
		return
	}
	for _, cmd := range s.pending {
		s.sim.Apply(cmd)
	}
	s.pending = s.pending[:0]
	if s.autopilot != nil {
		for _, cmd := range s.autopilot.Decide(s.sim.Frame()) {
			s.sim.Apply(cmd)
		}
	}
	s.sim.Tick()
}

// cellRect maps a y-up playfield box onto the cells it covers, inclusive.
func cellRect(b game.Rect, height int) (col0, row0, col1, row1 int) {
	top := height - b.Top()
	bottom := height - b.Y - 1
	return b.X / cellWidth, hudRows + top/cellHeight,
		(b.Right() - 1) / cellWidth, hudRows + bottom/cellHeight
}

func (s *Shell) fill(b game.Rect, height int, r rune, style tcell.Style) {
	col0, row0, col1, row1 := cellRect(b, height)
	for y := row0; y <= row1; y++ {
		if y < hudRows {
			continue
		}
		for x := col0; x <= col1; x++ {
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (s *Shell) text(x, y int, msg string, style tcell.Style) {
	for i, r := range msg {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Draw renders the current frame and shows it.
func (s *Shell) Draw() {
	s.screen.Clear()
	f := s.sim.Frame()

	for _, inv := range f.Invaders {
		tier := inv.Tier % game.Rows
		s.fill(inv.Bounds(), f.Height, tierRunes[tier], tcell.StyleDefault.Foreground(tierColors[tier]))
	}
	s.fill(f.Player.Bounds(), f.Height, playerRune, playerStyle)
	for _, p := range f.Projectiles {
		if p.Target == game.AffiliationPlayer {
			s.fill(p.Bounds(), f.Height, bombRune, bombStyle)
		} else {
			s.fill(p.Bounds(), f.Height, shotRune, shotStyle)
		}
	}

	hud := s.sim.HUD()
	s.text(0, 0, fmt.Sprintf("Lives: %d  Score: %d  T=%d", hud.Lives, hud.Score, f.Tick), hudStyle)

	if f.Ended {
		cols := f.Width / cellWidth
		row := hudRows + f.Height/cellHeight/2
		msg := fmt.Sprintf(" %s  score %d  press any key ", f.Outcome.Headline(), f.Score)
		s.text((cols-len(msg))/2, row, msg, endStyle)
	}
	s.screen.Show()
}

// ScreenSize is the terminal size, in cells, that fits the whole playfield.
func ScreenSize(cfg game.Config) (cols, rows int) {
	return cfg.Width / cellWidth, hudRows + cfg.Height/cellHeight
}
