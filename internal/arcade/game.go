package arcade

import (
	"fmt"
	"image/color"
	"log"

	"github.com/Garsondee/Invaders/internal/game"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// noticeTicks is how long a status notice stays on screen (~2s).
const noticeTicks = 2 * game.TicksPerSecond

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Game is the ebiten front end: it decodes keys into commands, ticks the
// simulation at the selected speed and draws the latest frame.
type Game struct {
	cfg       game.Config
	sim       *game.Simulation
	simLog    *game.SimLog
	reporter  *game.SimReporter
	autopilot *game.Autopilot
	feed      *Feed
	sprites   map[string]*ebiten.Image
	keys      keyReader
	copyText  func(string) error

	round int

	// One-shot commands waiting for the next tick.
	pending []game.Command

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	notice      string
	noticeUntil int
	frames      int
}

// New builds the shell and its first round. autopilot starts the round in
// demo mode.
func New(cfg game.Config, autopilot bool) *Game {
	g := &Game{
		cfg:      cfg,
		feed:     NewFeed(),
		sprites:  newSpriteSet(),
		keys:     ebitenKeys{},
		copyText: clipboard.WriteAll,
		simSpeed: 1.0,
	}
	if autopilot {
		g.autopilot = game.NewAutopilot()
	}
	g.newRound()
	return g
}

// newRound starts a fresh round; each restart advances the seed so rounds differ.
func (g *Game) newRound() {
	cfg := g.cfg
	cfg.Seed += int64(g.round)
	g.round++
	g.sim = game.NewSimulation(cfg, nil)
	g.simLog = g.sim.Log()
	g.reporter = game.NewSimReporter(0)
	g.pending = g.pending[:0]
	g.tickAccum = 0
	g.feed.Reset()
	g.feed.Sync(g.simLog)
}

// Simulation exposes the live round.
func (g *Game) Simulation() *game.Simulation {
	return g.sim
}

func (g *Game) Update() error {
	g.frames++
	in := readInput(g.keys)
	if in.quit {
		return ebiten.Termination
	}
	g.handleControls(in)

	if g.sim.Ended() {
		return nil
	}
	g.pending = append(g.pending, in.once...)

	if g.simSpeed <= 0 {
		return nil
	}
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 && !g.sim.Ended() {
		g.tickAccum -= 1.0
		g.simTick(in.held)
	}
	g.feed.Sync(g.simLog)
	return nil
}

func (g *Game) handleControls(in frameInput) {
	if in.pause {
		g.simSpeed = togglePause(g.simSpeed)
	}
	if in.slower {
		g.simSpeed = slower(g.simSpeed)
	}
	if in.faster {
		g.simSpeed = faster(g.simSpeed)
	}
	if in.autopilot {
		if g.autopilot == nil {
			g.autopilot = game.NewAutopilot()
			g.setNotice("autopilot on")
		} else {
			g.autopilot = nil
			g.setNotice("autopilot off")
		}
	}
	if in.restart {
		g.newRound()
		g.setNotice("new round")
	}
	if in.copyReport {
		g.copyReport()
	}
}

// simTick applies the frame's commands and advances one step.
func (g *Game) simTick(held []game.Command) {
	for _, cmd := range g.pending {
		g.sim.Apply(cmd)
	}
	g.pending = g.pending[:0]

	if g.autopilot != nil {
		for _, cmd := range g.autopilot.Decide(g.sim.Frame()) {
			g.sim.Apply(cmd)
		}
	} else {
		for _, cmd := range held {
			g.sim.Apply(cmd)
		}
	}

	g.sim.Tick()
	if !g.sim.Ended() && g.sim.TickCount()%game.TicksPerSecond == 0 {
		g.reporter.Collect(g.sim)
	}
}

func (g *Game) copyReport() {
	report := game.RoundReport(g.sim, g.reporter, 0)
	if err := g.copyText(report); err != nil {
		log.Printf("copy round report: %v", err)
		g.setNotice("clipboard unavailable")
		return
	}
	g.setNotice("report copied")
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeUntil = g.frames + noticeTicks
}

// toScreen flips a y-up playfield box into ebiten's y-down screen space.
func (g *Game) toScreen(b game.Rect) (x, y, w, h float32) {
	return float32(b.X), float32(g.cfg.Height - b.Top()), float32(b.W), float32(b.H)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 6, G: 6, B: 14, A: 255})
	f := g.sim.Frame()

	for _, inv := range f.Invaders {
		g.drawInvader(screen, inv)
	}
	g.drawPlayer(screen, f.Player)
	for _, p := range f.Projectiles {
		x, y, w, h := g.toScreen(p.Bounds())
		col := color.RGBA{R: 250, G: 250, B: 250, A: 255}
		if p.Target == game.AffiliationPlayer {
			col = color.RGBA{R: 255, G: 90, B: 60, A: 255}
		}
		vector.FillRect(screen, x, y, w, h, col, false)
	}

	g.drawHUD(screen, f)
	if f.Ended {
		g.drawEndScreen(screen, f)
	}
	g.feed.Draw(screen, g.cfg.Width, g.cfg.Height)
}

func (g *Game) drawInvader(screen *ebiten.Image, inv game.InvaderView) {
	img, ok := g.sprites[inv.Sprite]
	x, y, w, h := g.toScreen(inv.Bounds())
	if !ok {
		vector.FillRect(screen, x, y, w, h, tierColors[inv.Tier%len(tierColors)], false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/spriteCells, float64(h)/spriteCells)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func (g *Game) drawPlayer(screen *ebiten.Image, p game.EntityView) {
	x, y, w, h := g.toScreen(p.Bounds())
	body := color.RGBA{R: 90, G: 230, B: 120, A: 255}
	// Hull on the lower half, turret centred on top.
	vector.FillRect(screen, x, y+h/2, w, h/2, body, false)
	vector.FillRect(screen, x+w/2-w/8, y, w/4, h/2, body, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, f game.Frame) {
	hud := g.sim.HUD()
	mode := "manual"
	if g.autopilot != nil {
		mode = "autopilot"
	}
	drawText(screen, fmt.Sprintf("Lives: %d", hud.Lives), 10, 8, color.White)
	drawText(screen, fmt.Sprintf("Score: %d", hud.Score), 10, 24, color.White)
	drawText(screen, fmt.Sprintf("SIM: %s  %s  T=%d", speedLabel(g.simSpeed), mode, f.Tick), g.cfg.Width-260, 8,
		color.RGBA{R: 160, G: 160, B: 200, A: 255})
	drawText(screen, "P pause  ,/. speed  Tab bot  R restart  C copy", 10, g.cfg.Height-18,
		color.RGBA{R: 110, G: 110, B: 150, A: 255})
	if g.notice != "" && g.frames < g.noticeUntil {
		drawText(screen, g.notice, g.cfg.Width/2-len(g.notice)*7/2, 40, color.RGBA{R: 250, G: 220, B: 90, A: 255})
	}
}

func (g *Game) drawEndScreen(screen *ebiten.Image, f game.Frame) {
	w, h := float32(g.cfg.Width), float32(g.cfg.Height)
	vector.FillRect(screen, 0, h/2-50, w, 100, color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
	headline := f.Outcome.Headline()
	drawText(screen, headline, g.cfg.Width/2-len(headline)*7/2, g.cfg.Height/2-30, color.White)
	line := fmt.Sprintf("score %d   R: new round   Esc: quit", f.Score)
	drawText(screen, line, g.cfg.Width/2-len(line)*7/2, g.cfg.Height/2+10, color.RGBA{R: 180, G: 180, B: 210, A: 255})
}

func drawText(dst *ebiten.Image, s string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, hudFace, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width + feedPanelWidth, g.cfg.Height
}

// WindowSize is the outer size that fits the playfield and the feed panel.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
