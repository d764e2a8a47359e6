package game

// Autopilot is a rule-based player: it sidesteps incoming fire first,
// otherwise lines up under the lowest invader and fires.
type Autopilot struct {
	DangerHeight int // px above the ship within which enemy shots are dodged
	DangerWidth  int // px of horizontal padding around the ship when dodging
	AimTolerance int // px of centre misalignment still considered lined up
}

// NewAutopilot returns an autopilot with defaults tuned for the stock round.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		DangerHeight: 120,
		DangerWidth:  12,
		AimTolerance: 6,
	}
}

// Decide returns the commands to apply before the next tick: at most one
// move and possibly a fire.
func (a *Autopilot) Decide(f Frame) []Command {
	if f.Ended {
		return nil
	}
	if cmd, ok := a.evade(f); ok {
		return []Command{cmd}
	}

	target, ok := lowestInvader(f.Invaders)
	if !ok {
		return nil
	}
	shipX := f.Player.Pos.X + f.Player.Size.X/2
	aimX := target.Pos.X + target.Size.X/2
	dx := aimX - shipX
	switch {
	case dx > a.AimTolerance:
		return []Command{CommandMoveRight}
	case dx < -a.AimTolerance:
		return []Command{CommandMoveLeft}
	default:
		return []Command{CommandFire}
	}
}

// evade finds the closest enemy shot falling into the ship's column and
// steps away from it.
func (a *Autopilot) evade(f Frame) (Command, bool) {
	ship := f.Player.Bounds()
	left := ship.X - a.DangerWidth
	right := ship.Right() + a.DangerWidth
	var (
		threat  ProjectileView
		found   bool
		closest int
	)
	for _, p := range f.Projectiles {
		if p.Target != AffiliationPlayer {
			continue
		}
		box := p.Bounds()
		if box.Right() <= left || box.X >= right {
			continue
		}
		above := box.Y - ship.Top()
		if above < 0 || above > a.DangerHeight {
			continue
		}
		if !found || above < closest {
			threat, closest, found = p, above, true
		}
	}
	if !found {
		return CommandNone, false
	}

	shipMid := ship.X + ship.W/2
	threatMid := threat.Pos.X + threat.Size.X/2
	toRight := shipMid >= threatMid
	// Blocked by the wall on the preferred side: go the other way.
	if toRight && ship.Right()+ShipVelocity >= f.Width-Gap {
		toRight = false
	} else if !toRight && ship.X-ShipVelocity <= Gap {
		toRight = true
	}
	if toRight {
		return CommandMoveRight, true
	}
	return CommandMoveLeft, true
}

func lowestInvader(invaders []InvaderView) (InvaderView, bool) {
	if len(invaders) == 0 {
		return InvaderView{}, false
	}
	best := invaders[0]
	for _, inv := range invaders[1:] {
		if inv.Pos.Y < best.Pos.Y || (inv.Pos.Y == best.Pos.Y && inv.Pos.X < best.Pos.X) {
			best = inv
		}
	}
	return best, true
}
