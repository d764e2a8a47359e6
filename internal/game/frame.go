package game

// EntityView is the read-only shape a shell needs to draw an entity.
type EntityView struct {
	Pos  Vector2i
	Size Vector2i
}

// Bounds returns the view's bounding box.
func (v EntityView) Bounds() Rect {
	return Rect{X: v.Pos.X, Y: v.Pos.Y, W: v.Size.X, H: v.Size.Y}
}

type InvaderView struct {
	EntityView
	Tier   int
	Sprite string
}

type ProjectileView struct {
	EntityView
	Target Affiliation
}

// Frame is everything a shell reads once per tick to render a round.
// Positions are y-up playfield coordinates.
type Frame struct {
	Tick        int
	Width       int
	Height      int
	Invaders    []InvaderView
	Player      EntityView
	Projectiles []ProjectileView
	Lives       int
	Score       int
	Ended       bool
	Outcome     Outcome
}

func viewOf(e *Entity) EntityView {
	return EntityView{Pos: e.Pos, Size: e.size}
}

// Frame copies the current render state.
func (s *Simulation) Frame() Frame {
	f := Frame{
		Tick:        s.tick,
		Width:       s.cfg.Width,
		Height:      s.cfg.Height,
		Invaders:    make([]InvaderView, 0, len(s.invaders)),
		Player:      viewOf(&s.player.Entity),
		Projectiles: make([]ProjectileView, 0, len(s.projectiles)),
		Lives:       s.player.Lives(),
		Score:       s.score,
		Ended:       s.ended,
		Outcome:     s.outcome,
	}
	for _, inv := range s.invaders {
		f.Invaders = append(f.Invaders, InvaderView{
			EntityView: viewOf(&inv.Entity),
			Tier:       inv.tier,
			Sprite:     inv.Sprite(),
		})
	}
	for _, p := range s.projectiles {
		f.Projectiles = append(f.Projectiles, ProjectileView{
			EntityView: viewOf(&p.Entity),
			Target:     p.target,
		})
	}
	return f
}
