package game

// Player is the user-controlled ship.
type Player struct {
	Entity
	lives    int
	cooldown int

	viewportWidth int
	rng           Random

	// moveDrainsCooldown makes Move tick the fire cooldown down as well.
	moveDrainsCooldown bool
}

// NewPlayer creates the ship at pos with StartingLives and no cooldown.
func NewPlayer(pos Vector2i, viewportWidth int, rng Random, moveDrainsCooldown bool) *Player {
	return &Player{
		Entity:             newEntity(pos, PlayerSize),
		lives:              StartingLives,
		viewportWidth:      viewportWidth,
		rng:                rng,
		moveDrainsCooldown: moveDrainsCooldown,
	}
}

// Type is the affiliation a projectile must target to damage the player.
func (p *Player) Type() Affiliation { return AffiliationPlayer }

func (p *Player) Lives() int    { return p.lives }
func (p *Player) Cooldown() int { return p.cooldown }

// AddLives applies a signed delta. A delta that would take lives below
// zero is discarded entirely.
func (p *Player) AddLives(delta int) {
	if p.lives+delta >= 0 {
		p.lives += delta
	}
}

// AddCooldown applies a signed delta with the same floor rule as AddLives.
func (p *Player) AddCooldown(delta int) {
	if p.cooldown+delta >= 0 {
		p.cooldown += delta
	}
}

// Shoot fires upward when the cooldown has expired and starts a new
// cooldown of 15..75 ticks. It returns nil while on cooldown.
func (p *Player) Shoot() *Projectile {
	if p.cooldown != 0 {
		return nil
	}
	proj := NewProjectile(p.Center(), AffiliationEnemy, Vector2i{Y: projectileSpeed})
	p.cooldown = TicksPerSecond * uniformInt(p.rng, CooldownMin, CooldownMax) / playerCooldownDivisor
	return proj
}

func (p *Player) inBounds(v Vector2i) bool {
	x := p.Pos.X + v.X
	return x > Gap && x+p.size.X < p.viewportWidth-Gap
}

// Move shifts the ship by v. Moves that would leave the horizontal
// bounds are dropped, not clamped.
func (p *Player) Move(v Vector2i) {
	if p.moveDrainsCooldown && p.cooldown > 0 {
		p.cooldown--
	}
	if p.inBounds(v) {
		p.Pos = p.Pos.Add(v)
	}
}

func (p *Player) MoveLeft()  { p.Move(Vector2i{X: -ShipVelocity}) }
func (p *Player) MoveRight() { p.Move(Vector2i{X: ShipVelocity}) }
