package game

import "fmt"

// Invader is one member of the grid. Each unit oscillates around its own
// spawn X and drops a step every time it turns; units never resynchronise
// with their row.
type Invader struct {
	Entity
	id          int
	baseX       int
	velocity    Vector2i
	tier        int
	maxMovement int
}

// NewInvader places an invader at pos. maxMovement bounds its drift from pos.X.
func NewInvader(id int, pos Vector2i, tier, maxMovement int) *Invader {
	return &Invader{
		Entity:      newEntity(pos, InvaderSize),
		id:          id,
		baseX:       pos.X,
		velocity:    Vector2i{X: 1},
		tier:        tier,
		maxMovement: maxMovement,
	}
}

func (inv *Invader) ID() int            { return inv.id }
func (inv *Invader) Label() string      { return fmt.Sprintf("I%02d", inv.id) }
func (inv *Invader) BaseX() int         { return inv.baseX }
func (inv *Invader) Velocity() Vector2i { return inv.velocity }

// Tier is the sprite tier, 0 for the top row.
func (inv *Invader) Tier() int { return inv.tier }

// Sprite returns the sprite identifier for this invader's tier.
func (inv *Invader) Sprite() string { return InvaderSprites[inv.tier] }

// Type is the affiliation a projectile must target to damage an invader.
func (inv *Invader) Type() Affiliation { return AffiliationEnemy }

func (inv *Invader) outOfBoundsX() bool {
	x := inv.Pos.X
	return x-inv.maxMovement > inv.baseX || x+inv.maxMovement < inv.baseX
}

// Move advances one tick. Crossing the drift bound turns the unit and
// drops it by descentStep in the same tick, before the lateral step.
func (inv *Invader) Move() {
	if inv.outOfBoundsX() {
		inv.velocity = Vector2i{X: -inv.velocity.X, Y: -inv.velocity.Y}
		inv.Pos.Y -= descentStep
	}
	inv.Pos = inv.Pos.Add(inv.velocity)
}

// Shoot fires downward at the player. There is no per-invader cooldown;
// the simulation gates enemy fire globally.
func (inv *Invader) Shoot() *Projectile {
	return NewProjectile(inv.Center(), AffiliationPlayer, Vector2i{Y: -projectileSpeed})
}
