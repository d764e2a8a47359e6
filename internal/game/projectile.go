package game

// Projectile travels at a constant velocity and can only damage entities
// whose Type matches its target.
type Projectile struct {
	Entity
	target   Affiliation
	velocity Vector2i
}

// NewProjectile creates a projectile with its bottom-left corner at pos.
func NewProjectile(pos Vector2i, target Affiliation, velocity Vector2i) *Projectile {
	return &Projectile{
		Entity:   newEntity(pos, ProjectileSize),
		target:   target,
		velocity: velocity,
	}
}

// Target returns the affiliation this projectile can damage.
func (p *Projectile) Target() Affiliation { return p.target }

func (p *Projectile) Velocity() Vector2i { return p.velocity }

// Move advances the projectile by one tick. Pruning off-field projectiles
// is the simulation's job.
func (p *Projectile) Move() {
	p.Pos = p.Pos.Add(p.velocity)
}
